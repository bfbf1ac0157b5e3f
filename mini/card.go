package mini

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/indent"
	"github.com/muesli/reflow/wordwrap"
	"github.com/pokedex-cli/pokedex/color"
	"github.com/pokedex-cli/pokedex/icon"
	"github.com/pokedex-cli/pokedex/pokemon"
	"github.com/pokedex-cli/pokedex/style"
	"github.com/pokedex-cli/pokedex/util"
	"github.com/pokedex-cli/pokedex/viewmodel"
	"github.com/samber/lo"
)

// card renders loaded details as a block of at most width columns.
func card(s viewmodel.DetailsState, width int) string {
	p := s.Pokemon

	bg := pokemon.FallbackColor
	if theme, ok := s.Theme.Get(); ok {
		bg = theme.DominantHex()
	} else if len(p.Types) > 0 {
		bg = pokemon.TypeColor(p.Types[0])
	}

	types := strings.Join(lo.Map(p.Types, func(t string, _ int) string {
		return style.Tag(color.White, lipgloss.Color(pokemon.TypeColor(t)))(util.Capitalize(t))
	}), " ")

	body := []string{
		types,
		fmt.Sprintf("%s %s", style.Faint("Category"), p.Category),
		fmt.Sprintf("%s   %.1f m", style.Faint("Height"), p.HeightMetres()),
		fmt.Sprintf("%s   %.1f kg", style.Faint("Weight"), p.WeightKilograms()),
	}

	if p.FlavorText != "" {
		body = append(body, "", wordwrap.String(p.FlavorText, util.Max(width-4, 20)))
	}

	title := style.Tag(color.White, lipgloss.Color(bg))(fmt.Sprintf("%s %s", pokemon.DisplayID(fmt.Sprint(p.ID)), p.Summary()))
	return title + "\n\n" + indent.String(strings.Join(body, "\n"), 2) + "\n"
}

func fail(out io.Writer, msg string) {
	fmt.Fprintf(out, "%s %s\n", icon.Get(icon.Fail), style.Fg(color.Red)(msg))
}
