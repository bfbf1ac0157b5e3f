package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/muesli/reflow/wordwrap"
	"github.com/muesli/reflow/wrap"
	"github.com/pokedex-cli/pokedex/color"
	"github.com/pokedex-cli/pokedex/icon"
	"github.com/pokedex-cli/pokedex/pokemon"
	"github.com/pokedex-cli/pokedex/style"
	"github.com/pokedex-cli/pokedex/viewmodel"
)

var (
	listExtraPaddingStyle = lipgloss.NewStyle().Padding(1, 2, 1, 0)
	paddingStyle          = lipgloss.NewStyle().Padding(1, 2)
)

func (b *statefulBubble) View() string {
	var output string

	switch b.state {
	case loadingState:
		output = b.viewLoading()
	case historyState:
		output = b.viewHistory()
	case listState, searchState:
		output = b.viewList()
	case typesState:
		output = b.viewTypes()
	case sortState:
		output = b.viewSort()
	case detailsState:
		output = b.viewDetails()
	case errorState:
		output = b.viewError()
	default:
		output = "Unknown state"
	}

	return b.notifier.View(output)
}

func (b *statefulBubble) viewLoading() string {
	return b.renderLines(
		true,
		[]string{
			style.Title("Loading"),
			"",
			b.spinnerC.View() + " " + b.progressStatus,
		},
	)
}

func (b *statefulBubble) viewHistory() string {
	return listExtraPaddingStyle.Render(b.historyC.View())
}

func (b *statefulBubble) viewTypes() string {
	return listExtraPaddingStyle.Render(b.typesC.View())
}

func (b *statefulBubble) viewSort() string {
	return listExtraPaddingStyle.Render(b.sortC.View())
}

func (b *statefulBubble) viewList() string {
	var footer string

	switch {
	case b.state == searchState:
		footer = b.inputC.View()
		if suggestion, ok := b.searchSuggestion.Get(); ok {
			footer += "  " + style.Faint(fmt.Sprintf("tab %s", suggestion))
		}
	case b.shownList.LoadError != "":
		footer = style.Fg(color.Red)(fmt.Sprintf("%s %s Press r to retry.", icon.Get(icon.Fail), b.shownList.LoadError))
	case b.inputC.Value() != "":
		footer = style.Faint(fmt.Sprintf("Showing matches for %q, esc to clear", b.inputC.Value()))
	case b.shownList.EndReached && !b.shownList.IsDataFiltered:
		footer = style.Faint("End of the pokédex")
	}

	return listExtraPaddingStyle.Render(b.pokemonC.View() + "\n" + footer)
}

func (b *statefulBubble) viewDetails() string {
	s := b.shownDetails

	if s.IsLoading || s.Pokemon.Name == "" {
		return b.renderLines(
			true,
			[]string{
				style.Title("Pokémon"),
				"",
				b.spinnerC.View() + " Loading details...",
			},
		)
	}

	p := s.Pokemon
	bg, darker := detailsColors(s)
	title := fmt.Sprintf("%s %s", p.Summary(), pokemon.DisplayID(fmt.Sprint(p.ID)))

	lines := []string{
		style.Themed(lipgloss.Color(bg), isDark(bg))(title),
		"",
		typeTags(p.Types),
		"",
		fmt.Sprintf("%s %s", style.Faint("Category"), p.Category),
		fmt.Sprintf("%s   %.1f m", style.Faint("Height"), p.HeightMetres()),
		fmt.Sprintf("%s   %.1f kg", style.Faint("Weight"), p.WeightKilograms()),
	}

	if p.FlavorText != "" {
		lines = append(lines, "", style.Italic(wordwrap.String(p.FlavorText, b.width)))
	}

	if darker != "" {
		lines = append(lines, "", style.Bg(lipgloss.Color(bg))("    ")+style.Bg(lipgloss.Color(darker))("    "))
	}

	return b.renderLines(true, lines)
}

// detailsColors returns the title background and, when the artwork was analysed, its darker shade.
func detailsColors(s viewmodel.DetailsState) (bg, darker string) {
	if theme, ok := s.Theme.Get(); ok {
		return theme.DominantHex(), theme.DarkerHex()
	}

	if len(s.Pokemon.Types) > 0 {
		return pokemon.TypeColor(s.Pokemon.Types[0]), ""
	}

	return pokemon.FallbackColor, ""
}

func isDark(hex string) bool {
	c, err := colorful.Hex(hex)
	if err != nil {
		return false
	}

	l, _, _ := c.Lab()
	return l < 0.6
}

func (b *statefulBubble) viewError() string {
	var message string
	if b.lastError != nil {
		message = wrap.String(style.Fg(color.Red)(b.lastError.Error()), b.width)
	}

	return b.renderLines(
		true,
		[]string{
			style.ErrorTitle("Error"),
			"",
			icon.Get(icon.Fail) + " " + message,
		},
	)
}

func (b *statefulBubble) renderLines(addHelp bool, lines []string) string {
	h := len(lines)
	l := strings.Join(lines, "\n")
	if addHelp {
		if b.height > h {
			l += strings.Repeat("\n", b.height-h)
		}
		l += b.helpC.View(b.keymap)
	}

	return paddingStyle.Render(l)
}
