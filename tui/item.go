package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/pokedex-cli/pokedex/history"
	"github.com/pokedex-cli/pokedex/icon"
	"github.com/pokedex-cli/pokedex/key"
	"github.com/pokedex-cli/pokedex/pokemon"
	"github.com/pokedex-cli/pokedex/style"
	"github.com/pokedex-cli/pokedex/util"
	"github.com/samber/lo"
	"github.com/spf13/viper"
)

// allTypesItem is the types screen entry that removes the type filter.
type allTypesItem struct{}

var allTypes = allTypesItem{}

// listItem wraps the records shown by the list screens.
type listItem struct {
	internal interface{}
	marked   bool
}

func (t *listItem) Title() (title string) {
	switch e := t.internal.(type) {
	case pokemon.Pokemon:
		title = fmt.Sprintf("%s %s", style.Faint(pokemon.DisplayID(e.ID)), e)
	case *history.Entry:
		title = fmt.Sprintf("%s %s", style.Faint(pokemon.DisplayID(e.ID)), e.Pokemon())
	case pokemon.Type:
		title = typeTag(e.Name)
	default:
		title = t.FilterValue()
	}

	if title != "" && t.marked {
		title = fmt.Sprintf("%s %s", title, lipgloss.NewStyle().Bold(true).Foreground(style.AccentColor).Render(icon.Get(icon.Mark)))
	}

	return
}

func (t *listItem) Description() (description string) {
	switch e := t.internal.(type) {
	case pokemon.Pokemon:
		var parts []string

		if viper.GetBool(key.TUIShowTypes) && len(e.Types) > 0 {
			parts = append(parts, typeTags(e.Types))
		}

		if e.Height > 0 || e.Weight > 0 {
			d := pokemon.Details{Height: e.Height, Weight: e.Weight}
			parts = append(parts, style.Faint(fmt.Sprintf("%.1f m • %.1f kg", d.HeightMetres(), d.WeightKilograms())))
		}

		description = strings.Join(parts, " ")
	case *history.Entry:
		description = style.Faint(fmt.Sprintf(
			"%s • last seen %s",
			util.Quantify(e.Views, "view", "views"),
			e.ViewedAt.Format("Jan 2 15:04"),
		))
	}

	return
}

func (t *listItem) FilterValue() string {
	switch e := t.internal.(type) {
	case pokemon.Pokemon:
		return e.Name
	case *history.Entry:
		return e.Name
	case pokemon.Type:
		return e.Name
	case pokemon.Sort:
		return e.String()
	case allTypesItem:
		return "All types"
	case string:
		return e
	default:
		return ""
	}
}

func typeTag(name string) string {
	return style.Tag(style.Base, lipgloss.Color(pokemon.TypeColor(name)))(util.Capitalize(name))
}

func typeTags(names []string) string {
	return strings.Join(lo.Map(names, func(name string, _ int) string {
		return typeTag(name)
	}), " ")
}
