package tui

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/pokedex-cli/pokedex/config"
	"github.com/pokedex-cli/pokedex/filesystem"
	"github.com/pokedex-cli/pokedex/pokemon"
	"github.com/pokedex-cli/pokedex/repository"
	"github.com/pokedex-cli/pokedex/resource"
	"github.com/pokedex-cli/pokedex/viewmodel"
	. "github.com/smartystreets/goconvey/convey"
)

func init() {
	filesystem.SetMemMapFs()
	_ = config.Setup()
}

// idleRepo never gets called, the bubble under test never runs its commands.
type idleRepo struct{}

func (idleRepo) PageSize() int { return 20 }

func (idleRepo) GetPokemonList(context.Context, int) resource.Resource[repository.Page] {
	return resource.Loading[repository.Page]()
}

func (idleRepo) GetPokemonListByType(context.Context, string) resource.Resource[[]pokemon.Pokemon] {
	return resource.Loading[[]pokemon.Pokemon]()
}

func (idleRepo) GetPokemonDetails(context.Context, string) resource.Resource[pokemon.Details] {
	return resource.Loading[pokemon.Details]()
}

func (idleRepo) GetPokemonTypes(context.Context, string) resource.Resource[repository.Summary] {
	return resource.Loading[repository.Summary]()
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

var esc = tea.KeyMsg{Type: tea.KeyEsc}

func TestBubble(t *testing.T) {
	Convey("Given a bubble with an open list", t, func() {
		b := newBubble(&Options{Repository: idleRepo{}})
		b.resize(80, 40)
		b.openList("")
		defer b.closeAll()

		So(b.state, ShouldEqual, loadingState)
		So(b.pokemonC.Title, ShouldEqual, "Pokédex")

		Convey("The initial idle state keeps the loading screen", func() {
			b.applyListState(viewmodel.ListState{})
			So(b.state, ShouldEqual, loadingState)
		})

		Convey("A loaded page shows the list", func() {
			b.applyListState(viewmodel.ListState{Data: []pokemon.Pokemon{
				{ID: "1", Name: "bulbasaur"},
				{ID: "2", Name: "ivysaur"},
			}})

			So(b.state, ShouldEqual, listState)
			So(b.pokemonC.Items(), ShouldHaveLength, 2)

			p, ok := b.selectedPokemon()
			So(ok, ShouldBeTrue)
			So(p.Name, ShouldEqual, "bulbasaur")

			Convey("The type picker opens and closes", func() {
				b.Update(runes("t"))
				So(b.state, ShouldEqual, typesState)

				b.Update(esc)
				So(b.state, ShouldEqual, listState)
			})

			Convey("The sort picker marks the active order", func() {
				b.Update(runes("s"))
				So(b.state, ShouldEqual, sortState)

				marked := b.sortC.Items()[0].(*listItem)
				So(marked.marked, ShouldBeTrue)
				So(marked.internal, ShouldEqual, pokemon.SortNone)
			})

			Convey("Typing in search fills the input and esc clears it", func() {
				b.Update(runes("/"))
				So(b.state, ShouldEqual, searchState)

				b.Update(runes("b"))
				b.Update(runes("u"))
				So(b.inputC.Value(), ShouldEqual, "bu")

				b.Update(esc)
				So(b.state, ShouldEqual, listState)
				So(b.inputC.Value(), ShouldEqual, "")
			})
		})

		Convey("A failed first load shows the error screen", func() {
			b.applyListState(viewmodel.ListState{LoadError: "An unknown error occurred."})

			So(b.state, ShouldEqual, errorState)
			So(b.errorOrigin, ShouldEqual, loadingState)
			So(b.View(), ShouldContainSubstring, "An unknown error occurred.")

			Convey("Retrying goes back to loading", func() {
				b.Update(runes("r"))
				So(b.state, ShouldEqual, loadingState)
				So(b.shownList.LoadError, ShouldBeEmpty)
			})
		})

		Convey("Opening a type list uses the type title", func() {
			b.openList("fire")
			So(b.pokemonC.Title, ShouldEqual, "Fire Pokémon")
		})

		Convey("States of a replaced list are ignored", func() {
			old := b.list
			b.openList("water")

			b.Update(listStateMsg{session: old, state: viewmodel.ListState{Data: []pokemon.Pokemon{{ID: "1"}}}})
			So(b.state, ShouldEqual, loadingState)
		})
	})
}

func TestDetailsColors(t *testing.T) {
	Convey("Given details without a theme", t, func() {
		s := viewmodel.DetailsState{Pokemon: pokemon.Details{Types: []string{"fire", "flying"}}}

		Convey("The first type colors the title", func() {
			bg, darker := detailsColors(s)
			So(bg, ShouldEqual, pokemon.TypeColor("fire"))
			So(darker, ShouldBeEmpty)
		})
	})

	Convey("Darkness follows lightness", t, func() {
		So(isDark("#0B6DC3"), ShouldBeTrue)
		So(isDark("#F4D23C"), ShouldBeFalse)
		So(isDark("not a color"), ShouldBeFalse)
	})
}

func TestListItem(t *testing.T) {
	Convey("Given list items", t, func() {
		So((&listItem{internal: pokemon.Pokemon{ID: "25", Name: "pikachu"}}).FilterValue(), ShouldEqual, "pikachu")
		So((&listItem{internal: allTypes}).FilterValue(), ShouldEqual, "All types")
		So((&listItem{internal: pokemon.SortAZ}).FilterValue(), ShouldEqual, "A - Z")
		So((&listItem{internal: pokemon.Pokemon{ID: "25", Name: "pikachu"}}).Title(), ShouldContainSubstring, "#025")
	})
}
