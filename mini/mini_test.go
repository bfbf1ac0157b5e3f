package mini

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"
	"github.com/pokedex-cli/pokedex/config"
	"github.com/pokedex-cli/pokedex/filesystem"
	"github.com/pokedex-cli/pokedex/internal/pokeapitest"
	"github.com/pokedex-cli/pokedex/pokeapi"
	"github.com/pokedex-cli/pokedex/pokemon"
	"github.com/pokedex-cli/pokedex/repository"
	"github.com/pokedex-cli/pokedex/viewmodel"
	. "github.com/smartystreets/goconvey/convey"
)

func init() {
	filesystem.SetMemMapFs()
	_ = config.Setup()
}

// script answers prompts in order. Selects pick the first option containing the answer.
func script(answers ...string) func() {
	original := ask

	ask = func(p survey.Prompt, response interface{}, _ ...survey.AskOpt) error {
		if len(answers) == 0 {
			return terminal.InterruptErr
		}

		answer := answers[0]
		answers = answers[1:]

		switch p := p.(type) {
		case *survey.Select:
			for i, option := range p.Options {
				if strings.Contains(option, answer) {
					*response.(*int) = i
					return nil
				}
			}
			return fmt.Errorf("no option %q in %v", answer, p.Options)
		case *survey.Input:
			*response.(*string) = answer
			return nil
		}

		return fmt.Errorf("unexpected prompt %T", p)
	}

	return func() { ask = original }
}

func TestMini(t *testing.T) {
	ctx := context.Background()

	Convey("Given mini over a fake PokeAPI", t, func() {
		server := pokeapitest.NewServer()
		defer server.Close()

		out := &bytes.Buffer{}
		options := &Options{
			Repository: repository.New(pokeapi.New(pokeapi.Options{BaseURL: server.BaseURL(), HTTP: server.Client()}), 20),
			Out:        out,
		}

		Convey("Browsing and opening a pokemon prints its card", func() {
			defer script("Browse the pokédex", "#001 Bulbasaur", "Quit")()

			So(Run(ctx, options), ShouldBeNil)
			So(out.String(), ShouldContainSubstring, "#001 Bulbasaur")
			So(out.String(), ShouldContainSubstring, pokeapitest.Genus(1))
		})

		Convey("Searching lists matches of the loaded page", func() {
			defer script("Search", "char", "#004 Charmander", "Back", "Back", "Quit")()

			So(Run(ctx, options), ShouldBeNil)
			So(out.String(), ShouldContainSubstring, "#004 Charmander")
		})

		Convey("A search without matches reports it", func() {
			defer script("Search", "zzz", "Quit")()

			So(Run(ctx, options), ShouldBeNil)
			So(out.String(), ShouldContainSubstring, `No pokémon found for "zzz"`)
		})

		Convey("Load more appends the next page", func() {
			defer script("Load more")()

			m := newMini(ctx, options)
			defer m.closeList()

			m.openList("")
			So(m.list.State().Data, ShouldHaveLength, 20)

			m.state = pokemonSelectState
			So(m.handlePokemonSelectState(), ShouldBeNil)
			So(m.list.State().Data, ShouldHaveLength, 40)
		})

		Convey("A failed load offers a retry", func() {
			server.Fail.Store(true)
			defer script("Browse the pokédex", "Quit")()

			So(Run(ctx, options), ShouldBeNil)
			So(out.String(), ShouldContainSubstring, "An unknown error occurred.")
		})

		Convey("An interrupted prompt quits quietly", func() {
			defer script()()

			So(Run(ctx, options), ShouldBeNil)
		})
	})
}

func TestCard(t *testing.T) {
	Convey("Given loaded details", t, func() {
		s := viewmodel.DetailsState{Pokemon: pokemon.Details{
			ID:         25,
			Name:       "pikachu",
			Category:   "Mouse Pokémon",
			Height:     4,
			Weight:     60,
			Types:      []string{"electric"},
			FlavorText: "When several of these pokémon gather, their electricity can build and cause lightning storms.",
		}}

		Convey("The card shows every field", func() {
			c := card(s, 40)
			So(c, ShouldContainSubstring, "#025 Pikachu")
			So(c, ShouldContainSubstring, "Mouse Pokémon")
			So(c, ShouldContainSubstring, "0.4 m")
			So(c, ShouldContainSubstring, "6.0 kg")
			So(c, ShouldContainSubstring, "Electric")
			So(c, ShouldContainSubstring, "lightning")
		})
	})
}
