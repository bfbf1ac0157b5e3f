package pokeapi

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/pokedex-cli/pokedex/filesystem"
	"github.com/pokedex-cli/pokedex/internal/pokeapitest"
	. "github.com/smartystreets/goconvey/convey"
)

func TestNamedResourceID(t *testing.T) {
	Convey("IDs come from the trailing path segment", t, func() {
		So(NamedResource{URL: "https://pokeapi.co/api/v2/pokemon/25/"}.ID(), ShouldEqual, "25")
		So(NamedResource{URL: "https://pokeapi.co/api/v2/pokemon/10033"}.ID(), ShouldEqual, "10033")
		So(NamedResource{URL: "https://pokeapi.co/api/v2/pokemon/pikachu/"}.ID(), ShouldEqual, "0")
		So(NamedResource{}.ID(), ShouldEqual, "0")
	})
}

func TestSpeciesLookups(t *testing.T) {
	Convey("Given a species with mixed languages", t, func() {
		species := &SpeciesResponse{
			Genera: []Genus{
				{Genus: "たねポケモン", Language: NamedResource{Name: "ja-Hrkt"}},
				{Genus: "Seed Pokémon", Language: NamedResource{Name: "en"}},
			},
			FlavorTextEntries: []FlavorTextEntry{
				{FlavorText: "blue", Language: NamedResource{Name: "en"}, Version: NamedResource{Name: "blue"}},
				{FlavorText: "red", Language: NamedResource{Name: "en"}, Version: NamedResource{Name: "red"}},
			},
		}

		genus, ok := species.Genus("en")
		So(ok, ShouldBeTrue)
		So(genus, ShouldEqual, "Seed Pokémon")

		_, ok = species.Genus("de")
		So(ok, ShouldBeFalse)

		text, _ := species.FlavorText("en", "red")
		So(text, ShouldEqual, "red")

		text, _ = species.AnyFlavorText("en")
		So(text, ShouldEqual, "blue")
	})
}

func TestClient(t *testing.T) {
	filesystem.SetMemMapFs()
	defer filesystem.SetOsFs()

	ctx := context.Background()

	Convey("Given a fake PokeAPI", t, func() {
		server := pokeapitest.NewServer()
		defer server.Close()

		client := New(Options{BaseURL: server.BaseURL(), HTTP: server.Client()})

		Convey("ListPokemon returns the requested window", func() {
			list, err := client.ListPokemon(ctx, 20, 20)
			So(err, ShouldBeNil)
			So(list.Count, ShouldEqual, pokeapitest.Count)
			So(list.Results, ShouldHaveLength, 20)
			So(list.Results[0].Name, ShouldEqual, "spearow")
			So(list.Results[0].ID(), ShouldEqual, "21")
		})

		Convey("GetPokemon returns types ordered by slot", func() {
			p, err := client.GetPokemon(ctx, "6")
			So(err, ShouldBeNil)
			So(p.Name, ShouldEqual, "charizard")
			So(p.TypeNames(), ShouldResemble, []string{"fire", "flying"})
			So(p.Species.ID(), ShouldEqual, "6")
		})

		Convey("GetSpecies decodes genera and flavor text", func() {
			s, err := client.GetSpecies(ctx, "25")
			So(err, ShouldBeNil)
			genus, ok := s.Genus("en")
			So(ok, ShouldBeTrue)
			So(genus, ShouldEqual, pokeapitest.Genus(25))
		})

		Convey("ListByType lists members", func() {
			typ, err := client.ListByType(ctx, "13")
			So(err, ShouldBeNil)
			So(typ.Name, ShouldEqual, "electric")
			So(typ.Pokemon, ShouldHaveLength, len(pokeapitest.Members("electric")))
		})

		Convey("Non-200 responses are StatusErrors", func() {
			_, err := client.GetPokemon(ctx, "9999")
			So(err, ShouldNotBeNil)

			var statusErr *StatusError
			So(errors.As(err, &statusErr), ShouldBeTrue)
			So(statusErr.Code, ShouldEqual, http.StatusNotFound)
			So(err.Error(), ShouldEqual, "unexpected status 404")
		})

		Convey("Cancelled contexts fail", func() {
			cancelled, cancel := context.WithCancel(ctx)
			cancel()

			_, err := client.GetPokemon(cancelled, "1")
			So(err, ShouldNotBeNil)
		})

		Convey("Without caching every call reaches the server", func() {
			_, _ = client.GetPokemon(ctx, "1")
			_, _ = client.GetPokemon(ctx, "1")
			So(server.Requests("pokemon/1"), ShouldEqual, 2)
		})

		Convey("With caching repeated calls are served from disk", func() {
			cached := New(Options{
				BaseURL:    server.BaseURL(),
				HTTP:       server.Client(),
				Cache:      true,
				CacheTTL:   time.Hour,
				CacheDir:   "api",
				ArtworkDir: "artwork",
			})

			first, err := cached.GetSpecies(ctx, "7")
			So(err, ShouldBeNil)

			second, err := cached.GetSpecies(ctx, "7")
			So(err, ShouldBeNil)
			So(second.Name, ShouldEqual, first.Name)
			So(server.Requests("pokemon-species/7"), ShouldEqual, 1)
		})
	})

	Convey("Malformed JSON is an error", t, func() {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte("{not json"))
		}))
		defer server.Close()

		_, err := New(Options{BaseURL: server.URL}).GetPokemon(ctx, "1")
		So(err, ShouldNotBeNil)
	})

	Convey("Images are downloaded and cached", t, func() {
		hits := 0
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			hits++
			_, _ = w.Write([]byte{0x89, 'P', 'N', 'G'})
		}))
		defer server.Close()

		client := New(Options{Cache: true, CacheTTL: time.Hour, CacheDir: "api", ArtworkDir: "artwork"})

		data, err := client.Image(ctx, server.URL+"/25.png")
		So(err, ShouldBeNil)
		So(data, ShouldResemble, []byte{0x89, 'P', 'N', 'G'})

		_, err = client.Image(ctx, server.URL+"/25.png")
		So(err, ShouldBeNil)
		So(hits, ShouldEqual, 1)
	})

	Convey("Base URLs are normalized", t, func() {
		So(New(Options{BaseURL: "http://localhost/api/v2"}).BaseURL(), ShouldEqual, "http://localhost/api/v2/")
		So(New(Options{}).BaseURL(), ShouldEqual, "https://pokeapi.co/api/v2/")
	})
}
