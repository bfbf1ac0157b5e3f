package inline

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/pokedex-cli/pokedex/config"
	"github.com/pokedex-cli/pokedex/filesystem"
	"github.com/pokedex-cli/pokedex/internal/pokeapitest"
	"github.com/pokedex-cli/pokedex/pokeapi"
	"github.com/pokedex-cli/pokedex/pokemon"
	"github.com/pokedex-cli/pokedex/repository"
	"github.com/samber/mo"
	. "github.com/smartystreets/goconvey/convey"
)

func init() {
	filesystem.SetMemMapFs()
	_ = config.Setup()
}

func TestRun(t *testing.T) {
	ctx := context.Background()

	Convey("Given a fake PokeAPI", t, func() {
		server := pokeapitest.NewServer()
		defer server.Close()

		var buf bytes.Buffer
		options := &Options{
			Out:        &buf,
			Repository: repository.New(pokeapi.New(pokeapi.Options{BaseURL: server.BaseURL(), HTTP: server.Client()}), 20),
			Pages:      1,
		}

		Convey("The first page is printed as text", func() {
			So(Run(ctx, options), ShouldBeNil)

			lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
			So(lines, ShouldHaveLength, 20)
			So(lines[0], ShouldEqual, "#001\tbulbasaur\t"+strings.Join(pokeapitest.TypesOf(1), ","))
		})

		Convey("More pages stop at the end of the dex", func() {
			options.Pages = 10
			options.Json = true
			So(Run(ctx, options), ShouldBeNil)

			var output Output
			So(json.Unmarshal(buf.Bytes(), &output), ShouldBeNil)
			So(output.Result, ShouldHaveLength, pokeapitest.Count)
			So(output.EndReached, ShouldBeTrue)
		})

		Convey("Search and sort apply to the loaded pokemon", func() {
			options.Json = true
			options.Query = "char"
			options.Sort = pokemon.SortAZ
			So(Run(ctx, options), ShouldBeNil)

			var output Output
			So(json.Unmarshal(buf.Bytes(), &output), ShouldBeNil)
			So(output.Query, ShouldEqual, "char")
			So(output.Sort, ShouldEqual, pokemon.SortAZ.String())
			So(output.Result, ShouldHaveLength, 3)
			So(output.Result[0].Name, ShouldEqual, "charizard")
		})

		Convey("A type list contains its members", func() {
			options.Json = true
			options.TypeID = "10"
			So(Run(ctx, options), ShouldBeNil)

			var output Output
			So(json.Unmarshal(buf.Bytes(), &output), ShouldBeNil)
			So(output.Result, ShouldHaveLength, len(pokeapitest.Members("fire")))
		})

		Convey("Details print the joined record", func() {
			options.Details = mo.Some("25")
			options.Json = true
			So(Run(ctx, options), ShouldBeNil)

			var output DetailsOutput
			So(json.Unmarshal(buf.Bytes(), &output), ShouldBeNil)
			So(output.Pokemon.ID, ShouldEqual, 25)
			So(output.Pokemon.Category, ShouldEqual, pokeapitest.Genus(25))
			So(output.Theme, ShouldBeNil)
		})

		Convey("Details also accept names", func() {
			options.Details = mo.Some("Pikachu")
			So(Run(ctx, options), ShouldBeNil)
			So(buf.String(), ShouldStartWith, "#025 Pikachu\n")
		})

		Convey("Failures surface the unknown error", func() {
			server.Fail.Store(true)
			err := Run(ctx, options)
			So(err, ShouldNotBeNil)
			So(err.Error(), ShouldEqual, "An unknown error occurred.")
		})
	})
}

func TestParse(t *testing.T) {
	Convey("ParseType", t, func() {
		id, err := ParseType("Fire")
		So(err, ShouldBeNil)
		So(id, ShouldEqual, "10")

		id, err = ParseType("")
		So(err, ShouldBeNil)
		So(id, ShouldBeEmpty)

		_, err = ParseType("fier")
		So(err, ShouldNotBeNil)
		So(err.Error(), ShouldContainSubstring, `did you mean "fire"`)
	})

	Convey("ParseSort", t, func() {
		s, err := ParseSort("heaviest")
		So(err, ShouldBeNil)
		So(s, ShouldEqual, pokemon.SortHeaviest)

		_, err = ParseSort("random")
		So(err, ShouldNotBeNil)
	})
}

func TestSchema(t *testing.T) {
	Convey("Schemas describe both outputs", t, func() {
		list, err := json.Marshal(Schema(false))
		So(err, ShouldBeNil)
		So(string(list), ShouldContainSubstring, "endReached")

		details, err := json.Marshal(Schema(true))
		So(err, ShouldBeNil)
		So(string(details), ShouldContainSubstring, "flavorText")
	})
}
