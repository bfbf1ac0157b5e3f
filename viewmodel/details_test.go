package viewmodel

import (
	"context"
	"image/color"
	"testing"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/pokedex-cli/pokedex/constant"
	"github.com/pokedex-cli/pokedex/pokemon"
	"github.com/samber/lo"
	. "github.com/smartystreets/goconvey/convey"
)

func TestDetailsViewModel(t *testing.T) {
	ctx := context.Background()
	yellow := color.NRGBA{R: 0xF4, G: 0xD2, B: 0x3C, A: 0xFF}

	Convey("Given a details view model with artwork", t, func() {
		repo := &fakeRepo{}
		vm := NewDetails(repo, fakeImages{fill: yellow})
		defer vm.Close()

		Convey("Load joins the record and computes the theme", func() {
			vm.Load(ctx, "25")

			state := vm.State()
			So(state.IsLoading, ShouldBeFalse)
			So(state.LoadError, ShouldBeEmpty)
			So(state.Pokemon.Name, ShouldEqual, "pikachu")
			So(state.Pokemon.Types, ShouldResemble, []string{"electric"})

			theme, ok := state.Theme.Get()
			So(ok, ShouldBeTrue)
			So(theme.Dominant.DistanceRgb(lo.Must(colorful.Hex("#f4d23c"))), ShouldBeLessThan, 0.05)
			So(theme.Darker.R, ShouldAlmostEqual, theme.Dominant.R*0.7, 0.0001)
		})

		Convey("Failures show the unknown error and can be retried", func() {
			repo.failDetails.Store(true)
			vm.Load(ctx, "1")

			state := vm.State()
			So(state.LoadError, ShouldEqual, constant.UnknownError)
			So(state.IsLoading, ShouldBeFalse)
			So(state.Theme.IsAbsent(), ShouldBeTrue)

			repo.failDetails.Store(false)
			vm.Retry(ctx)

			state = vm.State()
			So(state.LoadError, ShouldBeEmpty)
			So(state.Pokemon.Name, ShouldEqual, "bulbasaur")
		})

		Convey("Subscribers see the final state", func() {
			states, unsubscribe := vm.Subscribe()
			defer unsubscribe()

			vm.Load(ctx, "4")

			state := <-states
			So(state.Pokemon.Name, ShouldEqual, "charmander")
			So(state.Theme.IsPresent(), ShouldBeTrue)
		})
	})

	Convey("Loading another pokemon drops the previous theme", t, func() {
		vm := NewDetails(&fakeRepo{}, fakeImages{fill: yellow, brokenURL: pokemon.ImageURL("7")})
		defer vm.Close()

		vm.Load(ctx, "25")
		So(vm.State().Theme.IsPresent(), ShouldBeTrue)

		vm.Load(ctx, "7")

		state := vm.State()
		So(state.Pokemon.Name, ShouldEqual, "squirtle")
		So(state.Theme.IsAbsent(), ShouldBeTrue)
	})

	Convey("Broken artwork leaves the theme absent", t, func() {
		vm := NewDetails(&fakeRepo{}, fakeImages{broken: true})
		defer vm.Close()

		vm.Load(ctx, "7")

		state := vm.State()
		So(state.LoadError, ShouldBeEmpty)
		So(state.Pokemon.Name, ShouldEqual, "squirtle")
		So(state.Theme.IsAbsent(), ShouldBeTrue)
	})

	Convey("Without an image loader no theme is computed", t, func() {
		vm := NewDetails(&fakeRepo{}, nil)
		defer vm.Close()

		vm.Load(ctx, "7")
		So(vm.State().Theme.IsAbsent(), ShouldBeTrue)
	})
}
