package where

import (
	"path/filepath"
	"testing"

	"github.com/pokedex-cli/pokedex/filesystem"
	"github.com/samber/lo"
	. "github.com/smartystreets/goconvey/convey"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestPaths(t *testing.T) {
	Convey("Path functions", t, func() {
		Convey("Directories are created on resolution", func() {
			for _, dir := range []func() string{Config, Cache, API, Artwork, Logs} {
				path := dir()
				So(path, ShouldNotBeEmpty)
				So(lo.Must(filesystem.API().IsDir(path)), ShouldBeTrue)
			}
		})

		Convey("API cache lives under the cache directory", func() {
			So(filepath.Dir(API()), ShouldEqual, Cache())
			So(filepath.Dir(Artwork()), ShouldEqual, Cache())
		})

		Convey("File locations", func() {
			So(filepath.Base(History()), ShouldEqual, "history.json")
			So(filepath.Base(Queries()), ShouldEqual, "queries.json")
		})

		Convey("Config path override", func() {
			t.Setenv(EnvConfigPath, "/custom/pokedex")
			So(Config(), ShouldEqual, "/custom/pokedex")
			So(lo.Must(filesystem.API().IsDir("/custom/pokedex")), ShouldBeTrue)
		})
	})
}
