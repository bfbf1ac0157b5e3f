package config

import (
	"testing"

	"github.com/pokedex-cli/pokedex/constant"
	"github.com/pokedex-cli/pokedex/filesystem"
	"github.com/pokedex-cli/pokedex/key"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestSetup(t *testing.T) {
	Convey("Config Setup", t, func() {
		Convey("Should initialize without error", func() {
			So(Setup(), ShouldBeNil)
		})

		Convey("Should have default values populated", func() {
			_ = Setup()
			for name := range Default {
				So(viper.Get(name), ShouldNotBeNil)
			}
			So(viper.GetString(key.APIBaseURL), ShouldEqual, constant.BaseURL)
			So(viper.GetInt(key.APIPageSize), ShouldEqual, constant.PageSize)
			So(viper.GetInt(key.SearchDebounceMs), ShouldEqual, 500)
		})

		Convey("EnvKeyReplacer should convert dots to underscores", func() {
			So(EnvKeyReplacer.Replace("api.cache_ttl_hours"), ShouldEqual, "api_cache_ttl_hours")
		})
	})
}

func TestField(t *testing.T) {
	Convey("Given a registered field", t, func() {
		field := Default[key.APIPageSize]

		Convey("Env should be prefixed and upper-cased", func() {
			So(field.Env(), ShouldEqual, "POKEDEX_API_PAGE_SIZE")
		})

		Convey("typeName should reflect the default value", func() {
			So(field.typeName(), ShouldEqual, "int")
			str := Default[key.APIBaseURL]
			So(str.typeName(), ShouldEqual, "string")
		})

		Convey("MarshalJSON should include the default", func() {
			data, err := field.MarshalJSON()
			So(err, ShouldBeNil)
			So(string(data), ShouldContainSubstring, `"default":20`)
		})
	})
}
