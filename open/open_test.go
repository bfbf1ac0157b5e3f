package open

import (
	"testing"

	"github.com/pokedex-cli/pokedex/constant"
	. "github.com/smartystreets/goconvey/convey"
)

func TestCommand(t *testing.T) {
	Convey("Given an artwork url", t, func() {
		url := "https://example.com/25.png"

		Convey("Linux uses xdg-open", func() {
			cmd, err := command(constant.Linux, url)
			So(err, ShouldBeNil)
			So(cmd.Args, ShouldResemble, []string{"xdg-open", url})
		})

		Convey("macOS uses open", func() {
			cmd, err := command(constant.Darwin, url)
			So(err, ShouldBeNil)
			So(cmd.Args, ShouldResemble, []string{"open", url})
		})

		Convey("Termux uses termux-open", func() {
			cmd, err := command(constant.Android, url)
			So(err, ShouldBeNil)
			So(cmd.Args, ShouldResemble, []string{"termux-open", url})
		})

		Convey("Unknown systems are an error", func() {
			_, err := command("plan9", url)
			So(err, ShouldNotBeNil)
		})
	})
}
