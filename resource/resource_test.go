package resource

import (
	"errors"
	"testing"

	"github.com/pokedex-cli/pokedex/constant"
	. "github.com/smartystreets/goconvey/convey"
)

func TestResource(t *testing.T) {
	Convey("Loading", t, func() {
		r := Loading[int]()
		So(r.IsLoading(), ShouldBeTrue)
		So(r.Data().IsAbsent(), ShouldBeTrue)
		So(r.Result().IsError(), ShouldBeTrue)
	})

	Convey("Success", t, func() {
		r := Success("bulbasaur")
		So(r.IsSuccess(), ShouldBeTrue)
		So(r.Data().MustGet(), ShouldEqual, "bulbasaur")
		So(r.Message(), ShouldBeEmpty)
		So(r.Result().MustGet(), ShouldEqual, "bulbasaur")
	})

	Convey("Error hides the cause behind a single message", t, func() {
		cause := errors.New("dial tcp: i/o timeout")
		r := Error[int](cause)
		So(r.IsError(), ShouldBeTrue)
		So(r.Status(), ShouldEqual, StatusError)
		So(r.Message(), ShouldEqual, constant.UnknownError)
		So(r.Err(), ShouldEqual, cause)
		So(r.Result().Error(), ShouldEqual, cause)
	})
}
