package palette

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/lucasb-eyer/go-colorful"
	. "github.com/smartystreets/goconvey/convey"
)

func fill(img *image.NRGBA, rect image.Rectangle, c color.Color) {
	for y := rect.Min.Y; y < rect.Max.Y; y++ {
		for x := rect.Min.X; x < rect.Max.X; x++ {
			img.Set(x, y, c)
		}
	}
}

func encode(img image.Image) []byte {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		panic(err)
	}
	return buf.Bytes()
}

func near(c colorful.Color, want color.Color) bool {
	w, _ := colorful.MakeColor(want)
	return c.DistanceRgb(w) < 0.05
}

func TestDominant(t *testing.T) {
	yellow := color.NRGBA{R: 0xF7, G: 0xD0, B: 0x2C, A: 0xFF}
	red := color.NRGBA{R: 0xEE, G: 0x81, B: 0x30, A: 0xFF}
	green := color.NRGBA{R: 0x7A, G: 0xC7, B: 0x4C, A: 0xFF}

	Convey("Given artwork on a transparent background", t, func() {
		img := image.NewNRGBA(image.Rect(0, 0, 40, 40))
		fill(img, image.Rect(5, 5, 35, 30), yellow)
		fill(img, image.Rect(5, 30, 35, 35), red)
		fill(img, image.Rect(0, 35, 40, 40), color.Black)

		Convey("The largest cluster of visible colour wins", func() {
			c, ok := Dominant(img)
			So(ok, ShouldBeTrue)
			So(near(c, yellow), ShouldBeTrue)
		})

		Convey("FromImage decodes PNG and derives the darker colour", func() {
			theme, ok, err := FromImage(encode(img))
			So(err, ShouldBeNil)
			So(ok, ShouldBeTrue)
			So(near(theme.Dominant, yellow), ShouldBeTrue)
			So(theme.DarkerHex(), ShouldEqual, Darker(theme.Dominant).Clamped().Hex())
		})
	})

	Convey("White and black backgrounds are ignored but green is not", t, func() {
		img := image.NewNRGBA(image.Rect(0, 0, 40, 40))
		fill(img, image.Rect(0, 0, 40, 20), color.White)
		fill(img, image.Rect(0, 20, 40, 30), color.Black)
		fill(img, image.Rect(0, 30, 40, 40), green)

		c, ok := Dominant(img)
		So(ok, ShouldBeTrue)
		So(near(c, green), ShouldBeTrue)
	})

	Convey("Fully transparent images have no dominant colour", t, func() {
		_, ok := Dominant(image.NewNRGBA(image.Rect(0, 0, 8, 8)))
		So(ok, ShouldBeFalse)
	})

	Convey("Garbage is not an image", t, func() {
		_, _, err := FromImage([]byte("not an image"))
		So(err, ShouldNotBeNil)
	})
}

func TestDarker(t *testing.T) {
	Convey("Darker keeps 70% of each channel", t, func() {
		c := Darker(colorful.Color{R: 1, G: 0.5, B: 0})
		So(c.R, ShouldAlmostEqual, 0.7, 0.0001)
		So(c.G, ShouldAlmostEqual, 0.35, 0.0001)
		So(c.B, ShouldAlmostEqual, 0, 0.0001)
	})
}
