// Package palette extracts the theme colours of a pokemon's artwork.
package palette

import (
	"bytes"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"

	"github.com/EdlinOrg/prominentcolor"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/samber/lo"
)

// Theme is the pair of colours the details screen is painted with.
type Theme struct {
	Dominant colorful.Color
	Darker   colorful.Color
}

// DominantHex returns the dominant colour as #rrggbb.
func (t Theme) DominantHex() string {
	return t.Dominant.Clamped().Hex()
}

// DarkerHex returns the darker colour as #rrggbb.
func (t Theme) DarkerHex() string {
	return t.Darker.Clamped().Hex()
}

// Decode reads a PNG or JPEG image.
func Decode(data []byte) (image.Image, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode artwork: %w", err)
	}

	return img, nil
}

// FromImage decodes the image and computes its theme.
// The boolean is false when no dominant colour exists.
func FromImage(data []byte) (Theme, bool, error) {
	img, err := Decode(data)
	if err != nil {
		return Theme{}, false, err
	}

	dominant, ok := Dominant(img)
	if !ok {
		return Theme{}, false, nil
	}

	return Theme{Dominant: dominant, Darker: Darker(dominant)}, true, nil
}

// masks drop near-white and near-black pixels.
var masks = []prominentcolor.ColorBackgroundMask{prominentcolor.MaskWhite, prominentcolor.MaskBlack}

// Dominant clusters the visible pixels with k-means and returns the centre of
// the largest cluster. Returns false when no pixel survives the masks, as for
// fully transparent images.
func Dominant(img image.Image) (colorful.Color, bool) {
	clusters, err := prominentcolor.KmeansWithAll(
		prominentcolor.DefaultK,
		img,
		prominentcolor.ArgumentNoCropping,
		prominentcolor.DefaultSize,
		masks,
	)
	if err != nil || len(clusters) == 0 {
		return colorful.Color{}, false
	}

	best := lo.MaxBy(clusters, func(a, b prominentcolor.ColorItem) bool {
		return a.Cnt > b.Cnt
	})

	return colorful.Color{
		R: float64(best.Color.R) / 255,
		G: float64(best.Color.G) / 255,
		B: float64(best.Color.B) / 255,
	}, true
}

// Darker blends 30% of the way towards black.
func Darker(c colorful.Color) colorful.Color {
	return c.BlendRgb(colorful.Color{}, 0.3)
}
