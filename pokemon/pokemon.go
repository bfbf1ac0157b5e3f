// Package pokemon holds the domain records shown by every screen.
package pokemon

import (
	"fmt"
	"strings"

	"github.com/pokedex-cli/pokedex/constant"
	"github.com/pokedex-cli/pokedex/util"
)

// Pokemon is a list entry.
type Pokemon struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	ImageURL string   `json:"imageUrl"`
	Types    []string `json:"types"`
	// Height in decimetres, 0 until the per-pokemon lookup completes.
	Height int `json:"height"`
	// Weight in hectograms, 0 until the per-pokemon lookup completes.
	Weight int `json:"weight"`
}

// Details is the joined pokemon + species record shown by the details screen.
type Details struct {
	ID         int      `json:"id"`
	Name       string   `json:"name"`
	ImageURL   string   `json:"imageUrl"`
	Category   string   `json:"category"`
	Height     int      `json:"height"`
	Weight     int      `json:"weight"`
	Types      []string `json:"types"`
	FlavorText string   `json:"flavorText"`
}

// ImageURL returns the official artwork location for an id.
func ImageURL(id string) string {
	return fmt.Sprintf(constant.ArtworkURL, id)
}

// DisplayID formats an id the way the pokedex prints it, e.g. "#025".
func DisplayID(id string) string {
	return "#" + util.PadLeft(id, 3, '0')
}

// Matches reports whether the pokemon satisfies a search query.
// A query matches when the name contains it (case-insensitive) or when
// both ids are equal after zero-padding to three digits.
func (p Pokemon) Matches(query string) bool {
	q := strings.TrimSpace(query)
	if q == "" {
		return true
	}

	if strings.Contains(strings.ToLower(p.Name), strings.ToLower(q)) {
		return true
	}

	return util.PadLeft(p.ID, 3, '0') == util.PadLeft(q, 3, '0')
}

// String returns the humanized name.
func (p Pokemon) String() string {
	return util.Humanize(p.Name)
}

// Summary returns the list entry view of the details record.
func (d Details) Summary() Pokemon {
	id := fmt.Sprint(d.ID)
	return Pokemon{
		ID:       id,
		Name:     d.Name,
		ImageURL: d.ImageURL,
		Types:    d.Types,
		Height:   d.Height,
		Weight:   d.Weight,
	}
}

// HeightMetres converts decimetres to metres.
func (d Details) HeightMetres() float64 {
	return float64(d.Height) / 10
}

// WeightKilograms converts hectograms to kilograms.
func (d Details) WeightKilograms() float64 {
	return float64(d.Weight) / 10
}
