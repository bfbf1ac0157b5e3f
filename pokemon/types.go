package pokemon

import (
	"strconv"
	"strings"

	levenshtein "github.com/ka-weihe/fast-levenshtein"
	"github.com/samber/lo"
	"github.com/samber/mo"
)

// Type is an elemental type with its PokeAPI id and theme color.
type Type struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"`
}

// Types lists the canonical types in PokeAPI id order.
var Types = []Type{
	{ID: "1", Name: "normal", Color: "#919AA2"},
	{ID: "2", Name: "fighting", Color: "#CE416B"},
	{ID: "3", Name: "flying", Color: "#89AAE3"},
	{ID: "4", Name: "poison", Color: "#B567CE"},
	{ID: "5", Name: "ground", Color: "#D97845"},
	{ID: "6", Name: "rock", Color: "#C5B78C"},
	{ID: "7", Name: "bug", Color: "#91C12F"},
	{ID: "8", Name: "ghost", Color: "#5269AD"},
	{ID: "9", Name: "steel", Color: "#5A8EA2"},
	{ID: "10", Name: "fire", Color: "#FF9D55"},
	{ID: "11", Name: "water", Color: "#5090D6"},
	{ID: "12", Name: "grass", Color: "#63BC5A"},
	{ID: "13", Name: "electric", Color: "#F4D23C"},
	{ID: "14", Name: "psychic", Color: "#FA7179"},
	{ID: "15", Name: "ice", Color: "#73CEC0"},
	{ID: "16", Name: "dragon", Color: "#0B6DC3"},
	{ID: "17", Name: "dark", Color: "#5A5465"},
	{ID: "18", Name: "fairy", Color: "#EC8FE6"},
}

// FallbackColor is used for type names outside the registry.
const FallbackColor = "#919AA2"

// LookupType finds a type by exact name (case-insensitive) or id.
func LookupType(nameOrID string) mo.Option[Type] {
	v := strings.ToLower(strings.TrimSpace(nameOrID))
	if _, err := strconv.Atoi(v); err == nil {
		return mo.TupleToOption(lo.Find(Types, func(t Type) bool { return t.ID == v }))
	}

	return mo.TupleToOption(lo.Find(Types, func(t Type) bool { return t.Name == v }))
}

// ClosestType returns the registered type whose name is nearest to name.
func ClosestType(name string) Type {
	name = strings.ToLower(strings.TrimSpace(name))
	return lo.MinBy(Types, func(a, b Type) bool {
		return levenshtein.Distance(name, a.Name) < levenshtein.Distance(name, b.Name)
	})
}

// TypeColor returns the theme color for a type name.
func TypeColor(name string) string {
	if t, ok := LookupType(name).Get(); ok {
		return t.Color
	}
	return FallbackColor
}
