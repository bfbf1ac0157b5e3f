package pokeapi

import (
	"regexp"

	"github.com/samber/lo"
	"golang.org/x/exp/slices"
)

var idPattern = regexp.MustCompile(`/(\d+)/?$`)

// NamedResource is PokeAPI's {name, url} reference to another resource.
type NamedResource struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// ID extracts the trailing numeric path segment of the resource URL.
// Returns "0" when the URL carries no id.
func (n NamedResource) ID() string {
	match := idPattern.FindStringSubmatch(n.URL)
	if len(match) < 2 {
		return "0"
	}

	return match[1]
}

// ListResponse is the body of GET pokemon?limit=&offset=.
type ListResponse struct {
	Count    int             `json:"count"`
	Next     *string         `json:"next"`
	Previous *string         `json:"previous"`
	Results  []NamedResource `json:"results"`
}

// PokemonType is one slot of a pokemon's typing.
type PokemonType struct {
	Slot int           `json:"slot"`
	Type NamedResource `json:"type"`
}

// PokemonResponse is the subset of GET pokemon/{id} the app uses.
type PokemonResponse struct {
	ID      int           `json:"id"`
	Name    string        `json:"name"`
	Height  int           `json:"height"`
	Weight  int           `json:"weight"`
	Types   []PokemonType `json:"types"`
	Species NamedResource `json:"species"`
}

// TypeNames returns type names ordered by slot.
func (p *PokemonResponse) TypeNames() []string {
	types := make([]PokemonType, len(p.Types))
	copy(types, p.Types)

	slices.SortStableFunc(types, func(a, b PokemonType) int {
		return a.Slot - b.Slot
	})

	return lo.Map(types, func(t PokemonType, _ int) string {
		return t.Type.Name
	})
}

// FlavorTextEntry is a pokedex entry text in one language for one game version.
type FlavorTextEntry struct {
	FlavorText string        `json:"flavor_text"`
	Language   NamedResource `json:"language"`
	Version    NamedResource `json:"version"`
}

// Genus is the species category ("Seed Pokémon") in one language.
type Genus struct {
	Genus    string        `json:"genus"`
	Language NamedResource `json:"language"`
}

// SpeciesResponse is the subset of GET pokemon-species/{id} the app uses.
type SpeciesResponse struct {
	ID                int               `json:"id"`
	Name              string            `json:"name"`
	FlavorTextEntries []FlavorTextEntry `json:"flavor_text_entries"`
	Genera            []Genus           `json:"genera"`
}

// Genus returns the genus in the given language.
func (s *SpeciesResponse) Genus(language string) (string, bool) {
	genus, ok := lo.Find(s.Genera, func(g Genus) bool {
		return g.Language.Name == language
	})

	return genus.Genus, ok
}

// FlavorText returns the entry for the given language and game version.
func (s *SpeciesResponse) FlavorText(language, version string) (string, bool) {
	entry, ok := lo.Find(s.FlavorTextEntries, func(e FlavorTextEntry) bool {
		return e.Language.Name == language && e.Version.Name == version
	})

	return entry.FlavorText, ok
}

// AnyFlavorText returns the first entry in the given language.
func (s *SpeciesResponse) AnyFlavorText(language string) (string, bool) {
	entry, ok := lo.Find(s.FlavorTextEntries, func(e FlavorTextEntry) bool {
		return e.Language.Name == language
	})

	return entry.FlavorText, ok
}

// TypePokemon is one member of a type's pokemon list.
type TypePokemon struct {
	Pokemon NamedResource `json:"pokemon"`
	Slot    int           `json:"slot"`
}

// TypeResponse is the subset of GET type/{id} the app uses.
type TypeResponse struct {
	ID      int           `json:"id"`
	Name    string        `json:"name"`
	Pokemon []TypePokemon `json:"pokemon"`
}
