package repository

import (
	"strconv"
	"strings"

	"github.com/pokedex-cli/pokedex/pokeapi"
	"github.com/pokedex-cli/pokedex/pokemon"
)

const (
	language       = "en"
	flavorVersion  = "red"
	categoryAbsent = "Not Found"
)

// BuildDetails joins a pokemon with its species.
func BuildDetails(p *pokeapi.PokemonResponse, species *pokeapi.SpeciesResponse) pokemon.Details {
	category, ok := species.Genus(language)
	if !ok {
		category = categoryAbsent
	}

	flavor, ok := species.FlavorText(language, flavorVersion)
	if !ok {
		flavor, _ = species.AnyFlavorText(language)
	}

	return pokemon.Details{
		ID:         p.ID,
		Name:       p.Name,
		ImageURL:   pokemon.ImageURL(strconv.Itoa(p.ID)),
		Category:   category,
		Height:     p.Height,
		Weight:     p.Weight,
		Types:      p.TypeNames(),
		FlavorText: cleanFlavorText(flavor),
	}
}

// cleanFlavorText removes the form feeds and hard line breaks PokeAPI copies from the games.
func cleanFlavorText(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
