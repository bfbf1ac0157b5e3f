package history

import (
	"fmt"
	"time"

	"github.com/pokedex-cli/pokedex/pokemon"
)

// Entry is a viewed pokemon.
type Entry struct {
	ID       string    `json:"id"`
	Name     string    `json:"name"`
	Types    []string  `json:"types"`
	Views    int       `json:"views"`
	ViewedAt time.Time `json:"viewed_at"`
}

func (e *Entry) String() string {
	return fmt.Sprintf("%s %s", pokemon.DisplayID(e.ID), e.Pokemon())
}

// Pokemon converts the entry back into a list entry.
func (e *Entry) Pokemon() pokemon.Pokemon {
	return pokemon.Pokemon{
		ID:       e.ID,
		Name:     e.Name,
		ImageURL: pokemon.ImageURL(e.ID),
		Types:    e.Types,
	}
}

func newEntry(p pokemon.Pokemon) *Entry {
	return &Entry{
		ID:    p.ID,
		Name:  p.Name,
		Types: p.Types,
	}
}
