package inline

import (
	"fmt"
	"io"

	"github.com/pokedex-cli/pokedex/pokemon"
	"github.com/pokedex-cli/pokedex/repository"
	"github.com/pokedex-cli/pokedex/viewmodel"
	"github.com/samber/mo"
)

type Options struct {
	Out        io.Writer
	Repository repository.Repository
	// Images adds the artwork theme to details, nil skips it.
	Images viewmodel.ImageLoader

	Json bool
	// Pages is how many pages of the national dex to load, at least one.
	Pages  int
	TypeID string
	Query  string
	Sort   pokemon.Sort
	// Details prints one pokemon instead of a list.
	Details mo.Option[string]
}

// ParseType resolves a type flag to its id. Empty stays empty.
func ParseType(value string) (string, error) {
	if value == "" {
		return "", nil
	}

	if t, ok := pokemon.LookupType(value).Get(); ok {
		return t.ID, nil
	}

	return "", fmt.Errorf("unknown type %q, did you mean %q?", value, pokemon.ClosestType(value).Name)
}

// ParseSort resolves a sort flag.
func ParseSort(value string) (pokemon.Sort, error) {
	if s, ok := pokemon.ParseSort(value); ok {
		return s, nil
	}

	return pokemon.SortNone, fmt.Errorf("unknown sort %q, use one of: az, heaviest, lightest, tallest, shortest", value)
}
