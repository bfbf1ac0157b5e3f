package pokemon

import (
	"sort"
	"strings"
)

// Sort orders a list of pokemon.
type Sort int

const (
	// SortNone keeps the API order (by id for paginated lists).
	SortNone Sort = iota
	SortAZ
	SortHeaviest
	SortLightest
	SortTallest
	SortShortest
)

// Sorts lists the user-selectable orders.
var Sorts = []Sort{SortNone, SortAZ, SortHeaviest, SortLightest, SortTallest, SortShortest}

func (s Sort) String() string {
	switch s {
	case SortAZ:
		return "A - Z"
	case SortHeaviest:
		return "Heaviest - Lightest"
	case SortLightest:
		return "Lightest - Heaviest"
	case SortTallest:
		return "Tallest - Shortest"
	case SortShortest:
		return "Shortest - Tallest"
	default:
		return "Pokedex number"
	}
}

// ParseSort resolves a CLI name such as "az" or "heaviest".
func ParseSort(name string) (Sort, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "none", "id", "number":
		return SortNone, true
	case "az", "a-z", "name":
		return SortAZ, true
	case "heaviest":
		return SortHeaviest, true
	case "lightest":
		return SortLightest, true
	case "tallest":
		return SortTallest, true
	case "shortest":
		return SortShortest, true
	default:
		return SortNone, false
	}
}

// Apply returns a sorted copy. The input is never modified.
func (s Sort) Apply(list []Pokemon) []Pokemon {
	out := make([]Pokemon, len(list))
	copy(out, list)

	var less func(a, b Pokemon) bool
	switch s {
	case SortAZ:
		less = func(a, b Pokemon) bool { return a.Name < b.Name }
	case SortHeaviest:
		less = func(a, b Pokemon) bool { return a.Weight > b.Weight }
	case SortLightest:
		less = func(a, b Pokemon) bool { return a.Weight < b.Weight }
	case SortTallest:
		less = func(a, b Pokemon) bool { return a.Height > b.Height }
	case SortShortest:
		less = func(a, b Pokemon) bool { return a.Height < b.Height }
	default:
		return out
	}

	sort.SliceStable(out, func(i, j int) bool { return less(out[i], out[j]) })
	return out
}
