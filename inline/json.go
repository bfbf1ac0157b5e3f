package inline

import (
	"encoding/json"
	"io"

	"github.com/pokedex-cli/pokedex/pokemon"
	"github.com/pokedex-cli/pokedex/viewmodel"
)

// Output is the json document of a list run.
type Output struct {
	Query string `json:"query,omitempty"`
	// Type is the type id the list is filtered by.
	Type string `json:"type,omitempty"`
	Sort string `json:"sort"`
	// EndReached is false when more pages are available.
	EndReached bool              `json:"endReached"`
	Result     []pokemon.Pokemon `json:"result"`
}

// Theme holds the artwork colors as hex strings.
type Theme struct {
	Dominant string `json:"dominant"`
	Darker   string `json:"darker"`
}

// DetailsOutput is the json document of a details run.
type DetailsOutput struct {
	Pokemon pokemon.Details `json:"pokemon"`
	Theme   *Theme          `json:"theme,omitempty"`
}

func asJson(s viewmodel.ListState) ([]byte, error) {
	result := s.Data
	if result == nil {
		result = []pokemon.Pokemon{}
	}

	return json.Marshal(&Output{
		Query:      s.Query,
		Type:       s.TypeID,
		Sort:       s.Sort.String(),
		EndReached: s.EndReached,
		Result:     result,
	})
}

func detailsAsJson(s viewmodel.DetailsState) ([]byte, error) {
	output := &DetailsOutput{Pokemon: s.Pokemon}
	if theme, ok := s.Theme.Get(); ok {
		output.Theme = &Theme{Dominant: theme.DominantHex(), Darker: theme.DarkerHex()}
	}

	return json.Marshal(output)
}

func writeJson(out io.Writer, data []byte, err error) error {
	if err != nil {
		return err
	}

	_, err = out.Write(append(data, '\n'))
	return err
}
