package inline

import (
	"path/filepath"
	"reflect"
	"strings"

	"github.com/invopop/jsonschema"
)

// Schema describes the json output of list runs, or of details runs when details is set.
func Schema(details bool) *jsonschema.Schema {
	reflector := new(jsonschema.Reflector)
	reflector.Anonymous = true
	reflector.Namer = func(t reflect.Type) string {
		name := t.Name()
		switch strings.ToLower(name) {
		case "pokemon", "details", "output", "theme":
			return filepath.Base(t.PkgPath()) + "." + name
		}

		return name
	}

	if details {
		return reflector.Reflect(&DetailsOutput{})
	}

	return reflector.Reflect(&Output{})
}
