// Package constant defines immutable application-level identifiers and configuration defaults.
package constant

const (
	// Pokedex is the canonical application identifier used for filesystem paths and CLI branding.
	Pokedex = "pokedex"

	// Version is the current application semantic version string.
	Version = "0.3.0"

	// Repository is the GitHub owner/name releases are published under.
	Repository = "pokedex-cli/pokedex"

	// UserAgent is sent with every request to PokeAPI and the sprite host.
	UserAgent = Pokedex + "/" + Version + " (+https://pokeapi.co)"
)

// Build metadata, injected with -ldflags at release time.
var (
	BuiltAt  = "unknown"
	BuiltBy  = "unknown"
	Revision = "unknown"
)
