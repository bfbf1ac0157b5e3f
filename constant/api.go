package constant

// PokeAPI endpoints and paging.
const (
	BaseURL = "https://pokeapi.co/api/v2/"

	// PageSize is the number of entries requested per list page.
	PageSize = 20

	// ArtworkURL is formatted with a pokemon id.
	ArtworkURL = "https://raw.githubusercontent.com/PokeAPI/sprites/master/sprites/pokemon/other/official-artwork/%s.png"

	// UnknownError is the only failure message surfaced to the user.
	UnknownError = "An unknown error occurred."
)
