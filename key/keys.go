// Package key defines the configuration identifiers shared by the config registry and its consumers.
package key

// PokeAPI client.
const (
	APIBaseURL        = "api.base_url"
	APIPageSize       = "api.page_size"
	APIConcurrency    = "api.concurrency"
	APITimeoutSeconds = "api.timeout_seconds"
	APICache          = "api.cache"
	APICacheTTLHours  = "api.cache_ttl_hours"
)

// Search behaviour for list screens.
const (
	SearchDebounceMs           = "search.debounce_ms"
	SearchShowQuerySuggestions = "search.show_query_suggestions"
)

// Viewed pokemon history.
const (
	HistorySave = "history.save"
)

// Mini mode.
const (
	MiniSearchLimit = "mini.search_limit"
)

// Icons.
const (
	IconsVariant = "icons.variant"
)

// Terminal user interface.
const (
	TUIItemSpacing      = "tui.item_spacing"
	TUISearchPrompt     = "tui.search_prompt"
	TUIShowTypes        = "tui.show_types"
	TUIThemeFromArtwork = "tui.theme_from_artwork"
)

// Logging.
const (
	LogsWrite = "logs.write"
	LogsLevel = "logs.level"
	LogsJson  = "logs.json"
)

// CLI behaviour outside the TUI.
const (
	CliColored      = "cli.colored"
	CliVersionCheck = "cli.version_check"
)
