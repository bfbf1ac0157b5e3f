package icon

// Icon identifies a symbol in the registry.
type Icon int

const (
	Fail Icon = iota + 1
	Success
	Progress
	Search
	Mark
	Pokeball
	Retry
	Type
	History
)

var icons = map[Icon]*iconDef{
	Fail: {
		emoji:   "💀",
		nerd:    "\uf00d",
		plain:   "X",
		kaomoji: "(◞‸◟；)",
		squares: "🟥",
	},
	Success: {
		emoji:   "🎉",
		nerd:    "\uf00c",
		plain:   "✓",
		kaomoji: "(ᵔ◡ᵔ)",
		squares: "🟩",
	},
	Progress: {
		emoji:   "⏳",
		nerd:    "\uf110",
		plain:   "...",
		kaomoji: "(・_・)…",
		squares: "🟦",
	},
	Search: {
		emoji:   "🔍",
		nerd:    "\uf002",
		plain:   "?",
		kaomoji: "(・・?)",
		squares: "🟨",
	},
	Mark: {
		emoji:   "⭐",
		nerd:    "\uf005",
		plain:   "*",
		kaomoji: "(★‿★)",
		squares: "🟪",
	},
	Pokeball: {
		emoji:   "🔴",
		nerd:    "\uf111",
		plain:   "o",
		kaomoji: "(◉)",
		squares: "🟥",
	},
	Retry: {
		emoji:   "🔁",
		nerd:    "\uf021",
		plain:   "R",
		kaomoji: "(↻_↻)",
		squares: "🟧",
	},
	Type: {
		emoji:   "🏷️",
		nerd:    "\uf02b",
		plain:   "#",
		kaomoji: "(#ﾟДﾟ)",
		squares: "🟫",
	},
	History: {
		emoji:   "🕘",
		nerd:    "\uf1da",
		plain:   "~",
		kaomoji: "(￣▽￣)ノ",
		squares: "⬜",
	},
}
