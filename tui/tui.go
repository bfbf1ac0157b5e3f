// Package tui is the interactive terminal pokedex.
package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/pokedex-cli/pokedex/repository"
	"github.com/pokedex-cli/pokedex/viewmodel"
)

// Options configures a TUI run.
type Options struct {
	// Continue opens the history of viewed pokemon first.
	Continue bool
	// TypeID starts with the list filtered by this type.
	TypeID string

	Repository repository.Repository
	// Images loads artwork for theming, nil disables it.
	Images viewmodel.ImageLoader
}

// Run starts the TUI and blocks until it exits.
func Run(options *Options) error {
	bubble := newBubble(options)
	defer bubble.closeAll()

	if options.Continue {
		if _, err := bubble.loadHistory(); err != nil {
			return err
		}
		bubble.newState(historyState)
	}

	_, err := tea.NewProgram(bubble, tea.WithAltScreen()).Run()
	return err
}
