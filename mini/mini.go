// Package mini is the prompt-driven pokedex for terminals where the full TUI is unwanted.
package mini

import (
	"context"
	"errors"
	"io"
	"os"

	"github.com/AlecAivazis/survey/v2/terminal"
	"github.com/pokedex-cli/pokedex/pokemon"
	"github.com/pokedex-cli/pokedex/repository"
	"github.com/pokedex-cli/pokedex/util"
	"github.com/pokedex-cli/pokedex/viewmodel"
	"github.com/samber/lo"
)

var truncateAt = 100

type Options struct {
	// Continue starts from the recently viewed pokemon.
	Continue bool

	Repository repository.Repository
	// Images themes the detail card, nil leaves it uncolored.
	Images viewmodel.ImageLoader
	// Out receives every card and message, os.Stdout when nil.
	Out io.Writer
}

type mini struct {
	ctx context.Context
	out io.Writer

	state         state
	statesHistory util.Stack[state]

	repo   repository.Repository
	images viewmodel.ImageLoader

	list     *viewmodel.ListViewModel
	typeID   string
	query    string
	selected pokemon.Pokemon
}

func newMini(ctx context.Context, options *Options) *mini {
	out := options.Out
	if out == nil {
		out = os.Stdout
	}

	return &mini{
		ctx:           ctx,
		out:           out,
		statesHistory: util.Stack[state]{},
		repo:          options.Repository,
		images:        options.Images,
	}
}

func (m *mini) previousState() {
	if m.statesHistory.Len() > 0 {
		m.setState(m.statesHistory.Pop())
	}
}

func (m *mini) setState(s state) {
	m.state = s
}

func (m *mini) newState(s state) {
	if m.state == s {
		return
	}

	if !lo.Contains([]state{quitState}, m.state) {
		m.statesHistory.Push(m.state)
	}

	m.setState(s)
}

// Run loops over the prompts until the user quits.
func Run(ctx context.Context, options *Options) error {
	m := newMini(ctx, options)
	defer m.closeList()

	m.state = modeSelectState
	if options.Continue {
		m.state = historySelectState
	}

	if w, _, err := util.TerminalSize(); err == nil {
		truncateAt = w
	}

	for m.state != quitState {
		if err := m.handleState(); err != nil {
			// ctrl+c inside a prompt
			if errors.Is(err, terminal.InterruptErr) {
				return nil
			}
			return err
		}
	}

	return nil
}

func (m *mini) handleState() error {
	switch m.state {
	case modeSelectState:
		return m.handleModeSelectState()
	case typeSelectState:
		return m.handleTypeSelectState()
	case searchState:
		return m.handleSearchState()
	case pokemonSelectState:
		return m.handlePokemonSelectState()
	case detailsState:
		return m.handleDetailsState()
	case historySelectState:
		return m.handleHistorySelectState()
	}

	return nil
}

// openList replaces the current list with a fresh one for typeID and loads it.
func (m *mini) openList(typeID string) {
	m.closeList()

	options := viewmodel.ListOptionsFromConfig()
	// prompts ask for the whole query at once
	options.Debounce = 0

	m.list = viewmodel.NewList(m.repo, options)
	m.typeID = typeID
	m.query = ""

	erase := progress("Loading pokémon..")
	m.list.Init(m.ctx, typeID)
	erase()
}

func (m *mini) closeList() {
	if m.list != nil {
		m.list.Close()
		m.list = nil
	}
}
