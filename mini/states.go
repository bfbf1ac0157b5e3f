package mini

import (
	"fmt"
	"strings"

	"github.com/pokedex-cli/pokedex/history"
	"github.com/pokedex-cli/pokedex/key"
	"github.com/pokedex-cli/pokedex/log"
	"github.com/pokedex-cli/pokedex/open"
	"github.com/pokedex-cli/pokedex/pokemon"
	"github.com/pokedex-cli/pokedex/util"
	"github.com/pokedex-cli/pokedex/viewmodel"
	"github.com/samber/lo"
	"github.com/spf13/viper"
)

type state int

const (
	modeSelectState state = iota + 1
	typeSelectState
	searchState
	pokemonSelectState
	detailsState
	historySelectState
	quitState
)

type mode string

const (
	browseMode  mode = "Browse the pokédex"
	typeMode    mode = "Browse by type"
	searchMode  mode = "Search"
	historyMode mode = "Recently viewed"
)

func (m *mini) handleModeSelectState() error {
	b, selected, err := menu(
		"What do you want to do?",
		[]mode{browseMode, typeMode, searchMode, historyMode},
		func(md mode) string { return string(md) },
		quit,
	)
	if err != nil {
		return err
	}

	if b == quit {
		m.newState(quitState)
		return nil
	}

	switch selected {
	case browseMode:
		m.openList("")
		m.newState(pokemonSelectState)
	case typeMode:
		m.newState(typeSelectState)
	case searchMode:
		m.newState(searchState)
	case historyMode:
		m.newState(historySelectState)
	}

	return nil
}

func (m *mini) handleTypeSelectState() error {
	b, t, err := menu(
		"Select a type",
		pokemon.Types,
		func(t pokemon.Type) string { return util.Capitalize(t.Name) },
		back, quit,
	)
	if err != nil {
		return err
	}

	switch b {
	case back:
		m.previousState()
		return nil
	case quit:
		m.newState(quitState)
		return nil
	}

	m.openList(t.ID)
	m.newState(pokemonSelectState)
	return nil
}

func (m *mini) handleSearchState() error {
	q, err := getInput("Name or number", func(s string) bool {
		return strings.TrimSpace(s) != ""
	})
	if err != nil {
		return err
	}

	// search covers what has been loaded, a fresh session starts from the first page
	if m.list == nil {
		m.openList("")
	}

	m.query = strings.TrimSpace(q)
	m.list.SetSearchQuery(m.query)

	if s := m.list.State(); s.LoadError == "" && len(s.Data) == 0 {
		fail(m.out, fmt.Sprintf("No pokémon found for %q", m.query))
		m.list.SetSearchQuery("")
		m.previousState()
		return nil
	}

	// back from the results leads to where the search was started
	m.setState(pokemonSelectState)
	return nil
}

func (m *mini) handlePokemonSelectState() error {
	s := m.list.State()

	if s.LoadError != "" {
		fail(m.out, s.LoadError)

		b, _, err := menu[pokemon.Pokemon]("Loading failed", nil, nil, retry, back, quit)
		if err != nil {
			return err
		}

		switch b {
		case retry:
			erase := progress("Retrying..")
			m.list.Retry(m.ctx)
			erase()
		case back:
			m.leaveList()
		case quit:
			m.newState(quitState)
		}
		return nil
	}

	entries := s.Data
	if s.IsSearching {
		entries = lo.Slice(entries, 0, viper.GetInt(key.MiniSearchLimit))
	}

	var binds []bind
	if !s.EndReached && !s.IsDataFiltered && !s.IsSearching {
		binds = append(binds, loadMore)
	}
	binds = append(binds, back, quit)

	b, p, err := menu(m.listTitle(s), entries, func(p pokemon.Pokemon) string {
		return fmt.Sprintf("%s %s", pokemon.DisplayID(p.ID), p)
	}, binds...)
	if err != nil {
		return err
	}

	switch b {
	case loadMore:
		erase := progress("Loading more..")
		m.list.LoadPaginated(m.ctx)
		erase()
	case back:
		m.leaveList()
	case quit:
		m.newState(quitState)
	default:
		m.selected = p
		m.newState(detailsState)
	}

	return nil
}

// leaveList goes back from the pokemon list, dropping the search first.
func (m *mini) leaveList() {
	if m.query != "" {
		m.query = ""
		m.list.SetSearchQuery("")
	}

	m.previousState()
}

func (m *mini) listTitle(s viewmodel.ListState) string {
	switch {
	case s.IsSearching:
		return fmt.Sprintf("Results for %q (%s)", s.Query, util.Quantify(len(s.Data), "match", "matches"))
	case s.TypeID != "":
		if t, ok := pokemon.LookupType(s.TypeID).Get(); ok {
			return fmt.Sprintf("%s pokémon", util.Capitalize(t.Name))
		}
	}

	return fmt.Sprintf("Pokédex (%s loaded)", util.Quantify(len(s.Data), "pokémon", "pokémon"))
}

func (m *mini) handleDetailsState() error {
	vm := viewmodel.NewDetails(m.repo, m.images)
	defer vm.Close()

	for {
		erase := progress(fmt.Sprintf("Loading %s..", m.selected))
		vm.Load(m.ctx, m.selected.ID)
		erase()

		s := vm.State()
		if s.LoadError == "" {
			break
		}

		fail(m.out, s.LoadError)
		b, _, err := menu[pokemon.Pokemon]("Loading failed", nil, nil, retry, back, quit)
		if err != nil {
			return err
		}

		switch b {
		case back:
			m.previousState()
			return nil
		case quit:
			m.newState(quitState)
			return nil
		}
	}

	if err := history.Save(m.selected); err != nil {
		log.Warnf("saving history: %s", err)
	}

	details := vm.State().Pokemon
	fmt.Fprintln(m.out, card(vm.State(), truncateAt))

	for {
		b, _, err := menu[pokemon.Pokemon]("", nil, nil, artwork, back, quit)
		if err != nil {
			return err
		}

		switch b {
		case artwork:
			if err := open.Start(details.ImageURL); err != nil {
				fail(m.out, err.Error())
			}
		case quit:
			m.newState(quitState)
			return nil
		default:
			m.previousState()
			return nil
		}
	}
}

func (m *mini) handleHistorySelectState() error {
	entries, err := history.Recent()
	if err != nil {
		return err
	}

	if len(entries) == 0 {
		fail(m.out, "Nothing viewed yet")
		if m.statesHistory.Len() == 0 {
			m.setState(modeSelectState)
		} else {
			m.previousState()
		}
		return nil
	}

	b, entry, err := menu("Recently viewed", entries, (*history.Entry).String, back, quit)
	if err != nil {
		return err
	}

	switch b {
	case back:
		if m.statesHistory.Len() == 0 {
			m.setState(modeSelectState)
		} else {
			m.previousState()
		}
	case quit:
		m.newState(quitState)
	default:
		m.selected = entry.Pokemon()
		m.newState(detailsState)
	}

	return nil
}
