package tui

import (
	"context"
	"errors"
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/pokedex-cli/pokedex/history"
	"github.com/pokedex-cli/pokedex/log"
	"github.com/pokedex-cli/pokedex/pokemon"
	"github.com/pokedex-cli/pokedex/util"
	"github.com/pokedex-cli/pokedex/viewmodel"
	"github.com/samber/lo"
)

type listStateMsg struct {
	session *listSession
	state   viewmodel.ListState
}

type detailsStateMsg struct {
	session *detailsSession
	state   viewmodel.DetailsState
}

// run executes a blocking view model call off the UI goroutine.
func run(f func()) tea.Cmd {
	return func() tea.Msg {
		f()
		return nil
	}
}

// openList replaces the list screen with a fresh view model for the type.
func (b *statefulBubble) openList(typeID string) tea.Cmd {
	b.closeList()

	vm := viewmodel.NewList(b.repo, viewmodel.ListOptionsFromConfig())
	ctx, cancel := context.WithCancel(context.Background())
	states, unsubscribe := vm.Subscribe()

	session := &listSession{vm: vm, states: states, ctx: ctx, cancel: cancel, unsubscribe: unsubscribe}
	b.list = session
	b.shownList = viewmodel.ListState{}
	b.inputC.SetValue("")

	if t, ok := pokemon.LookupType(typeID).Get(); ok {
		typeID = t.ID
		b.pokemonC.Title = fmt.Sprintf("%s Pokémon", util.Capitalize(t.Name))
		b.progressStatus = fmt.Sprintf("Loading %s pokémon...", t.Name)
	} else {
		b.pokemonC.Title = "Pokédex"
		b.progressStatus = "Loading pokédex..."
	}

	b.pokemonC.ResetSelected()
	b.setState(loadingState)

	log.Infof("opening list, type %q", typeID)
	return tea.Batch(b.waitForListState(session), run(func() { vm.Init(ctx, typeID) }))
}

func (b *statefulBubble) closeList() {
	if b.list == nil {
		return
	}

	b.list.cancel()
	b.list.unsubscribe()
	b.list.vm.Close()
	b.list = nil
}

func (b *statefulBubble) waitForListState(session *listSession) tea.Cmd {
	return func() tea.Msg {
		state, ok := <-session.states
		if !ok {
			return nil
		}

		return listStateMsg{session: session, state: state}
	}
}

func (b *statefulBubble) applyListState(s viewmodel.ListState) tea.Cmd {
	previous := b.shownList
	b.shownList = s

	items := lo.Map(s.Data, func(p pokemon.Pokemon, _ int) list.Item {
		return &listItem{internal: p}
	})
	cmd := b.pokemonC.SetItems(items)

	if s.IsLoading && !previous.IsLoading {
		cmd = tea.Batch(cmd, b.pokemonC.StartSpinner())
	} else if !s.IsLoading {
		b.pokemonC.StopSpinner()
	}

	if s.LoadError != "" && previous.LoadError == "" && lo.Contains([]state{loadingState, listState, searchState}, b.state) {
		b.raiseError(errors.New(s.LoadError))
		return cmd
	}

	// the first state is published before Init starts loading
	settled := len(s.Data) > 0 || s.EndReached || s.IsDataFiltered
	if b.state == loadingState && !s.IsLoading && settled {
		b.setState(listState)
	}

	return cmd
}

// loadMore fetches the next page once the cursor sits on the last loaded item.
func (b *statefulBubble) loadMore() tea.Cmd {
	s := b.shownList
	if b.list == nil || s.IsLoading || s.EndReached || s.IsSearching || s.IsDataFiltered {
		return nil
	}

	if n := len(b.pokemonC.Items()); n == 0 || b.pokemonC.Index() < n-1 {
		return nil
	}

	vm, ctx := b.list.vm, b.list.ctx
	return run(func() { vm.LoadPaginated(ctx) })
}

func (b *statefulBubble) selectedPokemon() (pokemon.Pokemon, bool) {
	item, ok := b.pokemonC.SelectedItem().(*listItem)
	if !ok {
		return pokemon.Pokemon{}, false
	}

	p, ok := item.internal.(pokemon.Pokemon)
	return p, ok
}

// openDetails shows the details screen of p and records the view.
func (b *statefulBubble) openDetails(p pokemon.Pokemon) tea.Cmd {
	b.closeDetails()

	vm := viewmodel.NewDetails(b.repo, b.images)
	ctx, cancel := context.WithCancel(context.Background())
	states, unsubscribe := vm.Subscribe()

	session := &detailsSession{vm: vm, states: states, ctx: ctx, cancel: cancel, unsubscribe: unsubscribe}
	b.details = session
	b.shownDetails = viewmodel.DetailsState{IsLoading: true}
	b.newState(detailsState)

	save := run(func() {
		if err := history.Save(p); err != nil {
			log.Warnf("saving history: %s", err)
		}
	})

	return tea.Batch(b.waitForDetailsState(session), run(func() { vm.Load(ctx, p.ID) }), save)
}

func (b *statefulBubble) closeDetails() {
	if b.details == nil {
		return
	}

	b.details.cancel()
	b.details.unsubscribe()
	b.details.vm.Close()
	b.details = nil
}

func (b *statefulBubble) waitForDetailsState(session *detailsSession) tea.Cmd {
	return func() tea.Msg {
		state, ok := <-session.states
		if !ok {
			return nil
		}

		return detailsStateMsg{session: session, state: state}
	}
}

func (b *statefulBubble) applyDetailsState(s viewmodel.DetailsState) {
	previous := b.shownDetails
	b.shownDetails = s

	if s.LoadError != "" && previous.LoadError == "" && b.state == detailsState {
		b.raiseError(errors.New(s.LoadError))
	}
}

// retry re-runs the load that failed and returns to the screen it came from.
func (b *statefulBubble) retry() tea.Cmd {
	switch b.errorOrigin {
	case detailsState:
		if b.details == nil {
			break
		}

		b.previousState()
		b.shownDetails.LoadError = ""
		vm, ctx := b.details.vm, b.details.ctx
		return run(func() { vm.Retry(ctx) })
	default:
		if b.list == nil {
			break
		}

		if b.errorOrigin == loadingState {
			b.setState(loadingState)
		} else {
			b.previousState()
		}

		b.shownList.LoadError = ""
		vm, ctx := b.list.vm, b.list.ctx
		return run(func() { vm.Retry(ctx) })
	}

	b.previousState()
	return nil
}

func (b *statefulBubble) loadHistory() (tea.Cmd, error) {
	entries, err := history.Recent()
	if err != nil {
		return nil, err
	}

	items := lo.Map(entries, func(e *history.Entry, _ int) list.Item {
		return &listItem{internal: e}
	})

	return b.historyC.SetItems(items), nil
}

// markCurrent marks the active type and sort in their pickers.
func (b *statefulBubble) markCurrent() {
	for _, item := range b.typesC.Items() {
		item := item.(*listItem)
		switch e := item.internal.(type) {
		case pokemon.Type:
			item.marked = e.ID == b.shownList.TypeID
		case allTypesItem:
			item.marked = b.shownList.TypeID == ""
		}
	}

	for _, item := range b.sortC.Items() {
		item := item.(*listItem)
		item.marked = item.internal.(pokemon.Sort) == b.shownList.Sort
	}
}

func (b *statefulBubble) closeAll() {
	b.closeDetails()
	b.closeList()
}
