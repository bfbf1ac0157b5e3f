package tui

import (
	"fmt"

	bubblesKey "github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/pokedex-cli/pokedex/history"
	"github.com/pokedex-cli/pokedex/internal/ui"
	"github.com/pokedex-cli/pokedex/key"
	"github.com/pokedex-cli/pokedex/log"
	"github.com/pokedex-cli/pokedex/open"
	"github.com/pokedex-cli/pokedex/pokemon"
	"github.com/pokedex-cli/pokedex/query"
	"github.com/samber/mo"
	"github.com/spf13/viper"
)

func (b *statefulBubble) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	notifyCmd := b.notifier.Update(msg)

	switch msg := msg.(type) {
	case listStateMsg:
		// a replaced list screen may still deliver its last state
		if b.list == nil || msg.session != b.list {
			return b, nil
		}
		return b, tea.Batch(b.applyListState(msg.state), b.waitForListState(msg.session))
	case detailsStateMsg:
		if b.details == nil || msg.session != b.details {
			return b, nil
		}
		b.applyDetailsState(msg.state)
		return b, b.waitForDetailsState(msg.session)
	case spinner.TickMsg:
		var spinnerCmd, listCmd tea.Cmd
		b.spinnerC, spinnerCmd = b.spinnerC.Update(msg)
		b.pokemonC, listCmd = b.pokemonC.Update(msg)
		return b, tea.Batch(spinnerCmd, listCmd)
	case ui.NotificationMsg, ui.ClearNotificationMsg:
		return b, notifyCmd
	case error:
		b.raiseError(msg)
	case tea.WindowSizeMsg:
		b.resize(msg.Width, msg.Height)
	case tea.KeyMsg:
		if bubblesKey.Matches(msg, b.keymap.forceQuit) {
			return b, tea.Quit
		}
	}

	var (
		model tea.Model
		cmd   tea.Cmd
	)

	switch b.state {
	case loadingState:
		model, cmd = b.updateLoading(msg)
	case historyState:
		model, cmd = b.updateHistory(msg)
	case listState:
		model, cmd = b.updateList(msg)
	case searchState:
		model, cmd = b.updateSearch(msg)
	case typesState:
		model, cmd = b.updateTypes(msg)
	case sortState:
		model, cmd = b.updateSort(msg)
	case detailsState:
		model, cmd = b.updateDetails(msg)
	case errorState:
		model, cmd = b.updateError(msg)
	default:
		model = b
	}

	return model, tea.Batch(cmd, notifyCmd)
}

func (b *statefulBubble) updateLoading(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok && bubblesKey.Matches(msg, b.keymap.back) {
		if b.statesHistory.Len() == 0 {
			return b, tea.Quit
		}

		b.previousState()
	}

	return b, nil
}

func (b *statefulBubble) updateList(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case bubblesKey.Matches(msg, b.keymap.confirm):
			if p, ok := b.selectedPokemon(); ok {
				return b, b.openDetails(p)
			}
			return b, nil
		case bubblesKey.Matches(msg, b.keymap.search):
			b.newState(searchState)
			b.inputC.Focus()
			return b, textinput.Blink
		case bubblesKey.Matches(msg, b.keymap.types):
			b.markCurrent()
			b.newState(typesState)
			return b, nil
		case bubblesKey.Matches(msg, b.keymap.sort):
			b.markCurrent()
			b.newState(sortState)
			return b, nil
		case bubblesKey.Matches(msg, b.keymap.history):
			cmd, err := b.loadHistory()
			if err != nil {
				b.raiseError(err)
				return b, nil
			}
			b.historyC.ResetSelected()
			b.newState(historyState)
			return b, cmd
		case bubblesKey.Matches(msg, b.keymap.retry) && b.shownList.LoadError != "":
			b.shownList.LoadError = ""
			vm, ctx := b.list.vm, b.list.ctx
			return b, run(func() { vm.Retry(ctx) })
		case bubblesKey.Matches(msg, b.keymap.back):
			if b.inputC.Value() != "" {
				b.inputC.SetValue("")
				b.list.vm.SetSearchQuery("")
				return b, nil
			}

			b.previousState()
			return b, nil
		}
	}

	b.pokemonC, cmd = b.pokemonC.Update(msg)
	return b, tea.Batch(cmd, b.loadMore())
}

func (b *statefulBubble) updateSearch(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case bubblesKey.Matches(msg, b.keymap.confirm):
			b.inputC.Blur()
			b.searchSuggestion = mo.None[string]()
			b.previousState()

			if q := b.inputC.Value(); q != "" {
				go func() {
					if err := query.Remember(q, 1); err != nil {
						log.Warnf("remembering query: %s", err)
					}
				}()
			}
			return b, nil
		case bubblesKey.Matches(msg, b.keymap.acceptSearchSuggestion) && b.searchSuggestion.IsPresent():
			b.inputC.SetValue(b.searchSuggestion.MustGet())
			b.searchSuggestion = mo.None[string]()
			b.inputC.SetCursor(len(b.inputC.Value()))
			b.list.vm.SetSearchQuery(b.inputC.Value())
			return b, nil
		case bubblesKey.Matches(msg, b.keymap.back):
			b.inputC.SetValue("")
			b.inputC.Blur()
			b.searchSuggestion = mo.None[string]()
			b.list.vm.SetSearchQuery("")
			b.previousState()
			return b, nil
		case bubblesKey.Matches(msg, b.keymap.up, b.keymap.down) && msg.Type != tea.KeyRunes:
			b.pokemonC, cmd = b.pokemonC.Update(msg)
			return b, cmd
		}
	}

	before := b.inputC.Value()
	b.inputC, cmd = b.inputC.Update(msg)

	value := b.inputC.Value()
	if value == before {
		return b, cmd
	}

	b.list.vm.SetSearchQuery(value)

	b.searchSuggestion = mo.None[string]()
	if value != "" && viper.GetBool(key.SearchShowQuerySuggestions) {
		if suggestion, ok := query.Suggest(value).Get(); ok && suggestion != value {
			b.searchSuggestion = mo.Some(suggestion)
		}
	}

	return b, cmd
}

func (b *statefulBubble) updateTypes(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case bubblesKey.Matches(msg, b.keymap.confirm):
			item, ok := b.typesC.SelectedItem().(*listItem)
			if !ok {
				return b, nil
			}

			var typeID string
			if t, ok := item.internal.(pokemon.Type); ok {
				typeID = t.ID
			}

			b.previousState()
			if typeID == b.shownList.TypeID {
				return b, nil
			}
			return b, b.openList(typeID)
		case bubblesKey.Matches(msg, b.keymap.back):
			b.previousState()
			return b, nil
		}
	}

	b.typesC, cmd = b.typesC.Update(msg)
	return b, cmd
}

func (b *statefulBubble) updateSort(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case bubblesKey.Matches(msg, b.keymap.confirm):
			item, ok := b.sortC.SelectedItem().(*listItem)
			if !ok {
				return b, nil
			}

			sort := item.internal.(pokemon.Sort)
			b.list.vm.SetSort(sort)
			b.pokemonC.ResetSelected()
			b.previousState()
			return b, ui.Notify(fmt.Sprintf("Sorted by %s", sort))
		case bubblesKey.Matches(msg, b.keymap.back):
			b.previousState()
			return b, nil
		}
	}

	b.sortC, cmd = b.sortC.Update(msg)
	return b, cmd
}

func (b *statefulBubble) updateHistory(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case bubblesKey.Matches(msg, b.keymap.confirm):
			if item, ok := b.historyC.SelectedItem().(*listItem); ok {
				return b, b.openDetails(item.internal.(*history.Entry).Pokemon())
			}
			return b, nil
		case bubblesKey.Matches(msg, b.keymap.remove):
			item, ok := b.historyC.SelectedItem().(*listItem)
			if !ok {
				return b, nil
			}

			entry := item.internal.(*history.Entry)
			if err := history.Remove(entry.ID); err != nil {
				b.raiseError(err)
				return b, nil
			}

			cmd, err := b.loadHistory()
			if err != nil {
				b.raiseError(err)
				return b, nil
			}
			return b, tea.Batch(cmd, ui.Notify(fmt.Sprintf("Removed %s", entry)))
		case bubblesKey.Matches(msg, b.keymap.back):
			if b.statesHistory.Len() > 0 {
				b.previousState()
				return b, nil
			}

			// opened with --continue, there is no list below
			return b, b.openList(b.options.TypeID)
		}
	}

	b.historyC, cmd = b.historyC.Update(msg)
	return b, cmd
}

func (b *statefulBubble) updateDetails(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case bubblesKey.Matches(msg, b.keymap.quit):
			return b, tea.Quit
		case bubblesKey.Matches(msg, b.keymap.openURL) && b.shownDetails.Pokemon.ImageURL != "":
			if err := open.Start(b.shownDetails.Pokemon.ImageURL); err != nil {
				log.Warnf("opening artwork: %s", err)
				return b, ui.Notify("Could not open the artwork")
			}
			return b, ui.Notify("Opened the artwork")
		case bubblesKey.Matches(msg, b.keymap.back):
			b.closeDetails()
			b.previousState()

			if b.state == historyState {
				cmd, err := b.loadHistory()
				if err != nil {
					b.raiseError(err)
					return b, nil
				}
				return b, cmd
			}
		}
	}

	return b, nil
}

func (b *statefulBubble) updateError(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case bubblesKey.Matches(msg, b.keymap.quit):
			return b, tea.Quit
		case bubblesKey.Matches(msg, b.keymap.retry):
			return b, b.retry()
		case bubblesKey.Matches(msg, b.keymap.back):
			if b.errorOrigin == detailsState {
				b.closeDetails()
				b.previousState()
				b.previousState()
				return b, nil
			}

			if b.statesHistory.Len() == 0 {
				return b, tea.Quit
			}

			b.previousState()
			return b, nil
		}
	}

	return b, nil
}
