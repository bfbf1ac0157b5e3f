// Package viewmodel holds screen state for the list and details screens.
//
// Each view model is the single writer of its state. Loads block the calling
// goroutine and publish intermediate states to subscribers as they go.
package viewmodel

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/pokedex-cli/pokedex/constant"
	"github.com/pokedex-cli/pokedex/key"
	"github.com/pokedex-cli/pokedex/log"
	"github.com/pokedex-cli/pokedex/pokemon"
	"github.com/pokedex-cli/pokedex/repository"
	"github.com/spf13/viper"
	"golang.org/x/exp/slices"
	"golang.org/x/sync/errgroup"
)

// ListState is what the list screen renders.
type ListState struct {
	Data           []pokemon.Pokemon
	LoadError      string
	IsLoading      bool
	EndReached     bool
	IsSearching    bool
	IsDataFiltered bool

	// TypeID is the type the list is filtered by, empty for the national dex.
	TypeID string
	// Query is the debounced search query currently applied.
	Query string
	Sort  pokemon.Sort
}

// ListOptions tunes a ListViewModel.
type ListOptions struct {
	// Debounce delays search queries. Zero applies them immediately.
	Debounce time.Duration
	// Concurrency bounds the per-entry type lookups of one page.
	Concurrency int
}

// ListOptionsFromConfig reads search.debounce_ms and api.concurrency.
func ListOptionsFromConfig() ListOptions {
	return ListOptions{
		Debounce:    time.Duration(viper.GetInt(key.SearchDebounceMs)) * time.Millisecond,
		Concurrency: viper.GetInt(key.APIConcurrency),
	}
}

// ListViewModel drives the paginated, type-filtered and searchable pokemon list.
type ListViewModel struct {
	repo    repository.Repository
	options ListOptions

	mu         sync.Mutex
	state      ListState
	curPage    int
	generation int
	query      string
	timer      *time.Timer
	retry      func(context.Context)

	subs subscribers[ListState]
}

// NewList creates an idle list view model. Call Init to start loading.
func NewList(repo repository.Repository, options ListOptions) *ListViewModel {
	if options.Concurrency <= 0 {
		options.Concurrency = 1
	}

	return &ListViewModel{repo: repo, options: options}
}

// Init loads the national dex when typeID is empty, otherwise the pokemon of that type.
func (vm *ListViewModel) Init(ctx context.Context, typeID string) {
	if typeID == "" {
		vm.LoadPaginated(ctx)
		return
	}

	vm.LoadByType(ctx, typeID)
}

// LoadPaginated appends the next page. It does nothing while a load is in
// flight, once the end is reached or while the list is filtered by type.
func (vm *ListViewModel) LoadPaginated(ctx context.Context) {
	vm.mu.Lock()
	if vm.state.IsLoading || vm.state.EndReached || vm.state.IsDataFiltered {
		vm.mu.Unlock()
		return
	}

	vm.generation++
	generation, page := vm.generation, vm.curPage
	vm.state.IsLoading = true
	vm.retry = vm.LoadPaginated
	vm.publish()
	vm.mu.Unlock()

	result := vm.repo.GetPokemonList(ctx, page)
	if result.IsError() {
		vm.fail(generation, result.Message(), false)
		return
	}

	data := result.Data().MustGet()
	entries, err := vm.withSummaries(ctx, data.Entries)
	if err != nil {
		vm.fail(generation, constant.UnknownError, false)
		return
	}

	vm.apply(generation, func(s *ListState) {
		vm.curPage++
		s.EndReached = vm.curPage*vm.repo.PageSize() >= data.Count
		s.Data = append(slices.Clip(s.Data), entries...)
		s.LoadError = ""
		s.IsLoading = false
	})
}

// LoadByType replaces the list with every pokemon of the type.
func (vm *ListViewModel) LoadByType(ctx context.Context, typeID string) {
	vm.mu.Lock()
	vm.generation++
	generation := vm.generation
	vm.state.IsLoading = true
	vm.state.IsSearching = false
	vm.state.TypeID = typeID
	vm.retry = func(ctx context.Context) { vm.LoadByType(ctx, typeID) }
	vm.publish()
	vm.mu.Unlock()

	result := vm.repo.GetPokemonListByType(ctx, typeID)
	if result.IsError() {
		vm.fail(generation, result.Message(), true)
		return
	}

	entries, err := vm.withSummaries(ctx, result.Data().MustGet())
	if err != nil {
		vm.fail(generation, constant.UnknownError, true)
		return
	}

	vm.apply(generation, func(s *ListState) {
		s.Data = entries
		s.LoadError = ""
		s.IsLoading = false
		s.IsDataFiltered = true
	})
}

// Retry re-issues the last load if it failed.
func (vm *ListViewModel) Retry(ctx context.Context) {
	vm.mu.Lock()
	retry := vm.retry
	failed := vm.state.LoadError != ""
	vm.mu.Unlock()

	if retry == nil || !failed {
		return
	}

	retry(ctx)
}

// SetSearchQuery schedules the query to be applied after the debounce delay.
// Newer queries replace pending ones.
func (vm *ListViewModel) SetSearchQuery(query string) {
	vm.mu.Lock()
	if vm.timer != nil {
		vm.timer.Stop()
		vm.timer = nil
	}

	if vm.options.Debounce <= 0 {
		vm.query = query
		vm.publish()
		vm.mu.Unlock()
		return
	}

	vm.timer = time.AfterFunc(vm.options.Debounce, func() {
		vm.mu.Lock()
		vm.query = query
		vm.timer = nil
		vm.publish()
		vm.mu.Unlock()
	})
	vm.mu.Unlock()
}

// SetSort changes the order of the combined view.
func (vm *ListViewModel) SetSort(sort pokemon.Sort) {
	vm.mu.Lock()
	vm.state.Sort = sort
	vm.publish()
	vm.mu.Unlock()
}

// State returns the loaded list combined with the debounced query and sort.
func (vm *ListViewModel) State() ListState {
	vm.mu.Lock()
	defer vm.mu.Unlock()

	return vm.combined()
}

// Subscribe delivers the current state immediately and then every change.
// Slow readers skip intermediate states. Call the returned func to stop.
func (vm *ListViewModel) Subscribe() (<-chan ListState, func()) {
	vm.mu.Lock()
	defer vm.mu.Unlock()

	return vm.subs.add(vm.combined())
}

// Close stops a pending debounce and closes all subscriptions.
func (vm *ListViewModel) Close() {
	vm.mu.Lock()
	if vm.timer != nil {
		vm.timer.Stop()
		vm.timer = nil
	}
	vm.mu.Unlock()

	vm.subs.close()
}

func (vm *ListViewModel) combined() ListState {
	state := vm.state
	state.Query = vm.query

	if vm.query != "" {
		state.Data = filter(state.Data, vm.query)
		state.IsLoading = false
		state.IsSearching = true
	} else {
		state.Data = slices.Clone(state.Data)
		state.IsSearching = false
	}

	state.Data = state.Sort.Apply(state.Data)
	return state
}

func filter(list []pokemon.Pokemon, query string) []pokemon.Pokemon {
	query = strings.TrimSpace(query)

	out := make([]pokemon.Pokemon, 0, len(list))
	for _, p := range list {
		if p.Matches(query) {
			out = append(out, p)
		}
	}

	return out
}

// withSummaries looks up types, height and weight of every entry in parallel.
func (vm *ListViewModel) withSummaries(ctx context.Context, entries []pokemon.Pokemon) ([]pokemon.Pokemon, error) {
	out := make([]pokemon.Pokemon, len(entries))
	copy(out, entries)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(vm.options.Concurrency)

	for i := range out {
		g.Go(func() error {
			summary := vm.repo.GetPokemonTypes(gctx, out[i].ID)
			if summary.IsError() {
				return fmt.Errorf("summary of %s: %w", out[i].ID, summary.Err())
			}

			s := summary.Data().MustGet()
			out[i].Types = s.Types
			out[i].Height = s.Height
			out[i].Weight = s.Weight
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return out, nil
}

// fail records a load error unless a newer load superseded this one.
func (vm *ListViewModel) fail(generation int, message string, clearFilter bool) {
	vm.apply(generation, func(s *ListState) {
		s.LoadError = message
		s.IsLoading = false
		if clearFilter {
			s.IsDataFiltered = false
		}
	})
}

func (vm *ListViewModel) apply(generation int, update func(*ListState)) {
	vm.mu.Lock()
	if generation != vm.generation {
		vm.mu.Unlock()
		log.Debugf("dropping result of superseded load %d", generation)
		return
	}

	update(&vm.state)
	vm.publish()
	vm.mu.Unlock()
}

// publish delivers the combined state. vm.mu must be held so that
// subscribers receive states in the order they were made.
func (vm *ListViewModel) publish() {
	vm.subs.publish(vm.combined())
}
