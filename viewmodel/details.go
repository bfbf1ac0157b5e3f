package viewmodel

import (
	"context"
	"sync"

	"github.com/pokedex-cli/pokedex/log"
	"github.com/pokedex-cli/pokedex/palette"
	"github.com/pokedex-cli/pokedex/pokemon"
	"github.com/pokedex-cli/pokedex/repository"
	"github.com/samber/mo"
)

// ImageLoader downloads artwork. *pokeapi.Client satisfies it.
type ImageLoader interface {
	Image(ctx context.Context, url string) ([]byte, error)
}

// DetailsState is what the details screen renders.
type DetailsState struct {
	Pokemon   pokemon.Details
	LoadError string
	IsLoading bool
	// Theme is absent until the artwork has been analysed, or when that failed.
	Theme mo.Option[palette.Theme]
}

// DetailsViewModel loads one pokemon and the theme of its artwork.
type DetailsViewModel struct {
	repo   repository.Repository
	images ImageLoader

	mu    sync.Mutex
	state DetailsState
	id    string

	subs subscribers[DetailsState]
}

// NewDetails creates a details view model. A nil images loader disables theming.
func NewDetails(repo repository.Repository, images ImageLoader) *DetailsViewModel {
	return &DetailsViewModel{
		repo:   repo,
		images: images,
		state:  DetailsState{Theme: mo.None[palette.Theme]()},
	}
}

// Load fetches the pokemon and then its theme.
func (vm *DetailsViewModel) Load(ctx context.Context, id string) {
	vm.update(func(s *DetailsState) {
		if vm.id != id {
			s.Pokemon = pokemon.Details{}
		}
		vm.id = id
		s.IsLoading = true
		s.Theme = mo.None[palette.Theme]()
	})

	result := vm.repo.GetPokemonDetails(ctx, id)
	if result.IsError() {
		vm.update(func(s *DetailsState) {
			s.LoadError = result.Message()
			s.IsLoading = false
		})
		return
	}

	details := result.Data().MustGet()
	vm.update(func(s *DetailsState) {
		s.Pokemon = details
		s.LoadError = ""
		s.IsLoading = false
	})

	if vm.images == nil {
		return
	}

	theme, ok := vm.theme(ctx, details.ImageURL)
	if !ok {
		return
	}

	vm.update(func(s *DetailsState) {
		if s.Pokemon.ID == details.ID {
			s.Theme = mo.Some(theme)
		}
	})
}

// Retry reloads the last requested pokemon if loading it failed.
func (vm *DetailsViewModel) Retry(ctx context.Context) {
	vm.mu.Lock()
	id, failed := vm.id, vm.state.LoadError != ""
	vm.mu.Unlock()

	if id == "" || !failed {
		return
	}

	vm.Load(ctx, id)
}

// State returns a snapshot of the current state.
func (vm *DetailsViewModel) State() DetailsState {
	vm.mu.Lock()
	defer vm.mu.Unlock()

	return vm.state
}

// Subscribe delivers the current state immediately and then every change.
func (vm *DetailsViewModel) Subscribe() (<-chan DetailsState, func()) {
	vm.mu.Lock()
	defer vm.mu.Unlock()

	return vm.subs.add(vm.state)
}

// Close closes all subscriptions.
func (vm *DetailsViewModel) Close() {
	vm.subs.close()
}

func (vm *DetailsViewModel) theme(ctx context.Context, url string) (palette.Theme, bool) {
	data, err := vm.images.Image(ctx, url)
	if err != nil {
		log.Warnf("artwork %s: %s", url, err)
		return palette.Theme{}, false
	}

	theme, ok, err := palette.FromImage(data)
	if err != nil {
		log.Warnf("artwork %s: %s", url, err)
		return palette.Theme{}, false
	}

	return theme, ok
}

func (vm *DetailsViewModel) update(change func(*DetailsState)) {
	vm.mu.Lock()
	defer vm.mu.Unlock()

	change(&vm.state)
	vm.subs.publish(vm.state)
}
