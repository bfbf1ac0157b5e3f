// Package repository turns PokeAPI calls into Resources of domain records.
package repository

import (
	"context"
	"strconv"

	"github.com/pokedex-cli/pokedex/constant"
	"github.com/pokedex-cli/pokedex/log"
	"github.com/pokedex-cli/pokedex/pokeapi"
	"github.com/pokedex-cli/pokedex/pokemon"
	"github.com/pokedex-cli/pokedex/resource"
	"github.com/samber/lo"
	"golang.org/x/sync/errgroup"
)

// API is the subset of the PokeAPI client the repository needs.
type API interface {
	ListPokemon(ctx context.Context, limit, offset int) (*pokeapi.ListResponse, error)
	GetPokemon(ctx context.Context, idOrName string) (*pokeapi.PokemonResponse, error)
	GetSpecies(ctx context.Context, idOrName string) (*pokeapi.SpeciesResponse, error)
	ListByType(ctx context.Context, typeID string) (*pokeapi.TypeResponse, error)
}

// Page is one page of the national dex. Entries carry no types yet.
type Page struct {
	Count   int
	Entries []pokemon.Pokemon
}

// Summary holds the per-pokemon fields that the list endpoints omit.
type Summary struct {
	Types  []string
	Height int
	Weight int
}

// Repository is what the view models load data through.
type Repository interface {
	PageSize() int
	GetPokemonList(ctx context.Context, page int) resource.Resource[Page]
	GetPokemonListByType(ctx context.Context, typeID string) resource.Resource[[]pokemon.Pokemon]
	GetPokemonDetails(ctx context.Context, id string) resource.Resource[pokemon.Details]
	GetPokemonTypes(ctx context.Context, id string) resource.Resource[Summary]
}

type repository struct {
	api      API
	pageSize int
}

// New creates a repository. A non-positive pageSize falls back to constant.PageSize.
func New(api API, pageSize int) Repository {
	if pageSize <= 0 {
		pageSize = constant.PageSize
	}

	return &repository{api: api, pageSize: pageSize}
}

func (r *repository) PageSize() int {
	return r.pageSize
}

func (r *repository) GetPokemonList(ctx context.Context, page int) resource.Resource[Page] {
	response, err := r.api.ListPokemon(ctx, r.pageSize, page*r.pageSize)
	if err != nil {
		return failed[Page](err, "list page %d", page)
	}

	return resource.Success(Page{
		Count:   response.Count,
		Entries: lo.Map(response.Results, toPokemon),
	})
}

func (r *repository) GetPokemonListByType(ctx context.Context, typeID string) resource.Resource[[]pokemon.Pokemon] {
	response, err := r.api.ListByType(ctx, typeID)
	if err != nil {
		return failed[[]pokemon.Pokemon](err, "list type %s", typeID)
	}

	return resource.Success(lo.Map(response.Pokemon, func(member pokeapi.TypePokemon, i int) pokemon.Pokemon {
		return toPokemon(member.Pokemon, i)
	}))
}

func (r *repository) GetPokemonDetails(ctx context.Context, id string) resource.Resource[pokemon.Details] {
	var (
		details    *pokeapi.PokemonResponse
		species    *pokeapi.SpeciesResponse
		speciesErr error
	)

	// species by the same id is a guess that holds for every default form,
	// so it is fetched alongside the pokemon and corrected below if wrong
	var g errgroup.Group
	g.Go(func() (err error) {
		details, err = r.api.GetPokemon(ctx, id)
		return
	})
	g.Go(func() error {
		species, speciesErr = r.api.GetSpecies(ctx, id)
		return nil
	})

	if err := g.Wait(); err != nil {
		return failed[pokemon.Details](err, "details %s", id)
	}

	if speciesID := details.Species.ID(); speciesErr != nil || strconv.Itoa(species.ID) != speciesID {
		var err error
		species, err = r.api.GetSpecies(ctx, speciesID)
		if err != nil {
			return failed[pokemon.Details](err, "species %s", speciesID)
		}
	}

	return resource.Success(BuildDetails(details, species))
}

func (r *repository) GetPokemonTypes(ctx context.Context, id string) resource.Resource[Summary] {
	response, err := r.api.GetPokemon(ctx, id)
	if err != nil {
		return failed[Summary](err, "types %s", id)
	}

	return resource.Success(Summary{
		Types:  response.TypeNames(),
		Height: response.Height,
		Weight: response.Weight,
	})
}

func failed[T any](err error, format string, args ...any) resource.Resource[T] {
	log.WithFields(log.Fields{"error": err}).Errorf(format, args...)
	return resource.Error[T](err)
}

func toPokemon(entry pokeapi.NamedResource, _ int) pokemon.Pokemon {
	id := entry.ID()
	return pokemon.Pokemon{
		ID:       id,
		Name:     entry.Name,
		ImageURL: pokemon.ImageURL(id),
	}
}
