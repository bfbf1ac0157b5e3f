package viewmodel

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/color"
	"image/png"
	"strconv"
	"sync"
	"sync/atomic"

	"github.com/pokedex-cli/pokedex/internal/pokeapitest"
	"github.com/pokedex-cli/pokedex/pokemon"
	"github.com/pokedex-cli/pokedex/repository"
	"github.com/pokedex-cli/pokedex/resource"
	"github.com/samber/lo"
)

var errFake = errors.New("fake failure")

// fakeRepo serves the pokeapitest data set without HTTP.
type fakeRepo struct {
	failList    atomic.Bool
	failType    atomic.Bool
	failSummary atomic.Bool
	failDetails atomic.Bool

	mu        sync.Mutex
	listCalls int
}

func (f *fakeRepo) PageSize() int { return 20 }

func (f *fakeRepo) entry(id int) pokemon.Pokemon {
	s := strconv.Itoa(id)
	return pokemon.Pokemon{ID: s, Name: pokeapitest.Names[id-1], ImageURL: pokemon.ImageURL(s)}
}

func (f *fakeRepo) GetPokemonList(_ context.Context, page int) resource.Resource[repository.Page] {
	f.mu.Lock()
	f.listCalls++
	f.mu.Unlock()

	if f.failList.Load() {
		return resource.Error[repository.Page](errFake)
	}

	start := page * f.PageSize()
	end := lo.Min([]int{start + f.PageSize(), pokeapitest.Count})

	entries := make([]pokemon.Pokemon, 0)
	for id := start + 1; id <= end; id++ {
		entries = append(entries, f.entry(id))
	}

	return resource.Success(repository.Page{Count: pokeapitest.Count, Entries: entries})
}

func (f *fakeRepo) calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.listCalls
}

func (f *fakeRepo) GetPokemonListByType(_ context.Context, typeID string) resource.Resource[[]pokemon.Pokemon] {
	if f.failType.Load() {
		return resource.Error[[]pokemon.Pokemon](errFake)
	}

	typ, ok := pokemon.LookupType(typeID).Get()
	if !ok {
		return resource.Error[[]pokemon.Pokemon](errFake)
	}

	return resource.Success(lo.Map(pokeapitest.Members(typ.Name), func(id int, _ int) pokemon.Pokemon {
		return f.entry(id)
	}))
}

func (f *fakeRepo) GetPokemonDetails(_ context.Context, id string) resource.Resource[pokemon.Details] {
	n, err := strconv.Atoi(id)
	if f.failDetails.Load() || err != nil || n < 1 || n > pokeapitest.Count {
		return resource.Error[pokemon.Details](errFake)
	}

	return resource.Success(pokemon.Details{
		ID:         n,
		Name:       pokeapitest.Names[n-1],
		ImageURL:   pokemon.ImageURL(id),
		Category:   pokeapitest.Genus(n),
		Height:     pokeapitest.Height(n),
		Weight:     pokeapitest.Weight(n),
		Types:      pokeapitest.TypesOf(n),
		FlavorText: pokeapitest.BlueFlavor(n),
	})
}

func (f *fakeRepo) GetPokemonTypes(_ context.Context, id string) resource.Resource[repository.Summary] {
	if f.failSummary.Load() {
		return resource.Error[repository.Summary](errFake)
	}

	n, _ := strconv.Atoi(id)
	return resource.Success(repository.Summary{
		Types:  pokeapitest.TypesOf(n),
		Height: pokeapitest.Height(n),
		Weight: pokeapitest.Weight(n),
	})
}

// fakeImages returns a solid colour PNG, or garbage when broken or asked for brokenURL.
type fakeImages struct {
	broken    bool
	brokenURL string
	fill      color.Color
}

func (f fakeImages) Image(_ context.Context, url string) ([]byte, error) {
	if f.broken || (f.brokenURL != "" && url == f.brokenURL) {
		return []byte("garbage"), nil
	}

	img := image.NewNRGBA(image.Rect(0, 0, 16, 16))
	for y := 0; y < 16; y++ {
		for x := 0; x < 16; x++ {
			img.Set(x, y, f.fill)
		}
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}
