package pokeapi

import (
	"path/filepath"
	"sync"
	"time"

	"github.com/metafates/gache"
	"github.com/pokedex-cli/pokedex/filesystem"
	"github.com/samber/mo"
)

// cacheData is the on-disk layout of one response cache file.
type cacheData[T any] struct {
	Responses map[string]T `json:"responses"`
}

// cacher stores decoded responses of one kind keyed by request path.
type cacher[T any] struct {
	internal *gache.Cache[*cacheData[T]]
	mu       sync.RWMutex
}

func newCacher[T any](dir, name string, lifetime time.Duration) *cacher[T] {
	return &cacher[T]{
		internal: gache.New[*cacheData[T]](
			&gache.Options{
				Path:       filepath.Join(dir, name+".json"),
				Lifetime:   lifetime,
				FileSystem: &filesystem.GacheFs{},
			},
		),
	}
}

// Get returns the cached response for the key. A nil cacher always misses.
func (c *cacher[T]) Get(key string) mo.Option[T] {
	if c == nil {
		return mo.None[T]()
	}

	c.mu.RLock()
	defer c.mu.RUnlock()

	data, expired, err := c.internal.Get()
	if err != nil || expired || data == nil {
		return mo.None[T]()
	}

	response, ok := data.Responses[key]
	if ok {
		return mo.Some(response)
	}

	return mo.None[T]()
}

// Set stores the response under the key, starting a fresh file if the old one expired.
func (c *cacher[T]) Set(key string, t T) error {
	if c == nil {
		return nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	data, expired, err := c.internal.Get()
	if err != nil {
		return err
	}

	if expired || data == nil || data.Responses == nil {
		data = &cacheData[T]{Responses: make(map[string]T)}
	}

	data.Responses[key] = t
	return c.internal.Set(data)
}

// caches groups the response caches of a Client.
type caches struct {
	lists   *cacher[*ListResponse]
	pokemon *cacher[*PokemonResponse]
	species *cacher[*SpeciesResponse]
	types   *cacher[*TypeResponse]
}

func newCaches(dir string, lifetime time.Duration) *caches {
	return &caches{
		lists:   newCacher[*ListResponse](dir, "pokemon_list", lifetime),
		pokemon: newCacher[*PokemonResponse](dir, "pokemon", lifetime),
		species: newCacher[*SpeciesResponse](dir, "pokemon_species", lifetime),
		types:   newCacher[*TypeResponse](dir, "type", lifetime),
	}
}
