// Package history remembers which pokemon were viewed.
package history

import (
	"sort"
	"sync"
	"time"

	"github.com/metafates/gache"
	"github.com/pokedex-cli/pokedex/filesystem"
	"github.com/pokedex-cli/pokedex/key"
	"github.com/pokedex-cli/pokedex/pokemon"
	"github.com/pokedex-cli/pokedex/where"
	"github.com/samber/lo"
	"github.com/spf13/viper"
)

var cacher = sync.OnceValue(func() *gache.Cache[map[string]*Entry] {
	return gache.New[map[string]*Entry](
		&gache.Options{
			Path:       where.History(),
			FileSystem: &filesystem.GacheFs{},
		},
	)
})

// Get returns all entries keyed by pokemon id.
func Get() (map[string]*Entry, error) {
	cached, expired, err := cacher().Get()
	if err != nil {
		return nil, err
	}
	if expired || cached == nil {
		return make(map[string]*Entry), nil
	}
	return cached, nil
}

// Recent returns entries, most recently viewed first.
func Recent() ([]*Entry, error) {
	saved, err := Get()
	if err != nil {
		return nil, err
	}

	entries := lo.Values(saved)
	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].ViewedAt.Equal(entries[j].ViewedAt) {
			return entries[i].ID < entries[j].ID
		}
		return entries[i].ViewedAt.After(entries[j].ViewedAt)
	})

	return entries, nil
}

// Save records a view. Does nothing when history.save is off.
func Save(p pokemon.Pokemon) error {
	if !viper.GetBool(key.HistorySave) {
		return nil
	}

	saved, err := Get()
	if err != nil {
		return err
	}

	entry := newEntry(p)
	if existing, ok := saved[p.ID]; ok {
		entry.Views = existing.Views
		if len(entry.Types) == 0 {
			entry.Types = existing.Types
		}
	}
	entry.Views++
	entry.ViewedAt = time.Now()

	saved[p.ID] = entry
	return cacher().Set(saved)
}

// Remove deletes the entry of a pokemon.
func Remove(id string) error {
	saved, err := Get()
	if err != nil {
		return err
	}

	delete(saved, id)
	return cacher().Set(saved)
}
