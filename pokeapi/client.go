// Package pokeapi is a typed client for the subset of PokeAPI v2 used by pokedex.
package pokeapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/pokedex-cli/pokedex/constant"
	"github.com/pokedex-cli/pokedex/internal/cache"
	"github.com/pokedex-cli/pokedex/key"
	"github.com/pokedex-cli/pokedex/log"
	"github.com/pokedex-cli/pokedex/network"
	"github.com/pokedex-cli/pokedex/where"
	"github.com/spf13/viper"
)

// StatusError is returned for any non-200 response.
type StatusError struct {
	Code int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected status %d", e.Code)
}

// Options configures a Client.
type Options struct {
	// BaseURL defaults to constant.BaseURL.
	BaseURL string
	// HTTP defaults to network.Client.
	HTTP *http.Client

	// Cache enables on-disk response and artwork caches.
	Cache      bool
	CacheTTL   time.Duration
	CacheDir   string
	ArtworkDir string
}

// Client talks to PokeAPI. It is safe for concurrent use.
type Client struct {
	baseURL string
	http    *http.Client
	caches  caches
	artwork *cache.Store
}

// New creates a client from options.
func New(options Options) *Client {
	baseURL := options.BaseURL
	if baseURL == "" {
		baseURL = constant.BaseURL
	}

	httpClient := options.HTTP
	if httpClient == nil {
		httpClient = network.Client
	}

	client := &Client{
		baseURL: strings.TrimSuffix(baseURL, "/") + "/",
		http:    httpClient,
	}

	if options.Cache {
		client.caches = *newCaches(options.CacheDir, options.CacheTTL)
		client.artwork = cache.New(options.ArtworkDir, options.CacheTTL)
	}

	return client
}

// FromConfig creates a client using the api.* config keys.
func FromConfig() *Client {
	return New(Options{
		BaseURL:    viper.GetString(key.APIBaseURL),
		HTTP:       network.Client,
		Cache:      viper.GetBool(key.APICache),
		CacheTTL:   time.Duration(viper.GetInt(key.APICacheTTLHours)) * time.Hour,
		CacheDir:   where.API(),
		ArtworkDir: where.Artwork(),
	})
}

// BaseURL returns the normalized base URL, always ending with a slash.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// ListPokemon fetches one page of the national dex.
func (c *Client) ListPokemon(ctx context.Context, limit, offset int) (*ListResponse, error) {
	query := url.Values{}
	query.Set("limit", strconv.Itoa(limit))
	query.Set("offset", strconv.Itoa(offset))

	return fetch(ctx, c, c.caches.lists, "pokemon?"+query.Encode())
}

// GetPokemon fetches a pokemon by id or name.
func (c *Client) GetPokemon(ctx context.Context, idOrName string) (*PokemonResponse, error) {
	return fetch(ctx, c, c.caches.pokemon, "pokemon/"+url.PathEscape(strings.ToLower(idOrName)))
}

// GetSpecies fetches a pokemon species by id or name.
func (c *Client) GetSpecies(ctx context.Context, idOrName string) (*SpeciesResponse, error) {
	return fetch(ctx, c, c.caches.species, "pokemon-species/"+url.PathEscape(strings.ToLower(idOrName)))
}

// ListByType fetches a type with all of its pokemon.
func (c *Client) ListByType(ctx context.Context, typeID string) (*TypeResponse, error) {
	return fetch(ctx, c, c.caches.types, "type/"+url.PathEscape(strings.ToLower(typeID)))
}

// Image downloads raw image bytes, going through the artwork cache when enabled.
func (c *Client) Image(ctx context.Context, imageURL string) ([]byte, error) {
	cacheKey := cache.Key(imageURL)
	if c.artwork != nil {
		if data, ok := c.artwork.Read(cacheKey); ok {
			return data, nil
		}
	}

	log.Debugf("downloading %s", imageURL)
	body, err := c.do(ctx, imageURL)
	if err != nil {
		return nil, err
	}
	defer body.Close()

	data, err := io.ReadAll(body)
	if err != nil {
		return nil, fmt.Errorf("read image: %w", err)
	}

	if c.artwork != nil {
		if err := c.artwork.Write(cacheKey, data); err != nil {
			log.Warnf("failed to cache artwork: %s", err)
		}
	}

	return data, nil
}

// CollectGarbage removes expired artwork in the background.
func (c *Client) CollectGarbage() {
	if c.artwork == nil {
		return
	}

	go func() {
		if err := c.artwork.CollectGarbage(); err != nil {
			log.Warnf("artwork garbage collection: %s", err)
		}
	}()
}

func fetch[T any](ctx context.Context, c *Client, cached *cacher[*T], path string) (*T, error) {
	if response := cached.Get(path); response.IsPresent() {
		log.Debugf("cache hit %s", path)
		return response.MustGet(), nil
	}

	log.Infof("requesting %s", path)
	body, err := c.do(ctx, c.baseURL+path)
	if err != nil {
		return nil, err
	}
	defer body.Close()

	var response T
	if err := json.NewDecoder(body).Decode(&response); err != nil {
		log.Error(err)
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}

	if err := cached.Set(path, &response); err != nil {
		log.Warnf("failed to cache %s: %s", path, err)
	}

	return &response, nil
}

func (c *Client) do(ctx context.Context, target string) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, err
	}

	req.Header.Set("Accept", "application/json, image/*")

	resp, err := c.http.Do(req)
	if err != nil {
		log.Error(err)
		return nil, err
	}

	if resp.StatusCode != http.StatusOK {
		_ = resp.Body.Close()
		log.Errorf("%s returned status code %d", target, resp.StatusCode)
		return nil, &StatusError{Code: resp.StatusCode}
	}

	return resp.Body, nil
}
