// Package network provides the shared HTTP client used for PokeAPI and artwork requests.
package network

import (
	"net/http"
	"time"

	"github.com/pokedex-cli/pokedex/constant"
	"github.com/pokedex-cli/pokedex/key"
	"github.com/spf13/viper"
)

// Client is shared across the application so that connections to PokeAPI are pooled.
// Its timeout is replaced by Setup once config has been loaded.
var Client = &http.Client{
	Timeout:   time.Minute,
	Transport: &userAgentTransport{base: newTransport()},
}

// Setup applies the configured request timeout to the shared client.
func Setup() {
	if seconds := viper.GetInt(key.APITimeoutSeconds); seconds > 0 {
		Client.Timeout = time.Duration(seconds) * time.Second
	}
}

// New returns a client with its own timeout that shares the default transport settings.
func New(timeout time.Duration) *http.Client {
	return &http.Client{
		Timeout:   timeout,
		Transport: &userAgentTransport{base: newTransport()},
	}
}

func newTransport() *http.Transport {
	t := http.DefaultTransport.(*http.Transport).Clone()
	t.MaxIdleConns = 100
	t.MaxIdleConnsPerHost = 32
	t.MaxConnsPerHost = 64
	t.IdleConnTimeout = 30 * time.Second
	t.ResponseHeaderTimeout = 30 * time.Second
	return t
}

// userAgentTransport sets the User-Agent header unless the request already has one.
type userAgentTransport struct {
	base http.RoundTripper
}

func (t *userAgentTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if req.Header.Get("User-Agent") == "" {
		req = req.Clone(req.Context())
		req.Header.Set("User-Agent", constant.UserAgent)
	}

	return t.base.RoundTrip(req)
}
