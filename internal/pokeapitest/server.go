// Package pokeapitest serves a small, deterministic copy of PokeAPI for tests.
package pokeapitest

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/samber/lo"
)

// Names are the pokemon served, national dex order starting at 1.
var Names = []string{
	"bulbasaur", "ivysaur", "venusaur", "charmander", "charmeleon",
	"charizard", "squirtle", "wartortle", "blastoise", "caterpie",
	"metapod", "butterfree", "weedle", "kakuna", "beedrill",
	"pidgey", "pidgeotto", "pidgeot", "rattata", "raticate",
	"spearow", "fearow", "ekans", "arbok", "pikachu",
	"raichu", "sandshrew", "sandslash", "nidoran-f", "nidorina",
	"nidoqueen", "nidoran-m", "nidorino", "nidoking", "clefairy",
	"clefable", "vulpix", "ninetales", "jigglypuff", "wigglytuff",
	"zubat", "golbat", "oddish", "gloom", "vileplume",
}

// Count is the total number of pokemon reported by the list endpoint.
var Count = len(Names)

// MegaVenusaurID is an alternate form whose species id differs from its own id.
const MegaVenusaurID = 10033

// NoGenusID has a species without an English genus.
const NoGenusID = 44

var typeIDs = map[string]int{
	"normal": 1, "fighting": 2, "flying": 3, "poison": 4, "ground": 5, "rock": 6,
	"bug": 7, "ghost": 8, "steel": 9, "fire": 10, "water": 11, "grass": 12,
	"electric": 13, "psychic": 14, "ice": 15, "dragon": 16, "dark": 17, "fairy": 18,
}

// TypesOf returns the slot-ordered type names of a served pokemon.
func TypesOf(id int) []string {
	switch {
	case id >= 1 && id <= 3, id >= 43 && id <= 45, id == MegaVenusaurID:
		return []string{"grass", "poison"}
	case id == 4, id == 5, id == 37, id == 38:
		return []string{"fire"}
	case id == 6:
		return []string{"fire", "flying"}
	case id >= 7 && id <= 9:
		return []string{"water"}
	case id == 10, id == 11:
		return []string{"bug"}
	case id == 12:
		return []string{"bug", "flying"}
	case id >= 13 && id <= 15:
		return []string{"bug", "poison"}
	case id >= 16 && id <= 18, id == 21, id == 22:
		return []string{"normal", "flying"}
	case id == 19, id == 20:
		return []string{"normal"}
	case id == 23, id == 24, id >= 29 && id <= 30, id >= 32 && id <= 33:
		return []string{"poison"}
	case id == 25, id == 26:
		return []string{"electric"}
	case id == 27, id == 28:
		return []string{"ground"}
	case id == 31, id == 34:
		return []string{"poison", "ground"}
	case id == 35, id == 36:
		return []string{"fairy"}
	case id == 39, id == 40:
		return []string{"normal", "fairy"}
	case id == 41, id == 42:
		return []string{"poison", "flying"}
	}

	return nil
}

// Height in decimetres of a served pokemon.
func Height(id int) int { return id%17 + 3 }

// Weight in hectograms of a served pokemon.
func Weight(id int) int { return id*37%500 + 10 }

// Server is a fake PokeAPI. Set Fail to make every request return 500, or
// call FailPath to break a single resource.
type Server struct {
	*httptest.Server

	Fail atomic.Bool

	mu       sync.Mutex
	requests map[string]int
	failing  map[string]bool
}

// NewServer starts a fake PokeAPI. Callers must Close it.
func NewServer() *Server {
	s := &Server{requests: make(map[string]int), failing: make(map[string]bool)}
	s.Server = httptest.NewServer(http.HandlerFunc(s.handle))
	return s
}

// BaseURL is the URL to pass as the client's base URL.
func (s *Server) BaseURL() string {
	return s.URL + "/api/v2/"
}

// Requests returns how many times the path (without query) was requested.
func (s *Server) Requests(path string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.requests[path]
}

// FailPath makes requests for the path (without query, e.g. "pokemon-species/3")
// return 500 until RestorePath is called.
func (s *Server) FailPath(path string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failing[path] = true
}

// RestorePath undoes FailPath.
func (s *Server) RestorePath(path string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.failing, path)
}

// TotalRequests returns the number of requests served so far.
func (s *Server) TotalRequests() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return lo.Sum(lo.Values(s.requests))
}

func (s *Server) handle(w http.ResponseWriter, r *http.Request) {
	path := strings.TrimPrefix(r.URL.Path, "/api/v2/")

	s.mu.Lock()
	s.requests[path]++
	failing := s.failing[path]
	s.mu.Unlock()

	if failing || s.Fail.Load() {
		http.Error(w, "boom", http.StatusInternalServerError)
		return
	}

	segments := strings.Split(strings.Trim(path, "/"), "/")
	switch {
	case len(segments) == 1 && segments[0] == "pokemon":
		s.list(w, r)
	case len(segments) == 2 && segments[0] == "pokemon":
		s.pokemon(w, segments[1])
	case len(segments) == 2 && segments[0] == "pokemon-species":
		s.species(w, segments[1])
	case len(segments) == 2 && segments[0] == "type":
		s.typ(w, segments[1])
	default:
		http.NotFound(w, r)
	}
}

func (s *Server) resource(kind string, id int, name string) map[string]string {
	return map[string]string{
		"name": name,
		"url":  fmt.Sprintf("%s%s/%d/", s.BaseURL(), kind, id),
	}
}

func (s *Server) list(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	offset, _ := strconv.Atoi(r.URL.Query().Get("offset"))

	end := lo.Min([]int{offset + limit, Count})
	results := make([]map[string]string, 0)
	for i := offset; i < end; i++ {
		results = append(results, s.resource("pokemon", i+1, Names[i]))
	}

	writeJSON(w, map[string]any{
		"count":    Count,
		"next":     nil,
		"previous": nil,
		"results":  results,
	})
}

// lookup resolves an id or name to a served id.
func lookup(idOrName string) (int, bool) {
	if id, err := strconv.Atoi(idOrName); err == nil {
		return id, (id >= 1 && id <= Count) || id == MegaVenusaurID
	}

	if idOrName == "venusaur-mega" {
		return MegaVenusaurID, true
	}

	index := lo.IndexOf(Names, idOrName)
	return index + 1, index >= 0
}

func name(id int) string {
	if id == MegaVenusaurID {
		return "venusaur-mega"
	}
	return Names[id-1]
}

func (s *Server) pokemon(w http.ResponseWriter, idOrName string) {
	id, ok := lookup(idOrName)
	if !ok {
		http.Error(w, "Not Found", http.StatusNotFound)
		return
	}

	speciesID := id
	if id == MegaVenusaurID {
		speciesID = 3
	}

	types := lo.Map(TypesOf(id), func(t string, i int) map[string]any {
		return map[string]any{"slot": i + 1, "type": s.resource("type", typeIDs[t], t)}
	})
	// served out of slot order to exercise sorting
	types = lo.Reverse(types)

	writeJSON(w, map[string]any{
		"id":      id,
		"name":    name(id),
		"height":  Height(id),
		"weight":  Weight(id),
		"types":   types,
		"species": s.resource("pokemon-species", speciesID, Names[speciesID-1]),
	})
}

func (s *Server) species(w http.ResponseWriter, idOrName string) {
	id, ok := lookup(idOrName)
	if !ok || id == MegaVenusaurID {
		http.Error(w, "Not Found", http.StatusNotFound)
		return
	}

	genera := []map[string]any{
		{"genus": "たねポケモン", "language": s.resource("language", 1, "ja-Hrkt")},
	}
	if id != NoGenusID {
		genera = append(genera, map[string]any{
			"genus":    Genus(id),
			"language": s.resource("language", 9, "en"),
		})
	}

	flavor := []map[string]any{
		{"flavor_text": "texte", "language": s.resource("language", 5, "fr"), "version": s.resource("version", 1, "red")},
		{"flavor_text": BlueFlavor(id), "language": s.resource("language", 9, "en"), "version": s.resource("version", 2, "blue")},
	}
	if id%2 == 1 {
		flavor = append(flavor, map[string]any{
			"flavor_text": RedFlavor(id),
			"language":    s.resource("language", 9, "en"),
			"version":     s.resource("version", 1, "red"),
		})
	}

	writeJSON(w, map[string]any{
		"id":                  id,
		"name":                Names[id-1],
		"genera":              genera,
		"flavor_text_entries": flavor,
	})
}

// Genus is the English genus served for a species.
func Genus(id int) string {
	return fmt.Sprintf("Number %d Pokémon", id)
}

// RedFlavor is the English red-version entry served for odd species ids.
func RedFlavor(id int) string {
	return fmt.Sprintf("Red entry for %s.", Names[id-1])
}

// BlueFlavor is the English blue-version entry served for every species.
func BlueFlavor(id int) string {
	return fmt.Sprintf("Blue entry for %s.", Names[id-1])
}

func (s *Server) typ(w http.ResponseWriter, idOrName string) {
	typeName, typeID, ok := "", 0, false
	if id, err := strconv.Atoi(idOrName); err == nil {
		typeName, ok = lo.FindKey(typeIDs, id)
		typeID = id
	} else {
		typeID, ok = typeIDs[idOrName]
		typeName = idOrName
	}

	if !ok {
		http.Error(w, "Not Found", http.StatusNotFound)
		return
	}

	members := make([]map[string]any, 0)
	for id := 1; id <= Count; id++ {
		if slot := lo.IndexOf(TypesOf(id), typeName); slot >= 0 {
			members = append(members, map[string]any{
				"pokemon": s.resource("pokemon", id, Names[id-1]),
				"slot":    slot + 1,
			})
		}
	}

	writeJSON(w, map[string]any{
		"id":      typeID,
		"name":    typeName,
		"pokemon": members,
	})
}

// Members returns the ids of served pokemon having the type.
func Members(typeName string) []int {
	return lo.Filter(lo.RangeFrom(1, Count), func(id int, _ int) bool {
		return lo.Contains(TypesOf(id), typeName)
	})
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}
