package match

import (
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/zerchniv/matchserver/internal/catalog"
	"github.com/zerchniv/matchserver/internal/match/dispatch"
	"github.com/zerchniv/matchserver/internal/match/rules"
	"github.com/zerchniv/matchserver/internal/match/state"
	"github.com/zerchniv/matchserver/pkg/dice"
)

// Registry is the process-wide match id -> actor handle table: the
// process hosts many matches independently, each behind its own actor,
// and cmd/matchserver consults Registry to route an inbound WebSocket
// connection's frames to the right one.
type Registry struct {
	mu      sync.RWMutex
	matches map[string]*Actor
	catalog *catalog.Registry
	hooks   *rules.Engine
	log     *zap.Logger
}

// NewRegistry builds an empty registry. reg and hooks are shared,
// read-only across every match the registry creates; log, if nil,
// discards everything.
func NewRegistry(reg *catalog.Registry, hooks *rules.Engine, log *zap.Logger) *Registry {
	return &Registry{
		matches: make(map[string]*Actor),
		catalog: reg,
		hooks:   hooks,
		log:     log,
	}
}

// Create starts a new match actor for matchID with the given seat display
// names and rng seed, registers it, and launches its Run loop in a new
// goroutine. Returns an error if matchID is already in use.
func (r *Registry) Create(matchID string, seed int64, p1Name, p2Name string, cfg Config) (*Actor, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.matches[matchID]; exists {
		return nil, fmt.Errorf("match: room %q already exists", matchID)
	}

	m := state.New(matchID, seed, p1Name, p2Name)
	d := dispatch.NewDispatcher(m, r.catalog, dice.NewRoller(seed), r.hooks)
	actor := New(matchID, d, r.log, cfg)
	r.matches[matchID] = actor

	go actor.Run()
	go r.reapWhenDone(matchID, actor)

	return actor, nil
}

// Lookup returns the actor for matchID, if it is still running.
func (r *Registry) Lookup(matchID string) (*Actor, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	a, ok := r.matches[matchID]
	return a, ok
}

// Remove unregisters matchID without stopping its actor (used when the
// actor has already exited on its own).
func (r *Registry) Remove(matchID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.matches, matchID)
}

// Shutdown stops every running match actor, for process shutdown.
func (r *Registry) Shutdown() {
	r.mu.Lock()
	defer r.mu.Unlock()
	for id, a := range r.matches {
		a.Stop()
		delete(r.matches, id)
	}
}

// reapWhenDone removes matchID from the registry once its actor's Run
// loop returns, so finished matches don't accumulate in the map forever.
func (r *Registry) reapWhenDone(matchID string, a *Actor) {
	<-a.Done()
	r.Remove(matchID)
}
