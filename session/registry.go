// Package session tracks live editing sessions, one document store per
// session id.
package session

import (
	"sync"

	gonanoid "github.com/matoous/go-nanoid/v2"

	"github.com/mindweave/mindweave-api/models"
	"github.com/mindweave/mindweave-api/store"
	"github.com/mindweave/mindweave-api/suggest"
)

// Registry manages live editing sessions. Safe for concurrent use.
type Registry struct {
	mu       sync.RWMutex
	sessions map[string]*store.Store
	provider suggest.Provider
}

// NewRegistry creates an empty registry whose sessions use the given
// suggestion provider.
func NewRegistry(provider suggest.Provider) *Registry {
	return &Registry{
		sessions: make(map[string]*store.Store),
		provider: provider,
	}
}

// Open starts a session with a fresh default document. An empty name falls
// back to the store default.
func (r *Registry) Open(name string) (string, *store.Store) {
	return r.add(store.New(name, r.provider))
}

// OpenWith starts a session seeded from an existing document, for example
// one loaded from persistence.
func (r *Registry) OpenWith(doc *models.MindMap) (string, *store.Store) {
	return r.add(store.FromDocument(doc, r.provider))
}

func (r *Registry) add(s *store.Store) (string, *store.Store) {
	id := gonanoid.Must()
	r.mu.Lock()
	r.sessions[id] = s
	r.mu.Unlock()
	return id, s
}

// Get returns the session's store, if the session exists.
func (r *Registry) Get(id string) (*store.Store, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.sessions[id]
	return s, ok
}

// Close removes a session. Returns false if the session was unknown.
func (r *Registry) Close(id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.sessions[id]; !ok {
		return false
	}
	delete(r.sessions, id)
	return true
}

// Len returns the number of live sessions.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}
