// Package store implements the mind-map document store: the current
// document, its snapshot history, and every mutation the editor performs.
//
// Mutations come in two flavors. Significant mutations (structure, text,
// shape, color, expansion) truncate any redo future and append a full
// document snapshot. Cosmetic mutations (position, size) edit the current
// document in place so that continuous drags do not flood the history.
package store

import (
	"sync"

	"github.com/mindweave/mindweave-api/models"
	"github.com/mindweave/mindweave-api/suggest"
)

// DefaultName is the name of a freshly created document.
const DefaultName = "Untitled Mind Map"

// Store holds one editing session: the live document, the snapshot history
// with its index, and the ephemeral selection. All methods are safe for
// concurrent use.
type Store struct {
	mu       sync.Mutex
	current  *models.MindMap
	history  []*models.MindMap
	index    int
	selected string
	provider suggest.Provider
}

// New creates a store with a fresh default document and a single-entry
// history.
func New(name string, provider suggest.Provider) *Store {
	if name == "" {
		name = DefaultName
	}
	doc := models.NewMindMap(name)
	return &Store{
		current:  doc,
		history:  []*models.MindMap{doc.Clone()},
		provider: provider,
	}
}

// FromDocument creates a store seeded with an existing document, for example
// one loaded from persistence. History starts over at that document.
func FromDocument(doc *models.MindMap, provider suggest.Provider) *Store {
	return &Store{
		current:  doc,
		history:  []*models.MindMap{doc.Clone()},
		provider: provider,
	}
}

// Document returns a deep copy of the current document.
func (s *Store) Document() *models.MindMap {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current.Clone()
}

// Select records the selected node id. Selection is UI state: it is never
// snapshotted and is cleared by deletes, undo, and redo.
func (s *Store) Select(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selected = id
}

// Selected returns the selected node id, or "".
func (s *Store) Selected() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.selected
}

// CanUndo reports whether a snapshot exists before the current one.
func (s *Store) CanUndo() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.index > 0
}

// CanRedo reports whether a snapshot exists after the current one.
func (s *Store) CanRedo() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.index < len(s.history)-1
}

// Undo replaces the current document with the previous snapshot. No-op at
// the start of history.
func (s *Store) Undo() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.index == 0 {
		return
	}
	s.index--
	s.current = s.history[s.index].Clone()
	s.selected = ""
}

// Redo replaces the current document with the next snapshot. No-op at the
// end of history.
func (s *Store) Redo() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.index >= len(s.history)-1 {
		return
	}
	s.index++
	s.current = s.history[s.index].Clone()
	s.selected = ""
}

// snapshotLocked records the current document as a new history entry,
// discarding any redo future. Callers must hold s.mu.
func (s *Store) snapshotLocked() {
	s.history = append(s.history[:s.index+1], s.current.Clone())
	s.index++
}

// replaceLocked swaps in a new document wholesale and resets history to a
// single entry. The snapshot is taken before the swap so a document that
// fails to clone cannot end up installed. Callers must hold s.mu.
func (s *Store) replaceLocked(doc *models.MindMap) {
	snapshot := doc.Clone()
	s.current = doc
	s.history = []*models.MindMap{snapshot}
	s.index = 0
	s.selected = ""
}
