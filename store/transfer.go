package store

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/mindweave/mindweave-api/models"
)

// Export serializes the current document as indented JSON. Non-mutating.
func (s *Store) Export() ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return json.MarshalIndent(s.current, "", "  ")
}

// Import replaces the document wholesale with the decoded payload and resets
// history to a single entry. The payload must be a JSON object whose "nodes"
// and "connections" fields are arrays; anything else fails with
// ErrInvalidDocument and leaves the store unchanged.
func (s *Store) Import(data []byte) error {
	var probe map[string]json.RawMessage
	if err := json.Unmarshal(data, &probe); err != nil {
		return fmt.Errorf("%w: not a JSON object", ErrInvalidDocument)
	}
	if !isJSONArray(probe["nodes"]) {
		return fmt.Errorf("%w: missing nodes array", ErrInvalidDocument)
	}
	if !isJSONArray(probe["connections"]) {
		return fmt.Errorf("%w: missing connections array", ErrInvalidDocument)
	}

	var doc models.MindMap
	if err := json.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidDocument, err)
	}

	// JSON null decodes into a nil element; those would blow up every later
	// traversal of the document.
	for _, node := range doc.Nodes {
		if node == nil {
			return fmt.Errorf("%w: null node entry", ErrInvalidDocument)
		}
	}
	for _, conn := range doc.Connections {
		if conn == nil {
			return fmt.Errorf("%w: null connection entry", ErrInvalidDocument)
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.replaceLocked(&doc)
	return nil
}

// Clear resets the store to a fresh default document with a single-entry
// history.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.replaceLocked(models.NewMindMap(DefaultName))
}

func isJSONArray(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) > 0 && trimmed[0] == '['
}
