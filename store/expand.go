package store

import (
	"context"
	"fmt"
	"math"

	"github.com/mindweave/mindweave-api/models"
)

// ExpandRadius is the distance from a node to the children created for it.
const ExpandRadius = 150.0

// ExpandNode fetches suggestions for the node's text and attaches one child
// per suggestion, evenly spaced on a circle around the node. The whole
// expansion lands as a single history entry.
//
// The provider fetch runs outside the store lock, so other mutations may
// interleave with it. Results are merged into whatever the document looks
// like at apply time: if the node was deleted during the fetch, the
// expansion is silently dropped. A provider failure aborts before any node
// is created, leaving the document untouched.
func (s *Store) ExpandNode(ctx context.Context, id string) ([]string, error) {
	s.mu.Lock()
	node := s.current.Node(id)
	if node == nil {
		s.mu.Unlock()
		return nil, fmt.Errorf("%w: %s", ErrNodeNotFound, id)
	}
	text := node.Text
	s.mu.Unlock()

	suggestions, err := s.provider.FetchSuggestions(ctx, text)
	if err != nil {
		return nil, fmt.Errorf("fetch suggestions: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	// Re-resolve: the document may have changed while the fetch was in
	// flight, and the node may be gone entirely.
	node = s.current.Node(id)
	if node == nil {
		return nil, nil
	}
	node.Expanded = true

	center := node.Position
	created := make([]string, 0, len(suggestions))
	for i, suggestion := range suggestions {
		angle := 2 * math.Pi * float64(i) / float64(len(suggestions))
		pos := models.Position{
			X: center.X + ExpandRadius*math.Cos(angle),
			Y: center.Y + ExpandRadius*math.Sin(angle),
		}
		childID := s.createNodeLocked(suggestion, pos, id)

		// createNodeLocked already links and connects, but re-check against
		// the live document so a raced mutation cannot leave a child without
		// its connection or colors.
		if s.current.ConnectionBetween(id, childID) == nil {
			conn := models.NewConnection(id, childID, models.ConnectionCurved)
			s.current.Connections = append(s.current.Connections, conn)
		}
		if child := s.current.Node(childID); child != nil {
			child.Color = models.ChildColor
			child.TextColor = models.ChildTextColor
		}

		created = append(created, childID)
	}

	s.snapshotLocked()
	return created, nil
}
