package store_test

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/mindweave/mindweave-api/models"
	"github.com/mindweave/mindweave-api/store"
	"github.com/mindweave/mindweave-api/suggest"
)

func TestExpandNode_CreatesChildrenOnCircle(t *testing.T) {
	s := store.New("", staticProvider{suggestions: []string{"A", "B"}})
	rootID := s.Document().RootNodeID
	center := s.Document().Root().Position

	created, err := s.ExpandNode(context.Background(), rootID)
	if err != nil {
		t.Fatalf("ExpandNode: %v", err)
	}
	if len(created) != 2 {
		t.Fatalf("got %d created ids, want 2", len(created))
	}

	doc := s.Document()
	if !doc.Root().Expanded {
		t.Error("expanded node should be marked expanded")
	}

	// Two suggestions land at angles 0 and π around the parent.
	wantPositions := []models.Position{
		{X: center.X + store.ExpandRadius, Y: center.Y},
		{X: center.X - store.ExpandRadius, Y: center.Y},
	}
	for i, id := range created {
		child := doc.Node(id)
		if child == nil {
			t.Fatalf("created node %s missing from document", id)
		}
		if math.Abs(child.Position.X-wantPositions[i].X) > 1e-9 ||
			math.Abs(child.Position.Y-wantPositions[i].Y) > 1e-9 {
			t.Errorf("child %d at %+v, want %+v", i, child.Position, wantPositions[i])
		}

		conn := doc.ConnectionBetween(rootID, id)
		if conn == nil {
			t.Fatalf("child %d has no connection from the parent", i)
		}
		if conn.Type != models.ConnectionCurved {
			t.Errorf("got connection type %q, want %q", conn.Type, models.ConnectionCurved)
		}
		if child.Color != models.ChildColor {
			t.Errorf("got child color %q, want %q", child.Color, models.ChildColor)
		}
	}

	checkTreeConsistency(t, doc)
}

func TestExpandNode_SingleHistoryEntry(t *testing.T) {
	s := store.New("", staticProvider{suggestions: []string{"A", "B", "C"}})
	rootID := s.Document().RootNodeID

	if _, err := s.ExpandNode(context.Background(), rootID); err != nil {
		t.Fatalf("ExpandNode: %v", err)
	}

	// The whole expansion undoes in one step.
	s.Undo()
	doc := s.Document()
	if len(doc.Nodes) != 1 {
		t.Errorf("got %d nodes after undo, want 1", len(doc.Nodes))
	}
	if s.CanUndo() {
		t.Error("expansion should have recorded exactly one history entry")
	}
}

func TestExpandNode_SuggestionTexts(t *testing.T) {
	s := store.New("", staticProvider{suggestions: []string{"First", "Second"}})
	rootID := s.Document().RootNodeID

	created, err := s.ExpandNode(context.Background(), rootID)
	if err != nil {
		t.Fatalf("ExpandNode: %v", err)
	}

	doc := s.Document()
	want := []string{"First", "Second"}
	for i, id := range created {
		if got := doc.Node(id).Text; got != want[i] {
			t.Errorf("child %d: got text %q, want %q", i, got, want[i])
		}
	}
}

func TestExpandNode_ProviderErrorLeavesStateUntouched(t *testing.T) {
	s := store.New("", staticProvider{err: errors.New("provider down")})
	rootID := s.Document().RootNodeID

	created, err := s.ExpandNode(context.Background(), rootID)
	if err == nil {
		t.Fatal("expected an error from a failing provider")
	}
	if len(created) != 0 {
		t.Errorf("got %d created ids, want 0", len(created))
	}

	doc := s.Document()
	if len(doc.Nodes) != 1 {
		t.Errorf("got %d nodes, want 1 (no partial creation)", len(doc.Nodes))
	}
	if doc.Root().Expanded {
		t.Error("failed expansion should not mark the node expanded")
	}
	if s.CanUndo() {
		t.Error("failed expansion should not grow history")
	}
}

func TestExpandNode_EmptySuggestionsStillMarksExpanded(t *testing.T) {
	s := store.New("", staticProvider{})
	rootID := s.Document().RootNodeID

	created, err := s.ExpandNode(context.Background(), rootID)
	if err != nil {
		t.Fatalf("ExpandNode: %v", err)
	}
	if len(created) != 0 {
		t.Errorf("got %d created ids, want 0", len(created))
	}

	doc := s.Document()
	if !doc.Root().Expanded {
		t.Error("a successful fetch should mark the node expanded even with no suggestions")
	}
	if len(doc.Nodes) != 1 {
		t.Errorf("got %d nodes, want 1", len(doc.Nodes))
	}
	if !s.CanUndo() {
		t.Error("the expanded flag change should be undoable")
	}
}

func TestExpandNode_UnknownNode(t *testing.T) {
	s := store.New("", staticProvider{suggestions: []string{"A"}})

	_, err := s.ExpandNode(context.Background(), "no-such-node")
	if !errors.Is(err, store.ErrNodeNotFound) {
		t.Errorf("got error %v, want ErrNodeNotFound", err)
	}
}

func TestExpandNode_FallbackProvider(t *testing.T) {
	failing := staticProvider{err: errors.New("provider down")}
	provider := suggest.WithFallback(failing, suggest.Derived{})

	s := store.New("", provider)
	rootID := s.Document().RootNodeID

	created, err := s.ExpandNode(context.Background(), rootID)
	if err != nil {
		t.Fatalf("expansion with fallback should never fail: %v", err)
	}
	if len(created) == 0 {
		t.Fatal("fallback should still produce children")
	}

	doc := s.Document()
	for _, id := range created {
		if doc.ConnectionBetween(rootID, id) == nil {
			t.Errorf("fallback child %s has no connection", id)
		}
	}
}
