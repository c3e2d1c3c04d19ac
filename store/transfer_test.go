package store_test

import (
	"errors"
	"testing"

	"github.com/mindweave/mindweave-api/models"
	"github.com/mindweave/mindweave-api/store"
)

func TestExportImport_RoundTrip(t *testing.T) {
	s := store.New("Project Plan", staticProvider{})
	rootID := s.Document().RootNodeID
	a := s.CreateNode("a", models.Position{X: 10, Y: 20}, rootID)
	s.CreateNode("b", models.Position{X: 30, Y: 40}, a)

	data, err := s.Export()
	if err != nil {
		t.Fatalf("Export: %v", err)
	}

	other := store.New("", staticProvider{})
	if err := other.Import(data); err != nil {
		t.Fatalf("Import: %v", err)
	}

	want := s.Document()
	got := other.Document()

	if got.ID != want.ID || got.Name != want.Name || got.RootNodeID != want.RootNodeID {
		t.Errorf("document header mismatch: got %s/%q/%s, want %s/%q/%s",
			got.ID, got.Name, got.RootNodeID, want.ID, want.Name, want.RootNodeID)
	}

	if len(got.Nodes) != len(want.Nodes) {
		t.Fatalf("got %d nodes, want %d", len(got.Nodes), len(want.Nodes))
	}
	for _, wantNode := range want.Nodes {
		gotNode := got.Node(wantNode.ID)
		if gotNode == nil {
			t.Errorf("node %s missing after import", wantNode.ID)
			continue
		}
		if gotNode.Text != wantNode.Text || gotNode.Position != wantNode.Position ||
			gotNode.ParentID != wantNode.ParentID {
			t.Errorf("node %s mismatch: got %+v, want %+v", wantNode.ID, gotNode, wantNode)
		}
	}

	if len(got.Connections) != len(want.Connections) {
		t.Fatalf("got %d connections, want %d", len(got.Connections), len(want.Connections))
	}
	for _, wantConn := range want.Connections {
		gotConn := got.ConnectionBetween(wantConn.SourceID, wantConn.TargetID)
		if gotConn == nil {
			t.Errorf("connection %s→%s missing after import", wantConn.SourceID, wantConn.TargetID)
			continue
		}
		if gotConn.ID != wantConn.ID {
			t.Errorf("got connection id %s, want %s", gotConn.ID, wantConn.ID)
		}
	}
}

func TestImport_ResetsHistory(t *testing.T) {
	s := store.New("", staticProvider{})
	rootID := s.Document().RootNodeID
	s.CreateNode("a", models.Position{}, rootID)

	data, err := s.Export()
	if err != nil {
		t.Fatalf("Export: %v", err)
	}

	if err := s.Import(data); err != nil {
		t.Fatalf("Import: %v", err)
	}
	if s.CanUndo() || s.CanRedo() {
		t.Error("import should reset history to a single entry")
	}
}

func TestImport_InvalidPayloads(t *testing.T) {
	tests := []struct {
		name    string
		payload string
	}{
		{"not json", "not json at all"},
		{"not an object", `[1, 2, 3]`},
		{"missing nodes", `{"connections": []}`},
		{"missing connections", `{"nodes": []}`},
		{"nodes not an array", `{"nodes": {}, "connections": []}`},
		{"connections not an array", `{"nodes": [], "connections": "nope"}`},
		{"null node entry", `{"nodes": [null], "connections": []}`},
		{"null connection entry", `{"nodes": [], "connections": [null]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := store.New("", staticProvider{})
			rootID := s.Document().RootNodeID
			s.CreateNode("keep me", models.Position{}, rootID)
			before := s.Document()

			err := s.Import([]byte(tt.payload))
			if !errors.Is(err, store.ErrInvalidDocument) {
				t.Fatalf("got error %v, want ErrInvalidDocument", err)
			}

			after := s.Document()
			if len(after.Nodes) != len(before.Nodes) {
				t.Errorf("failed import changed the document: %d nodes, want %d",
					len(after.Nodes), len(before.Nodes))
			}
			if !s.CanUndo() {
				t.Error("failed import should leave history untouched")
			}

			// The session must stay fully usable after the rejection.
			s.Undo()
			s.Redo()
			if got := len(s.Document().Nodes); got != len(before.Nodes) {
				t.Errorf("store unusable after rejected import: got %d nodes, want %d",
					got, len(before.Nodes))
			}
		})
	}
}

func TestImport_MinimalDocumentAccepted(t *testing.T) {
	s := store.New("", staticProvider{})

	// Any object with nodes and connections arrays is accepted; no schema
	// version, no further validation.
	err := s.Import([]byte(`{"nodes": [], "connections": []}`))
	if err != nil {
		t.Fatalf("Import: %v", err)
	}

	if got := len(s.Document().Nodes); got != 0 {
		t.Errorf("got %d nodes, want 0", got)
	}
}

func TestClear_ResetsDocumentAndHistory(t *testing.T) {
	s := store.New("Old Map", staticProvider{})
	rootID := s.Document().RootNodeID
	s.CreateNode("a", models.Position{}, rootID)
	s.Select(rootID)

	s.Clear()

	doc := s.Document()
	if len(doc.Nodes) != 1 {
		t.Errorf("got %d nodes, want 1", len(doc.Nodes))
	}
	if doc.Root() == nil || doc.Root().Text != models.DefaultRootText {
		t.Error("cleared document should have a fresh root node")
	}
	if s.CanUndo() || s.CanRedo() {
		t.Error("clear should reset history to a single entry")
	}
	if s.Selected() != "" {
		t.Error("clear should drop the selection")
	}
}
