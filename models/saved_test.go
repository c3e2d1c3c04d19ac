package models_test

import (
	"testing"

	"github.com/mindweave/mindweave-api/models"
)

func TestSavedRoundTrip(t *testing.T) {
	doc := models.NewMindMap("Trip Notes")
	root := doc.Root()
	root.Expanded = true
	root.Width = 140
	root.Height = 60

	child := models.NewNode("Packing", models.Position{X: 550, Y: 300}, root.ID)
	child.Shape = models.ShapeCircle
	child.FontFamily = "monospace"
	doc.Nodes = append(doc.Nodes, child)
	root.ChildrenIDs = append(root.ChildrenIDs, child.ID)

	conn := models.NewConnection(root.ID, child.ID, models.ConnectionAngled)
	conn.Color = "#00FF00"
	doc.Connections = append(doc.Connections, conn)

	saved, err := models.SavedFromDocument(doc)
	if err != nil {
		t.Fatalf("SavedFromDocument: %v", err)
	}
	if saved.DocumentID != doc.ID || saved.RootNodeID != doc.RootNodeID {
		t.Errorf("saved header mismatch: %s/%s", saved.DocumentID, saved.RootNodeID)
	}
	if len(saved.Nodes) != 2 || len(saved.Connections) != 1 {
		t.Fatalf("got %d node rows and %d connection rows, want 2 and 1",
			len(saved.Nodes), len(saved.Connections))
	}

	restored, err := saved.Document()
	if err != nil {
		t.Fatalf("Document: %v", err)
	}

	if restored.ID != doc.ID || restored.Name != doc.Name || restored.RootNodeID != doc.RootNodeID {
		t.Errorf("restored header mismatch: got %s/%q/%s",
			restored.ID, restored.Name, restored.RootNodeID)
	}

	restoredRoot := restored.Root()
	if restoredRoot == nil {
		t.Fatal("restored document lost its root")
	}
	if !restoredRoot.Expanded || restoredRoot.Width != 140 || restoredRoot.Height != 60 {
		t.Errorf("root attributes lost: %+v", restoredRoot)
	}
	if len(restoredRoot.ChildrenIDs) != 1 || restoredRoot.ChildrenIDs[0] != child.ID {
		t.Errorf("got childrenIds %v, want [%s]", restoredRoot.ChildrenIDs, child.ID)
	}

	restoredChild := restored.Node(child.ID)
	if restoredChild == nil {
		t.Fatal("restored document lost the child node")
	}
	if restoredChild.Shape != models.ShapeCircle || restoredChild.FontFamily != "monospace" {
		t.Errorf("child attributes lost: %+v", restoredChild)
	}
	if restoredChild.Position != child.Position {
		t.Errorf("got position %+v, want %+v", restoredChild.Position, child.Position)
	}

	restoredConn := restored.ConnectionBetween(root.ID, child.ID)
	if restoredConn == nil {
		t.Fatal("restored document lost the connection")
	}
	if restoredConn.ID != conn.ID || restoredConn.Type != models.ConnectionAngled ||
		restoredConn.Color != "#00FF00" {
		t.Errorf("connection attributes lost: %+v", restoredConn)
	}
}
