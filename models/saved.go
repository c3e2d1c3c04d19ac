package models

import (
	"encoding/json"
	"fmt"

	"gorm.io/gorm"
)

// SavedMindMap is the persisted form of a document. One row per saved map;
// nodes and connections live in their own tables keyed by MindMapID.
type SavedMindMap struct {
	gorm.Model
	PublicID   string `gorm:"not null;size:100;uniqueIndex"`
	DocumentID string `gorm:"not null;size:100;uniqueIndex"`
	Name       string `gorm:"not null;size:200"`
	RootNodeID string `gorm:"not null;size:100"`

	Nodes       []SavedNode       `gorm:"foreignKey:MindMapID"`
	Connections []SavedConnection `gorm:"foreignKey:MindMapID"`
}

// SavedNode is one node row of a saved document.
type SavedNode struct {
	gorm.Model
	MindMapID  uint    `gorm:"not null;index"`
	NodeID     string  `gorm:"not null;size:100"`
	Text       string  `gorm:"not null;size:1000"`
	XPosition  float64 `gorm:"not null"`
	YPosition  float64 `gorm:"not null"`
	Color      string  `gorm:"size:50"`
	TextColor  string  `gorm:"size:50"`
	FontFamily string  `gorm:"size:100"`
	Shape      string  `gorm:"size:20"`
	Width      float64
	Height     float64
	Expanded   bool   `gorm:"default:false"`
	ParentID   string `gorm:"size:100"`
	// ChildOrder is the node's childrenIds as a JSON array, preserving order.
	ChildOrder string `gorm:"size:4000"`
}

// SavedConnection is one connection row of a saved document.
type SavedConnection struct {
	gorm.Model
	MindMapID    uint   `gorm:"not null;index"`
	ConnectionID string `gorm:"not null;size:100"`
	SourceID     string `gorm:"not null;size:100"`
	TargetID     string `gorm:"not null;size:100"`
	Type         string `gorm:"size:20"`
	Color        string `gorm:"size:50"`
}

// SavedFromDocument converts a document into its persisted form. The returned
// record carries no gorm IDs; the caller assigns PublicID and persists it.
func SavedFromDocument(doc *MindMap) (*SavedMindMap, error) {
	saved := &SavedMindMap{
		DocumentID: doc.ID,
		Name:       doc.Name,
		RootNodeID: doc.RootNodeID,
	}

	for _, node := range doc.Nodes {
		childOrder, err := json.Marshal(node.ChildrenIDs)
		if err != nil {
			return nil, fmt.Errorf("encode children of node %s: %w", node.ID, err)
		}
		saved.Nodes = append(saved.Nodes, SavedNode{
			NodeID:     node.ID,
			Text:       node.Text,
			XPosition:  node.Position.X,
			YPosition:  node.Position.Y,
			Color:      node.Color,
			TextColor:  node.TextColor,
			FontFamily: node.FontFamily,
			Shape:      string(node.Shape),
			Width:      node.Width,
			Height:     node.Height,
			Expanded:   node.Expanded,
			ParentID:   node.ParentID,
			ChildOrder: string(childOrder),
		})
	}

	for _, conn := range doc.Connections {
		saved.Connections = append(saved.Connections, SavedConnection{
			ConnectionID: conn.ID,
			SourceID:     conn.SourceID,
			TargetID:     conn.TargetID,
			Type:         string(conn.Type),
			Color:        conn.Color,
		})
	}

	return saved, nil
}

// Document reconstructs the in-memory document from its persisted rows.
func (s *SavedMindMap) Document() (*MindMap, error) {
	doc := &MindMap{
		ID:          s.DocumentID,
		Name:        s.Name,
		Nodes:       make([]*Node, 0, len(s.Nodes)),
		Connections: make([]*Connection, 0, len(s.Connections)),
		RootNodeID:  s.RootNodeID,
	}

	for _, row := range s.Nodes {
		node := &Node{
			ID:          row.NodeID,
			Text:        row.Text,
			Position:    Position{X: row.XPosition, Y: row.YPosition},
			Color:       row.Color,
			TextColor:   row.TextColor,
			FontFamily:  row.FontFamily,
			Shape:       Shape(row.Shape),
			Width:       row.Width,
			Height:      row.Height,
			Expanded:    row.Expanded,
			ParentID:    row.ParentID,
			ChildrenIDs: []string{},
		}
		if row.ChildOrder != "" {
			if err := json.Unmarshal([]byte(row.ChildOrder), &node.ChildrenIDs); err != nil {
				return nil, fmt.Errorf("decode children of node %s: %w", row.NodeID, err)
			}
		}
		doc.Nodes = append(doc.Nodes, node)
	}

	for _, row := range s.Connections {
		doc.Connections = append(doc.Connections, &Connection{
			ID:       row.ConnectionID,
			SourceID: row.SourceID,
			TargetID: row.TargetID,
			Type:     ConnectionType(row.Type),
			Color:    row.Color,
		})
	}

	return doc, nil
}
