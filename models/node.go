package models

import (
	gonanoid "github.com/matoous/go-nanoid/v2"
)

// Shape selects the outline a renderer draws for a node.
type Shape string

const (
	ShapeRectangle Shape = "rectangle"
	ShapeCircle    Shape = "circle"
	ShapeTriangle  Shape = "triangle"
	ShapeDiamond   Shape = "diamond"
)

// Default styling applied when a node is created. Root-level nodes get the
// darker fill, child nodes the lighter one.
const (
	RootColor      = "#4F46E5"
	RootTextColor  = "#FFFFFF"
	ChildColor     = "#C7D2FE"
	ChildTextColor = "#1E1B4B"
)

// Position is a point in document space.
type Position struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Node is a single mind-map node. ParentID is a non-owning back-reference;
// the document's node collection owns node lifetime. ChildrenIDs must always
// equal the set of nodes whose ParentID points back at this node, in
// insertion order.
type Node struct {
	ID          string   `json:"id"`
	Text        string   `json:"text"`
	Position    Position `json:"position"`
	Color       string   `json:"color,omitempty"`
	TextColor   string   `json:"textColor,omitempty"`
	FontFamily  string   `json:"fontFamily,omitempty"`
	Shape       Shape    `json:"shape,omitempty"`
	Width       float64  `json:"width,omitempty"`
	Height      float64  `json:"height,omitempty"`
	Expanded    bool     `json:"expanded,omitempty"`
	ParentID    string   `json:"parentId,omitempty"`
	ChildrenIDs []string `json:"childrenIds"`
}

// NewNode creates a node with a fresh id and default styling for its
// parented-ness. The caller is responsible for linking it into the document.
func NewNode(text string, pos Position, parentID string) *Node {
	node := &Node{
		ID:          NewID(),
		Text:        text,
		Position:    pos,
		Shape:       ShapeRectangle,
		ParentID:    parentID,
		ChildrenIDs: []string{},
	}

	if parentID == "" {
		node.Color = RootColor
		node.TextColor = RootTextColor
	} else {
		node.Color = ChildColor
		node.TextColor = ChildTextColor
	}

	return node
}

// Clone returns a deep copy of the node.
func (n *Node) Clone() *Node {
	clone := *n
	clone.ChildrenIDs = make([]string, len(n.ChildrenIDs))
	copy(clone.ChildrenIDs, n.ChildrenIDs)
	return &clone
}

// HasChild reports whether id is listed among the node's children.
func (n *Node) HasChild(id string) bool {
	for _, childID := range n.ChildrenIDs {
		if childID == id {
			return true
		}
	}
	return false
}

// RemoveChild strips id from the node's children list, if present.
func (n *Node) RemoveChild(id string) {
	for i, childID := range n.ChildrenIDs {
		if childID == id {
			n.ChildrenIDs = append(n.ChildrenIDs[:i], n.ChildrenIDs[i+1:]...)
			return
		}
	}
}

// NewID generates a nanoid for nodes, connections, and documents.
func NewID() string {
	return gonanoid.Must()
}
