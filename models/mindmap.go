// Package models holds the mind-map document model and the gorm records used
// to persist saved documents.
package models

// DefaultRootText is the text of the root node in a freshly created document.
const DefaultRootText = "Central Idea"

// DefaultRootPosition centers the root node in a typical viewport.
var DefaultRootPosition = Position{X: 400, Y: 300}

// MindMap is the full document: nodes, connections, and the id of the root
// node. The root node always exists and cannot be deleted.
type MindMap struct {
	ID          string        `json:"id"`
	Name        string        `json:"name"`
	Nodes       []*Node       `json:"nodes"`
	Connections []*Connection `json:"connections"`
	RootNodeID  string        `json:"rootNodeId"`
}

// NewMindMap creates an empty document with a single root node.
func NewMindMap(name string) *MindMap {
	root := NewNode(DefaultRootText, DefaultRootPosition, "")
	return &MindMap{
		ID:          NewID(),
		Name:        name,
		Nodes:       []*Node{root},
		Connections: []*Connection{},
		RootNodeID:  root.ID,
	}
}

// Node returns the node with the given id, or nil.
func (m *MindMap) Node(id string) *Node {
	for _, node := range m.Nodes {
		if node.ID == id {
			return node
		}
	}
	return nil
}

// Root returns the root node, or nil if the document is malformed.
func (m *MindMap) Root() *Node {
	return m.Node(m.RootNodeID)
}

// ConnectionBetween returns the connection for the ordered (source, target)
// pair, or nil.
func (m *MindMap) ConnectionBetween(sourceID, targetID string) *Connection {
	for _, conn := range m.Connections {
		if conn.SourceID == sourceID && conn.TargetID == targetID {
			return conn
		}
	}
	return nil
}

// Clone returns a deep copy of the document. History snapshots rely on clones
// being fully detached from the live document.
func (m *MindMap) Clone() *MindMap {
	clone := &MindMap{
		ID:          m.ID,
		Name:        m.Name,
		Nodes:       make([]*Node, len(m.Nodes)),
		Connections: make([]*Connection, len(m.Connections)),
		RootNodeID:  m.RootNodeID,
	}
	for i, node := range m.Nodes {
		clone.Nodes[i] = node.Clone()
	}
	for i, conn := range m.Connections {
		clone.Connections[i] = conn.Clone()
	}
	return clone
}
