package models

// ConnectionType selects how a renderer draws the connector path.
type ConnectionType string

const (
	ConnectionStraight ConnectionType = "straight"
	ConnectionCurved   ConnectionType = "curved"
	ConnectionAngled   ConnectionType = "angled"
)

// Connection links two nodes. SourceID and TargetID must reference nodes in
// the same document; a document holds at most one connection per ordered
// (source, target) pair.
type Connection struct {
	ID       string         `json:"id"`
	SourceID string         `json:"sourceId"`
	TargetID string         `json:"targetId"`
	Type     ConnectionType `json:"type"`
	Color    string         `json:"color,omitempty"`
}

// NewConnection creates a connection with a fresh id.
func NewConnection(sourceID, targetID string, connType ConnectionType) *Connection {
	return &Connection{
		ID:       NewID(),
		SourceID: sourceID,
		TargetID: targetID,
		Type:     connType,
	}
}

// Clone returns a copy of the connection.
func (c *Connection) Clone() *Connection {
	clone := *c
	return &clone
}
