package store

import (
	"github.com/mindweave/mindweave-api/models"
)

// NodeUpdate is a partial node update. Nil fields are left untouched.
// Text, shape, colors, expanded, and children changes are significant;
// position, size, and font changes are cosmetic.
type NodeUpdate struct {
	Text        *string          `json:"text,omitempty"`
	Position    *models.Position `json:"position,omitempty"`
	Color       *string          `json:"color,omitempty"`
	TextColor   *string          `json:"textColor,omitempty"`
	FontFamily  *string          `json:"fontFamily,omitempty"`
	Shape       *models.Shape    `json:"shape,omitempty"`
	Width       *float64         `json:"width,omitempty"`
	Height      *float64         `json:"height,omitempty"`
	Expanded    *bool            `json:"expanded,omitempty"`
	ChildrenIDs []string         `json:"childrenIds,omitempty"`
}

func (u NodeUpdate) significant() bool {
	return u.Text != nil || u.Shape != nil || u.Color != nil ||
		u.TextColor != nil || u.Expanded != nil || u.ChildrenIDs != nil
}

// CreateNode inserts a new node and records a history snapshot. When
// parentID names an existing node, the new node is linked as its child, the
// parent is marked expanded, and a parent→child connection is ensured.
// Returns the new node's id.
func (s *Store) CreateNode(text string, pos models.Position, parentID string) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.createNodeLocked(text, pos, parentID)
	s.snapshotLocked()
	return id
}

// createNodeLocked inserts a node without snapshotting, so ExpandNode can
// batch several creations into one history entry. Callers must hold s.mu.
func (s *Store) createNodeLocked(text string, pos models.Position, parentID string) string {
	parent := s.current.Node(parentID)
	if parent == nil {
		parentID = ""
	}

	node := models.NewNode(text, pos, parentID)
	s.current.Nodes = append(s.current.Nodes, node)

	if parent != nil {
		parent.ChildrenIDs = append(parent.ChildrenIDs, node.ID)
		parent.Expanded = true
		if s.current.ConnectionBetween(parent.ID, node.ID) == nil {
			conn := models.NewConnection(parent.ID, node.ID, models.ConnectionCurved)
			s.current.Connections = append(s.current.Connections, conn)
		}
	}

	return node.ID
}

// UpdateNode merges the given fields into the node with the given id.
// Unknown ids are ignored. Only significant updates append a history
// snapshot; cosmetic ones mutate the current document in place.
func (s *Store) UpdateNode(id string, update NodeUpdate) {
	s.mu.Lock()
	defer s.mu.Unlock()

	node := s.current.Node(id)
	if node == nil {
		return
	}

	if update.Text != nil {
		node.Text = *update.Text
	}
	if update.Position != nil {
		node.Position = *update.Position
	}
	if update.Color != nil {
		node.Color = *update.Color
	}
	if update.TextColor != nil {
		node.TextColor = *update.TextColor
	}
	if update.FontFamily != nil {
		node.FontFamily = *update.FontFamily
	}
	if update.Shape != nil {
		node.Shape = *update.Shape
	}
	if update.Width != nil {
		node.Width = *update.Width
	}
	if update.Height != nil {
		node.Height = *update.Height
	}
	if update.Expanded != nil {
		node.Expanded = *update.Expanded
	}
	if update.ChildrenIDs != nil {
		node.ChildrenIDs = append([]string{}, update.ChildrenIDs...)
	}

	if update.significant() {
		s.snapshotLocked()
	}
}

// DeleteNode removes the node, all of its transitive descendants, and every
// connection touching a removed node, then records a snapshot and clears the
// selection. Deleting the root node or an unknown id is a silent no-op.
func (s *Store) DeleteNode(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if id == s.current.RootNodeID {
		return
	}
	node := s.current.Node(id)
	if node == nil {
		return
	}

	removed := s.descendantsLocked(id)
	removed[id] = true

	if parent := s.current.Node(node.ParentID); parent != nil {
		parent.RemoveChild(id)
	}

	nodes := s.current.Nodes[:0]
	for _, n := range s.current.Nodes {
		if !removed[n.ID] {
			nodes = append(nodes, n)
		}
	}
	s.current.Nodes = nodes

	conns := s.current.Connections[:0]
	for _, c := range s.current.Connections {
		if !removed[c.SourceID] && !removed[c.TargetID] {
			conns = append(conns, c)
		}
	}
	s.current.Connections = conns

	s.selected = ""
	s.snapshotLocked()
}

// descendantsLocked collects the transitive children of id via ChildrenIDs.
// Callers must hold s.mu.
func (s *Store) descendantsLocked(id string) map[string]bool {
	descendants := make(map[string]bool)
	queue := []string{id}
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		node := s.current.Node(current)
		if node == nil {
			continue
		}
		for _, childID := range node.ChildrenIDs {
			if !descendants[childID] {
				descendants[childID] = true
				queue = append(queue, childID)
			}
		}
	}
	return descendants
}
