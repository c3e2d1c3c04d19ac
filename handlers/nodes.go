package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/mindweave/mindweave-api/models"
	"github.com/mindweave/mindweave-api/store"
)

// defaultNodeText seeds nodes created without text (double-click on canvas).
const defaultNodeText = "New Idea"

// CreateNode inserts a node into the session's document.
func (h *Handler) CreateNode(w http.ResponseWriter, r *http.Request) {
	mapID, s, ok := h.sessionFor(w, r)
	if !ok {
		return
	}

	var requestData struct {
		Text     string          `json:"text"`
		Position models.Position `json:"position"`
		ParentID string          `json:"parentId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&requestData); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if requestData.Text == "" {
		requestData.Text = defaultNodeText
	}

	nodeID := s.CreateNode(requestData.Text, requestData.Position, requestData.ParentID)

	writeJSON(w, http.StatusCreated, struct {
		NodeID string `json:"nodeId"`
		MapState
	}{NodeID: nodeID, MapState: mapState(mapID, s)})
}

// UpdateNode merges a partial update into a node. Updates addressed to an
// unknown node id are accepted and dropped.
func (h *Handler) UpdateNode(w http.ResponseWriter, r *http.Request) {
	mapID, s, ok := h.sessionFor(w, r)
	if !ok {
		return
	}

	var update store.NodeUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	s.UpdateNode(r.PathValue("nodeID"), update)

	writeJSON(w, http.StatusOK, mapState(mapID, s))
}

// DeleteNode removes a node and its subtree. Deleting the root or an unknown
// node leaves the document unchanged.
func (h *Handler) DeleteNode(w http.ResponseWriter, r *http.Request) {
	mapID, s, ok := h.sessionFor(w, r)
	if !ok {
		return
	}

	s.DeleteNode(r.PathValue("nodeID"))

	writeJSON(w, http.StatusOK, mapState(mapID, s))
}

// ExpandNode generates suggestion children for a node.
func (h *Handler) ExpandNode(w http.ResponseWriter, r *http.Request) {
	mapID, s, ok := h.sessionFor(w, r)
	if !ok {
		return
	}

	created, err := s.ExpandNode(r.Context(), r.PathValue("nodeID"))
	if err != nil {
		if errors.Is(err, store.ErrNodeNotFound) {
			http.Error(w, "Node not found", http.StatusNotFound)
			return
		}
		http.Error(w, "Failed to fetch suggestions", http.StatusBadGateway)
		return
	}

	writeJSON(w, http.StatusOK, struct {
		CreatedIDs []string `json:"createdIds"`
		MapState
	}{CreatedIDs: created, MapState: mapState(mapID, s)})
}
