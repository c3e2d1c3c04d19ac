// Package handlers exposes the mind-map editor over HTTP. Editing sessions
// are resolved from the {mapID} path segment; saved documents live in the
// database.
package handlers

import (
	"encoding/json"
	"net/http"

	"gorm.io/gorm"

	"github.com/mindweave/mindweave-api/models"
	"github.com/mindweave/mindweave-api/session"
	"github.com/mindweave/mindweave-api/store"
)

// Handler carries the database and the editing-session registry.
type Handler struct {
	DB       *gorm.DB
	Sessions *session.Registry
}

// MapState is the editor-facing view of a session: the document plus the
// ephemeral UI state the renderer needs.
type MapState struct {
	MapID          string          `json:"mapId"`
	Document       *models.MindMap `json:"document"`
	SelectedNodeID string          `json:"selectedNodeId,omitempty"`
	CanUndo        bool            `json:"canUndo"`
	CanRedo        bool            `json:"canRedo"`
}

func mapState(mapID string, s *store.Store) MapState {
	return MapState{
		MapID:          mapID,
		Document:       s.Document(),
		SelectedNodeID: s.Selected(),
		CanUndo:        s.CanUndo(),
		CanRedo:        s.CanRedo(),
	}
}

// sessionFor resolves the {mapID} path value to a live session, writing a
// 404 when it is unknown.
func (h *Handler) sessionFor(w http.ResponseWriter, r *http.Request) (string, *store.Store, bool) {
	mapID := r.PathValue("mapID")
	s, ok := h.Sessions.Get(mapID)
	if !ok {
		http.Error(w, "Mind map session not found", http.StatusNotFound)
		return "", nil, false
	}
	return mapID, s, true
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
