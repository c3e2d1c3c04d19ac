package handlers

import (
	"encoding/json"
	"net/http"
)

// CreateMap opens a new editing session with a fresh default document.
func (h *Handler) CreateMap(w http.ResponseWriter, r *http.Request) {
	var requestData struct {
		Name string `json:"name"`
	}
	// An empty body is fine; the document falls back to the default name.
	if r.Body != nil {
		_ = json.NewDecoder(r.Body).Decode(&requestData)
	}

	mapID, s := h.Sessions.Open(requestData.Name)

	writeJSON(w, http.StatusCreated, mapState(mapID, s))
}

// GetMap returns the session's current document and UI state.
func (h *Handler) GetMap(w http.ResponseWriter, r *http.Request) {
	mapID, s, ok := h.sessionFor(w, r)
	if !ok {
		return
	}

	writeJSON(w, http.StatusOK, mapState(mapID, s))
}

// CloseMap ends an editing session. Unsaved changes are discarded.
func (h *Handler) CloseMap(w http.ResponseWriter, r *http.Request) {
	mapID := r.PathValue("mapID")
	if !h.Sessions.Close(mapID) {
		http.Error(w, "Mind map session not found", http.StatusNotFound)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// UpdateSelection records which node the user has selected. Selection is
// ephemeral UI state and never enters history.
func (h *Handler) UpdateSelection(w http.ResponseWriter, r *http.Request) {
	mapID, s, ok := h.sessionFor(w, r)
	if !ok {
		return
	}

	var requestData struct {
		NodeID string `json:"nodeId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&requestData); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	s.Select(requestData.NodeID)

	writeJSON(w, http.StatusOK, mapState(mapID, s))
}
