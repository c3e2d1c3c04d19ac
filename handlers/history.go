package handlers

import "net/http"

// Undo steps the session back one history snapshot. At the start of history
// it does nothing and still reports the current state.
func (h *Handler) Undo(w http.ResponseWriter, r *http.Request) {
	mapID, s, ok := h.sessionFor(w, r)
	if !ok {
		return
	}

	s.Undo()

	writeJSON(w, http.StatusOK, mapState(mapID, s))
}

// Redo steps the session forward one history snapshot.
func (h *Handler) Redo(w http.ResponseWriter, r *http.Request) {
	mapID, s, ok := h.sessionFor(w, r)
	if !ok {
		return
	}

	s.Redo()

	writeJSON(w, http.StatusOK, mapState(mapID, s))
}
