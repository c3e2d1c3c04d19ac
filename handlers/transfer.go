package handlers

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/mindweave/mindweave-api/store"
)

// maxImportSize bounds import payloads at 10 MiB.
const maxImportSize = 10 << 20

// ExportMap serves the session's document as a JSON download.
func (h *Handler) ExportMap(w http.ResponseWriter, r *http.Request) {
	_, s, ok := h.sessionFor(w, r)
	if !ok {
		return
	}

	data, err := s.Export()
	if err != nil {
		http.Error(w, "Error exporting mind map", http.StatusInternalServerError)
		return
	}

	name := s.Document().Name
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", name+".json"))
	w.Write(data)
}

// ImportMap replaces the session's document with the posted JSON document.
// A malformed payload is rejected with the validation message and the
// session keeps its current document and history.
func (h *Handler) ImportMap(w http.ResponseWriter, r *http.Request) {
	mapID, s, ok := h.sessionFor(w, r)
	if !ok {
		return
	}

	data, err := io.ReadAll(io.LimitReader(r.Body, maxImportSize))
	if err != nil {
		http.Error(w, "Error reading import payload", http.StatusBadRequest)
		return
	}

	if err := s.Import(data); err != nil {
		if errors.Is(err, store.ErrInvalidDocument) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		http.Error(w, "Error importing mind map", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, mapState(mapID, s))
}

// ClearMap resets the session to a fresh default document.
func (h *Handler) ClearMap(w http.ResponseWriter, r *http.Request) {
	mapID, s, ok := h.sessionFor(w, r)
	if !ok {
		return
	}

	s.Clear()

	writeJSON(w, http.StatusOK, mapState(mapID, s))
}
