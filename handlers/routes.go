package handlers

import "net/http"

// Routes builds the API mux.
func (h *Handler) Routes() *http.ServeMux {
	mux := http.NewServeMux()

	// Editing sessions
	mux.HandleFunc("POST /api/maps", h.CreateMap)
	mux.HandleFunc("GET /api/maps/{mapID}", h.GetMap)
	mux.HandleFunc("DELETE /api/maps/{mapID}", h.CloseMap)
	mux.HandleFunc("PUT /api/maps/{mapID}/selection", h.UpdateSelection)

	// Node mutations
	mux.HandleFunc("POST /api/maps/{mapID}/nodes", h.CreateNode)
	mux.HandleFunc("PUT /api/maps/{mapID}/nodes/{nodeID}", h.UpdateNode)
	mux.HandleFunc("DELETE /api/maps/{mapID}/nodes/{nodeID}", h.DeleteNode)
	mux.HandleFunc("POST /api/maps/{mapID}/nodes/{nodeID}/expand", h.ExpandNode)

	// History
	mux.HandleFunc("POST /api/maps/{mapID}/undo", h.Undo)
	mux.HandleFunc("POST /api/maps/{mapID}/redo", h.Redo)

	// Import/export
	mux.HandleFunc("GET /api/maps/{mapID}/export", h.ExportMap)
	mux.HandleFunc("POST /api/maps/{mapID}/import", h.ImportMap)
	mux.HandleFunc("POST /api/maps/{mapID}/clear", h.ClearMap)

	// Saved documents
	mux.HandleFunc("POST /api/maps/{mapID}/save", h.SaveMap)
	mux.HandleFunc("GET /api/saved", h.ListSaved)
	mux.HandleFunc("GET /api/saved/{publicID}", h.GetSaved)
	mux.HandleFunc("POST /api/saved/{publicID}/open", h.OpenSaved)
	mux.HandleFunc("DELETE /api/saved/{publicID}", h.DeleteSaved)

	return mux
}
