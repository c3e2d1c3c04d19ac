package handlers

import (
	"net/http"

	gonanoid "github.com/matoous/go-nanoid/v2"

	"github.com/mindweave/mindweave-api/models"
)

// SavedSummary is the list view of a saved mind map.
type SavedSummary struct {
	PublicID  string `json:"publicId"`
	Name      string `json:"name"`
	UpdatedAt string `json:"updatedAt"`
}

// SaveMap persists the session's current document, upserting by document id.
// An existing save has its node and connection rows replaced wholesale.
func (h *Handler) SaveMap(w http.ResponseWriter, r *http.Request) {
	_, s, ok := h.sessionFor(w, r)
	if !ok {
		return
	}

	doc := s.Document()
	saved, err := models.SavedFromDocument(doc)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	tx := h.DB.Begin()
	if tx.Error != nil {
		http.Error(w, "Could not begin transaction", http.StatusInternalServerError)
		return
	}

	var existing models.SavedMindMap
	err = tx.Where("document_id = ?", doc.ID).First(&existing).Error
	if err != nil {
		if err.Error() != "record not found" {
			tx.Rollback()
			http.Error(w, "Failed to query saved mind map: "+err.Error(), http.StatusInternalServerError)
			return
		}

		publicID, err := gonanoid.New()
		if err != nil {
			tx.Rollback()
			http.Error(w, "Failed to generate public ID", http.StatusInternalServerError)
			return
		}
		saved.PublicID = publicID

		if err := tx.Omit("Nodes", "Connections").Create(saved).Error; err != nil {
			tx.Rollback()
			http.Error(w, "Failed to create saved mind map: "+err.Error(), http.StatusInternalServerError)
			return
		}
	} else {
		existing.Name = saved.Name
		existing.RootNodeID = saved.RootNodeID
		if err := tx.Omit("Nodes", "Connections").Save(&existing).Error; err != nil {
			tx.Rollback()
			http.Error(w, "Failed to update saved mind map: "+err.Error(), http.StatusInternalServerError)
			return
		}

		// Replace the old rows wholesale alongside the updated header.
		if err := tx.Where("mind_map_id = ?", existing.ID).Delete(&models.SavedNode{}).Error; err != nil {
			tx.Rollback()
			http.Error(w, "Failed to remove old nodes: "+err.Error(), http.StatusInternalServerError)
			return
		}
		if err := tx.Where("mind_map_id = ?", existing.ID).Delete(&models.SavedConnection{}).Error; err != nil {
			tx.Rollback()
			http.Error(w, "Failed to remove old connections: "+err.Error(), http.StatusInternalServerError)
			return
		}

		saved.PublicID = existing.PublicID
		saved.Model = existing.Model
	}

	for i := range saved.Nodes {
		saved.Nodes[i].MindMapID = saved.ID
		if err := tx.Create(&saved.Nodes[i]).Error; err != nil {
			tx.Rollback()
			http.Error(w, "Failed to save node: "+err.Error(), http.StatusInternalServerError)
			return
		}
	}
	for i := range saved.Connections {
		saved.Connections[i].MindMapID = saved.ID
		if err := tx.Create(&saved.Connections[i]).Error; err != nil {
			tx.Rollback()
			http.Error(w, "Failed to save connection: "+err.Error(), http.StatusInternalServerError)
			return
		}
	}

	if err := tx.Commit().Error; err != nil {
		http.Error(w, "Could not commit transaction", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, SavedSummary{
		PublicID:  saved.PublicID,
		Name:      saved.Name,
		UpdatedAt: saved.UpdatedAt.Format("2006-01-02T15:04:05Z07:00"),
	})
}

// ListSaved returns summaries of every saved mind map.
func (h *Handler) ListSaved(w http.ResponseWriter, r *http.Request) {
	var maps []models.SavedMindMap
	if err := h.DB.Order("updated_at desc").Find(&maps).Error; err != nil {
		http.Error(w, "Error retrieving saved mind maps", http.StatusInternalServerError)
		return
	}

	summaries := make([]SavedSummary, 0, len(maps))
	for _, m := range maps {
		summaries = append(summaries, SavedSummary{
			PublicID:  m.PublicID,
			Name:      m.Name,
			UpdatedAt: m.UpdatedAt.Format("2006-01-02T15:04:05Z07:00"),
		})
	}

	writeJSON(w, http.StatusOK, summaries)
}

// loadSaved fetches a saved map with its rows by public id.
func (h *Handler) loadSaved(w http.ResponseWriter, publicID string) (*models.SavedMindMap, bool) {
	var saved models.SavedMindMap
	err := h.DB.
		Preload("Nodes").
		Preload("Connections").
		Where("public_id = ?", publicID).
		First(&saved).Error
	if err != nil {
		http.Error(w, "Saved mind map not found", http.StatusNotFound)
		return nil, false
	}
	return &saved, true
}

// GetSaved returns a saved document in the export JSON format.
func (h *Handler) GetSaved(w http.ResponseWriter, r *http.Request) {
	saved, ok := h.loadSaved(w, r.PathValue("publicID"))
	if !ok {
		return
	}

	doc, err := saved.Document()
	if err != nil {
		http.Error(w, "Error decoding saved mind map", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, doc)
}

// OpenSaved starts a new editing session seeded from a saved document.
func (h *Handler) OpenSaved(w http.ResponseWriter, r *http.Request) {
	saved, ok := h.loadSaved(w, r.PathValue("publicID"))
	if !ok {
		return
	}

	doc, err := saved.Document()
	if err != nil {
		http.Error(w, "Error decoding saved mind map", http.StatusInternalServerError)
		return
	}

	mapID, s := h.Sessions.OpenWith(doc)

	writeJSON(w, http.StatusCreated, mapState(mapID, s))
}

// DeleteSaved removes a saved mind map and its rows.
func (h *Handler) DeleteSaved(w http.ResponseWriter, r *http.Request) {
	saved, ok := h.loadSaved(w, r.PathValue("publicID"))
	if !ok {
		return
	}

	tx := h.DB.Begin()
	if tx.Error != nil {
		http.Error(w, "Could not begin transaction", http.StatusInternalServerError)
		return
	}

	if err := tx.Where("mind_map_id = ?", saved.ID).Delete(&models.SavedNode{}).Error; err != nil {
		tx.Rollback()
		http.Error(w, "Failed to delete nodes: "+err.Error(), http.StatusInternalServerError)
		return
	}
	if err := tx.Where("mind_map_id = ?", saved.ID).Delete(&models.SavedConnection{}).Error; err != nil {
		tx.Rollback()
		http.Error(w, "Failed to delete connections: "+err.Error(), http.StatusInternalServerError)
		return
	}
	if err := tx.Delete(&models.SavedMindMap{}, saved.ID).Error; err != nil {
		tx.Rollback()
		http.Error(w, "Failed to delete saved mind map: "+err.Error(), http.StatusInternalServerError)
		return
	}

	if err := tx.Commit().Error; err != nil {
		http.Error(w, "Could not commit transaction", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
