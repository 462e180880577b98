package handler

import (
	"net/http"
	"strings"

	"github.com/gesem/isp-service/internal/service"
)

type noteRequest struct {
	Content string `json:"content"`
}

// ListNotes handles GET /api/notes
func (h *Handler) ListNotes(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}

	notes, err := h.svc.ListNotes(userID)
	if err != nil {
		h.log.Errorf("List notes failed: %v", err)
		h.respondError(w, http.StatusInternalServerError, "No se pudo obtener la lista de notas.")
		return
	}
	h.respondJSON(w, http.StatusOK, dataResponse{Data: notes})
}

// CreateNote handles POST /api/notes
func (h *Handler) CreateNote(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}

	var req noteRequest
	if !h.decode(w, r, &req) {
		return
	}
	req.Content = strings.TrimSpace(req.Content)
	if req.Content == "" {
		h.respondError(w, http.StatusUnprocessableEntity, "El contenido de la nota es obligatorio.")
		return
	}

	note, err := h.svc.CreateNote(userID, req.Content)
	if err != nil {
		h.log.Errorf("Create note failed: %v", err)
		h.respondError(w, http.StatusInternalServerError, "No se pudo guardar la nota.")
		return
	}
	h.respondJSON(w, http.StatusCreated, dataResponse{Data: note})
}

// DeleteNote handles DELETE /api/notes/{id}
func (h *Handler) DeleteNote(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}
	noteID, ok := h.pathID(w, r, "id")
	if !ok {
		return
	}

	if err := h.svc.DeleteNote(userID, noteID); err != nil {
		if service.IsNotFound(err) {
			h.respondError(w, http.StatusNotFound, "Nota no encontrada.")
			return
		}
		h.log.Errorf("Delete note failed: %v", err)
		h.respondError(w, http.StatusInternalServerError, "No se pudo eliminar la nota.")
		return
	}
	h.respondJSON(w, http.StatusOK, map[string]string{"message": "Nota eliminada correctamente."})
}
