package handler

import (
	"encoding/json"
	"net/http"

	"github.com/gesem/isp-service/internal/middleware"
	"github.com/gesem/isp-service/internal/service"
	"github.com/sirupsen/logrus"
)

// RateProvider supplies the USD/PEN reference exchange rate
type RateProvider interface {
	GetExchangeRate() (float64, error)
}

// Handler translates HTTP requests into service calls
type Handler struct {
	svc   *service.Service
	rates RateProvider
	log   *logrus.Logger
}

// NewHandler initializes a new handler
func NewHandler(svc *service.Service, rates RateProvider, log *logrus.Logger) *Handler {
	return &Handler{svc: svc, rates: rates, log: log}
}

// respondJSON writes a JSON body with the given status code
func (h *Handler) respondJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		h.log.Errorf("Failed to encode response: %v", err)
	}
}

// respondError writes a JSON error message
func (h *Handler) respondError(w http.ResponseWriter, status int, message string) {
	h.respondJSON(w, status, map[string]string{"message": message})
}

// dataResponse wraps a payload in the standard envelope
type dataResponse struct {
	Data any `json:"data"`
}

// pagedResponse wraps a listing page with its pagination meta
type pagedResponse struct {
	Data any              `json:"data"`
	Meta service.PageMeta `json:"meta"`
}

// userID extracts the authenticated user, replying 401 when absent
func (h *Handler) userID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, ok := middleware.UserID(r.Context())
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "No autenticado.")
	}
	return id, ok
}

// decode parses a JSON request body
func (h *Handler) decode(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		h.respondError(w, http.StatusBadRequest, "Formato de solicitud no válido.")
		return false
	}
	return true
}
