package handler

import (
	"net/http"
	"strconv"

	"github.com/gesem/isp-service/internal/billing"
	"github.com/gesem/isp-service/internal/notification"
	"github.com/gesem/isp-service/internal/service"
)

type sendNotificationRequest struct {
	ClientID int64  `json:"client_id"`
	Channel  string `json:"channel"`
	Status   string `json:"status"`
	Message  string `json:"message"`
}

// Alerts handles GET /api/notifications/alerts
func (h *Handler) Alerts(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}

	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	perPage, _ := strconv.Atoi(r.URL.Query().Get("per_page"))

	alerts, meta, err := h.svc.Alerts(userID, page, perPage)
	if err != nil {
		h.log.Errorf("List alerts failed: %v", err)
		h.respondError(w, http.StatusInternalServerError, "No se pudo obtener la lista de alertas.")
		return
	}
	h.respondJSON(w, http.StatusOK, pagedResponse{Data: alerts, Meta: meta})
}

// SendNotification handles POST /api/notifications/send
func (h *Handler) SendNotification(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}

	var req sendNotificationRequest
	if !h.decode(w, r, &req) {
		return
	}
	if req.ClientID < 1 {
		h.respondError(w, http.StatusUnprocessableEntity, "El cliente seleccionado no es válido.")
		return
	}
	if !notification.ValidChannel(req.Channel) {
		h.respondError(w, http.StatusUnprocessableEntity, "El canal debe ser whatsapp o sms.")
		return
	}
	switch req.Status {
	case "", string(billing.StatusActive), string(billing.StatusNearExpiry), string(billing.StatusExpired):
	default:
		h.respondError(w, http.StatusUnprocessableEntity, "El estado indicado no es válido.")
		return
	}

	log, err := h.svc.SendNotification(userID, service.SendNotificationInput{
		ClientID: req.ClientID,
		Channel:  notification.Channel(req.Channel),
		Status:   billing.Status(req.Status),
		Message:  req.Message,
	})
	if err != nil {
		if service.IsNotFound(err) {
			h.respondError(w, http.StatusUnprocessableEntity, "El cliente seleccionado no es válido.")
			return
		}
		h.log.Errorf("Send notification failed: %v", err)
		h.respondError(w, http.StatusInternalServerError, "No se pudo registrar la notificación.")
		return
	}
	h.respondJSON(w, http.StatusCreated, dataResponse{Data: log})
}
