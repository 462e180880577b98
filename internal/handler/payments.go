package handler

import (
	"net/http"
	"time"

	"github.com/gesem/isp-service/internal/service"
)

type paymentRequest struct {
	ClientID    int64   `json:"client_id"`
	Amount      float64 `json:"amount"`
	PaymentDate string  `json:"payment_date"`
	PeriodLabel string  `json:"period_label"`
}

// ListPayments handles GET /api/payments
func (h *Handler) ListPayments(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}

	payments, err := h.svc.ListPayments(userID)
	if err != nil {
		h.log.Errorf("List payments failed: %v", err)
		h.respondError(w, http.StatusInternalServerError, "No se pudo obtener la lista de pagos.")
		return
	}
	h.respondJSON(w, http.StatusOK, dataResponse{Data: payments})
}

// CreatePayment handles POST /api/payments
func (h *Handler) CreatePayment(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}

	var req paymentRequest
	if !h.decode(w, r, &req) {
		return
	}
	if req.ClientID < 1 {
		h.respondError(w, http.StatusUnprocessableEntity, "El cliente seleccionado no es válido.")
		return
	}
	if req.Amount <= 0 {
		h.respondError(w, http.StatusUnprocessableEntity, "El monto debe ser mayor a 0.")
		return
	}

	in := service.RegisterPaymentInput{
		ClientID:    req.ClientID,
		Amount:      req.Amount,
		PeriodLabel: req.PeriodLabel,
	}
	if req.PaymentDate != "" {
		d, err := time.Parse("2006-01-02", req.PaymentDate)
		if err != nil {
			h.respondError(w, http.StatusUnprocessableEntity, "La fecha de pago no es válida.")
			return
		}
		in.PaymentDate = &d
	}

	payment, err := h.svc.RegisterPayment(userID, in)
	if err != nil {
		if service.IsNotFound(err) {
			h.respondError(w, http.StatusUnprocessableEntity, "El cliente seleccionado no es válido.")
			return
		}
		h.log.Errorf("Register payment failed: %v", err)
		h.respondError(w, http.StatusInternalServerError, "No se pudo registrar el pago.")
		return
	}
	h.respondJSON(w, http.StatusCreated, dataResponse{Data: payment})
}
