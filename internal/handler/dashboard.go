package handler

import (
	"net/http"

	"github.com/gesem/isp-service/internal/billing"
)

// Dashboard handles GET /api/dashboard
func (h *Handler) Dashboard(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}

	period := billing.ParsePeriod(r.URL.Query().Get("period"))
	data, err := h.svc.Dashboard(userID, period)
	if err != nil {
		h.log.Errorf("Dashboard failed: %v", err)
		h.respondError(w, http.StatusInternalServerError, "No se pudo cargar el panel.")
		return
	}
	h.respondJSON(w, http.StatusOK, dataResponse{Data: data})
}

// ExchangeRate handles GET /api/exchange-rate
func (h *Handler) ExchangeRate(w http.ResponseWriter, r *http.Request) {
	if _, ok := h.userID(w, r); !ok {
		return
	}

	rate, err := h.rates.GetExchangeRate()
	if err != nil {
		h.log.Errorf("Exchange rate lookup failed: %v", err)
		h.respondError(w, http.StatusBadGateway, "No se pudo obtener el tipo de cambio.")
		return
	}
	h.respondJSON(w, http.StatusOK, map[string]float64{"usd_pen": rate})
}
