package handler

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gesem/isp-service/internal/billing"
	"github.com/gesem/isp-service/internal/models"
	"github.com/gesem/isp-service/internal/service"
	"github.com/gorilla/mux"
)

// clientRequest is the create/update payload for a client
type clientRequest struct {
	Name            string  `json:"name"`
	DNI             string  `json:"dni"`
	Phone           string  `json:"phone"`
	IP              string  `json:"ip"`
	InstallDate     string  `json:"install_date"`
	Installer       string  `json:"installer"`
	NetworkName     string  `json:"network_name"`
	NetworkPassword string  `json:"network_password"`
	Plan            string  `json:"plan"`
	Department      string  `json:"department"`
	Province        string  `json:"province"`
	District        string  `json:"district"`
	Speed           string  `json:"speed"`
	UploadSpeed     string  `json:"upload_speed"`
	DownloadSpeed   string  `json:"download_speed"`
	ChargeSpeed     string  `json:"charge_speed"`
	DischargeSpeed  string  `json:"discharge_speed"`
	MonthlyAmount   float64 `json:"monthly_amount"`
	Address         string  `json:"address"`
	Coordinates     string  `json:"coordinates"`
	Reference       string  `json:"reference"`
	NextPaymentDate string  `json:"next_payment_date"`
	IsServiceActive *bool   `json:"is_service_active"`
}

// validate checks required fields and parses the dates, returning a Spanish
// message on the first problem found
func (req *clientRequest) validate() (installDate, nextPaymentDate time.Time, msg string) {
	req.Name = strings.TrimSpace(req.Name)
	req.DNI = strings.TrimSpace(req.DNI)
	req.Phone = strings.TrimSpace(req.Phone)

	switch {
	case req.Name == "":
		return installDate, nextPaymentDate, "El nombre es obligatorio."
	case req.DNI == "":
		return installDate, nextPaymentDate, "El DNI es obligatorio."
	case req.Phone == "":
		return installDate, nextPaymentDate, "El teléfono es obligatorio."
	case req.IP == "":
		return installDate, nextPaymentDate, "La dirección IP es obligatoria."
	case req.Installer == "":
		return installDate, nextPaymentDate, "El instalador es obligatorio."
	case req.NetworkName == "":
		return installDate, nextPaymentDate, "El nombre de red es obligatorio."
	case req.NetworkPassword == "":
		return installDate, nextPaymentDate, "La contraseña de red es obligatoria."
	case req.Plan == "":
		return installDate, nextPaymentDate, "El plan es obligatorio."
	case req.Speed == "":
		return installDate, nextPaymentDate, "La velocidad es obligatoria."
	case req.MonthlyAmount <= 0:
		return installDate, nextPaymentDate, "El monto debe ser mayor a 0."
	}

	var err error
	installDate, err = time.Parse("2006-01-02", req.InstallDate)
	if err != nil {
		return installDate, nextPaymentDate, "La fecha de instalación es obligatoria."
	}
	nextPaymentDate, err = time.Parse("2006-01-02", req.NextPaymentDate)
	if err != nil {
		return installDate, nextPaymentDate, "La fecha de próximo pago es obligatoria."
	}
	return installDate, nextPaymentDate, ""
}

func (req *clientRequest) toModel(userID int64, installDate, nextPaymentDate time.Time) *models.Client {
	active := true
	if req.IsServiceActive != nil {
		active = *req.IsServiceActive
	}
	return &models.Client{
		UserID:          userID,
		Name:            req.Name,
		DNI:             req.DNI,
		Phone:           req.Phone,
		IP:              req.IP,
		InstallDate:     installDate,
		Installer:       req.Installer,
		NetworkName:     req.NetworkName,
		NetworkPassword: req.NetworkPassword,
		Plan:            req.Plan,
		Department:      req.Department,
		Province:        req.Province,
		District:        req.District,
		Speed:           req.Speed,
		UploadSpeed:     req.UploadSpeed,
		DownloadSpeed:   req.DownloadSpeed,
		ChargeSpeed:     req.ChargeSpeed,
		DischargeSpeed:  req.DischargeSpeed,
		MonthlyAmount:   req.MonthlyAmount,
		Address:         req.Address,
		Coordinates:     req.Coordinates,
		Reference:       req.Reference,
		NextPaymentDate: nextPaymentDate,
		IsServiceActive: active,
	}
}

// clientView is a client annotated with its computed renewal status
type clientView struct {
	models.Client
	Status       string `json:"status"`
	DaysUntilDue int    `json:"days_until_due"`
}

func newClientView(c *models.Client) clientView {
	status, days := billing.Classify(c.NextPaymentDate, time.Now())
	return clientView{Client: *c, Status: string(status), DaysUntilDue: days}
}

// ListClients handles GET /api/clients
func (h *Handler) ListClients(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}

	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	perPage, _ := strconv.Atoi(r.URL.Query().Get("per_page"))
	search := strings.TrimSpace(r.URL.Query().Get("search"))

	clients, meta, err := h.svc.ListClients(userID, search, page, perPage)
	if err != nil {
		h.log.Errorf("List clients failed: %v", err)
		h.respondError(w, http.StatusInternalServerError, "No se pudo obtener la lista de clientes.")
		return
	}

	views := make([]clientView, 0, len(clients))
	for i := range clients {
		views = append(views, newClientView(&clients[i]))
	}
	h.respondJSON(w, http.StatusOK, pagedResponse{Data: views, Meta: meta})
}

// GetClient handles GET /api/clients/{id}
func (h *Handler) GetClient(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}
	clientID, ok := h.pathID(w, r, "id")
	if !ok {
		return
	}

	client, err := h.svc.GetClient(userID, clientID)
	if err != nil {
		h.clientError(w, err)
		return
	}
	h.respondJSON(w, http.StatusOK, dataResponse{Data: newClientView(client)})
}

// CreateClient handles POST /api/clients
func (h *Handler) CreateClient(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}

	var req clientRequest
	if !h.decode(w, r, &req) {
		return
	}
	installDate, nextPaymentDate, msg := req.validate()
	if msg != "" {
		h.respondError(w, http.StatusUnprocessableEntity, msg)
		return
	}

	client, err := h.svc.CreateClient(req.toModel(userID, installDate, nextPaymentDate))
	if err != nil {
		h.clientError(w, err)
		return
	}
	h.respondJSON(w, http.StatusCreated, dataResponse{Data: newClientView(client)})
}

// UpdateClient handles PUT /api/clients/{id}
func (h *Handler) UpdateClient(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}
	clientID, ok := h.pathID(w, r, "id")
	if !ok {
		return
	}

	var req clientRequest
	if !h.decode(w, r, &req) {
		return
	}
	installDate, nextPaymentDate, msg := req.validate()
	if msg != "" {
		h.respondError(w, http.StatusUnprocessableEntity, msg)
		return
	}

	client := req.toModel(userID, installDate, nextPaymentDate)
	client.ID = clientID
	client, err := h.svc.UpdateClient(client)
	if err != nil {
		h.clientError(w, err)
		return
	}
	h.respondJSON(w, http.StatusOK, dataResponse{Data: newClientView(client)})
}

// DeleteClient handles DELETE /api/clients/{id}
func (h *Handler) DeleteClient(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}
	clientID, ok := h.pathID(w, r, "id")
	if !ok {
		return
	}

	if err := h.svc.DeleteClient(userID, clientID); err != nil {
		h.clientError(w, err)
		return
	}
	h.respondJSON(w, http.StatusOK, map[string]string{"message": "Cliente eliminado correctamente."})
}

// ToggleClientService handles PATCH /api/clients/{id}/toggle-service
func (h *Handler) ToggleClientService(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}
	clientID, ok := h.pathID(w, r, "id")
	if !ok {
		return
	}

	client, err := h.svc.ToggleClientService(userID, clientID)
	if err != nil {
		h.clientError(w, err)
		return
	}
	h.respondJSON(w, http.StatusOK, dataResponse{Data: newClientView(client)})
}

// pathID parses a numeric path variable
func (h *Handler) pathID(w http.ResponseWriter, r *http.Request, name string) (int64, bool) {
	id, err := strconv.ParseInt(mux.Vars(r)[name], 10, 64)
	if err != nil || id < 1 {
		h.respondError(w, http.StatusBadRequest, "Identificador no válido.")
		return 0, false
	}
	return id, true
}

// clientError maps service errors for client operations to HTTP responses
func (h *Handler) clientError(w http.ResponseWriter, err error) {
	switch {
	case service.IsNotFound(err):
		h.respondError(w, http.StatusNotFound, "Cliente no encontrado.")
	case errors.Is(err, service.ErrDNIDuplicated):
		h.respondError(w, http.StatusConflict, "Este DNI ya existe para tu cuenta.")
	default:
		h.log.Errorf("Client operation failed: %v", err)
		h.respondError(w, http.StatusInternalServerError, "Ocurrió un error inesperado.")
	}
}
