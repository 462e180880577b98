package handler

import (
	"net/http"
	"strings"
)

type registerRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Register handles user registration
func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if !h.decode(w, r, &req) {
		return
	}

	req.Username = strings.TrimSpace(req.Username)
	req.Email = strings.TrimSpace(req.Email)
	if req.Username == "" || req.Email == "" || len(req.Password) < 8 {
		h.respondError(w, http.StatusUnprocessableEntity,
			"Usuario, correo y una contraseña de al menos 8 caracteres son obligatorios.")
		return
	}

	user, err := h.svc.Register(req.Username, req.Email, req.Password)
	if err != nil {
		h.log.Errorf("Registration failed: %v", err)
		h.respondError(w, http.StatusConflict, "No se pudo registrar la cuenta.")
		return
	}

	h.respondJSON(w, http.StatusCreated, dataResponse{Data: user})
}

// Login handles user authentication
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if !h.decode(w, r, &req) {
		return
	}

	token, err := h.svc.Login(strings.TrimSpace(req.Email), req.Password)
	if err != nil {
		h.respondError(w, http.StatusUnauthorized, "Credenciales no válidas.")
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]string{"token": token})
}
