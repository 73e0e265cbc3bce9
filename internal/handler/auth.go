package handler

import (
	"errors"
	"net/http"

	"github.com/ticketbase/ticketbase-go/internal/model"
	"github.com/ticketbase/ticketbase-go/internal/service"
)

// AuthHandler handles HTTP requests for login and registration.
type AuthHandler struct {
	service *service.AuthService
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(svc *service.AuthService) *AuthHandler {
	return &AuthHandler{service: svc}
}

// HandleLogin handles POST /auth/login requests.
func (h *AuthHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var req model.LoginRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	resp, err := h.service.Login(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrValidation):
			writeJSON(w, http.StatusBadRequest, errorResponse(err.Error()))
		case errors.Is(err, service.ErrInvalidCredentials):
			writeJSON(w, http.StatusUnauthorized, errorResponse(err.Error()))
		default:
			writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		}
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// HandleRegisterPartner handles POST /partners/register requests.
func (h *AuthHandler) HandleRegisterPartner(w http.ResponseWriter, r *http.Request) {
	var req model.RegisterPartnerRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	resp, err := h.service.RegisterPartner(r.Context(), req)
	if err != nil {
		writeRegisterError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, resp)
}

// HandleRegisterCustomer handles POST /customers/register requests.
func (h *AuthHandler) HandleRegisterCustomer(w http.ResponseWriter, r *http.Request) {
	var req model.RegisterCustomerRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	resp, err := h.service.RegisterCustomer(r.Context(), req)
	if err != nil {
		writeRegisterError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, resp)
}

func writeRegisterError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrValidation):
		writeJSON(w, http.StatusBadRequest, errorResponse(err.Error()))
	case errors.Is(err, service.ErrEmailTaken):
		writeJSON(w, http.StatusConflict, errorResponse(err.Error()))
	default:
		writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
	}
}
