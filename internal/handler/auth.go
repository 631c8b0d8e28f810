package handler

import (
	"net/http"

	"github.com/nousrire/backend/internal/api"
	"github.com/nousrire/backend/internal/utils"
)

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var body api.LoginRequest
	if err := utils.DecodeValidate(r.Body, &body); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	marker, err := h.auth.Authenticate(body.Email, body.Password)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	h.session.SetMarker(w, marker)
	w.WriteHeader(http.StatusOK)
}

func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	h.session.ClearMarker(w)
	w.WriteHeader(http.StatusOK)
}
