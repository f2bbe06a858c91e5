package http

import (
	"encoding/json"
	"net/http"

	"github.com/society360/backend/internal/logger"
	"github.com/society360/backend/internal/utils"
	"github.com/society360/backend/models"
)

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		writeErrorMessage(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	principal, err := h.services.AuthService.Login(ctx, req.Username, req.Password)
	if err != nil {
		log.Err(err).Str("username", req.Username).Msg("login rejected")
		writeError(w, err)
		return
	}

	token, err := h.services.AuthService.CreateToken(ctx, principal)
	if err != nil {
		log.Err(err).Msg("creation of token failed")
		writeErrorMessage(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	log.Debug().
		Str("username", principal.PrincipalUsername()).
		Str("role", string(principal.PrincipalRole())).
		Msg("user successfully logged in")

	utils.WriteJSON(w, models.LoginResponse{
		Success: true,
		Message: "Login successful",
		Token:   token.SignedString,
		User:    principal,
	}, http.StatusOK)
}

func (h *Handler) profile(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	principal, found := utils.GetPrincipalFromContext(r.Context())
	if !found {
		log.Error().Str("func", "*Handler.profile").Msg("no principal in context")
		writeErrorMessage(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	utils.WriteJSON(w, models.ProfileResponse{
		Success: true,
		User:    principal,
	}, http.StatusOK)
}
