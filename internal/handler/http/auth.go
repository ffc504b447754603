package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/jiminoh-dev/linkup/internal/logger"
	"github.com/jiminoh-dev/linkup/internal/utils"
	"github.com/jiminoh-dev/linkup/models"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		writeError(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	registeredUser, err := h.services.AuthService.RegisterUser(ctx, req)
	if err != nil {
		log.Err(err).Msg("user registration failed")
		status, msg := mapError(err)
		writeError(w, msg, status)
		return
	}

	h.issueToken(w, r, registeredUser)

	utils.WriteJSON(w, models.RegisterResponse{
		UserID:   registeredUser.UserID,
		Username: registeredUser.Username,
		Name:     registeredUser.Name,
	}, http.StatusCreated)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		writeError(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	foundUser, err := h.services.AuthService.Login(ctx, req)
	if err != nil {
		log.Err(err).Msg("user login failed")
		status, msg := mapError(err)
		writeError(w, msg, status)
		return
	}

	log.Debug().Int64("id", foundUser.UserID).Str("username", foundUser.Username).Msg("user successfully logged in")

	h.issueToken(w, r, foundUser)

	utils.WriteJSON(w, foundUser, http.StatusOK)
}

func (h *Handler) googleLogin(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.GoogleLoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		writeError(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	result, err := h.services.AuthService.GoogleLogin(ctx, req.IDToken)
	if err != nil {
		log.Err(err).Msg("google login failed")
		status, msg := mapError(err)
		writeError(w, msg, status)
		return
	}

	if result.NeedsRegister {
		utils.WriteJSON(w, models.GoogleHandoffResponse{
			NeedsRegister: true,
			Username:      result.Identity.Email,
			Name:          result.Identity.Name,
			Gender:        result.Identity.Gender,
		}, http.StatusOK)
		return
	}

	log.Debug().Int64("id", result.User.UserID).Str("username", result.User.Username).Msg("user logged in via google")

	h.issueToken(w, r, result.User)

	utils.WriteJSON(w, result.User, http.StatusOK)
}

// issueToken attaches a Bearer session JWT to the response when token
// issuance is configured. A signing failure is logged but does not fail the
// request: the authentication itself already succeeded.
func (h *Handler) issueToken(w http.ResponseWriter, r *http.Request, user models.User) {
	log := logger.FromRequest(r)

	token, err := h.services.AuthService.CreateToken(r.Context(), user)
	if err != nil {
		log.Err(err).Msg("creation of token failed")
		return
	}

	if token.SignedString != "" {
		w.Header().Set("Authorization", fmt.Sprintf("Bearer %s", token.SignedString))
	}
}
