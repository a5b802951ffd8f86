package http

import (
	"encoding/json"
	"net/http"

	"github.com/jovanamartatilova/librareads/internal/logger"
	"github.com/jovanamartatilova/librareads/internal/utils"
	"github.com/jovanamartatilova/librareads/models"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteJSON(w, models.ErrorResponse{Status: "error", Message: "Invalid JSON was passed"}, http.StatusBadRequest)
		return
	}

	registeredUser, err := h.services.AuthService.RegisterUser(ctx, req)
	if err != nil {
		log.Err(err).Msg("user registration failed")
		writeError(w, err)
		return
	}

	log.Info().Int64("id", registeredUser.UserID).Msg("user registered")

	utils.WriteJSON(w, models.StatusResponse{
		Status:  true,
		Message: "registration successful",
	}, http.StatusCreated)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteJSON(w, models.ErrorResponse{Status: "error", Message: "Invalid JSON was passed"}, http.StatusBadRequest)
		return
	}

	foundUser, token, err := h.services.AuthService.Login(ctx, req)
	if err != nil {
		log.Err(err).Msg("login failed")
		writeError(w, err)
		return
	}

	log.Debug().Int64("id", foundUser.UserID).Msg("user successfully logged in")

	utils.WriteJSON(w, models.LoginResponse{
		Status:            "success",
		Token:             token.SignedString,
		UserID:            foundUser.UserID,
		Username:          foundUser.Username,
		Email:             foundUser.Email,
		ProfilePictureURL: h.assetURL(foundUser.ProfilePicture),
	}, http.StatusOK)
}

// logout acknowledges the client's intent to drop the token. Bearer tokens
// are stateless and carry their own expiry; nothing is revoked server-side,
// the client simply discards its copy.
func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	if userID, ok := utils.GetUserIDFromContext(r.Context()); ok {
		log.Info().Int64("id", userID).Msg("user logged out")
	}

	utils.WriteJSON(w, models.StatusResponse{
		Status:  true,
		Message: "logged out",
	}, http.StatusOK)
}
