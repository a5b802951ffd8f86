package http

import (
	"encoding/json"
	"net/http"

	"github.com/jovanamartatilova/librareads/internal/logger"
	"github.com/jovanamartatilova/librareads/internal/service"
	"github.com/jovanamartatilova/librareads/internal/utils"
	"github.com/jovanamartatilova/librareads/models"
)

func (h *Handler) getProfile(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no user id in request context")
		writeError(w, joinUnauthorized(ErrEmptyToken))
		return
	}

	user, err := h.services.ProfileService.GetProfile(ctx, userID)
	if err != nil {
		log.Err(err).Int64("id", userID).Msg("profile lookup failed")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, h.profileResponse(user), http.StatusOK)
}

func (h *Handler) updateProfile(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no user id in request context")
		writeError(w, joinUnauthorized(ErrEmptyToken))
		return
	}

	var req models.UpdateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteJSON(w, models.ErrorResponse{Status: "error", Message: "Invalid JSON was passed"}, http.StatusBadRequest)
		return
	}

	// a body naming a different account than the token is rejected outright
	if req.UserID != 0 && req.UserID != userID {
		log.Warn().Int64("id", userID).Int64("target_id", req.UserID).Msg("profile update targeting another account")
		writeError(w, service.ErrUnauthorizedAccessToForeignProfile)
		return
	}
	req.UserID = userID

	updated, err := h.services.ProfileService.UpdateProfile(ctx, req)
	if err != nil {
		log.Err(err).Int64("id", userID).Msg("profile update failed")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, h.profileResponse(updated), http.StatusOK)
}

func (h *Handler) changePassword(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no user id in request context")
		writeError(w, joinUnauthorized(ErrEmptyToken))
		return
	}

	var req models.ChangePasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteJSON(w, models.ErrorResponse{Status: "error", Message: "Invalid JSON was passed"}, http.StatusBadRequest)
		return
	}

	if err := h.services.AuthService.ChangePassword(ctx, userID, req); err != nil {
		log.Err(err).Int64("id", userID).Msg("password change failed")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, models.StatusResponse{
		Status:  true,
		Message: "password updated",
	}, http.StatusOK)
}

func (h *Handler) profileResponse(user models.User) models.ProfileResponse {
	return models.ProfileResponse{
		Status:            "success",
		UserID:            user.UserID,
		Username:          user.Username,
		Email:             user.Email,
		ProfilePictureURL: h.assetURL(user.ProfilePicture),
	}
}
