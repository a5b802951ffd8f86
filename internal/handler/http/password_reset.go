package http

import (
	"encoding/json"
	"net/http"

	"github.com/jovanamartatilova/librareads/internal/logger"
	"github.com/jovanamartatilova/librareads/internal/utils"
	"github.com/jovanamartatilova/librareads/models"
)

// resetAcknowledgement is the answer to every accepted forgot-password
// request. It never varies with account existence, so the endpoint cannot
// be used to probe which addresses are registered.
const resetAcknowledgement = "if the address is registered, a reset code has been sent"

func (h *Handler) forgotPassword(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.ForgotPasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteJSON(w, models.ErrorResponse{Status: "error", Message: "Invalid JSON was passed"}, http.StatusBadRequest)
		return
	}

	if err := h.services.PasswordResetService.RequestReset(ctx, req.Email); err != nil {
		log.Err(err).Msg("reset request failed")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, models.StatusResponse{
		Status:  true,
		Message: resetAcknowledgement,
	}, http.StatusOK)
}

func (h *Handler) resetPassword(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.ResetPasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteJSON(w, models.ErrorResponse{Status: "error", Message: "Invalid JSON was passed"}, http.StatusBadRequest)
		return
	}

	if err := h.services.PasswordResetService.ConsumeReset(ctx, req); err != nil {
		log.Err(err).Msg("reset consumption failed")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, models.StatusResponse{
		Status:  true,
		Message: "password has been reset",
	}, http.StatusOK)
}
