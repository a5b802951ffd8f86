package http

import (
	"errors"
	"net/http"

	"github.com/jovanamartatilova/librareads/internal/service"
	"github.com/jovanamartatilova/librareads/internal/store"
	"github.com/jovanamartatilova/librareads/internal/utils"
	"github.com/jovanamartatilova/librareads/models"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided:                http.StatusBadRequest,
	service.ErrInvalidEmail:                       http.StatusBadRequest,
	service.ErrPasswordTooShort:                   http.StatusBadRequest,
	service.ErrInvalidCredentials:                 http.StatusUnauthorized,
	service.ErrWrongPassword:                      http.StatusUnauthorized,
	service.ErrUnauthorizedAccessToForeignProfile: http.StatusForbidden,

	service.ErrTokenSignatureInvalid: http.StatusUnauthorized,
	service.ErrTokenExpired:          http.StatusUnauthorized,
	service.ErrTokenMalformed:        http.StatusUnauthorized,
	service.ErrTokenInvalid:          http.StatusUnauthorized,

	service.ErrResetTokenInvalid:    http.StatusBadRequest,
	service.ErrResetTokenExpired:    http.StatusBadRequest,
	service.ErrMailDeliveryFailed:   http.StatusBadGateway,
	service.ErrPasswordUpdateFailed: http.StatusServiceUnavailable,

	store.ErrEmailAlreadyExists:    http.StatusConflict,
	store.ErrUsernameAlreadyExists: http.StatusConflict,
	store.ErrNoUserWasFound:        http.StatusNotFound,
	store.ErrResetTokenNotFound:    http.StatusBadRequest,
	store.ErrBookContentNotFound:   http.StatusNotFound,
	store.ErrNothingToUpdate:       http.StatusBadRequest,
	store.ErrStoreUnavailable:      http.StatusServiceUnavailable,

	store.ErrBuildingSQLQuery:     http.StatusInternalServerError,
	store.ErrBeginningTransaction: http.StatusInternalServerError,
	store.ErrCommitingTransaction: http.StatusInternalServerError,
	store.ErrScanningRow:          http.StatusInternalServerError,
	store.ErrScanningRows:         http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// clientMessageMap overrides the message sent to the client for errors whose
// raw text either leaks internals or reads poorly in an API response.
var clientMessageMap = map[error]string{
	service.ErrInvalidCredentials:   "invalid username or password",
	service.ErrMailDeliveryFailed:   "could not deliver the reset code, try again later",
	service.ErrPasswordUpdateFailed: "could not update the password, try again later",
	store.ErrStoreUnavailable:       "storage is temporarily unavailable",
	store.ErrBuildingSQLQuery:       http.StatusText(http.StatusInternalServerError),
	store.ErrBeginningTransaction:   http.StatusText(http.StatusInternalServerError),
	store.ErrCommitingTransaction:   http.StatusText(http.StatusInternalServerError),
	store.ErrScanningRow:            http.StatusText(http.StatusInternalServerError),
	store.ErrScanningRows:           http.StatusText(http.StatusInternalServerError),
}

// writeError maps err to an HTTP status and writes the standard error
// envelope. Unmapped errors get a generic 500 body so internal detail never
// reaches the client.
func writeError(w http.ResponseWriter, err error) {
	status := statusFromError(err)

	message := ""
	for target, override := range clientMessageMap {
		if errors.Is(err, target) {
			message = override
			break
		}
	}
	if message == "" {
		if status == http.StatusInternalServerError {
			message = http.StatusText(http.StatusInternalServerError)
		} else {
			for target := range errorStatusMap {
				if errors.Is(err, target) {
					message = target.Error()
					break
				}
			}
			if message == "" {
				message = http.StatusText(status)
			}
		}
	}

	utils.WriteJSON(w, models.ErrorResponse{Status: "error", Message: message}, status)
}
