package http

import (
	"errors"
	"net/http"

	"github.com/society360/backend/internal/service"
	"github.com/society360/backend/internal/store"
	"github.com/society360/backend/internal/utils"
	"github.com/society360/backend/models"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided:     http.StatusBadRequest,
	service.ErrInvalidResponse:         http.StatusBadRequest,
	service.ErrInvalidRecipient:        http.StatusBadRequest,
	service.ErrNotAResident:            http.StatusBadRequest,
	service.ErrInvalidCredentials:      http.StatusUnauthorized,
	service.ErrTokenIsExpiredOrInvalid: http.StatusUnauthorized,
	service.ErrTokenCreationFailed:     http.StatusInternalServerError,
	service.ErrNotAllowed:              http.StatusForbidden,

	store.ErrUsernameTaken:        http.StatusBadRequest,
	store.ErrEmailTaken:           http.StatusBadRequest,
	store.ErrRoomOccupied:         http.StatusBadRequest,
	store.ErrUserNotFound:         http.StatusNotFound,
	store.ErrNotificationNotFound: http.StatusNotFound,
	store.ErrNothingToUpdate:      http.StatusBadRequest,
	store.ErrBuildingSQLQuery:     http.StatusInternalServerError,
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

// writeError sends the uniform failure envelope. Internal failures are
// masked with a generic message so store details never leak to clients.
func writeError(w http.ResponseWriter, err error) {
	status := statusFromError(err)

	message := err.Error()
	if status == http.StatusInternalServerError {
		message = "Internal server error"
	}

	utils.WriteJSON(w, models.ErrorResponse{Success: false, Message: message}, status)
}

// writeErrorMessage sends the failure envelope with an explicit message
// and status, for rejections that do not originate from a sentinel.
func writeErrorMessage(w http.ResponseWriter, message string, status int) {
	utils.WriteJSON(w, models.ErrorResponse{Success: false, Message: message}, status)
}
