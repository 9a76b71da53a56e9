package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"hotel-ops-backend/services"
	"hotel-ops-backend/utils"
)

// respondError maps the service failure taxonomy onto HTTP statuses. Every
// failure surfaces a human-readable message; nothing is swallowed.
func respondError(c *gin.Context, err error) {
	var status int
	switch {
	case errors.Is(err, services.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, services.ErrForbidden):
		status = http.StatusForbidden
	case errors.Is(err, services.ErrInvalidDateRange),
		errors.Is(err, services.ErrInvalidCharge):
		status = http.StatusBadRequest
	case errors.Is(err, services.ErrRoomUnavailable),
		errors.Is(err, services.ErrIllegalTransition),
		errors.Is(err, services.ErrAlreadyBilled),
		errors.Is(err, services.ErrConflict):
		status = http.StatusConflict
	default:
		status = http.StatusInternalServerError
	}
	utils.JSONError(c, status, err.Error())
}
