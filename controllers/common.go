package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"reservation-backend/services"
	"reservation-backend/utils"
)

// parseIDParam reads a numeric path parameter. On failure it has already
// written the 400 response.
func parseIDParam(c *gin.Context, name string) (uint, bool) {
	raw := c.Param(name)
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		utils.JSONError(c, http.StatusBadRequest, "invalid id: "+raw)
		return 0, false
	}
	return uint(id), true
}

// respondServiceError maps the services error taxonomy onto HTTP status
// codes. Anything unexpected is a rolled-back store failure and comes out as
// a plain 500.
func respondServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrGuestNotFound),
		errors.Is(err, services.ErrRoomTypeNotFound),
		errors.Is(err, services.ErrRoomNotFound),
		errors.Is(err, services.ErrServiceNotFound),
		errors.Is(err, services.ErrReservationNotFound):
		utils.JSONError(c, http.StatusNotFound, err.Error())
	case errors.Is(err, services.ErrRoomAlreadyAttached),
		errors.Is(err, services.ErrServiceAlreadyAttached),
		errors.Is(err, services.ErrDuplicateRoomNumber):
		utils.JSONError(c, http.StatusConflict, err.Error())
	case errors.Is(err, services.ErrInvalidStatus),
		errors.Is(err, services.ErrInvalidDate):
		utils.JSONError(c, http.StatusBadRequest, err.Error())
	default:
		utils.JSONError(c, http.StatusInternalServerError, "database error")
	}
}
