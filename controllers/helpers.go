package controllers

import (
	"errors"
	"log"
	"net/http"
	"strconv"
	"time"

	"roomplanner-backend/middleware"
	"roomplanner-backend/services"
	"roomplanner-backend/utils"

	"github.com/gin-gonic/gin"
)

// mustUserID returns the authenticated user's id or writes a 401 and returns
// zero.
func mustUserID(c *gin.Context) uint {
	id, ok := middleware.CurrentUserID(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "unauthorized")
		return 0
	}
	return id
}

// respondServiceError translates service sentinels into HTTP responses; any
// unrecognized error is a store failure and stays opaque to the client.
func respondServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrBookingConflict),
		errors.Is(err, services.ErrEmailTaken),
		errors.Is(err, services.ErrInvitationUsed):
		utils.JSONError(c, http.StatusConflict, err.Error())
	case errors.Is(err, services.ErrBookingNotFound),
		errors.Is(err, services.ErrRoomNotFound),
		errors.Is(err, services.ErrHotelNotFound),
		errors.Is(err, services.ErrUserNotFound):
		utils.JSONError(c, http.StatusNotFound, err.Error())
	case errors.Is(err, services.ErrInvitationExpired):
		utils.JSONError(c, http.StatusGone, err.Error())
	case errors.Is(err, services.ErrInvitationInvalid),
		errors.Is(err, services.ErrInvalidStayRange):
		utils.JSONError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, services.ErrInvalidCredentials):
		utils.JSONError(c, http.StatusUnauthorized, err.Error())
	default:
		log.Printf("internal error: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "internal_error")
	}
}

func paramUint(c *gin.Context, name string) (uint, bool) {
	v, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || v == 0 {
		utils.JSONError(c, http.StatusBadRequest, "invalid_"+name)
		return 0, false
	}
	return uint(v), true
}

// parseDate accepts "2006-01-02" or RFC3339.
func parseDate(raw string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", raw); err == nil {
		return t.UTC(), nil
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}, err
	}
	return t.UTC(), nil
}
