package controller

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/ikkim/phonebook-backend/internal/app/service"
	apperrors "github.com/ikkim/phonebook-backend/internal/errors"
	"github.com/ikkim/phonebook-backend/internal/middleware"
)

// respondError maps a service error onto the HTTP error contract. Storage
// failures are logged with their cause and answered with a generic 500.
func respondError(c *gin.Context, err error, action string) {
	log := middleware.GetLoggerFromContext(c)

	switch {
	case errors.Is(err, service.ErrInvalidRating):
		apperrors.BadRequest(c, apperrors.ReviewInvalidRating, "Rating must be between 1 and 5")
	case errors.Is(err, service.ErrInvalidInput):
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, err.Error())
	case errors.Is(err, service.ErrNotFound):
		apperrors.NotFound(c, apperrors.PhoneNotFound, "Phone not found")
	case errors.Is(err, service.ErrConflict):
		apperrors.BadRequest(c, apperrors.PhoneAlreadyExists, "Phone number already exists")
	default:
		log.Error("Failed to "+action, err)
		_ = c.Error(err)
		apperrors.InternalError(c, "")
	}
}

// parsePhoneID reads the :id path parameter, answering 400 when it is not a positive integer.
func parsePhoneID(c *gin.Context) (uint, bool) {
	idStr := c.Param("id")
	id, err := strconv.ParseUint(idStr, 10, 32)
	if err != nil || id == 0 {
		middleware.GetLoggerFromContext(c).Warn("Invalid phone ID format", map[string]interface{}{
			"phone_id": idStr,
		})
		apperrors.BadRequest(c, apperrors.ValidationInvalidID, "Invalid phone ID")
		return 0, false
	}
	return uint(id), true
}
