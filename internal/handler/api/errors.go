package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"bookwise/internal/handler/httperr"
	"bookwise/internal/pkg/errs"
)

// respondDomainError maps the usecase error vocabulary onto HTTP statuses.
// Unrecognized errors fall through as 500 with no detail leaked.
func respondDomainError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, errs.ErrEventTypeNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Event type not found", nil)
	case errors.Is(err, errs.ErrScheduleNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Schedule not found", nil)
	case errors.Is(err, errs.ErrBookingNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Booking not found", nil)
	case errors.Is(err, errs.ErrSlotNotAvailable):
		httperr.AbortWithError(c, http.StatusConflict, err, "Requested slot is not available", nil)
	case errors.Is(err, errs.ErrAlreadyCancelled):
		httperr.AbortWithError(c, http.StatusConflict, err, "Booking is already cancelled", nil)
	case errors.Is(err, errs.ErrInvalidTransition):
		httperr.AbortWithError(c, http.StatusConflict, err, "Booking state does not allow this operation", nil)
	case errors.Is(err, errs.ErrPastTime):
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Requested time is in the past", nil)
	case errors.Is(err, errs.ErrTooShortNotice):
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Booking notice period not met", nil)
	case errors.Is(err, errs.ErrBookingTooFarAhead):
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Requested time is beyond the booking horizon", nil)
	case errors.Is(err, errs.ErrBookingLimitReached):
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Booking limit reached for this period", nil)
	case errors.Is(err, errs.ErrEventTypeInactive):
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Event type is no longer accepting bookings", nil)
	case errors.Is(err, errs.ErrInvalidTimeSlot):
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Invalid time slot", nil)
	case errors.Is(err, errs.ErrInvalidSchedule):
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Invalid schedule definition", nil)
	case errors.Is(err, errs.ErrDomainValidation):
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Validation failed", nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
	}
}
