package errs

import "errors"

// Domain-specific sentinel errors for the usecase layers
var (
	// Event type errors
	ErrEventTypeNotFound = errors.New("event type not found")
	ErrEventTypeInactive = errors.New("event type is inactive")

	// Schedule errors
	ErrScheduleNotFound = errors.New("availability schedule not found")
	ErrInvalidSchedule  = errors.New("invalid availability schedule")

	// Booking errors
	ErrBookingNotFound     = errors.New("booking not found")
	ErrSlotNotAvailable    = errors.New("slot not available")
	ErrTooShortNotice      = errors.New("too short notice")
	ErrBookingTooFarAhead  = errors.New("booking too far ahead")
	ErrPastTime            = errors.New("slot start time has passed")
	ErrBookingLimitReached = errors.New("booking limit reached")
	ErrAlreadyCancelled    = errors.New("booking already cancelled")
	ErrInvalidTransition   = errors.New("invalid booking transition")
	ErrInvalidTimeSlot     = errors.New("invalid time slot")

	// Validation errors
	ErrDomainValidation = errors.New("domain validation error")

	// Operation errors
	ErrDatabaseOperationFailed = errors.New("database operation failed")
)
