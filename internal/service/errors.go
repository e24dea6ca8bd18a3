package service

import (
	"errors"

	"tourbook/internal/catalog"
	"tourbook/internal/repository"
)

var (
	ErrTourNotFound     = catalog.ErrTourNotFound
	ErrBookingNotFound  = repository.ErrBookingNotFound
	ErrFeedbackNotFound = repository.ErrFeedbackNotFound
	ErrUserNotFound     = repository.ErrUserNotFound

	ErrNotBookingOwner         = errors.New("booking belongs to another user")
	ErrCancellationTooLate     = errors.New("booking can no longer be cancelled")
	ErrBookingAlreadyCancelled = errors.New("booking already cancelled")

	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidEmail       = errors.New("invalid email")
	ErrPasswordMismatch   = errors.New("passwords do not match")
	ErrPasswordTooShort   = errors.New("password too short")

	ErrInvalidStatus   = errors.New("invalid feedback status")
	ErrInvalidPriority = errors.New("invalid feedback priority")
	ErrEmptyResponse   = errors.New("response is empty")
	ErrResponseTooLong = errors.New("response too long")
)

type ValidationKind string

const (
	KindPassengersInvalid    ValidationKind = "passengers_invalid"
	KindPassengersOutOfRange ValidationKind = "passengers_out_of_range"
	KindTravelDateMissing    ValidationKind = "travel_date_missing"
	KindTravelDateInvalid    ValidationKind = "travel_date_invalid"
	KindTravelDatePast       ValidationKind = "travel_date_past"
	KindTravelDateTooFar     ValidationKind = "travel_date_too_far"

	KindSubjectMissing ValidationKind = "subject_missing"
	KindSubjectTooLong ValidationKind = "subject_too_long"
	KindMessageMissing ValidationKind = "message_missing"
	KindMessageTooLong ValidationKind = "message_too_long"
)

// ValidationError reports the first rule a submitted form broke.
type ValidationError struct {
	Kind ValidationKind
}

func (e *ValidationError) Error() string {
	return "validation failed: " + string(e.Kind)
}

func invalid(kind ValidationKind) error {
	return &ValidationError{Kind: kind}
}

// KindOf returns the validation kind carried by err, or "" when err is not a
// validation failure.
func KindOf(err error) ValidationKind {
	var verr *ValidationError
	if errors.As(err, &verr) {
		return verr.Kind
	}
	return ""
}
