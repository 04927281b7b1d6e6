package apperrors

import "errors"

var (
	ErrInvalidInput      = errors.New("invalid input")
	ErrNotFound          = errors.New("not found")
	ErrInsufficientFunds = errors.New("not enough coins")
	ErrAlreadyOwned      = errors.New("already owned")
	ErrLocked            = errors.New("not unlocked")
	ErrRebirthLocked     = errors.New("rebirth requires level 10")
	ErrNoActiveTimer     = errors.New("no active timer")
	ErrActiveTimerExists = errors.New("active timer already exists")
	ErrTimerState        = errors.New("timer is not in the required state")
)

// ValidationError is a caller-correctable rejection. It matches ErrInvalidInput.
type ValidationError struct {
	Field  string
	Reason string
}

func (e ValidationError) Error() string {
	if e.Field == "" {
		return e.Reason
	}
	return e.Field + ": " + e.Reason
}

func (e ValidationError) Is(target error) bool {
	return target == ErrInvalidInput
}

func Invalid(field, reason string) error {
	return ValidationError{Field: field, Reason: reason}
}
