package usecase

import "errors"

var (
	ErrInvalidInput     = errors.New("invalid input")
	ErrTierInsufficient = errors.New("subscription tier insufficient")
	ErrInternal         = errors.New("internal error")
)

// ValidationError names the offending field(s) so handlers can return a 400
// that tells the caller what to fix. It unwraps to ErrInvalidInput.
type ValidationError struct {
	msg string
}

func NewValidationError(msg string) *ValidationError {
	return &ValidationError{msg: msg}
}

func (e *ValidationError) Error() string {
	if e == nil {
		return ""
	}
	return e.msg
}

func (e *ValidationError) Unwrap() error {
	return ErrInvalidInput
}
