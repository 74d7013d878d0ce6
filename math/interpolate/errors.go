package interpolate

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidInput is the sentinel wrapped by every InvalidInputError.
	ErrInvalidInput = errors.New("invalid interpolation input")
	// ErrExtrapolationNotSupported is the sentinel wrapped by every
	// ExtrapolationNotSupportedError.
	ErrExtrapolationNotSupported = errors.New("extrapolation not supported")
)

// InvalidInputError is returned when a SampleSet cannot be built from the
// given points or when an operation is given a nil SampleSet or NaN query.
//
// errors.Is(err, ErrInvalidInput) holds for every InvalidInputError.
type InvalidInputError struct {
	Reason string
}

func invalidInput(format string, args ...interface{}) *InvalidInputError {
	return &InvalidInputError{Reason: fmt.Sprintf(format, args...)}
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("%s: %s", ErrInvalidInput.Error(), e.Reason)
}

func (e *InvalidInputError) Unwrap() error { return ErrInvalidInput }

// ExtrapolationNotSupportedError is returned when a derivative is requested
// at a point strictly beyond the last key of a SampleSet.
//
// errors.Is(err, ErrExtrapolationNotSupported) holds for every
// ExtrapolationNotSupportedError.
type ExtrapolationNotSupportedError struct {
	X, LastKey float64
}

func (e *ExtrapolationNotSupportedError) Error() string {
	return fmt.Sprintf(
		"%s: x = %g is beyond the last key, %g",
		ErrExtrapolationNotSupported.Error(), e.X, e.LastKey,
	)
}

func (e *ExtrapolationNotSupportedError) Unwrap() error {
	return ErrExtrapolationNotSupported
}
