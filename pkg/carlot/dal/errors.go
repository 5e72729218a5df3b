package dal

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingField marks a required column with no value.
	ErrMissingField = errors.New("missing field")
	// ErrNegativeMiles is returned by Drive for a negative delta.
	ErrNegativeMiles = errors.New("miles must not be negative")
	// ErrConfirmationExhausted is returned when ModifyPrice runs out of prompts.
	ErrConfirmationExhausted = errors.New("price confirmation attempts exhausted")
	// ErrBadRange marks an mpg value with a hyphen that is not "low-high".
	ErrBadRange = errors.New("malformed range")
	// ErrNotFinite marks NaN or infinite numeric input.
	ErrNotFinite = errors.New("value must be a finite number")
)

// ParseError reports a raw field that could not be coerced into its type.
type ParseError struct {
	Field string
	Value string
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse %s %q: %v", e.Field, e.Value, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// InvalidPartError is returned when a repair names an unknown component.
type InvalidPartError struct {
	Part string
}

func (e *InvalidPartError) Error() string {
	return fmt.Sprintf("invalid part %q: must be one of engine, transmission, drivetrain", e.Part)
}

// NotFoundError is returned when a seller is asked to sell a car it does not hold.
type NotFoundError struct {
	Seller string
	Car    string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("car %s not found in inventory of %s", e.Car, e.Seller)
}
