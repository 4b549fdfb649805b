package service

import (
	"errors"
	"strings"
)

// ErrInvalidPrice is returned when a price is negative.
var ErrInvalidPrice = errors.New("price must be a positive number")

// ErrInvalidStatus is returned when a status is not one of the known values.
var ErrInvalidStatus = errors.New("invalid status")

// ErrInvalidCurrency is returned when a currency is not one of the known values.
var ErrInvalidCurrency = errors.New("invalid currency")

// ValidationError reports which required fields were missing from a payload.
type ValidationError struct {
	Missing []string
}

func (e *ValidationError) Error() string {
	return "missing required fields: " + strings.Join(e.Missing, ", ")
}
