package domain

import "errors"

// Default filter values
const (
	DefaultPage  = 1
	DefaultLimit = 10
	MaxLimit     = 100
)

// Business validation constants
const (
	MaxNotesLength              = 500
	MaxCancellationReasonLength = 500
)

// Time format constants
const (
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// CancelledByBusiness actor tag sent with cancellations issued from the dashboard
const CancelledByBusiness = "business"

var (
	// ErrUnknownStatus is returned when a status string is not a known appointment status
	ErrUnknownStatus = errors.New("unknown appointment status")
)
