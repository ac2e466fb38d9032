package workentry

import "errors"

// Work entry domain errors
var (
	ErrWorkEntryNotFound = errors.New("work entry not found")
	ErrUnauthorized      = errors.New("unauthorized to access this work entry")
)
