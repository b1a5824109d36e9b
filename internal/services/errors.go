package services

import "errors"

// Failure taxonomy shared by all services. Handlers map these onto HTTP
// statuses; everything else bubbles up as a plain internal error.
var (
	ErrForbidden  = errors.New("forbidden")
	ErrNotFound   = errors.New("not found")
	ErrConflict   = errors.New("conflict")
	ErrValidation = errors.New("invalid input")
)
