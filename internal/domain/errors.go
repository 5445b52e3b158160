package domain

import (
	"github.com/go-kratos/kratos/v2/errors"
)

// Reasons carried by domain errors on the wire.
const (
	ReasonInvalidURL   = "INVALID_URL"
	ReasonInvalidCode  = "INVALID_CODE"
	ReasonCodeExists   = "CODE_EXISTS"
	ReasonLinkNotFound = "LINK_NOT_FOUND"
)

var (
	// ErrInvalidURL is returned when the target URL is missing or malformed.
	ErrInvalidURL = errors.BadRequest(ReasonInvalidURL, "Invalid URL")
	// ErrInvalidCode is returned when a caller-supplied code could never be
	// routed back to its link.
	ErrInvalidCode = errors.BadRequest(ReasonInvalidCode, "Invalid code")
	// ErrCodeExists is returned when the code is already taken, whether the
	// pre-check found it or the unique index rejected the insert.
	ErrCodeExists = errors.Conflict(ReasonCodeExists, "Code already exists")
	// ErrLinkNotFound is returned when no link has the requested code.
	ErrLinkNotFound = errors.NotFound(ReasonLinkNotFound, "Not found")
)
