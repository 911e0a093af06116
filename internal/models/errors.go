package models

import "errors"

var (
	// ErrMalformedID marks an id that is not a valid ObjectID hex string.
	// It must be caught before any filter or pipeline is built from the id.
	ErrMalformedID = errors.New("malformed id")

	ErrPoliticianNotFound = errors.New("politician not found")
	ErrPartyNotFound      = errors.New("party not found")
	ErrPositionNotFound   = errors.New("position not found")
	ErrLevelNotFound      = errors.New("level not found")
)
