package services

import "errors"

// Sentinel errors surfaced to the HTTP layer. Controllers translate them
// with errors.Is; everything else is an internal failure.
var (
	// ErrMatchNotFound means the match id is unknown to the registry.
	ErrMatchNotFound = errors.New("match not found")

	// ErrInvalidSport means the sport tag is not one of the seven
	// recognized values.
	ErrInvalidSport = errors.New("invalid sport")

	// ErrMatchNotLive means a score event was sent to a match that has
	// not been started yet.
	ErrMatchNotLive = errors.New("match is not live")

	// ErrMatchCompleted means a mutation was sent to a match that has
	// already ended.
	ErrMatchCompleted = errors.New("match already completed")
)
