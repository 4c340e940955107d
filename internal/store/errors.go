package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrTurnNotSaved is returned when an INSERT completes without error but
	// affects no rows.
	ErrTurnNotSaved = errors.New("chat turn was not saved")

	// ErrDuplicateTurn is returned when a turn with the same turn_id already
	// exists.
	ErrDuplicateTurn = errors.New("chat turn already exists")

	// ErrTemporary wraps driver errors classified as [Retryable].
	ErrTemporary = errors.New("temporary database error")

	// ErrInvalidTurn is returned for turns missing a turn id or session id.
	ErrInvalidTurn = errors.New("chat turn is missing identifiers")
)
