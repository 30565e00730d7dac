package engine

import "errors"

var (
	// ErrNoCardsAvailable is returned by Draw when both the deck and the
	// discard pile are empty.
	ErrNoCardsAvailable = errors.New("no cards available to draw")
	ErrDuplicateDemon   = errors.New("demon listed more than once")
	ErrUnknownKind      = errors.New("unknown kind")
)
