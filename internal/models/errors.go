package models

import (
	"errors"
	"fmt"
)

var (
	ErrCardNotFound  = errors.New("card not found")
	ErrDemonNotFound = errors.New("demon not found")
	ErrUnknownZone   = errors.New("unknown zone")
)

// CardNotFoundError reports a card id missing from the zone a caller
// expected it in. It matches ErrCardNotFound with errors.Is.
type CardNotFoundError struct {
	ID   int
	Zone Zone
}

func (e *CardNotFoundError) Error() string {
	return fmt.Sprintf("card %d not found in %s", e.ID, e.Zone)
}

func (e *CardNotFoundError) Is(target error) bool {
	return target == ErrCardNotFound
}
