// Package pilot contains automated players for headless runs.
package pilot

import (
	"context"

	"github.com/tatianab/inner-demons/internal/command"
	"github.com/tatianab/inner-demons/internal/models"
)

// Pilot picks the next command for the current state.
type Pilot interface {
	NextCommand(ctx context.Context, st *models.GameState) (command.Command, error)
}

// Greedy plays the first card in hand until the hand is empty, then ends
// the turn.
type Greedy struct{}

func (Greedy) NextCommand(_ context.Context, st *models.GameState) (command.Command, error) {
	if st.Len(models.ZoneHand) > 0 {
		return command.Command{Verb: command.VerbPlay, Slot: 1}, nil
	}
	return command.Command{Verb: command.VerbEnd}, nil
}
