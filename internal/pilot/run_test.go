package pilot

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tatianab/inner-demons/internal/command"
	"github.com/tatianab/inner-demons/internal/models"
)

var quiet = slog.New(slog.DiscardHandler)

type stubbornPilot struct{}

func (stubbornPilot) NextCommand(context.Context, *models.GameState) (command.Command, error) {
	return command.Command{Verb: command.VerbPlay, Slot: 9}, nil
}

type brokenPilot struct{}

func (brokenPilot) NextCommand(context.Context, *models.GameState) (command.Command, error) {
	return command.Command{}, errors.New("model unavailable")
}

func TestRunGreedyUntilLoss(t *testing.T) {
	eng, st := newGame(t)

	res, err := Run(context.Background(), eng, st, Greedy{}, 50, quiet)
	require.NoError(t, err)

	// Three demons of power 1 drain 30 resolve in ten turns.
	assert.Equal(t, 10, res.Turns)
	assert.True(t, res.Lost)
	assert.Equal(t, 60, res.Actions)
	assert.Zero(t, res.Rejected)
}

func TestRunStopsAtTurnLimit(t *testing.T) {
	eng, st := newGame(t)

	res, err := Run(context.Background(), eng, st, Greedy{}, 3, quiet)
	require.NoError(t, err)

	assert.Equal(t, 3, res.Turns)
	assert.False(t, res.Lost)
	assert.Equal(t, uint(21), st.Resolve())
	assert.Equal(t, 18, res.Actions)
}

func TestRunForcesEndOfTurn(t *testing.T) {
	eng, st := newGame(t)

	res, err := Run(context.Background(), eng, st, stubbornPilot{}, 1, quiet)
	require.NoError(t, err)

	assert.Equal(t, maxActionsPerTurn+1, res.Actions)
	assert.Equal(t, maxActionsPerTurn, res.Rejected)
	assert.Equal(t, uint(27), st.Resolve())
}

func TestRunPilotErrorsEndTheTurn(t *testing.T) {
	eng, st := newGame(t)

	res, err := Run(context.Background(), eng, st, brokenPilot{}, 2, quiet)
	require.NoError(t, err)

	assert.Equal(t, 2, res.Actions)
	assert.Len(t, st.Hand(), 5)
}

func TestRunHonorsContext(t *testing.T) {
	eng, st := newGame(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Run(ctx, eng, st, Greedy{}, 5, quiet)
	assert.ErrorIs(t, err, context.Canceled)
}
