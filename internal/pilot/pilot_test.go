package pilot

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tatianab/inner-demons/internal/command"
	"github.com/tatianab/inner-demons/internal/config"
	"github.com/tatianab/inner-demons/internal/engine"
	"github.com/tatianab/inner-demons/internal/models"
)

func newGame(t *testing.T) (*engine.Engine, *models.GameState) {
	t.Helper()
	eng, err := engine.NewEngine(config.DefaultRules(), engine.WithSeed(5))
	require.NoError(t, err)
	st, _, err := eng.NewGame(models.DemonKinds, models.CardKinds)
	require.NoError(t, err)
	return eng, st
}

func TestGreedyPlaysOutHandThenEnds(t *testing.T) {
	eng, st := newGame(t)
	ctx := context.Background()

	for range 5 {
		cmd, err := Greedy{}.NextCommand(ctx, st)
		require.NoError(t, err)
		require.Equal(t, command.VerbPlay, cmd.Verb)
		_, err = cmd.Apply(eng, st)
		require.NoError(t, err)
	}

	cmd, err := Greedy{}.NextCommand(ctx, st)
	require.NoError(t, err)
	assert.Equal(t, command.VerbEnd, cmd.Verb)
	assert.Len(t, st.InPlay(), 5)
}

func TestParseReply(t *testing.T) {
	tests := map[string]command.Command{
		"play 3":                   {Verb: command.VerbPlay, Slot: 3},
		"```\ndiscard #4\n```":     {Verb: command.VerbDiscard, ID: 4, ByID: true},
		"\n\n  `end`  \nthanks!\n": {Verb: command.VerbEnd},
	}
	for reply, want := range tests {
		got, err := parseReply(reply)
		require.NoError(t, err, reply)
		assert.Equal(t, want, got, reply)
	}

	_, err := parseReply("I think I will attack Fear")
	assert.ErrorIs(t, err, command.ErrUnknown)

	_, err = parseReply("```\n```")
	assert.Error(t, err)
}

func TestRenderPrompt(t *testing.T) {
	_, st := newGame(t)

	prompt, err := renderPrompt(st)
	require.NoError(t, err)

	assert.Contains(t, prompt, "Resolve: 30")
	assert.Contains(t, prompt, "- fear: power 1, stunned for 0 turns")
	hand := st.Hand()
	assert.Contains(t, prompt, "1. "+string(hand[0].Kind))
	assert.Contains(t, prompt, "Deck: 5 cards")
	assert.Contains(t, prompt, command.Help)
}

func TestNewGeminiNeedsKey(t *testing.T) {
	_, err := NewGemini(context.Background(), "")
	assert.Error(t, err)
}
