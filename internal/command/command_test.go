package command

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tatianab/inner-demons/internal/config"
	"github.com/tatianab/inner-demons/internal/engine"
	"github.com/tatianab/inner-demons/internal/models"
)

func TestParse(t *testing.T) {
	tests := []struct {
		input string
		want  Command
	}{
		{"draw", Command{Verb: VerbDraw}},
		{"  END  ", Command{Verb: VerbEnd}},
		{"end turn", Command{Verb: VerbEnd}},
		{"play 2", Command{Verb: VerbPlay, Slot: 2}},
		{"Discard #14", Command{Verb: VerbDiscard, ID: 14, ByID: true}},
		{"gain Proud", Command{Verb: VerbGain, Kind: models.Proud}},
	}
	for _, tt := range tests {
		got, err := Parse(tt.input)
		require.NoError(t, err, tt.input)
		assert.Equal(t, tt.want, got, tt.input)
	}
}

func TestParseErrors(t *testing.T) {
	_, err := Parse("   ")
	assert.ErrorIs(t, err, ErrEmpty)

	_, err = Parse("attack fear")
	assert.ErrorIs(t, err, ErrUnknown)

	for _, input := range []string{"play", "play 0", "play x", "discard #-1", "play 1 2"} {
		_, err := Parse(input)
		assert.ErrorIs(t, err, ErrBadTarget, input)
	}

	for _, input := range []string{"gain", "gain grumpy", "draw 2", "end now"} {
		_, err := Parse(input)
		assert.Error(t, err, input)
	}
}

func TestCommandString(t *testing.T) {
	for _, input := range []string{"draw", "end", "play 3", "discard #7", "gain dizzy"} {
		c, err := Parse(input)
		require.NoError(t, err)
		assert.Equal(t, input, c.String())
	}
}

type identityRNG struct{}

func (identityRNG) IntN(n int) int { return n - 1 }

func newGame(t *testing.T) (*engine.Engine, *models.GameState) {
	t.Helper()
	eng, err := engine.NewEngine(config.DefaultRules(), engine.WithRNG(identityRNG{}))
	require.NoError(t, err)
	st, _, err := eng.NewGame(models.DemonKinds, models.CardKinds)
	require.NoError(t, err)
	return eng, st
}

func run(t *testing.T, eng *engine.Engine, st *models.GameState, input string) ([]engine.Event, error) {
	t.Helper()
	c, err := Parse(input)
	require.NoError(t, err)
	return c.Apply(eng, st)
}

func TestApply(t *testing.T) {
	eng, st := newGame(t)
	hand := st.Hand()

	events, err := run(t, eng, st, "play 2")
	require.NoError(t, err)
	assert.Equal(t, hand[1], events[0].Card)
	assert.Len(t, st.InPlay(), 1)

	_, err = run(t, eng, st, "discard #"+strconv.Itoa(hand[0].ID))
	require.NoError(t, err)
	assert.Len(t, st.DiscardPile(), 1)

	_, err = run(t, eng, st, "gain angry")
	require.NoError(t, err)
	assert.Len(t, st.DiscardPile(), 2)

	_, err = run(t, eng, st, "draw")
	require.NoError(t, err)
	assert.Len(t, st.Hand(), 4)

	_, err = run(t, eng, st, "end")
	require.NoError(t, err)
	assert.Empty(t, st.InPlay())
	assert.Equal(t, uint(27), st.Resolve())
}

func TestApplyBadTargets(t *testing.T) {
	eng, st := newGame(t)

	_, err := run(t, eng, st, "play 6")
	assert.ErrorIs(t, err, ErrNoSuchSlot)

	_, err = run(t, eng, st, "discard #0")
	assert.ErrorIs(t, err, models.ErrCardNotFound)

	assert.Len(t, st.Hand(), 5)
}

