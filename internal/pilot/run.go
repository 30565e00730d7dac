package pilot

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/tatianab/inner-demons/internal/command"
	"github.com/tatianab/inner-demons/internal/engine"
	"github.com/tatianab/inner-demons/internal/models"
)

// maxActionsPerTurn bounds how long a pilot may dither before the turn is
// ended for it.
const maxActionsPerTurn = 20

// Result summarizes a headless run.
type Result struct {
	Turns    int
	Actions  int
	Rejected int
	Lost     bool
}

// Run lets p play st for up to maxTurns turns, or until resolve runs out.
// Invariants are checked after every action; a violation aborts the run.
func Run(ctx context.Context, eng *engine.Engine, st *models.GameState, p Pilot, maxTurns int, logger *slog.Logger) (Result, error) {
	var res Result
	end := command.Command{Verb: command.VerbEnd}

	for res.Turns < maxTurns && !st.Lost() {
		if err := ctx.Err(); err != nil {
			return res, err
		}
		res.Turns++
		logger.Info("turn", "n", res.Turns, "resolve", st.Resolve())

		for actions := 0; ; actions++ {
			cmd, err := p.NextCommand(ctx, st)
			if err != nil {
				// A pilot that cannot decide ends the turn.
				logger.Warn("pilot failed", "err", err)
				cmd = end
			}
			if actions >= maxActionsPerTurn {
				cmd = end
			}

			events, err := cmd.Apply(eng, st)
			res.Actions++
			if err != nil {
				res.Rejected++
				logger.Warn("command rejected", "command", cmd.String(), "err", err)
			}
			for _, ev := range events {
				logger.Debug(ev.String(), "event", ev.Type.String())
			}
			if err := st.CheckInvariants(); err != nil {
				return res, fmt.Errorf("after %q: %w", cmd, err)
			}
			if cmd.Verb == command.VerbEnd {
				break
			}
		}
	}

	res.Lost = st.Lost()
	return res, nil
}
