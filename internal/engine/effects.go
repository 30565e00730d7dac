package engine

import (
	"github.com/tatianab/inner-demons/internal/models"
)

// Effect describes what playing a card does beyond moving it into play.
type Effect struct {
	// Resolve is added to the player's resolve; negative values drain it
	// and stop at zero.
	Resolve int
	// Stun adds turns of stun to the named demons.
	Stun map[models.DemonKind]uint
}

func (e Effect) IsZero() bool {
	return e.Resolve == 0 && len(e.Stun) == 0
}

// Effects maps a card kind to the effect of playing it. Kinds that are
// missing have no effect.
type Effects map[models.CardKind]Effect

// For returns the effect of playing a card of kind.
func (t Effects) For(kind models.CardKind) Effect {
	return t[kind]
}

// applyEffect applies eff to st and returns the resulting events.
// Demons named by the effect but absent from the roster are skipped.
func applyEffect(st *models.GameState, eff Effect) []Event {
	var events []Event

	switch {
	case eff.Resolve > 0:
		st.Restore(uint(eff.Resolve))
		events = append(events, Event{Type: EventResolve, Amount: eff.Resolve, Resolve: st.Resolve()})
	case eff.Resolve < 0:
		wasLost := st.Lost()
		lost := st.Damage(uint(-eff.Resolve))
		events = append(events, Event{Type: EventResolve, Amount: -int(lost), Resolve: st.Resolve()})
		if st.Lost() && !wasLost {
			events = append(events, Event{Type: EventDefeat})
		}
	}

	for _, d := range st.Demons() {
		turns, ok := eff.Stun[d.Kind]
		if !ok || turns == 0 {
			continue
		}
		stunned, err := st.Stun(d.Kind, turns)
		if err != nil {
			continue
		}
		events = append(events, Event{Type: EventStun, Demon: stunned, Amount: int(turns)})
	}
	return events
}
