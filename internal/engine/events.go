package engine

import (
	"fmt"

	"github.com/tatianab/inner-demons/internal/models"
)

// EventType enumerates the state changes a verb can report.
type EventType int

const (
	EventDraw      EventType = iota // card moved deck -> hand
	EventReshuffle                  // discard pile shuffled back into the deck
	EventDiscard                    // card moved hand -> discard
	EventPlay                       // card moved hand -> in play
	EventGain                       // new card created on the discard pile
	EventCleanup                    // card moved in play -> discard at end of turn
	EventStunTick                   // stunned demon skipped its attack
	EventAttack                     // demon drained resolve
	EventStun                       // card effect stunned a demon
	EventResolve                    // card effect changed resolve
	EventDefeat                     // resolve reached zero
)

func (e EventType) String() string {
	switch e {
	case EventDraw:
		return "draw"
	case EventReshuffle:
		return "reshuffle"
	case EventDiscard:
		return "discard"
	case EventPlay:
		return "play"
	case EventGain:
		return "gain"
	case EventCleanup:
		return "cleanup"
	case EventStunTick:
		return "stun_tick"
	case EventAttack:
		return "attack"
	case EventStun:
		return "stun"
	case EventResolve:
		return "resolve"
	case EventDefeat:
		return "defeat"
	default:
		return fmt.Sprintf("EventType(%d)", int(e))
	}
}

// Event describes one change made by a verb. Only the fields relevant to
// Type are set.
type Event struct {
	Type    EventType
	Card    models.Card
	Demon   models.Demon
	Amount  int  // resolve delta, cards reshuffled, or stun turns added
	Resolve uint // resolve after the change
}

func (e Event) String() string {
	switch e.Type {
	case EventDraw, EventDiscard, EventPlay, EventGain, EventCleanup:
		return fmt.Sprintf("%s %s", e.Type, e.Card)
	case EventReshuffle:
		return fmt.Sprintf("reshuffle %d cards into the deck", e.Amount)
	case EventStunTick:
		return fmt.Sprintf("%s is stunned (%d turns left)", e.Demon.Kind, e.Demon.StunTime)
	case EventAttack:
		return fmt.Sprintf("%s attacks for %d, resolve %d", e.Demon.Kind, e.Amount, e.Resolve)
	case EventStun:
		return fmt.Sprintf("%s stunned for %d more turns", e.Demon.Kind, e.Amount)
	case EventResolve:
		return fmt.Sprintf("resolve %+d, now %d", e.Amount, e.Resolve)
	case EventDefeat:
		return "resolve exhausted"
	default:
		return e.Type.String()
	}
}
