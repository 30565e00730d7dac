// Package command parses the text commands a player types (or a pilot
// produces) and runs them against the turn engine.
package command

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/tatianab/inner-demons/internal/engine"
	"github.com/tatianab/inner-demons/internal/models"
)

type Verb string

const (
	VerbDraw    Verb = "draw"
	VerbDiscard Verb = "discard"
	VerbPlay    Verb = "play"
	VerbGain    Verb = "gain"
	VerbEnd     Verb = "end"
)

var (
	ErrEmpty      = errors.New("empty command")
	ErrUnknown    = errors.New("unknown command")
	ErrBadTarget  = errors.New("bad card target")
	ErrNoSuchSlot = errors.New("no card in that hand slot")
)

// Help is a one-line summary of the command language.
const Help = "draw | play N | discard N | gain KIND | end   (N is a hand slot, or #id)"

// Command is a parsed player action. Cards are addressed either by their
// 1-based position in the hand (Slot) or by id (ID, when ByID is set).
type Command struct {
	Verb Verb
	Slot int
	ID   int
	ByID bool
	Kind models.CardKind
}

func (c Command) String() string {
	switch c.Verb {
	case VerbPlay, VerbDiscard:
		if c.ByID {
			return fmt.Sprintf("%s #%d", c.Verb, c.ID)
		}
		return fmt.Sprintf("%s %d", c.Verb, c.Slot)
	case VerbGain:
		return fmt.Sprintf("%s %s", c.Verb, c.Kind)
	default:
		return string(c.Verb)
	}
}

// Parse reads a single command such as "play 2", "discard #14" or
// "gain proud". Verbs are case-insensitive and "end turn" is accepted
// for "end".
func Parse(input string) (Command, error) {
	fields := strings.Fields(strings.ToLower(input))
	if len(fields) == 0 {
		return Command{}, ErrEmpty
	}

	verb, args := Verb(fields[0]), fields[1:]
	switch verb {
	case VerbDraw:
		if len(args) != 0 {
			return Command{}, fmt.Errorf("%s takes no arguments", verb)
		}
		return Command{Verb: verb}, nil

	case VerbEnd:
		if len(args) > 1 || (len(args) == 1 && args[0] != "turn") {
			return Command{}, fmt.Errorf("%s takes no arguments", verb)
		}
		return Command{Verb: verb}, nil

	case VerbPlay, VerbDiscard:
		if len(args) != 1 {
			return Command{}, fmt.Errorf("%s needs one card: %w", verb, ErrBadTarget)
		}
		return parseTarget(verb, args[0])

	case VerbGain:
		if len(args) != 1 {
			return Command{}, fmt.Errorf("gain needs a card kind")
		}
		kind, err := models.ParseCardKind(args[0])
		if err != nil {
			return Command{}, err
		}
		return Command{Verb: verb, Kind: kind}, nil

	default:
		return Command{}, fmt.Errorf("%w %q", ErrUnknown, fields[0])
	}
}

func parseTarget(verb Verb, arg string) (Command, error) {
	if rest, ok := strings.CutPrefix(arg, "#"); ok {
		id, err := strconv.Atoi(rest)
		if err != nil || id < 0 {
			return Command{}, fmt.Errorf("%w %q", ErrBadTarget, arg)
		}
		return Command{Verb: verb, ID: id, ByID: true}, nil
	}
	slot, err := strconv.Atoi(arg)
	if err != nil || slot < 1 {
		return Command{}, fmt.Errorf("%w %q", ErrBadTarget, arg)
	}
	return Command{Verb: verb, Slot: slot}, nil
}

// cardID resolves the command's target against the current hand.
func (c Command) cardID(st *models.GameState) (int, error) {
	if c.ByID {
		return c.ID, nil
	}
	hand := st.Hand()
	if c.Slot < 1 || c.Slot > len(hand) {
		return 0, fmt.Errorf("%w: %d (hand has %d)", ErrNoSuchSlot, c.Slot, len(hand))
	}
	return hand[c.Slot-1].ID, nil
}

// Apply runs the command against st.
func (c Command) Apply(eng *engine.Engine, st *models.GameState) ([]engine.Event, error) {
	switch c.Verb {
	case VerbDraw:
		return eng.Draw(st)
	case VerbEnd:
		return eng.EndTurn(st)
	case VerbGain:
		return eng.Gain(st, c.Kind)
	case VerbPlay, VerbDiscard:
		id, err := c.cardID(st)
		if err != nil {
			return nil, err
		}
		if c.Verb == VerbPlay {
			return eng.Play(st, id)
		}
		return eng.Discard(st, id)
	default:
		return nil, fmt.Errorf("%w %q", ErrUnknown, c.Verb)
	}
}
