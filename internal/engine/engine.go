package engine

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/tatianab/inner-demons/internal/config"
	"github.com/tatianab/inner-demons/internal/models"
)

// Engine runs the verbs of the game against a GameState owned by the
// caller. Verbs must not be called concurrently on the same state.
type Engine struct {
	rules   config.Rules
	rng     RNG
	effects Effects
	logger  *slog.Logger
}

type Option func(*Engine)

// WithRNG sets the source used for every shuffle.
func WithRNG(rng RNG) Option {
	return func(e *Engine) { e.rng = rng }
}

// WithSeed seeds the shuffle source. A zero seed is replaced by a random one.
func WithSeed(seed int64) Option {
	return func(e *Engine) {
		if seed != 0 {
			e.rng = NewRand(seed)
		}
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) { e.logger = logger }
}

// WithEffects sets what playing each kind of card does.
func WithEffects(effects Effects) Option {
	return func(e *Engine) { e.effects = effects }
}

func NewEngine(rules config.Rules, opts ...Option) (*Engine, error) {
	e := &Engine{
		rules:  rules,
		logger: slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.rng == nil {
		seed, err := NewSeed()
		if err != nil {
			return nil, err
		}
		e.rng = NewRand(seed)
	}
	return e, nil
}

func (e *Engine) handSize() int {
	if e.rules.HandSize < 1 {
		return config.DefaultRules().HandSize
	}
	return e.rules.HandSize
}

// NewGame builds the demon roster and the starting deck, shuffles the
// deck and draws the opening hand.
func (e *Engine) NewGame(demonKinds []models.DemonKind, starter []models.CardKind) (*models.GameState, []Event, error) {
	demons := make([]models.Demon, 0, len(demonKinds))
	seen := make(map[models.DemonKind]bool, len(demonKinds))
	for _, k := range demonKinds {
		if !k.Valid() {
			return nil, nil, fmt.Errorf("%w: demon %q", ErrUnknownKind, k)
		}
		if seen[k] {
			return nil, nil, fmt.Errorf("%w: %s", ErrDuplicateDemon, k)
		}
		seen[k] = true
		demons = append(demons, models.Demon{
			Kind:     k,
			Power:    e.rules.StartingDemonPower,
			StunTime: e.rules.StartingDemonStunTime,
		})
	}
	for _, k := range starter {
		if !k.Valid() {
			return nil, nil, fmt.Errorf("%w: card %q", ErrUnknownKind, k)
		}
	}

	st := models.NewGameState(demons, e.rules.StartingResolve)
	for _, k := range starter {
		if _, err := st.CreateCard(k, models.ZoneDeck); err != nil {
			return nil, nil, err
		}
	}
	if err := st.ShuffleZone(models.ZoneDeck, shuffle(e.rng)); err != nil {
		return nil, nil, err
	}

	events, err := e.drawUp(st)
	if err != nil {
		return nil, nil, err
	}
	e.logger.Debug("new game",
		"demons", len(demons),
		"deck", st.Len(models.ZoneDeck),
		"hand", st.Len(models.ZoneHand),
		"resolve", st.Resolve())
	return st, events, nil
}

// Draw moves the top card of the deck into the hand. An empty deck is
// first refilled from the discard pile and shuffled.
func (e *Engine) Draw(st *models.GameState) ([]Event, error) {
	var events []Event
	if st.Len(models.ZoneDeck) == 0 {
		if st.Len(models.ZoneDiscard) == 0 {
			return nil, ErrNoCardsAvailable
		}
		ev, err := e.reshuffle(st)
		if err != nil {
			return nil, err
		}
		events = append(events, ev)
	}

	top, _ := st.Top(models.ZoneDeck)
	card, err := st.MoveCard(top.ID, models.ZoneDeck, models.ZoneHand)
	if err != nil {
		return events, err
	}
	e.logger.Debug("draw", "card", card.ID, "kind", card.Kind)
	return append(events, Event{Type: EventDraw, Card: card}), nil
}

func (e *Engine) reshuffle(st *models.GameState) (Event, error) {
	moved, err := st.MoveAll(models.ZoneDiscard, models.ZoneDeck)
	if err != nil {
		return Event{}, err
	}
	if err := st.ShuffleZone(models.ZoneDeck, shuffle(e.rng)); err != nil {
		return Event{}, err
	}
	e.logger.Debug("reshuffle", "cards", len(moved))
	return Event{Type: EventReshuffle, Amount: len(moved)}, nil
}

// Discard moves a card from the hand to the discard pile.
func (e *Engine) Discard(st *models.GameState, cardID int) ([]Event, error) {
	card, err := st.MoveCard(cardID, models.ZoneHand, models.ZoneDiscard)
	if err != nil {
		return nil, err
	}
	e.logger.Debug("discard", "card", card.ID, "kind", card.Kind)
	return []Event{{Type: EventDiscard, Card: card}}, nil
}

// Play moves a card from the hand into play and applies the effect
// registered for its kind.
func (e *Engine) Play(st *models.GameState, cardID int) ([]Event, error) {
	card, err := st.MoveCard(cardID, models.ZoneHand, models.ZoneInPlay)
	if err != nil {
		return nil, err
	}
	e.logger.Debug("play", "card", card.ID, "kind", card.Kind)

	events := []Event{{Type: EventPlay, Card: card}}
	if eff := e.effects.For(card.Kind); !eff.IsZero() {
		events = append(events, applyEffect(st, eff)...)
	}
	return events, nil
}

// Gain creates a new card on top of the discard pile.
func (e *Engine) Gain(st *models.GameState, kind models.CardKind) ([]Event, error) {
	if !kind.Valid() {
		return nil, fmt.Errorf("%w: card %q", ErrUnknownKind, kind)
	}
	card, err := st.CreateCard(kind, models.ZoneDiscard)
	if err != nil {
		return nil, err
	}
	e.logger.Debug("gain", "card", card.ID, "kind", card.Kind)
	return []Event{{Type: EventGain, Card: card}}, nil
}

// EndTurn resolves the turn: cards in play go to the discard pile, every
// demon attacks or works off one turn of stun, and the hand is refilled.
// Cards left in hand stay there.
func (e *Engine) EndTurn(st *models.GameState) ([]Event, error) {
	var events []Event

	cleaned, err := st.MoveAll(models.ZoneInPlay, models.ZoneDiscard)
	if err != nil {
		return nil, err
	}
	for _, c := range cleaned {
		events = append(events, Event{Type: EventCleanup, Card: c})
	}

	wasLost := st.Lost()
	for _, d := range st.Demons() {
		if d.Stunned() {
			ticked, err := st.TickStun(d.Kind)
			if err != nil {
				return events, err
			}
			events = append(events, Event{Type: EventStunTick, Demon: ticked})
			continue
		}
		dealt := st.Damage(d.Power)
		events = append(events, Event{Type: EventAttack, Demon: d, Amount: int(dealt), Resolve: st.Resolve()})
	}
	if st.Lost() && !wasLost {
		e.logger.Info("resolve exhausted")
		events = append(events, Event{Type: EventDefeat})
	}

	drawn, err := e.drawUp(st)
	events = append(events, drawn...)
	if err != nil {
		return events, err
	}

	e.logger.Debug("end turn",
		"resolve", st.Resolve(),
		"hand", st.Len(models.ZoneHand),
		"deck", st.Len(models.ZoneDeck),
		"discard", st.Len(models.ZoneDiscard))
	return events, nil
}

// drawUp draws until the hand is full or no cards are left anywhere.
func (e *Engine) drawUp(st *models.GameState) ([]Event, error) {
	var events []Event
	for st.Len(models.ZoneHand) < e.handSize() {
		ev, err := e.Draw(st)
		if errors.Is(err, ErrNoCardsAvailable) {
			break
		}
		if err != nil {
			return events, err
		}
		events = append(events, ev...)
	}
	return events, nil
}
