package models

import (
	"errors"
	"fmt"
	"slices"
)

// GameState holds the four card zones, the demon roster and the player's
// resolve. All mutation goes through its methods so that every card id is
// owned by exactly one zone.
type GameState struct {
	demons     []Demon
	resolve    uint
	deck       []Card // top of the deck is the last element
	hand       []Card
	discard    []Card // top of the pile is the last element
	inPlay     []Card
	nextCardID int
}

// NewGameState returns a state with empty zones.
func NewGameState(demons []Demon, resolve uint) *GameState {
	return &GameState{
		demons:  slices.Clone(demons),
		resolve: resolve,
	}
}

func (s *GameState) zone(z Zone) (*[]Card, error) {
	switch z {
	case ZoneDeck:
		return &s.deck, nil
	case ZoneHand:
		return &s.hand, nil
	case ZoneDiscard:
		return &s.discard, nil
	case ZoneInPlay:
		return &s.inPlay, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownZone, z)
	}
}

// Cards returns a copy of the cards in z, bottom first.
func (s *GameState) Cards(z Zone) []Card {
	cards, err := s.zone(z)
	if err != nil {
		return nil
	}
	return slices.Clone(*cards)
}

func (s *GameState) Deck() []Card        { return s.Cards(ZoneDeck) }
func (s *GameState) Hand() []Card        { return s.Cards(ZoneHand) }
func (s *GameState) DiscardPile() []Card { return s.Cards(ZoneDiscard) }
func (s *GameState) InPlay() []Card      { return s.Cards(ZoneInPlay) }

// Len returns the number of cards in z.
func (s *GameState) Len(z Zone) int {
	cards, err := s.zone(z)
	if err != nil {
		return 0
	}
	return len(*cards)
}

// Top returns the last card pushed onto z.
func (s *GameState) Top(z Zone) (Card, bool) {
	cards, err := s.zone(z)
	if err != nil || len(*cards) == 0 {
		return Card{}, false
	}
	return (*cards)[len(*cards)-1], true
}

// Find looks up a card by id within a single zone.
func (s *GameState) Find(z Zone, id int) (Card, bool) {
	cards, err := s.zone(z)
	if err != nil {
		return Card{}, false
	}
	i := slices.IndexFunc(*cards, func(c Card) bool { return c.ID == id })
	if i < 0 {
		return Card{}, false
	}
	return (*cards)[i], true
}

// MoveCard removes the card with id from one zone and appends it to
// another. Nothing changes when it returns an error.
func (s *GameState) MoveCard(id int, from, to Zone) (Card, error) {
	src, err := s.zone(from)
	if err != nil {
		return Card{}, err
	}
	dst, err := s.zone(to)
	if err != nil {
		return Card{}, err
	}

	i := slices.IndexFunc(*src, func(c Card) bool { return c.ID == id })
	if i < 0 {
		return Card{}, &CardNotFoundError{ID: id, Zone: from}
	}
	card := (*src)[i]
	*src = slices.Delete(*src, i, i+1)
	*dst = append(*dst, card)
	return card, nil
}

// MoveAll appends every card of one zone, in order, to another and
// returns the moved cards.
func (s *GameState) MoveAll(from, to Zone) ([]Card, error) {
	src, err := s.zone(from)
	if err != nil {
		return nil, err
	}
	dst, err := s.zone(to)
	if err != nil {
		return nil, err
	}
	if from == to {
		return slices.Clone(*src), nil
	}

	moved := *src
	*dst = append(*dst, moved...)
	*src = nil
	return moved, nil
}

// CreateCard allocates the next card id and places the new card on top
// of z. Ids are never reused.
func (s *GameState) CreateCard(kind CardKind, z Zone) (Card, error) {
	dst, err := s.zone(z)
	if err != nil {
		return Card{}, err
	}
	if !kind.Valid() {
		return Card{}, fmt.Errorf("unknown card kind %q", kind)
	}

	card := Card{ID: s.nextCardID, Kind: kind}
	s.nextCardID++
	*dst = append(*dst, card)
	return card, nil
}

// ShuffleZone reorders z in place. shuffle has the signature of
// rand.Shuffle and must only permute through swap.
func (s *GameState) ShuffleZone(z Zone, shuffle func(n int, swap func(i, j int))) error {
	cards, err := s.zone(z)
	if err != nil {
		return err
	}
	c := *cards
	shuffle(len(c), func(i, j int) { c[i], c[j] = c[j], c[i] })
	return nil
}

func (s *GameState) NextCardID() int { return s.nextCardID }

func (s *GameState) Resolve() uint { return s.resolve }

// Lost reports whether resolve has been exhausted.
func (s *GameState) Lost() bool { return s.resolve == 0 }

// Damage lowers resolve by n, stopping at zero, and returns how much was
// actually removed.
func (s *GameState) Damage(n uint) uint {
	if n > s.resolve {
		n = s.resolve
	}
	s.resolve -= n
	return n
}

// Restore raises resolve by n.
func (s *GameState) Restore(n uint) {
	s.resolve += n
}

// Demons returns a copy of the roster in attack order.
func (s *GameState) Demons() []Demon {
	return slices.Clone(s.demons)
}

func (s *GameState) Demon(kind DemonKind) (Demon, bool) {
	i := s.demonIndex(kind)
	if i < 0 {
		return Demon{}, false
	}
	return s.demons[i], true
}

func (s *GameState) demonIndex(kind DemonKind) int {
	return slices.IndexFunc(s.demons, func(d Demon) bool { return d.Kind == kind })
}

// TickStun removes one turn of stun from the demon, if it has any.
func (s *GameState) TickStun(kind DemonKind) (Demon, error) {
	i := s.demonIndex(kind)
	if i < 0 {
		return Demon{}, fmt.Errorf("%w: %s", ErrDemonNotFound, kind)
	}
	if s.demons[i].StunTime > 0 {
		s.demons[i].StunTime--
	}
	return s.demons[i], nil
}

// Stun adds turns to the demon's remaining stun time.
func (s *GameState) Stun(kind DemonKind, turns uint) (Demon, error) {
	i := s.demonIndex(kind)
	if i < 0 {
		return Demon{}, fmt.Errorf("%w: %s", ErrDemonNotFound, kind)
	}
	s.demons[i].StunTime += turns
	return s.demons[i], nil
}

// CheckInvariants verifies that card ids are unique across all zones and
// were allocated by this state, and that the demon roster has one demon
// per kind.
func (s *GameState) CheckInvariants() error {
	var errs []error
	seen := make(map[int]Zone, s.nextCardID)
	for _, z := range Zones {
		cards, _ := s.zone(z)
		for _, c := range *cards {
			if prev, ok := seen[c.ID]; ok {
				errs = append(errs, fmt.Errorf("card %d is in both %s and %s", c.ID, prev, z))
				continue
			}
			seen[c.ID] = z
			if c.ID < 0 || c.ID >= s.nextCardID {
				errs = append(errs, fmt.Errorf("card %d in %s was never allocated", c.ID, z))
			}
		}
	}

	kinds := make(map[DemonKind]bool, len(s.demons))
	for _, d := range s.demons {
		if kinds[d.Kind] {
			errs = append(errs, fmt.Errorf("demon %s appears twice", d.Kind))
		}
		kinds[d.Kind] = true
	}
	return errors.Join(errs...)
}
