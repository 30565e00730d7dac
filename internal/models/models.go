package models

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// CardKind is the flavor of a card. The set of kinds is closed.
type CardKind string

const (
	Angry      CardKind = "angry"
	Inspired   CardKind = "inspired"
	Tired      CardKind = "tired"
	Stressed   CardKind = "stressed"
	Satisfied  CardKind = "satisfied"
	Proud      CardKind = "proud"
	Determined CardKind = "determined"
	Peaceful   CardKind = "peaceful"
	Dizzy      CardKind = "dizzy"
	Hungover   CardKind = "hungover"
)

// CardKinds lists every card kind in declaration order.
var CardKinds = []CardKind{
	Angry, Inspired, Tired, Stressed, Satisfied,
	Proud, Determined, Peaceful, Dizzy, Hungover,
}

func (k CardKind) Valid() bool {
	for _, v := range CardKinds {
		if k == v {
			return true
		}
	}
	return false
}

// ParseCardKind converts a name such as "angry" into a CardKind.
func ParseCardKind(s string) (CardKind, error) {
	k := CardKind(s)
	if !k.Valid() {
		return "", fmt.Errorf("unknown card kind %q", s)
	}
	return k, nil
}

func (k *CardKind) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}
	parsed, err := ParseCardKind(s)
	if err != nil {
		return fmt.Errorf("line %d: %w", node.Line, err)
	}
	*k = parsed
	return nil
}

// DemonKind names one of the recurring adversaries.
type DemonKind string

const (
	Fear    DemonKind = "fear"
	Despair DemonKind = "despair"
	Doubt   DemonKind = "doubt"
)

// DemonKinds is the full roster in the order demons attack.
var DemonKinds = []DemonKind{Fear, Despair, Doubt}

func (k DemonKind) Valid() bool {
	for _, v := range DemonKinds {
		if k == v {
			return true
		}
	}
	return false
}

func ParseDemonKind(s string) (DemonKind, error) {
	k := DemonKind(s)
	if !k.Valid() {
		return "", fmt.Errorf("unknown demon kind %q", s)
	}
	return k, nil
}

func (k *DemonKind) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}
	parsed, err := ParseDemonKind(s)
	if err != nil {
		return fmt.Errorf("line %d: %w", node.Line, err)
	}
	*k = parsed
	return nil
}

// Card is immutable once created; only the zone holding it changes.
type Card struct {
	ID   int      `yaml:"id"`
	Kind CardKind `yaml:"kind"`
}

func (c Card) String() string {
	return fmt.Sprintf("%s#%d", c.Kind, c.ID)
}

// Demon is an adversary that drains resolve at the end of every turn
// unless it is stunned.
type Demon struct {
	Kind     DemonKind `yaml:"kind"`
	Power    uint      `yaml:"power"`
	StunTime uint      `yaml:"stun_time"` // turns left to skip
}

func (d Demon) Stunned() bool {
	return d.StunTime > 0
}

// Zone identifies one of the four disjoint card containers.
type Zone int

const (
	ZoneDeck Zone = iota
	ZoneHand
	ZoneDiscard
	ZoneInPlay
)

// Zones lists every zone.
var Zones = []Zone{ZoneDeck, ZoneHand, ZoneDiscard, ZoneInPlay}

func (z Zone) String() string {
	switch z {
	case ZoneDeck:
		return "deck"
	case ZoneHand:
		return "hand"
	case ZoneDiscard:
		return "discard"
	case ZoneInPlay:
		return "in_play"
	default:
		return fmt.Sprintf("zone(%d)", int(z))
	}
}
