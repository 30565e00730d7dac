package models

import (
	"gopkg.in/yaml.v3"
)

// Snapshot is a read-only copy of a GameState for hosts to render.
type Snapshot struct {
	Resolve     uint    `yaml:"resolve"`
	Lost        bool    `yaml:"lost"`
	Demons      []Demon `yaml:"demons"`
	Hand        []Card  `yaml:"hand"`
	InPlay      []Card  `yaml:"in_play"`
	Deck        []Card  `yaml:"deck"`
	DiscardPile []Card  `yaml:"discard_pile"`
	NextCardID  int     `yaml:"next_card_id"`
}

func (s *GameState) Snapshot() Snapshot {
	return Snapshot{
		Resolve:     s.resolve,
		Lost:        s.Lost(),
		Demons:      s.Demons(),
		Hand:        s.Hand(),
		InPlay:      s.InPlay(),
		Deck:        s.Deck(),
		DiscardPile: s.DiscardPile(),
		NextCardID:  s.nextCardID,
	}
}

// YAML renders the snapshot as a YAML document.
func (s Snapshot) YAML() (string, error) {
	data, err := yaml.Marshal(s)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// CardCount is the number of cards across all four zones.
func (s Snapshot) CardCount() int {
	return len(s.Hand) + len(s.InPlay) + len(s.Deck) + len(s.DiscardPile)
}
