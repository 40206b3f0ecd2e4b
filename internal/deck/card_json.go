package deck

import (
	"encoding/json"
	"fmt"
)

// Ranks and suits travel over the wire as their display names
// ("Ace", "10", "Hearts") rather than raw ordinals, so payloads stay
// readable and ordinal renumbering cannot silently corrupt them.

var (
	ranksByName = make(map[string]Rank, len(rankNames))
	suitsByName = make(map[string]Suit, len(suitNames))
)

func init() {
	for r, n := range rankNames {
		ranksByName[n] = r
	}
	for s, n := range suitNames {
		suitsByName[n] = s
	}
}

func (r Rank) MarshalJSON() ([]byte, error) {
	if _, ok := rankNames[r]; !ok {
		return nil, fmt.Errorf("invalid rank %d", int(r))
	}
	return json.Marshal(r.String())
}

func (r *Rank) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err != nil {
		return err
	}
	rank, ok := ranksByName[name]
	if !ok {
		return fmt.Errorf("unknown rank %q", name)
	}
	*r = rank
	return nil
}

func (s Suit) MarshalJSON() ([]byte, error) {
	if _, ok := suitNames[s]; !ok {
		return nil, fmt.Errorf("invalid suit %d", int(s))
	}
	return json.Marshal(s.String())
}

func (s *Suit) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err != nil {
		return err
	}
	suit, ok := suitsByName[name]
	if !ok {
		return fmt.Errorf("unknown suit %q", name)
	}
	*s = suit
	return nil
}
