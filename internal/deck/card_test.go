package deck_test

import (
	"encoding/json"
	"testing"

	"cardtable/internal/deck"
)

func TestCardString(t *testing.T) {
	tests := []struct {
		card deck.Card
		want string
	}{
		{deck.Card{Rank: deck.Ace, Suit: deck.Spades}, "Ace of Spades"},
		{deck.Card{Rank: deck.Two, Suit: deck.Hearts}, "2 of Hearts"},
		{deck.Card{Rank: deck.Ten, Suit: deck.Diamonds}, "10 of Diamonds"},
		{deck.Card{Rank: deck.Queen, Suit: deck.Clubs}, "Queen of Clubs"},
	}
	for _, tt := range tests {
		if got := tt.card.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

func TestEnumStringFallback(t *testing.T) {
	if got := deck.Rank(99).String(); got != "Unknown" {
		t.Errorf("Rank(99).String() = %q, want Unknown", got)
	}
	if got := deck.Suit(-1).String(); got != "Unknown" {
		t.Errorf("Suit(-1).String() = %q, want Unknown", got)
	}
}

func TestCardHash(t *testing.T) {
	a := deck.Card{Rank: deck.King, Suit: deck.Hearts}
	b := deck.Card{Rank: deck.King, Suit: deck.Hearts}
	if a.Hash() != b.Hash() {
		t.Error("equal cards must hash identically")
	}

	// All 52 cards hash into distinct values.
	seen := make(map[uint32]deck.Card)
	for _, r := range deck.AllRanks() {
		for _, s := range deck.AllSuits() {
			c := deck.Card{Rank: r, Suit: s}
			if prev, ok := seen[c.Hash()]; ok {
				t.Errorf("hash collision: %s and %s", prev, c)
			}
			seen[c.Hash()] = c
		}
	}
}

func TestCardJSON(t *testing.T) {
	c := deck.Card{Rank: deck.Ace, Suit: deck.Spades}
	data, err := json.Marshal(c)
	if err != nil {
		t.Fatalf("marshal error: %v", err)
	}
	want := `{"rank":"Ace","suit":"Spades"}`
	if string(data) != want {
		t.Errorf("marshal: got %s, want %s", data, want)
	}

	var back deck.Card
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("unmarshal error: %v", err)
	}
	if back != c {
		t.Errorf("round trip: got %s, want %s", back, c)
	}
}

func TestCardJSONRejectsUnknown(t *testing.T) {
	var c deck.Card
	if err := json.Unmarshal([]byte(`{"rank":"Joker","suit":"Spades"}`), &c); err == nil {
		t.Error("expected error for unknown rank")
	}
	if err := json.Unmarshal([]byte(`{"rank":"Ace","suit":"Stars"}`), &c); err == nil {
		t.Error("expected error for unknown suit")
	}
}

func TestAllRanksAllSuits(t *testing.T) {
	ranks := deck.AllRanks()
	if len(ranks) != 13 {
		t.Fatalf("ranks: got %d, want 13", len(ranks))
	}
	if ranks[0] != deck.Two || ranks[12] != deck.Ace {
		t.Error("ranks should run Two through Ace")
	}
	suits := deck.AllSuits()
	if len(suits) != 4 {
		t.Fatalf("suits: got %d, want 4", len(suits))
	}
	if suits[0] != deck.Hearts || suits[3] != deck.Clubs {
		t.Error("suits should run Hearts through Clubs")
	}
}
