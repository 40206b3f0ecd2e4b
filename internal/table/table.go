package table

import (
	"fmt"
	"sync"

	"cardtable/internal/deck"
)

// PlayerInfo holds table-level player information.
type PlayerInfo struct {
	ID   string
	Name string
}

// Table is one shared dealing table: a deck plus the players seated at
// it. The deck itself has no locking, so every deck operation goes
// through the table's mutex, including the deal-and-record pair.
type Table struct {
	mu      sync.Mutex
	ID      string
	deck    *deck.Deck
	dealt   []deck.Card
	players []*PlayerInfo

	MaxPlayers int
}

// NewTable creates a table with a fresh, unshuffled deck.
func NewTable(id string) *Table {
	return &Table{
		ID:         id,
		deck:       deck.New(),
		MaxPlayers: 8,
	}
}

// Join seats a player at the table. Joining again with the same ID
// updates the name, so reconnects keep their seat.
func (t *Table) Join(id, name string) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	for _, p := range t.players {
		if p.ID == id {
			p.Name = name
			return nil
		}
	}
	if len(t.players) >= t.MaxPlayers {
		return fmt.Errorf("table is full")
	}
	t.players = append(t.players, &PlayerInfo{ID: id, Name: name})
	return nil
}

// Leave removes a player from the table.
func (t *Table) Leave(id string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	for i, p := range t.players {
		if p.ID == id {
			t.players = append(t.players[:i], t.players[i+1:]...)
			return
		}
	}
}

// Shuffle shuffles the undealt portion of the deck.
func (t *Table) Shuffle() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.deck.Shuffle()
}

// Deal deals one card and records it in the table history. Returns
// deck.ErrEmptyDeck when the deck has run out.
func (t *Table) Deal() (deck.Card, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	c, err := t.deck.Deal()
	if err != nil {
		return deck.Card{}, err
	}
	t.dealt = append(t.dealt, c)
	return c, nil
}

// Reset returns all dealt cards to the deck, keeping its current order,
// and clears the deal history.
func (t *Table) Reset() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.deck.Reset()
	t.dealt = nil
}

// CardsRemaining returns the number of undealt cards.
func (t *Table) CardsRemaining() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.deck.CardsRemaining()
}

// Dealt returns a copy of the deal history, oldest first.
func (t *Table) Dealt() []deck.Card {
	t.mu.Lock()
	defer t.mu.Unlock()

	out := make([]deck.Card, len(t.dealt))
	copy(out, t.dealt)
	return out
}

// GetPlayers returns a copy of the seated players.
func (t *Table) GetPlayers() []PlayerInfo {
	t.mu.Lock()
	defer t.mu.Unlock()

	out := make([]PlayerInfo, len(t.players))
	for i, p := range t.players {
		out[i] = *p
	}
	return out
}
