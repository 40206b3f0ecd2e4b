package deck

import (
	crand "crypto/rand"
	"errors"
	"math/rand/v2"
)

// ErrEmptyDeck is returned by Deal when no cards remain.
var ErrEmptyDeck = errors.New("no cards remaining to deal")

// Deck holds the 52 distinct cards plus a cursor separating the live
// (undealt) prefix from the dealt suffix. Dealt cards stay in place past
// the cursor, which makes Reset O(1) and deal allocation-free.
//
// A Deck is not safe for concurrent use. Callers sharing one across
// goroutines must hold their own lock around operations, including
// across an IsEmpty/Deal pair.
type Deck struct {
	cards     []Card
	remaining int
	rng       *rand.Rand
}

// New creates a full, unshuffled deck in canonical order: ranks ascending,
// each rank cycling Hearts, Diamonds, Spades, Clubs.
func New() *Deck {
	d := &Deck{
		cards: make([]Card, 0, 52),
		rng:   rand.New(rand.NewChaCha8(cryptoSeed())),
	}
	for _, r := range AllRanks() {
		for _, s := range AllSuits() {
			d.cards = append(d.cards, Card{Rank: r, Suit: s})
		}
	}
	d.remaining = len(d.cards)
	return d
}

func cryptoSeed() (seed [32]byte) {
	crand.Read(seed[:])
	return seed
}

// Shuffle permutes the live prefix in place with a Fisher-Yates shuffle.
// Only the first CardsRemaining positions participate; dealt cards past
// the cursor are never touched. The cursor does not move.
func (d *Deck) Shuffle() {
	for i := d.remaining - 1; i > 0; i-- {
		j := d.rng.IntN(i + 1)
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	}
}

// Deal removes and returns the top card of the live prefix.
// It returns ErrEmptyDeck if the deck is empty.
func (d *Deck) Deal() (Card, error) {
	if d.remaining == 0 {
		return Card{}, ErrEmptyDeck
	}
	c := d.cards[d.remaining-1]
	d.remaining--
	return c, nil
}

// IsEmpty reports whether no cards remain to deal.
func (d *Deck) IsEmpty() bool {
	return d.remaining == 0
}

// CardsRemaining returns the number of undealt cards.
func (d *Deck) CardsRemaining() int {
	return d.remaining
}

// Reset makes the deck full again without reordering it: previously
// dealt cards come back in whatever position the last shuffle left them.
func (d *Deck) Reset() {
	d.remaining = len(d.cards)
}

// Equal reports whether two decks have the same number of undealt cards
// and identical live prefixes, element for element. Dealt cards past the
// cursor are ignored, so two fully dealt decks are always equal.
func (d *Deck) Equal(other *Deck) bool {
	if d == nil || other == nil {
		return d == other
	}
	if d.remaining != other.remaining {
		return false
	}
	for i := 0; i < d.remaining; i++ {
		if d.cards[i] != other.cards[i] {
			return false
		}
	}
	return true
}

// Hash folds the live prefix into a single value. Decks that compare
// Equal always hash identically.
func (d *Deck) Hash() uint64 {
	h := uint64(d.remaining)
	for i := 0; i < d.remaining; i++ {
		h = h*31 + uint64(d.cards[i].Hash())
	}
	return h
}
