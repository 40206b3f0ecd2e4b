package deck

import "fmt"

// Rank is one of the 13 card face values, Two through Ace.
type Rank int

const (
	Two   Rank = 0
	Three Rank = 1
	Four  Rank = 2
	Five  Rank = 3
	Six   Rank = 4
	Seven Rank = 5
	Eight Rank = 6
	Nine  Rank = 7
	Ten   Rank = 8
	Jack  Rank = 9
	Queen Rank = 10
	King  Rank = 11
	Ace   Rank = 12
)

var rankNames = map[Rank]string{
	Two:   "2",
	Three: "3",
	Four:  "4",
	Five:  "5",
	Six:   "6",
	Seven: "7",
	Eight: "8",
	Nine:  "9",
	Ten:   "10",
	Jack:  "Jack",
	Queen: "Queen",
	King:  "King",
	Ace:   "Ace",
}

func (r Rank) String() string {
	if s, ok := rankNames[r]; ok {
		return s
	}
	return "Unknown"
}

// Suit is one of the 4 card suits.
type Suit int

const (
	Hearts   Suit = 0
	Diamonds Suit = 1
	Spades   Suit = 2
	Clubs    Suit = 3
)

var suitNames = map[Suit]string{
	Hearts:   "Hearts",
	Diamonds: "Diamonds",
	Spades:   "Spades",
	Clubs:    "Clubs",
}

func (s Suit) String() string {
	if n, ok := suitNames[s]; ok {
		return n
	}
	return "Unknown"
}

// AllRanks returns the 13 ranks in ascending order.
func AllRanks() []Rank {
	return []Rank{
		Two, Three, Four, Five, Six, Seven, Eight,
		Nine, Ten, Jack, Queen, King, Ace,
	}
}

// AllSuits returns the 4 suits in canonical order.
func AllSuits() []Suit {
	return []Suit{Hearts, Diamonds, Spades, Clubs}
}

// Card is an immutable (rank, suit) pair. Cards are plain comparable
// values: two cards are equal iff they have the same rank and suit.
type Card struct {
	Rank Rank `json:"rank"`
	Suit Suit `json:"suit"`
}

// Hash maps the card into a small integer space. Equal cards always
// hash identically and no two distinct cards collide.
func (c Card) Hash() uint32 {
	return uint32(c.Rank)<<8 | uint32(c.Suit)
}

func (c Card) String() string {
	return fmt.Sprintf("%s of %s", c.Rank, c.Suit)
}
