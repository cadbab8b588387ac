package cards

import (
	"errors"
	"fmt"

	"github.com/pterm/pterm"
)

// Suit of a card. The numeric value is the suit's position in the total order.
type Suit uint8

const (
	Clubs    Suit = iota // ♣ (black)
	Diamonds             // ♦ (red)
	Hearts               // ♥ (red)
	Spades               // ♠ (black)
)

// Rank of a card. The numeric value is the rank's position in the total order,
// so Two is the lowest and Ace the highest.
type Rank uint8

const (
	Two Rank = iota
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
	Ace
)

const (
	// SuitCount is the number of suits in a standard deck.
	SuitCount = 4
	// RankCount is the number of ranks in a standard deck.
	RankCount = 13
	// DeckSize is the number of distinct cards.
	DeckSize = SuitCount * RankCount
)

// ErrInvalidCard is returned when a suit or rank is outside its range.
var ErrInvalidCard = errors.New("invalid card")

var suitSymbols = [SuitCount]string{"♣", "♦", "♥", "♠"}
var suitNames = [SuitCount]string{"clubs", "diamonds", "hearts", "spades"}
var rankSymbols = [RankCount]string{"2", "3", "4", "5", "6", "7", "8", "9", "10", "J", "Q", "K", "A"}

// AllSuits returns the suits in order.
func AllSuits() []Suit {
	return []Suit{Clubs, Diamonds, Hearts, Spades}
}

// AllRanks returns the ranks in order, Two first.
func AllRanks() []Rank {
	ranks := make([]Rank, 0, RankCount)
	for r := Two; r <= Ace; r++ {
		ranks = append(ranks, r)
	}
	return ranks
}

// Valid reports whether s is one of the four suits.
func (s Suit) Valid() bool {
	return s < SuitCount
}

// Symbol returns the suit glyph (♣, ♦, ♥, ♠).
func (s Suit) Symbol() string {
	if !s.Valid() {
		return "?"
	}
	return suitSymbols[s]
}

func (s Suit) String() string {
	if !s.Valid() {
		return fmt.Sprintf("suit(%d)", uint8(s))
	}
	return suitNames[s]
}

// IsRed reports whether the suit is diamonds or hearts.
func (s Suit) IsRed() bool {
	return s == Diamonds || s == Hearts
}

// Valid reports whether r is between Two and Ace.
func (r Rank) Valid() bool {
	return r < RankCount
}

func (r Rank) String() string {
	if !r.Valid() {
		return fmt.Sprintf("rank(%d)", uint8(r))
	}
	return rankSymbols[r]
}

// Card represents a playing card with suit and rank.
// Cards are comparable, so two cards are equal exactly when suit and rank match.
type Card struct {
	suit Suit
	rank Rank
}

// NewCard creates a new Card with validation.
//
// Returns the Card or an error wrapping ErrInvalidCard if suit or rank is out of range.
func NewCard(suit Suit, rank Rank) (Card, error) {
	if !suit.Valid() || !rank.Valid() {
		return Card{}, fmt.Errorf("%w: suit %d, rank %d", ErrInvalidCard, suit, rank)
	}
	return Card{suit: suit, rank: rank}, nil
}

// MustCard is like NewCard but panics on invalid input. Meant for literals.
func MustCard(suit Suit, rank Rank) Card {
	c, err := NewCard(suit, rank)
	if err != nil {
		panic(err)
	}
	return c
}

// Suit returns the suit of the Card.
func (c Card) Suit() Suit {
	return c.suit
}

// Rank returns the rank of the Card.
func (c Card) Rank() Rank {
	return c.rank
}

// Index returns the card's position (0-51) in the total order.
func (c Card) Index() int {
	return int(c.suit)*RankCount + int(c.rank)
}

// Less reports whether c sorts before o.
func (c Card) Less(o Card) bool {
	return Compare(c, o) < 0
}

// Compare orders cards by suit first, then by rank.
// It returns -1, 0 or +1 like cmp.Compare.
func Compare(a, b Card) int {
	switch {
	case a.suit != b.suit:
		if a.suit < b.suit {
			return -1
		}
		return 1
	case a.rank < b.rank:
		return -1
	case a.rank > b.rank:
		return 1
	}
	return 0
}

// String returns the rank followed by the suit glyph, e.g. "10♥" or "A♠".
func (c Card) String() string {
	return c.rank.String() + c.suit.Symbol()
}

// Pretty is like String but colors the suit for terminal output.
func (c Card) Pretty() string {
	if c.suit.IsRed() {
		return c.rank.String() + pterm.LightRed(c.suit.Symbol())
	}
	return c.rank.String() + pterm.Gray(c.suit.Symbol())
}
