package deck

import (
	"iter"
	"slices"
	"strings"

	"github.com/luca-patrignani/cardcore/domain/cards"
)

// Sequence is an immutable ordered run of cards, such as a shuffled deck or
// what is left of one after dealing. Sequences returned by this package may
// share storage with the one they came from; none of them ever writes to it.
type Sequence struct {
	cards []cards.Card
}

// NewSequence copies cs into a new sequence.
func NewSequence(cs ...cards.Card) Sequence {
	return Sequence{cards: slices.Clone(cs)}
}

// Len returns the number of cards left in the sequence.
func (s Sequence) Len() int {
	return len(s.cards)
}

// IsEmpty reports whether no cards are left to deal.
func (s Sequence) IsEmpty() bool {
	return len(s.cards) == 0
}

// At returns the i-th card. It panics if i is out of range.
func (s Sequence) At(i int) cards.Card {
	return s.cards[i]
}

// Cards returns a fresh copy of the cards in order.
func (s Sequence) Cards() []cards.Card {
	return slices.Clone(s.cards)
}

// All yields each position and card, front first.
func (s Sequence) All() iter.Seq2[int, cards.Card] {
	return slices.All(s.cards)
}

func (s Sequence) Equal(o Sequence) bool {
	return slices.Equal(s.cards, o.cards)
}

// rest drops the first n cards. Capacity is clipped so an append on the
// result can never reach into storage shared with s.
func (s Sequence) rest(n int) Sequence {
	return Sequence{cards: slices.Clip(s.cards[n:])}
}

func (s Sequence) String() string {
	parts := make([]string, len(s.cards))
	for i, c := range s.cards {
		parts[i] = c.String()
	}
	return "(" + strings.Join(parts, " ") + ")"
}
