package cards

import (
	"iter"
	"slices"
	"strings"
)

// SortedSet is an immutable, duplicate-free set of cards kept in the total order.
// The zero value is an empty set. Copies share the same backing storage,
// which is never written after construction.
type SortedSet struct {
	cards []Card
}

// NewSortedSet builds a set from any collection of cards, sorting and
// dropping duplicates. The input slice is not retained.
func NewSortedSet(cs ...Card) SortedSet {
	sorted := slices.Clone(cs)
	slices.SortFunc(sorted, Compare)
	sorted = slices.Compact(sorted)
	return SortedSet{cards: slices.Clip(sorted)}
}

// Len returns the number of distinct cards in the set.
func (s SortedSet) Len() int {
	return len(s.cards)
}

// At returns the i-th card in order. It panics if i is out of range.
func (s SortedSet) At(i int) Card {
	return s.cards[i]
}

// First returns the lowest card, or false if the set is empty.
func (s SortedSet) First() (Card, bool) {
	if len(s.cards) == 0 {
		return Card{}, false
	}
	return s.cards[0], true
}

// Last returns the highest card, or false if the set is empty.
func (s SortedSet) Last() (Card, bool) {
	if len(s.cards) == 0 {
		return Card{}, false
	}
	return s.cards[len(s.cards)-1], true
}

// Contains reports whether c is in the set.
func (s SortedSet) Contains(c Card) bool {
	_, found := slices.BinarySearchFunc(s.cards, c, Compare)
	return found
}

// All iterates the cards in order.
func (s SortedSet) All() iter.Seq[Card] {
	return slices.Values(s.cards)
}

// Slice returns a fresh copy of the cards in order.
func (s SortedSet) Slice() []Card {
	return slices.Clone(s.cards)
}

// Filter returns the subset of cards matching keep, preserving order.
func (s SortedSet) Filter(keep func(Card) bool) SortedSet {
	var out []Card
	for _, c := range s.cards {
		if keep(c) {
			out = append(out, c)
		}
	}
	return SortedSet{cards: slices.Clip(out)}
}

// Equal reports whether both sets hold the same cards.
func (s SortedSet) Equal(o SortedSet) bool {
	return slices.Equal(s.cards, o.cards)
}

func (s SortedSet) String() string {
	parts := make([]string, len(s.cards))
	for i, c := range s.cards {
		parts[i] = c.String()
	}
	return "[" + strings.Join(parts, " ") + "]"
}
