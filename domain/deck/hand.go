package deck

import (
	"slices"
	"strings"

	"github.com/luca-patrignani/cardcore/domain/cards"
)

// Hand is an unordered, duplicate-free set of dealt cards. It is immutable
// once dealt.
type Hand struct {
	set map[cards.Card]struct{}
}

func newHand(capacity int) Hand {
	return Hand{set: make(map[cards.Card]struct{}, capacity)}
}

// NewHand builds a hand from cs, dropping duplicates.
func NewHand(cs ...cards.Card) Hand {
	h := newHand(len(cs))
	for _, c := range cs {
		h.set[c] = struct{}{}
	}
	return h
}

// Len returns the number of cards in the hand.
func (h Hand) Len() int {
	return len(h.set)
}

// Contains reports whether c was dealt into the hand.
func (h Hand) Contains(c cards.Card) bool {
	_, ok := h.set[c]
	return ok
}

// Cards returns the hand's cards in the canonical card order.
func (h Hand) Cards() []cards.Card {
	out := make([]cards.Card, 0, len(h.set))
	for c := range h.set {
		out = append(out, c)
	}
	slices.SortFunc(out, cards.Compare)
	return out
}

// Sorted returns the hand as a SortedSet.
func (h Hand) Sorted() cards.SortedSet {
	return cards.NewSortedSet(h.Cards()...)
}

// Disjoint reports whether h and o share no card.
func (h Hand) Disjoint(o Hand) bool {
	small, large := h, o
	if small.Len() > large.Len() {
		small, large = large, small
	}
	for c := range small.set {
		if large.Contains(c) {
			return false
		}
	}
	return true
}

// Equal reports whether both hands hold the same cards, regardless of dealing order.
func (h Hand) Equal(o Hand) bool {
	if h.Len() != o.Len() {
		return false
	}
	for c := range h.set {
		if !o.Contains(c) {
			return false
		}
	}
	return true
}

// Strings returns the card names in the canonical order.
func (h Hand) Strings() []string {
	cs := h.Cards()
	out := make([]string, len(cs))
	for i, c := range cs {
		out[i] = c.String()
	}
	return out
}

func (h Hand) String() string {
	return "{" + strings.Join(h.Strings(), " ") + "}"
}
