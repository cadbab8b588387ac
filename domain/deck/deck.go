package deck

import (
	"maps"
	"sync"

	"github.com/luca-patrignani/cardcore/domain/cards"
)

// Deck is the immutable universe of the 52 distinct cards in canonical order,
// together with its grouping by suit. Both are built once by New and never
// written afterwards, so a *Deck can be shared freely.
type Deck struct {
	cards  cards.SortedSet
	bySuit map[cards.Suit]cards.SortedSet
}

// New builds the deck: every (suit, rank) pair once, sorted, then partitioned
// by suit with the order kept inside each partition.
func New() *Deck {
	universe := make([]cards.Card, 0, cards.DeckSize)
	for _, s := range cards.AllSuits() {
		for _, r := range cards.AllRanks() {
			universe = append(universe, cards.MustCard(s, r))
		}
	}
	sorted := cards.NewSortedSet(universe...)

	bySuit := make(map[cards.Suit]cards.SortedSet, cards.SuitCount)
	for _, s := range cards.AllSuits() {
		bySuit[s] = sorted.Filter(func(c cards.Card) bool { return c.Suit() == s })
	}

	return &Deck{cards: sorted, bySuit: bySuit}
}

var standard = sync.OnceValue(New)

// Standard returns the process-wide deck, built on first use.
func Standard() *Deck {
	return standard()
}

// Cards returns all 52 cards in order.
func (d *Deck) Cards() cards.SortedSet {
	return d.cards
}

// Len returns the number of cards in the deck, always 52 for New.
func (d *Deck) Len() int {
	return d.cards.Len()
}

// Suit returns the 13 cards of suit s, as computed at construction.
// An invalid suit yields an empty set.
func (d *Deck) Suit(s cards.Suit) cards.SortedSet {
	return d.bySuit[s]
}

func (d *Deck) Clubs() cards.SortedSet    { return d.Suit(cards.Clubs) }
func (d *Deck) Diamonds() cards.SortedSet { return d.Suit(cards.Diamonds) }
func (d *Deck) Hearts() cards.SortedSet   { return d.Suit(cards.Hearts) }
func (d *Deck) Spades() cards.SortedSet   { return d.Suit(cards.Spades) }

// BySuit returns the suit grouping. The map is a copy; the sets in it are the
// ones built at construction.
func (d *Deck) BySuit() map[cards.Suit]cards.SortedSet {
	return maps.Clone(d.bySuit)
}

// Sequence returns the deck in canonical order, ready to be shuffled.
func (d *Deck) Sequence() Sequence {
	return Sequence{cards: d.cards.Slice()}
}

// CountsBySuit reports how many cards each suit has. For the full deck that
// is 13 for each of the 4 suits.
func (d *Deck) CountsBySuit() map[cards.Suit]int {
	return countBy(d.cards, cards.Card.Suit)
}

// CountsByRank reports how many cards each rank has. For the full deck that
// is 4 for each of the 13 ranks.
func (d *Deck) CountsByRank() map[cards.Rank]int {
	return countBy(d.cards, cards.Card.Rank)
}

func countBy[K comparable](set cards.SortedSet, key func(cards.Card) K) map[K]int {
	counts := make(map[K]int)
	for c := range set.All() {
		counts[key(c)]++
	}
	return counts
}
