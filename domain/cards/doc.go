// Package cards defines the value types of a standard 52-card deck.
//
// # Core Types
//
// Suit and Rank: small enumerations whose numeric values are their positions
// in the card order.
//
// Card: an immutable (Suit, Rank) pair. Cards compare with ==.
//
// SortedSet: an immutable, duplicate-free set of cards kept in order.
//
// # Ordering
//
// Cards are ordered by suit first (clubs, diamonds, hearts, spades) and by
// rank second (two through ace). The lowest card is 2♣ and the highest is A♠.
// Everything that sorts or groups cards relies on this single order.
package cards
