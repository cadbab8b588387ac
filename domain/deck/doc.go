// Package deck builds the standard deck and derives shuffled orders and
// dealt hands from it.
//
// # Core Types
//
// Deck: the 52 cards in canonical order plus their grouping by suit. It is
// built once and never modified, so one instance (see Standard) is shared by
// every caller.
//
// Sequence: an immutable ordered run of cards. Shuffle produces one; dealing
// consumes its front and returns the residual.
//
// Hand: an unordered set of dealt cards.
//
// # Flow
//
// Deck.Sequence -> Shuffle -> DealHands, or Deck.ShuffleAndDeal for the whole
// pipeline. Every step returns new values and leaves its inputs untouched.
//
// # Randomness
//
// Shuffle takes a random.Source owned by the caller for the duration of the
// call. With a seeded source the result is reproducible. Three Fisher-Yates
// passes are applied, and fixtures keyed to a seed rely on exactly three.
package deck
