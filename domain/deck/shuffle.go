package deck

import (
	"slices"

	"github.com/luca-patrignani/cardcore/domain/random"
)

// ShufflePasses is how many Fisher-Yates passes Shuffle applies.
// Golden orders for a given seed depend on it.
const ShufflePasses = 3

// Shuffle returns a new permutation of seq. It works on a copy, so seq is
// unchanged. The order depends only on seq and on the values drawn from src:
// equal seeds give equal shuffles.
func Shuffle(seq Sequence, src random.Source) Sequence {
	work := slices.Clone(seq.cards)
	for range ShufflePasses {
		permute(work, src)
	}
	return Sequence{cards: work}
}

// permute is one Fisher-Yates pass, walking from the back.
func permute[T any](s []T, src random.Source) {
	for i := len(s) - 1; i > 0; i-- {
		j := src.IntN(i + 1)
		s[i], s[j] = s[j], s[i]
	}
}
