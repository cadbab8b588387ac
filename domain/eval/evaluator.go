// Package eval scores dealt hands as poker hands.
package eval

import (
	"errors"
	"fmt"
	"sort"

	"github.com/paulhankin/poker"

	"github.com/luca-patrignani/cardcore/domain/cards"
	"github.com/luca-patrignani/cardcore/domain/deck"
)

// ErrUnsupportedSize is returned for hands that are not 5 or 7 cards.
var ErrUnsupportedSize = errors.New("only 5 and 7 card hands can be evaluated")

// Result is the score of one hand. Higher scores beat lower ones.
type Result struct {
	Score       int16
	Description string
}

// Evaluate scores a 5 or 7 card hand.
func Evaluate(h deck.Hand) (Result, error) {
	cs := h.Cards()
	converted := make([]poker.Card, len(cs))
	for i, c := range cs {
		pc, err := toPoker(c)
		if err != nil {
			return Result{}, err
		}
		converted[i] = pc
	}

	var score int16
	switch len(converted) {
	case 5:
		score = poker.Eval5((*[5]poker.Card)(converted))
	case 7:
		score = poker.Eval7((*[7]poker.Card)(converted))
	default:
		return Result{}, fmt.Errorf("%w: got %d", ErrUnsupportedSize, len(converted))
	}

	desc, err := poker.Describe(converted)
	if err != nil {
		return Result{}, fmt.Errorf("describe hand: %w", err)
	}
	return Result{Score: score, Description: desc}, nil
}

// Showdown evaluates every hand and returns the results in input order along
// with the indexes of the best hands. Ties all win.
func Showdown(hands []deck.Hand) ([]Result, []int, error) {
	results := make([]Result, len(hands))
	for i, h := range hands {
		r, err := Evaluate(h)
		if err != nil {
			return nil, nil, fmt.Errorf("hand %d: %w", i+1, err)
		}
		results[i] = r
	}
	if len(results) == 0 {
		return results, nil, nil
	}

	order := make([]int, len(results))
	for i := range order {
		order[i] = i
	}
	// sort by score descending, stable so ties keep dealing order
	sort.SliceStable(order, func(i, j int) bool {
		return results[order[i]].Score > results[order[j]].Score
	})

	best := results[order[0]].Score
	winners := []int{order[0]}
	for _, idx := range order[1:] {
		if results[idx].Score != best {
			break
		}
		winners = append(winners, idx)
	}
	return results, winners, nil
}

// toPoker maps a card onto the evaluator's encoding: suits in the same order,
// ranks 1-13 with the ace as 1.
func toPoker(c cards.Card) (poker.Card, error) {
	rank := poker.Rank(c.Rank()) + 2
	if c.Rank() == cards.Ace {
		rank = 1
	}
	pc, err := poker.MakeCard(poker.Suit(c.Suit()), rank)
	if err != nil {
		return pc, fmt.Errorf("invalid card %v: %w", c, err)
	}
	return pc, nil
}
