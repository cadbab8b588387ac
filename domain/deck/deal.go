package deck

import (
	"errors"
	"fmt"

	"github.com/luca-patrignani/cardcore/domain/cards"
	"github.com/luca-patrignani/cardcore/domain/random"
)

var (
	// ErrEmptySequence is returned when a card is drawn from an exhausted sequence.
	ErrEmptySequence = errors.New("deal from empty sequence")
	// ErrInvalidRequest is returned for negative counts, or for a deal that asks
	// for more cards than the deck holds.
	ErrInvalidRequest = errors.New("invalid deal request")
)

// DealOne removes the first card of seq. It returns the card and the rest of
// the sequence, or ErrEmptySequence.
func DealOne(seq Sequence) (cards.Card, Sequence, error) {
	if seq.IsEmpty() {
		return cards.Card{}, seq, ErrEmptySequence
	}
	return seq.cards[0], seq.rest(1), nil
}

// Deal draws count cards from the front of seq into a hand. The residual keeps
// the remaining cards in their original order. If seq runs out first, the
// error wraps ErrEmptySequence and reports how many cards had been drawn.
func Deal(seq Sequence, count int) (Hand, Sequence, error) {
	if count < 0 {
		return Hand{}, seq, fmt.Errorf("%w: count %d", ErrInvalidRequest, count)
	}
	hand := newHand(min(count, seq.Len()))
	for i := 0; i < count; i++ {
		var (
			c   cards.Card
			err error
		)
		c, seq, err = DealOne(seq)
		if err != nil {
			return Hand{}, seq, fmt.Errorf("card %d of %d: %w", i+1, count, err)
		}
		hand.set[c] = struct{}{}
	}
	return hand, seq, nil
}

// DealHands deals hands hands of cardsPerHand cards each, one hand after the
// other, threading the residual of each deal into the next. Hands are returned
// in dealing order. When seq is too short the failure surfaces at the hand
// whose draw runs dry.
func DealHands(seq Sequence, hands, cardsPerHand int) ([]Hand, Sequence, error) {
	if hands < 0 || cardsPerHand < 0 {
		return nil, seq, fmt.Errorf("%w: %d hands of %d cards", ErrInvalidRequest, hands, cardsPerHand)
	}
	dealt := make([]Hand, 0, min(hands, seq.Len()/max(cardsPerHand, 1)+1))
	for i := 0; i < hands; i++ {
		var (
			h   Hand
			err error
		)
		h, seq, err = Deal(seq, cardsPerHand)
		if err != nil {
			return nil, seq, fmt.Errorf("hand %d: %w", i+1, err)
		}
		dealt = append(dealt, h)
	}
	return dealt, seq, nil
}

// Result is the outcome of ShuffleAndDeal.
type Result struct {
	Shuffled Sequence
	Hands    []Hand
	Residual Sequence
}

// ShuffleAndDeal shuffles the whole deck with src and deals from it. Unlike
// DealHands it rejects up front a request the deck cannot satisfy.
func (d *Deck) ShuffleAndDeal(src random.Source, hands, cardsPerHand int) (Result, error) {
	if hands < 0 || cardsPerHand < 0 {
		return Result{}, fmt.Errorf("%w: %d hands of %d cards", ErrInvalidRequest, hands, cardsPerHand)
	}
	if cardsPerHand > 0 && hands > d.Len()/cardsPerHand {
		return Result{}, fmt.Errorf("%w: %d hands of %d cards exceed %d cards",
			ErrInvalidRequest, hands, cardsPerHand, d.Len())
	}
	shuffled := Shuffle(d.Sequence(), src)
	dealt, residual, err := DealHands(shuffled, hands, cardsPerHand)
	if err != nil {
		return Result{}, err
	}
	return Result{Shuffled: shuffled, Hands: dealt, Residual: residual}, nil
}
