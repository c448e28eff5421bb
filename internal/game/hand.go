package game

import (
	"errors"
	"strings"

	"github.com/lox/blackjack/internal/deck"
)

// ErrNotAPair is returned by Split on a hand that is not a two-card pair.
// Callers are expected to check Pair before splitting, so hitting this is
// a logic error, not a user-facing condition.
var ErrNotAPair = errors.New("hand is not a pair")

// Hand is the ordered set of cards riding on a single stake. A participant
// holds one hand per round unless a split creates a second. Once Active is
// false the hand is settled and receives no further cards.
type Hand struct {
	cards     []deck.Card
	fromSplit bool

	Stake  int
	Active bool
}

// NewHand creates an empty active hand with the given stake.
func NewHand(stake int) *Hand {
	return &Hand{
		cards:  make([]deck.Card, 0, 8),
		Stake:  stake,
		Active: true,
	}
}

// Add appends a card to the hand.
func (h *Hand) Add(card deck.Card) {
	h.cards = append(h.cards, card)
}

// Cards returns the cards in deal order.
func (h *Hand) Cards() []deck.Card {
	return h.cards
}

// First returns the first card dealt to the hand. For the dealer this is
// the face-up card.
func (h *Hand) First() deck.Card {
	return h.cards[0]
}

// Last returns the most recently dealt card.
func (h *Hand) Last() deck.Card {
	return h.cards[len(h.cards)-1]
}

// Value computes the hand total under the soft-ace rule: every ace starts
// at 11, then drops to 1 one ace at a time while the total busts.
func (h *Hand) Value() int {
	value, aces := 0, 0
	for _, c := range h.cards {
		value += c.PointValue()
		if c.IsAce() {
			aces++
		}
	}
	for value > 21 && aces > 0 {
		value -= 10
		aces--
	}
	return value
}

// Blackjack reports a natural: exactly two cards totalling 21.
func (h *Hand) Blackjack() bool {
	return len(h.cards) == 2 && h.Value() == 21
}

// TwentyOne reports a total of 21 with any number of cards.
func (h *Hand) TwentyOne() bool {
	return h.Value() == 21
}

// Bust reports a total over 21.
func (h *Hand) Bust() bool {
	return h.Value() > 21
}

// Pair reports exactly two cards of equal rank; suits are irrelevant.
func (h *Hand) Pair() bool {
	return len(h.cards) == 2 && h.cards[0].Rank == h.cards[1].Rank
}

// FromSplit reports whether this hand was created by splitting a pair.
// Split hands are not offered a further split.
func (h *Hand) FromSplit() bool {
	return h.fromSplit
}

// Split moves the second card of a pair into a new hand carrying the same
// stake. The caller deals one fresh card to each hand and re-debits the
// participant for the new hand's stake.
func (h *Hand) Split() (*Hand, error) {
	if !h.Pair() {
		return nil, ErrNotAPair
	}
	card := h.cards[len(h.cards)-1]
	h.cards = h.cards[:len(h.cards)-1]

	split := NewHand(h.Stake)
	split.fromSplit = true
	split.Add(card)
	return split, nil
}

// String renders the cards space separated, e.g. "A♠  K♥".
func (h *Hand) String() string {
	parts := make([]string, len(h.cards))
	for i, c := range h.cards {
		parts[i] = c.String()
	}
	return strings.Join(parts, "  ")
}
