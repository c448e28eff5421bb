package deck

import (
	rand "math/rand/v2"
)

// Shoe holds the cards waiting to be dealt. A shoe never runs dry: dealing
// from an empty shoe rebuilds a fresh 52-card set and reshuffles first, so
// play is never interrupted mid-round.
type Shoe struct {
	cards []Card
	rng   *rand.Rand
}

// NewShoe creates a full 52-card shoe, shuffled with the provided RNG.
func NewShoe(rng *rand.Rand) *Shoe {
	s := &Shoe{
		cards: make([]Card, 0, 52),
		rng:   rng,
	}
	s.fill()
	s.Shuffle()
	return s
}

// NewStackedShoe creates a shoe that deals the given cards in argument
// order. Tests use it to script exact card sequences; once the stacked
// cards run out it refills like a normal shoe.
func NewStackedShoe(rng *rand.Rand, cards ...Card) *Shoe {
	s := &Shoe{
		cards: make([]Card, len(cards)),
		rng:   rng,
	}
	// Deal pops from the end, so store in reverse.
	for i, c := range cards {
		s.cards[len(cards)-1-i] = c
	}
	return s
}

func (s *Shoe) fill() {
	s.cards = s.cards[:0]
	for suit := Spades; suit <= Clubs; suit++ {
		for rank := Ace; rank <= King; rank++ {
			s.cards = append(s.cards, Card{Rank: rank, Suit: suit})
		}
	}
}

// Shuffle randomizes the order of the remaining cards without adding or
// dropping any.
func (s *Shoe) Shuffle() {
	for i := len(s.cards) - 1; i > 0; i-- {
		j := s.rng.IntN(i + 1)
		s.cards[i], s.cards[j] = s.cards[j], s.cards[i]
	}
}

// Deal removes and returns the next card from the draw end. An empty shoe
// is replenished to a full shuffled 52 before the deal proceeds.
func (s *Shoe) Deal() Card {
	if len(s.cards) == 0 {
		s.fill()
		s.Shuffle()
	}
	card := s.cards[len(s.cards)-1]
	s.cards = s.cards[:len(s.cards)-1]
	return card
}

// Len returns the number of cards remaining in the shoe.
func (s *Shoe) Len() int {
	return len(s.cards)
}
