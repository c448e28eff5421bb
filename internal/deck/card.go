package deck

import (
	"fmt"
	"strconv"
)

// Suit represents a card suit
type Suit int

const (
	Spades Suit = iota
	Hearts
	Diamonds
	Clubs
)

// String returns the string representation of a suit
func (s Suit) String() string {
	switch s {
	case Spades:
		return "♠"
	case Hearts:
		return "♥"
	case Diamonds:
		return "♦"
	case Clubs:
		return "♣"
	default:
		return "?"
	}
}

// IsRed returns true if the suit is red (Hearts or Diamonds)
func (s Suit) IsRed() bool {
	return s == Hearts || s == Diamonds
}

// Valid returns true if the suit is one of the four fixed suits
func (s Suit) Valid() bool {
	return s >= Spades && s <= Clubs
}

// Rank represents a card rank. Aces are numerically low here; their
// blackjack value is handled by Card.PointValue.
type Rank int

const (
	Ace Rank = iota + 1
	Two
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
)

// String returns the string representation of a rank
func (r Rank) String() string {
	switch r {
	case Ace:
		return "A"
	case Jack:
		return "J"
	case Queen:
		return "Q"
	case King:
		return "K"
	default:
		if r >= Two && r <= Ten {
			return strconv.Itoa(int(r))
		}
		return "?"
	}
}

// Valid returns true if the rank is within the fixed rank set
func (r Rank) Valid() bool {
	return r >= Ace && r <= King
}

// Card represents a playing card
type Card struct {
	Rank Rank
	Suit Suit
}

// NewCard creates a new card, rejecting ranks or suits outside the fixed
// sets. An invalid card is a programming error in the caller, never user
// input.
func NewCard(rank Rank, suit Suit) (Card, error) {
	if !rank.Valid() {
		return Card{}, fmt.Errorf("invalid rank %d", rank)
	}
	if !suit.Valid() {
		return Card{}, fmt.Errorf("invalid suit %d", suit)
	}
	return Card{Rank: rank, Suit: suit}, nil
}

// MustCard creates a new card and panics on invalid input. For fixtures
// and literals where the rank and suit are constants.
func MustCard(rank Rank, suit Suit) Card {
	c, err := NewCard(rank, suit)
	if err != nil {
		panic(err)
	}
	return c
}

// String returns the string representation of a card (e.g., "A♠")
func (c Card) String() string {
	return fmt.Sprintf("%s%s", c.Rank, c.Suit)
}

// IsRed returns true if the card is red
func (c Card) IsRed() bool {
	return c.Suit.IsRed()
}

// PointValue returns the card's blackjack value: aces count 11 until the
// hand softens them, face cards count 10, the rest count their number.
func (c Card) PointValue() int {
	switch {
	case c.Rank == Ace:
		return 11
	case c.Rank >= Jack:
		return 10
	default:
		return int(c.Rank)
	}
}

// IsAce returns true if the card is an Ace
func (c Card) IsAce() bool {
	return c.Rank == Ace
}

// IsFaceCard returns true if the card is a face card (J, Q, K)
func (c Card) IsFaceCard() bool {
	return c.Rank >= Jack && c.Rank <= King
}
