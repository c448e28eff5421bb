package deck

import (
	"fmt"
	"strings"
)

// ParseCards parses a compact card string like "AsKh" into cards. Ranks
// are A23456789TJQK and suits shdc, case insensitive. Handy for fixtures
// and scripted shoes in tests.
func ParseCards(s string) ([]Card, error) {
	if len(s)%2 != 0 {
		return nil, fmt.Errorf("card string %q has odd length", s)
	}
	cards := make([]Card, 0, len(s)/2)
	for i := 0; i < len(s); i += 2 {
		rank, err := parseRank(s[i])
		if err != nil {
			return nil, err
		}
		suit, err := parseSuit(s[i+1])
		if err != nil {
			return nil, err
		}
		cards = append(cards, Card{Rank: rank, Suit: suit})
	}
	return cards, nil
}

// MustParseCards parses a card string and panics on invalid input
func MustParseCards(s string) []Card {
	cards, err := ParseCards(s)
	if err != nil {
		panic(err)
	}
	return cards
}

func parseRank(b byte) (Rank, error) {
	switch strings.ToUpper(string(b)) {
	case "A":
		return Ace, nil
	case "T":
		return Ten, nil
	case "J":
		return Jack, nil
	case "Q":
		return Queen, nil
	case "K":
		return King, nil
	default:
		if b >= '2' && b <= '9' {
			return Rank(b - '0'), nil
		}
		return 0, fmt.Errorf("invalid rank %q", string(b))
	}
}

func parseSuit(b byte) (Suit, error) {
	switch strings.ToLower(string(b)) {
	case "s":
		return Spades, nil
	case "h":
		return Hearts, nil
	case "d":
		return Diamonds, nil
	case "c":
		return Clubs, nil
	default:
		return 0, fmt.Errorf("invalid suit %q", string(b))
	}
}
