package game

import (
	"testing"

	"github.com/lox/blackjack/internal/deck"
)

func handOf(t *testing.T, cards string) *Hand {
	t.Helper()
	h := NewHand(0)
	for _, c := range deck.MustParseCards(cards) {
		h.Add(c)
	}
	return h
}

func TestHandValue(t *testing.T) {
	tests := []struct {
		name  string
		cards string
		value int
	}{
		{"single ace", "As", 11},
		{"two aces", "AsAh", 12},
		{"natural", "AsKh", 21},
		{"soft then hard", "AsKh2d", 13},
		{"hard twenty", "KsQh", 20},
		{"bust", "KsQh5d", 25},
		{"three aces", "AsAhAd", 13},
		{"soft seventeen", "As6h", 17},
		{"five card", "2s3h4d5c2h", 16},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := handOf(t, tt.cards)
			if got := h.Value(); got != tt.value {
				t.Errorf("Value() = %d, want %d", got, tt.value)
			}
		})
	}
}

func TestHandBlackjack(t *testing.T) {
	if !handOf(t, "AsKh").Blackjack() {
		t.Error("ace and king should be blackjack")
	}
	if handOf(t, "As5h5d").Blackjack() {
		t.Error("three card 21 should not be blackjack")
	}
	if handOf(t, "KsQh").Blackjack() {
		t.Error("twenty should not be blackjack")
	}
}

func TestHandBust(t *testing.T) {
	if handOf(t, "KsQh").Bust() {
		t.Error("twenty is not bust")
	}
	if !handOf(t, "KsQh5d").Bust() {
		t.Error("twenty-five is bust")
	}
	if handOf(t, "AsKhQd").Bust() {
		t.Error("soft ace should save the hand from busting")
	}
}

func TestHandPair(t *testing.T) {
	if !handOf(t, "JsJh").Pair() {
		t.Error("two jacks are a pair")
	}
	if handOf(t, "Js5h").Pair() {
		t.Error("jack and five are not a pair")
	}
	// Rank, not point value: jack and ten both score 10 but differ in rank.
	if handOf(t, "JsTh").Pair() {
		t.Error("jack and ten are not a pair")
	}
	if handOf(t, "JsJhJd").Pair() {
		t.Error("three cards are never a pair")
	}
}

func TestHandSplit(t *testing.T) {
	h := handOf(t, "8s8h")
	h.Stake = 20

	split, err := h.Split()
	if err != nil {
		t.Fatalf("Split() error: %v", err)
	}

	if len(h.Cards()) != 1 || len(split.Cards()) != 1 {
		t.Fatalf("expected one card per hand, got %d and %d", len(h.Cards()), len(split.Cards()))
	}
	if split.Stake != 20 {
		t.Errorf("split stake = %d, want 20", split.Stake)
	}
	if !split.FromSplit() {
		t.Error("split hand should report FromSplit")
	}
	if h.FromSplit() {
		t.Error("original hand should not report FromSplit")
	}
	if !split.Active {
		t.Error("split hand should be active")
	}
}

func TestHandSplitRequiresPair(t *testing.T) {
	h := handOf(t, "Js5h")
	if _, err := h.Split(); err != ErrNotAPair {
		t.Errorf("Split() error = %v, want ErrNotAPair", err)
	}
}

func TestHandString(t *testing.T) {
	h := handOf(t, "AsKh")
	if got := h.String(); got != "A♠  K♥" {
		t.Errorf("String() = %q", got)
	}
}
