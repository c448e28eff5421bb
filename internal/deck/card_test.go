package deck

import "testing"

func TestCardPointValues(t *testing.T) {
	tests := []struct {
		card     string
		expected int
	}{
		{"As", 11},
		{"2h", 2},
		{"5d", 5},
		{"9c", 9},
		{"Ts", 10},
		{"Jh", 10},
		{"Qd", 10},
		{"Kc", 10},
	}

	for _, tt := range tests {
		t.Run(tt.card, func(t *testing.T) {
			card := MustParseCards(tt.card)[0]
			if got := card.PointValue(); got != tt.expected {
				t.Errorf("PointValue() = %d, want %d", got, tt.expected)
			}
		})
	}
}

func TestNewCardValidation(t *testing.T) {
	if _, err := NewCard(Ace, Spades); err != nil {
		t.Errorf("NewCard(Ace, Spades) error = %v, want nil", err)
	}
	if _, err := NewCard(Rank(0), Spades); err == nil {
		t.Error("NewCard with rank 0 should fail")
	}
	if _, err := NewCard(Rank(14), Spades); err == nil {
		t.Error("NewCard with rank 14 should fail")
	}
	if _, err := NewCard(Ace, Suit(4)); err == nil {
		t.Error("NewCard with suit 4 should fail")
	}
	if _, err := NewCard(Ace, Suit(-1)); err == nil {
		t.Error("NewCard with suit -1 should fail")
	}
}

func TestMustCardPanics(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Error("MustCard should panic on invalid input")
		}
	}()
	MustCard(Rank(99), Spades)
}

func TestCardString(t *testing.T) {
	tests := []struct {
		card     Card
		expected string
	}{
		{Card{Rank: Ace, Suit: Spades}, "A♠"},
		{Card{Rank: Ten, Suit: Hearts}, "10♥"},
		{Card{Rank: Queen, Suit: Diamonds}, "Q♦"},
		{Card{Rank: Two, Suit: Clubs}, "2♣"},
	}

	for _, tt := range tests {
		if got := tt.card.String(); got != tt.expected {
			t.Errorf("String() = %q, want %q", got, tt.expected)
		}
	}
}

func TestIsAce(t *testing.T) {
	if !MustCard(Ace, Hearts).IsAce() {
		t.Error("ace should report IsAce")
	}
	if MustCard(King, Hearts).IsAce() {
		t.Error("king should not report IsAce")
	}
}

func TestIsRed(t *testing.T) {
	if !MustCard(Ace, Hearts).IsRed() {
		t.Error("hearts should be red")
	}
	if !MustCard(Ace, Diamonds).IsRed() {
		t.Error("diamonds should be red")
	}
	if MustCard(Ace, Spades).IsRed() {
		t.Error("spades should not be red")
	}
}

func TestParseCards(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []Card
		wantErr  bool
	}{
		{
			name:  "blackjack",
			input: "AsKs",
			expected: []Card{
				{Rank: Ace, Suit: Spades},
				{Rank: King, Suit: Spades},
			},
		},
		{
			name:  "mixed suits",
			input: "AhKdQcJs9s",
			expected: []Card{
				{Rank: Ace, Suit: Hearts},
				{Rank: King, Suit: Diamonds},
				{Rank: Queen, Suit: Clubs},
				{Rank: Jack, Suit: Spades},
				{Rank: Nine, Suit: Spades},
			},
		},
		{
			name:  "case insensitive",
			input: "asKHqDjc",
			expected: []Card{
				{Rank: Ace, Suit: Spades},
				{Rank: King, Suit: Hearts},
				{Rank: Queen, Suit: Diamonds},
				{Rank: Jack, Suit: Clubs},
			},
		},
		{
			name:    "invalid rank",
			input:   "XsKs",
			wantErr: true,
		},
		{
			name:    "invalid suit",
			input:   "AsKx",
			wantErr: true,
		},
		{
			name:    "odd length",
			input:   "AsK",
			wantErr: true,
		},
		{
			name:     "empty string",
			input:    "",
			expected: []Card{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseCards(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ParseCards() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if !tt.wantErr && !cardsEqual(got, tt.expected) {
				t.Errorf("ParseCards() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func cardsEqual(a, b []Card) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i].Rank != b[i].Rank || a[i].Suit != b[i].Suit {
			return false
		}
	}
	return true
}
