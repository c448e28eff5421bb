package game

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOddsPayout(t *testing.T) {
	assert.Equal(t, 40, EvenMoney.Payout(20), "even money returns stake plus stake")
	assert.Equal(t, 25, BlackjackPays.Payout(10), "3:2 on 10 returns 25")
	assert.Equal(t, 15, InsurancePays.Payout(5), "2:1 on 5 returns 15")
	// Fractions floor.
	assert.Equal(t, 12, BlackjackPays.Payout(5))
}

func TestOddsString(t *testing.T) {
	assert.Equal(t, "3:2", BlackjackPays.String())
	assert.Equal(t, "1:1", EvenMoney.String())
}

func TestParticipantBet(t *testing.T) {
	p := NewParticipant("alice", 100)

	amount, err := p.Bet(30)
	require.NoError(t, err)
	assert.Equal(t, 30, amount)
	assert.Equal(t, 70, p.Chips)
}

func TestParticipantBetInsufficientChips(t *testing.T) {
	p := NewParticipant("alice", 20)

	_, err := p.Bet(30)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInsufficientChips))
	assert.Equal(t, 20, p.Chips, "failed bet must not touch the balance")
}

func TestParticipantBetInvalidAmount(t *testing.T) {
	p := NewParticipant("alice", 100)

	_, err := p.Bet(0)
	assert.ErrorIs(t, err, ErrInvalidBet)

	_, err = p.Bet(-10)
	assert.ErrorIs(t, err, ErrInvalidBet)
	assert.Equal(t, 100, p.Chips)
}

func TestParticipantWinPushLoss(t *testing.T) {
	p := NewParticipant("alice", 100)

	stake, err := p.Bet(20)
	require.NoError(t, err)
	p.Win(stake, EvenMoney)
	assert.Equal(t, 120, p.Chips)

	stake, err = p.Bet(20)
	require.NoError(t, err)
	p.Push(stake)
	assert.Equal(t, 120, p.Chips)

	_, err = p.Bet(20)
	require.NoError(t, err)
	p.Loss()
	assert.Equal(t, 100, p.Chips)

	assert.Equal(t, Tally{Wins: 1, Ties: 1, Losses: 1}, p.Tally)
}

func TestParticipantHasChips(t *testing.T) {
	p := NewParticipant("alice", 50)

	assert.True(t, p.HasChips(50))
	assert.False(t, p.HasChips(51))
	assert.True(t, p.HasChips(0), "zero asks whether any chips remain")

	p.Chips = 0
	assert.False(t, p.HasChips(0))
}

func TestParticipantCanDoubleDown(t *testing.T) {
	p := NewParticipant("alice", 100)

	// Two cards always qualify when the stake is covered.
	h := handOf(t, "Ks5h")
	h.Stake = 50
	assert.True(t, p.CanDoubleDown(h))

	// Three cards qualify only on 9, 10 or 11.
	eleven := handOf(t, "2s4h5d")
	eleven.Stake = 50
	assert.True(t, p.CanDoubleDown(eleven))

	twelve := handOf(t, "2s4h6d")
	twelve.Stake = 50
	assert.False(t, p.CanDoubleDown(twelve))

	// Uncovered stake never qualifies.
	h.Stake = 150
	assert.False(t, p.CanDoubleDown(h))
}

func TestParticipantCanSplit(t *testing.T) {
	p := NewParticipant("alice", 100)

	pair := handOf(t, "8s8h")
	pair.Stake = 50
	assert.True(t, p.CanSplit(pair))

	notPair := handOf(t, "8s9h")
	notPair.Stake = 50
	assert.False(t, p.CanSplit(notPair))

	pair.Stake = 150
	assert.False(t, p.CanSplit(pair), "split stake must be covered")
}

func TestParticipantActiveHands(t *testing.T) {
	p := NewParticipant("alice", 100)
	a, b := NewHand(10), NewHand(10)
	p.Hands = []*Hand{a, b}

	assert.Len(t, p.ActiveHands(), 2)
	assert.True(t, p.HasActiveHands())

	a.Active = false
	assert.Len(t, p.ActiveHands(), 1)

	b.Active = false
	assert.False(t, p.HasActiveHands())
}
