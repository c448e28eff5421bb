package game

import (
	"errors"
	"fmt"
)

var (
	// ErrInsufficientChips is returned when a bet exceeds the chips
	// available. Bets never silently clamp to the balance.
	ErrInsufficientChips = errors.New("insufficient chips")

	// ErrInvalidBet is returned for zero or negative bet amounts.
	ErrInvalidBet = errors.New("bet must be positive")
)

// Odds expresses a payout ratio. A winning stake returns the stake plus
// stake*Num/Den, flooring fractions the way the house does.
type Odds struct {
	Num, Den int
}

var (
	// EvenMoney pays 1:1 on a normal win.
	EvenMoney = Odds{1, 1}
	// BlackjackPays pays 3:2 on a natural.
	BlackjackPays = Odds{3, 2}
	// InsurancePays pays 2:1 when the dealer shows an ace and has blackjack.
	InsurancePays = Odds{2, 1}
)

// Payout returns the stake plus winnings at these odds.
func (o Odds) Payout(stake int) int {
	return stake + stake*o.Num/o.Den
}

func (o Odds) String() string {
	return fmt.Sprintf("%d:%d", o.Num, o.Den)
}

// Tally accumulates results across rounds. It is never reset for the life
// of the session.
type Tally struct {
	Wins   int
	Ties   int
	Losses int
}

// Participant is a player or the dealer. Players carry a chip balance and
// one or more hands per round; the dealer is a degenerate participant with
// a single unstaked hand and no chips.
type Participant struct {
	Name      string
	Chips     int
	Hands     []*Hand
	Insurance int
	Tally     Tally
}

// NewParticipant creates a player with a starting chip balance.
func NewParticipant(name string, chips int) *Participant {
	return &Participant{
		Name:  name,
		Chips: chips,
	}
}

// NewDealer returns the house participant: one hand per round, no chips,
// no bets.
func NewDealer() *Participant {
	return &Participant{Name: "Dealer"}
}

// HasChips reports whether the participant can cover amount. An amount of
// zero asks whether any chips remain at all.
func (p *Participant) HasChips(amount int) bool {
	if amount == 0 {
		return p.Chips > 0
	}
	return p.Chips >= amount
}

// Bet debits amount from the chip balance and returns it, so the caller
// can attach it to a hand's stake or the insurance side-bet.
func (p *Participant) Bet(amount int) (int, error) {
	if amount <= 0 {
		return 0, ErrInvalidBet
	}
	if !p.HasChips(amount) {
		return 0, fmt.Errorf("%w: have %d, need %d", ErrInsufficientChips, p.Chips, amount)
	}
	p.Chips -= amount
	return amount, nil
}

// Win credits the returned stake plus winnings at the given odds and
// counts the win.
func (p *Participant) Win(amount int, odds Odds) {
	p.Chips += odds.Payout(amount)
	p.Tally.Wins++
}

// Push returns the stake untouched and counts the tie.
func (p *Participant) Push(amount int) {
	p.Chips += amount
	p.Tally.Ties++
}

// Loss counts the loss. The stake was already debited at bet time, so
// nothing is credited.
func (p *Participant) Loss() {
	p.Tally.Losses++
}

// CanDoubleDown reports whether the participant may double this hand: the
// stake must be covered a second time and the hand must either be
// untouched (two cards) or sit on 9, 10 or 11. The value gate is a house
// rule of this variant, not a universal blackjack standard.
func (p *Participant) CanDoubleDown(h *Hand) bool {
	if !p.HasChips(h.Stake) {
		return false
	}
	if len(h.Cards()) == 2 {
		return true
	}
	v := h.Value()
	return v == 9 || v == 10 || v == 11
}

// CanSplit reports whether the participant may split this hand: the stake
// must be covered a second time and the hand must be a pair.
func (p *Participant) CanSplit(h *Hand) bool {
	return p.HasChips(h.Stake) && h.Pair()
}

// ActiveHands returns the hands still in play this round.
func (p *Participant) ActiveHands() []*Hand {
	hands := make([]*Hand, 0, len(p.Hands))
	for _, h := range p.Hands {
		if h.Active {
			hands = append(hands, h)
		}
	}
	return hands
}

// HasActiveHands reports whether any hand is still in play.
func (p *Participant) HasActiveHands() bool {
	for _, h := range p.Hands {
		if h.Active {
			return true
		}
	}
	return false
}
