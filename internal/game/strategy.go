package game

import (
	"math/rand/v2"

	"github.com/lox/blackjack/internal/deck"
)

// BasicAgent plays a fixed simple strategy with no card counting: bet the
// table minimum, decline insurance, split aces and eights, double on 9
// through 11 and otherwise draw to 17. Useful as a simulator baseline and
// as the default opponent at a mixed table.
type BasicAgent struct{}

// NewBasicAgent creates a basic strategy agent.
func NewBasicAgent() *BasicAgent {
	return &BasicAgent{}
}

// RequestBet bets the table minimum and never takes insurance.
func (a *BasicAgent) RequestBet(p *Participant, req BetRequest) int {
	if req.Reason == BetInsurance {
		return 0
	}
	return req.Minimum
}

// RequestDecision applies the fixed strategy to the offered options.
func (a *BasicAgent) RequestDecision(p *Participant, hand *Hand, options []Option) Option {
	if containsOption(options, Split) {
		r := hand.First().Rank
		if r == deck.Ace || r == deck.Eight {
			return Split
		}
		return Keep
	}

	v := hand.Value()
	if containsOption(options, Double) && v >= 9 && v <= 11 {
		return Double
	}
	if v < 17 {
		return Hit
	}
	return Stand
}

// RandomAgent answers every request with a uniformly random valid choice.
// It exists to fuzz the engine: whatever it does, chip balances stay
// non-negative and rounds terminate.
type RandomAgent struct {
	rng *rand.Rand
}

// NewRandomAgent creates a random agent driven by the given source.
func NewRandomAgent(rng *rand.Rand) *RandomAgent {
	return &RandomAgent{rng: rng}
}

// RequestBet picks a random valid amount. Insurance is declined half the
// time.
func (a *RandomAgent) RequestBet(p *Participant, req BetRequest) int {
	if req.Reason == BetInsurance {
		if a.rng.IntN(2) == 0 {
			return 0
		}
	}
	min := req.Minimum
	if min < req.Multiple {
		min = req.Multiple
	}
	if p.Chips < min {
		return 0
	}
	steps := (p.Chips-min)/req.Multiple + 1
	return min + req.Multiple*a.rng.IntN(steps)
}

// RequestDecision picks uniformly from the offered options.
func (a *RandomAgent) RequestDecision(p *Participant, hand *Hand, options []Option) Option {
	return options[a.rng.IntN(len(options))]
}
