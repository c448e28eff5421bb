package game

// BetReason says what a requested bet is for.
type BetReason int

const (
	BetStake BetReason = iota
	BetInsurance
)

// String returns the string representation of a bet reason
func (r BetReason) String() string {
	switch r {
	case BetStake:
		return "stake"
	case BetInsurance:
		return "insurance"
	default:
		return "unknown"
	}
}

// BetRequest describes the constraints on a requested bet. The agent must
// answer with an amount between Minimum and the participant's chips that
// is divisible by Multiple; the engine re-asks until it does. A zero
// answer to an insurance request declines the side-bet.
type BetRequest struct {
	Reason   BetReason
	Minimum  int
	Multiple int
}

// Option is a choice offered to an agent for one hand.
type Option int

const (
	Hit Option = iota
	Stand
	Double
	Split
	Keep // decline the offered split
)

// String returns the string representation of an option
func (o Option) String() string {
	switch o {
	case Hit:
		return "hit"
	case Stand:
		return "stand"
	case Double:
		return "double"
	case Split:
		return "split"
	case Keep:
		return "keep"
	default:
		return "unknown"
	}
}

// Agent supplies the decisions the engine blocks on, whether from a human
// at a prompt or a scripted strategy. Implementations never mutate game
// state; they only answer the question asked. The engine validates every
// answer and re-asks until it satisfies the offered constraints.
type Agent interface {
	// RequestBet asks for a bet satisfying req. The engine re-requests
	// until the amount is within [req.Minimum, p.Chips] and divisible by
	// req.Multiple.
	RequestBet(p *Participant, req BetRequest) int

	// RequestDecision asks for one option from the offered set for the
	// given hand. The engine re-requests until the answer is a member of
	// options.
	RequestDecision(p *Participant, hand *Hand, options []Option) Option
}

func containsOption(options []Option, o Option) bool {
	for _, opt := range options {
		if opt == o {
			return true
		}
	}
	return false
}
