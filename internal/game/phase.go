package game

// Phase enumerates the strict step order of one round. The engine keeps a
// single current phase so sequencing rules (insurance resolves before the
// player blackjack check, the dealer only draws while a hand is live) stay
// independently checkable.
type Phase int

const (
	PhaseBetting Phase = iota
	PhaseDeal
	PhaseInsurance
	PhaseDealerBlackjack
	PhasePlayerBlackjack
	PhasePlayerTurns
	PhaseDealerTurn
	PhaseSettlement
	PhaseDone
)

// String returns the string representation of a phase
func (p Phase) String() string {
	switch p {
	case PhaseBetting:
		return "betting"
	case PhaseDeal:
		return "deal"
	case PhaseInsurance:
		return "insurance"
	case PhaseDealerBlackjack:
		return "dealer-blackjack"
	case PhasePlayerBlackjack:
		return "player-blackjack"
	case PhasePlayerTurns:
		return "player-turns"
	case PhaseDealerTurn:
		return "dealer-turn"
	case PhaseSettlement:
		return "settlement"
	case PhaseDone:
		return "done"
	default:
		return "unknown"
	}
}
