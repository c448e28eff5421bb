package game

import (
	"math/rand/v2"
	"sort"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/lox/blackjack/internal/deck"
	"github.com/lox/blackjack/internal/randutil"
)

// Table defaults. Bets are taken in whole chips at or above the minimum,
// in multiples of the bet multiple. The dealer draws to 16 and stands on
// all 17s, soft included.
const (
	DefaultMinBet      = 10
	DefaultBetMultiple = 2

	dealerStandsOn = 17
)

// Game runs rounds for a fixed roster of players against the house. All
// play is strictly sequential; agents are called one at a time and the
// engine blocks on each answer.
type Game struct {
	shoe         *deck.Shoe
	players      []*Participant
	dealer       *Participant
	defaultAgent Agent
	agents       map[string]Agent
	bus          EventBus
	logger       *log.Logger
	rng          *rand.Rand

	minBet      int
	betMultiple int

	phase   Phase
	roundID string
}

// GameOption configures a Game.
type GameOption func(*Game)

// WithShoe replaces the shoe, typically with a stacked shoe in tests.
func WithShoe(shoe *deck.Shoe) GameOption {
	return func(g *Game) { g.shoe = shoe }
}

// WithRNG replaces the source used for shuffling and player ordering.
func WithRNG(rng *rand.Rand) GameOption {
	return func(g *Game) { g.rng = rng }
}

// WithTableRules overrides the minimum bet and the bet multiple.
func WithTableRules(minBet, betMultiple int) GameOption {
	return func(g *Game) {
		g.minBet = minBet
		g.betMultiple = betMultiple
	}
}

// WithAgent routes one player's decisions to a specific agent instead of
// the default agent.
func WithAgent(name string, agent Agent) GameOption {
	return func(g *Game) { g.agents[name] = agent }
}

// NewGame creates a game for the given players. The default agent answers
// for any player without a dedicated agent.
func NewGame(players []*Participant, defaultAgent Agent, logger *log.Logger, opts ...GameOption) *Game {
	g := &Game{
		players:      players,
		dealer:       NewDealer(),
		defaultAgent: defaultAgent,
		agents:       make(map[string]Agent),
		bus:          NewEventBus(),
		logger:       logger,
		minBet:       DefaultMinBet,
		betMultiple:  DefaultBetMultiple,
		phase:        PhaseDone,
	}

	for _, opt := range opts {
		opt(g)
	}

	if g.rng == nil {
		g.rng = randutil.Auto()
	}
	if g.shoe == nil {
		g.shoe = deck.NewShoe(g.rng)
	}

	return g
}

// EventBus returns the bus round events are published on.
func (g *Game) EventBus() EventBus {
	return g.bus
}

// Dealer returns the house participant.
func (g *Game) Dealer() *Participant {
	return g.dealer
}

// Players returns the full roster, including broke players.
func (g *Game) Players() []*Participant {
	return g.players
}

// Phase returns the current round phase.
func (g *Game) Phase() Phase {
	return g.phase
}

// PlayersWithChips returns the players able to cover amount, in current
// table order.
func (g *Game) PlayersWithChips(amount int) []*Participant {
	players := make([]*Participant, 0, len(g.players))
	for _, p := range g.players {
		if p.HasChips(amount) {
			players = append(players, p)
		}
	}
	return players
}

// PlayRound runs one complete round: betting, the deal, insurance, player
// turns, the dealer turn and settlement. It returns false without playing
// when no player can cover the minimum bet.
func (g *Game) PlayRound() bool {
	g.rng.Shuffle(len(g.players), func(i, j int) {
		g.players[i], g.players[j] = g.players[j], g.players[i]
	})

	active := g.PlayersWithChips(g.minBet)
	if len(active) == 0 {
		g.logger.Info("no players can cover the minimum bet", "min_bet", g.minBet)
		return false
	}

	g.roundID = uuid.New().String()
	g.logger.Info("round starting", "round_id", g.roundID, "players", len(active))
	g.bus.Publish(NewRoundStartEvent(g.roundID, active, g.minBet))

	g.setPhase(PhaseBetting)
	g.collectBets(active)

	g.setPhase(PhaseDeal)
	g.deal(active)

	if g.dealer.Hands[0].First().IsAce() {
		g.setPhase(PhaseInsurance)
		g.offerInsurance(active)
	}

	g.setPhase(PhaseDealerBlackjack)
	if g.resolveDealerBlackjack(active) {
		g.finishRound()
		return true
	}

	g.setPhase(PhasePlayerBlackjack)
	g.settleNaturals(active)

	g.setPhase(PhasePlayerTurns)
	for _, p := range active {
		g.playTurn(p)
	}

	if g.anyActiveHands(active) {
		g.setPhase(PhaseDealerTurn)
		g.playDealerTurn()
	}

	g.setPhase(PhaseSettlement)
	for _, p := range active {
		for _, h := range p.ActiveHands() {
			g.settle(p, h)
		}
	}

	g.finishRound()
	return true
}

// SessionSummary returns the roster ordered by chips, richest first, for
// end-of-session display.
func (g *Game) SessionSummary() []*Participant {
	summary := make([]*Participant, len(g.players))
	copy(summary, g.players)
	sort.SliceStable(summary, func(i, j int) bool {
		return summary[i].Chips > summary[j].Chips
	})
	return summary
}

func (g *Game) setPhase(phase Phase) {
	g.phase = phase
	g.logger.Debug("phase change", "phase", phase)
	g.bus.Publish(NewPhaseChangeEvent(phase))
}

func (g *Game) finishRound() {
	g.setPhase(PhaseDone)
	g.bus.Publish(NewRoundEndEvent(g.roundID))
	g.logger.Info("round complete", "round_id", g.roundID)
}

func (g *Game) agentFor(p *Participant) Agent {
	if agent, ok := g.agents[p.Name]; ok {
		return agent
	}
	return g.defaultAgent
}

// requestBet asks the player's agent for a bet and re-asks until the
// answer satisfies the request. Insurance requests allow zero to decline.
func (g *Game) requestBet(p *Participant, req BetRequest) int {
	for {
		amount := g.agentFor(p).RequestBet(p, req)
		if req.Reason == BetInsurance && amount == 0 {
			return 0
		}
		if amount < req.Minimum || amount > p.Chips || amount%req.Multiple != 0 {
			g.logger.Warn("rejecting bet",
				"player", p.Name,
				"reason", req.Reason,
				"amount", amount,
				"minimum", req.Minimum,
				"multiple", req.Multiple,
				"chips", p.Chips)
			continue
		}
		return amount
	}
}

// requestDecision asks the player's agent to pick one of the offered
// options and re-asks until the answer is a member of the set.
func (g *Game) requestDecision(p *Participant, hand *Hand, options []Option) Option {
	for {
		choice := g.agentFor(p).RequestDecision(p, hand, options)
		if containsOption(options, choice) {
			return choice
		}
		g.logger.Warn("rejecting decision",
			"player", p.Name,
			"choice", choice,
			"options", options)
	}
}

func (g *Game) collectBets(players []*Participant) {
	req := BetRequest{Reason: BetStake, Minimum: g.minBet, Multiple: g.betMultiple}
	for _, p := range players {
		amount := g.requestBet(p, req)
		if _, err := p.Bet(amount); err != nil {
			// requestBet already bounded the amount by the balance.
			g.logger.Error("bet failed", "player", p.Name, "amount", amount, "err", err)
			continue
		}
		p.Hands = []*Hand{NewHand(amount)}
		p.Insurance = 0
		g.logger.Debug("bet placed", "player", p.Name, "amount", amount, "chips", p.Chips)
	}
}

// deal gives everyone two cards in two passes, players first then the
// dealer, announcing whole hands rather than card by card.
func (g *Game) deal(players []*Participant) {
	g.dealer.Hands = []*Hand{NewHand(0)}

	for pass := 0; pass < 2; pass++ {
		for _, p := range players {
			p.Hands[0].Add(g.shoe.Deal())
		}
		g.dealer.Hands[0].Add(g.shoe.Deal())
	}

	for _, p := range players {
		g.bus.Publish(NewHandDealtEvent(p.Name, p.Hands[0]))
	}
	g.bus.Publish(NewDealerUpCardEvent(g.dealer.Hands[0].First()))
	g.logger.Debug("initial deal complete", "up_card", g.dealer.Hands[0].First(), "shoe", g.shoe.Len())
}

// offerInsurance runs only when the dealer shows an ace. Any player with
// chips may take the side-bet; the bet is debited immediately.
func (g *Game) offerInsurance(players []*Participant) {
	req := BetRequest{Reason: BetInsurance, Minimum: 0, Multiple: g.betMultiple}
	for _, p := range players {
		if !p.HasChips(0) {
			continue
		}
		amount := g.requestBet(p, req)
		if amount == 0 {
			continue
		}
		if _, err := p.Bet(amount); err != nil {
			g.logger.Error("insurance bet failed", "player", p.Name, "amount", amount, "err", err)
			continue
		}
		p.Insurance = amount
		g.logger.Debug("insurance taken", "player", p.Name, "amount", amount)
	}
}

// resolveDealerBlackjack checks for a dealer natural. On blackjack the
// round ends immediately: insurance pays 2:1 and every hand settles
// against it. Otherwise any insurance forfeits and play continues.
func (g *Game) resolveDealerBlackjack(players []*Participant) bool {
	dealerHand := g.dealer.Hands[0]
	upAce := dealerHand.First().IsAce()

	if !dealerHand.Blackjack() {
		if upAce {
			g.bus.Publish(NewDealerNoBlackjackEvent())
			for _, p := range players {
				if p.Insurance > 0 {
					p.Loss()
					g.bus.Publish(NewInsuranceResolvedEvent(p.Name, p.Insurance, false, 0))
				}
			}
		}
		return false
	}

	g.bus.Publish(NewBlackjackEvent(g.dealer.Name, dealerHand, true))
	g.logger.Info("dealer blackjack", "cards", dealerHand.String())

	for _, p := range players {
		if p.Insurance > 0 {
			payout := InsurancePays.Payout(p.Insurance)
			p.Win(p.Insurance, InsurancePays)
			g.bus.Publish(NewInsuranceResolvedEvent(p.Name, p.Insurance, true, payout))
		}
		for _, h := range p.ActiveHands() {
			g.settle(p, h)
		}
	}
	return true
}

// settleNaturals pays player blackjacks at 3:2 before any turns are
// taken. A player natural against a dealer natural never reaches here;
// that pushes in resolveDealerBlackjack.
func (g *Game) settleNaturals(players []*Participant) {
	for _, p := range players {
		for _, h := range p.ActiveHands() {
			if h.Blackjack() {
				g.bus.Publish(NewBlackjackEvent(p.Name, h, false))
				g.settle(p, h)
			}
		}
	}
}

func (g *Game) playTurn(p *Participant) {
	// Index loop: a split appends to p.Hands mid-iteration.
	for i := 0; i < len(p.Hands); i++ {
		h := p.Hands[i]
		if !h.Active {
			continue
		}
		g.playHand(p, h)
	}
}

func (g *Game) playHand(p *Participant, h *Hand) {
	g.bus.Publish(NewHandTurnEvent(p.Name, h))

	if !h.FromSplit() && p.CanSplit(h) {
		if g.requestDecision(p, h, []Option{Split, Keep}) == Split {
			g.splitHand(p, h)
		}
	}

	for {
		if h.TwentyOne() {
			if !h.Blackjack() {
				g.bus.Publish(NewTwentyOneEvent(p.Name))
			}
			return
		}
		if h.Bust() {
			g.bustHand(p, h)
			return
		}

		options := []Option{Hit, Stand}
		if p.CanDoubleDown(h) {
			options = append(options, Double)
		}

		switch g.requestDecision(p, h, options) {
		case Hit:
			g.dealTo(p.Name, h, false)
		case Stand:
			return
		case Double:
			g.doubleDown(p, h)
			return
		}
	}
}

// splitHand breaks a pair into two staked hands, debits the second stake
// and deals one fresh card to each hand.
func (g *Game) splitHand(p *Participant, h *Hand) {
	split, err := h.Split()
	if err != nil {
		g.logger.Error("split failed", "player", p.Name, "err", err)
		return
	}
	if _, err := p.Bet(split.Stake); err != nil {
		// CanSplit guaranteed coverage; re-add the card and carry on.
		g.logger.Error("split stake failed", "player", p.Name, "err", err)
		h.Add(split.First())
		return
	}
	p.Hands = append(p.Hands, split)
	g.bus.Publish(NewHandSplitEvent(p.Name, split.Stake))
	g.logger.Debug("hand split", "player", p.Name, "stake", split.Stake)

	g.dealTo(p.Name, h, false)
	g.dealTo(p.Name, split, false)
}

// doubleDown doubles the stake for exactly one more card. The hand then
// stands or busts on what it drew.
func (g *Game) doubleDown(p *Participant, h *Hand) {
	if _, err := p.Bet(h.Stake); err != nil {
		g.logger.Error("double down stake failed", "player", p.Name, "err", err)
		return
	}
	h.Stake *= 2
	g.bus.Publish(NewDoubleDownEvent(p.Name, h.Stake))
	g.logger.Debug("double down", "player", p.Name, "stake", h.Stake)

	g.dealTo(p.Name, h, false)
	if h.Bust() {
		g.bustHand(p, h)
	}
}

func (g *Game) dealTo(name string, h *Hand, dealer bool) {
	card := g.shoe.Deal()
	h.Add(card)
	g.bus.Publish(NewCardDealtEvent(name, card, h, dealer))
}

// bustHand settles a bust immediately. The stake is already gone; the
// dealer never plays against it.
func (g *Game) bustHand(p *Participant, h *Hand) {
	h.Active = false
	p.Loss()
	g.bus.Publish(NewHandOutcomeEvent(p.Name, OutcomeBust, false, h.Stake, 0, h.Value(), 0))
	g.logger.Debug("hand bust", "player", p.Name, "value", h.Value())
}

// playDealerTurn reveals the hole card and draws to 16, standing on all
// 17s. Runs only when at least one hand is still live.
func (g *Game) playDealerTurn() {
	h := g.dealer.Hands[0]
	g.bus.Publish(NewDealerTurnEvent(h))

	for h.Value() < dealerStandsOn {
		g.dealTo(g.dealer.Name, h, true)
	}
	g.logger.Debug("dealer stands", "value", h.Value(), "cards", h.String())

	if h.Bust() {
		g.bus.Publish(NewDealerBustEvent(h.Value()))
	}
}

// settle resolves one hand against the dealer: a dealer bust or a higher
// total wins (3:2 for a natural, 1:1 otherwise), an equal total pushes,
// anything else loses.
func (g *Game) settle(p *Participant, h *Hand) {
	h.Active = false

	dealerHand := g.dealer.Hands[0]
	hv, dv := h.Value(), dealerHand.Value()

	switch {
	case dealerHand.Bust() || hv > dv:
		odds := EvenMoney
		if h.Blackjack() {
			odds = BlackjackPays
		}
		payout := odds.Payout(h.Stake)
		p.Win(h.Stake, odds)
		g.bus.Publish(NewHandOutcomeEvent(p.Name, OutcomeWin, h.Blackjack(), h.Stake, payout, hv, dv))
	case hv == dv:
		p.Push(h.Stake)
		g.bus.Publish(NewHandOutcomeEvent(p.Name, OutcomePush, h.Blackjack(), h.Stake, h.Stake, hv, dv))
	default:
		p.Loss()
		g.bus.Publish(NewHandOutcomeEvent(p.Name, OutcomeLoss, false, h.Stake, 0, hv, dv))
	}
}

func (g *Game) anyActiveHands(players []*Participant) bool {
	for _, p := range players {
		if p.HasActiveHands() {
			return true
		}
	}
	return false
}
