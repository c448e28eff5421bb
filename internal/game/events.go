package game

import (
	"time"

	"github.com/lox/blackjack/internal/deck"
)

// EventType represents a game event type with type safety
type EventType string

// EventType constants for round events. These are the records the
// presentation layer renders; the engine itself never prints.
const (
	EventTypeRoundStart        EventType = "round_start"
	EventTypeRoundEnd          EventType = "round_end"
	EventTypePhaseChange       EventType = "phase_change"
	EventTypeCardDealt         EventType = "card_dealt"
	EventTypeHandDealt         EventType = "hand_dealt"
	EventTypeDealerUpCard      EventType = "dealer_up_card"
	EventTypeHandTurn          EventType = "hand_turn"
	EventTypeHandSplit         EventType = "hand_split"
	EventTypeTwentyOne         EventType = "twenty_one"
	EventTypeBlackjack         EventType = "blackjack"
	EventTypeDealerNoBlackjack EventType = "dealer_no_blackjack"
	EventTypeInsuranceResolved EventType = "insurance_resolved"
	EventTypeDoubleDown        EventType = "double_down"
	EventTypeHandOutcome       EventType = "hand_outcome"
	EventTypeDealerTurn        EventType = "dealer_turn"
	EventTypeDealerBust        EventType = "dealer_bust"
)

// String returns the string representation of the event type
func (et EventType) String() string {
	return string(et)
}

// GameEvent represents any event that occurs during a round
type GameEvent interface {
	EventType() EventType
	Timestamp() time.Time
}

// Outcome classifies how a hand settled against the dealer.
type Outcome int

const (
	OutcomeWin Outcome = iota
	OutcomePush
	OutcomeLoss
	OutcomeBust
)

// String returns the string representation of an outcome
func (o Outcome) String() string {
	switch o {
	case OutcomeWin:
		return "win"
	case OutcomePush:
		return "push"
	case OutcomeLoss:
		return "loss"
	case OutcomeBust:
		return "bust"
	default:
		return "unknown"
	}
}

// RoundStartEvent is published when betting opens for a new round
type RoundStartEvent struct {
	RoundID   string
	Players   []string
	MinBet    int
	timestamp time.Time
}

func (e RoundStartEvent) EventType() EventType { return EventTypeRoundStart }
func (e RoundStartEvent) Timestamp() time.Time { return e.timestamp }

// NewRoundStartEvent creates a new round start event
func NewRoundStartEvent(roundID string, players []*Participant, minBet int) RoundStartEvent {
	names := make([]string, len(players))
	for i, p := range players {
		names[i] = p.Name
	}
	return RoundStartEvent{
		RoundID:   roundID,
		Players:   names,
		MinBet:    minBet,
		timestamp: time.Now(),
	}
}

// RoundEndEvent is published when every hand has settled
type RoundEndEvent struct {
	RoundID   string
	timestamp time.Time
}

func (e RoundEndEvent) EventType() EventType { return EventTypeRoundEnd }
func (e RoundEndEvent) Timestamp() time.Time { return e.timestamp }

// NewRoundEndEvent creates a new round end event
func NewRoundEndEvent(roundID string) RoundEndEvent {
	return RoundEndEvent{RoundID: roundID, timestamp: time.Now()}
}

// PhaseChangeEvent is published when the engine advances to a new phase
type PhaseChangeEvent struct {
	Phase     Phase
	timestamp time.Time
}

func (e PhaseChangeEvent) EventType() EventType { return EventTypePhaseChange }
func (e PhaseChangeEvent) Timestamp() time.Time { return e.timestamp }

// NewPhaseChangeEvent creates a new phase change event
func NewPhaseChangeEvent(phase Phase) PhaseChangeEvent {
	return PhaseChangeEvent{Phase: phase, timestamp: time.Now()}
}

// CardDealtEvent is published for every announced card: hits, double-down
// draws and dealer draws. The silent initial deal publishes HandDealt
// events instead.
type CardDealtEvent struct {
	Name      string
	Card      deck.Card
	Value     int
	Cards     []deck.Card
	Dealer    bool
	timestamp time.Time
}

func (e CardDealtEvent) EventType() EventType { return EventTypeCardDealt }
func (e CardDealtEvent) Timestamp() time.Time { return e.timestamp }

// NewCardDealtEvent creates a new card dealt event
func NewCardDealtEvent(name string, card deck.Card, hand *Hand, dealer bool) CardDealtEvent {
	return CardDealtEvent{
		Name:      name,
		Card:      card,
		Value:     hand.Value(),
		Cards:     snapshotCards(hand),
		Dealer:    dealer,
		timestamp: time.Now(),
	}
}

// HandDealtEvent is published once per player after the initial deal
type HandDealtEvent struct {
	Name      string
	Cards     []deck.Card
	Value     int
	timestamp time.Time
}

func (e HandDealtEvent) EventType() EventType { return EventTypeHandDealt }
func (e HandDealtEvent) Timestamp() time.Time { return e.timestamp }

// NewHandDealtEvent creates a new hand dealt event
func NewHandDealtEvent(name string, hand *Hand) HandDealtEvent {
	return HandDealtEvent{
		Name:      name,
		Cards:     snapshotCards(hand),
		Value:     hand.Value(),
		timestamp: time.Now(),
	}
}

// DealerUpCardEvent is published after the initial deal with the dealer's
// face-up card
type DealerUpCardEvent struct {
	Card      deck.Card
	timestamp time.Time
}

func (e DealerUpCardEvent) EventType() EventType { return EventTypeDealerUpCard }
func (e DealerUpCardEvent) Timestamp() time.Time { return e.timestamp }

// NewDealerUpCardEvent creates a new dealer up card event
func NewDealerUpCardEvent(card deck.Card) DealerUpCardEvent {
	return DealerUpCardEvent{Card: card, timestamp: time.Now()}
}

// HandTurnEvent is published when play turns to a hand, so the renderer
// can show its current cards and value
type HandTurnEvent struct {
	Name      string
	Cards     []deck.Card
	Value     int
	timestamp time.Time
}

func (e HandTurnEvent) EventType() EventType { return EventTypeHandTurn }
func (e HandTurnEvent) Timestamp() time.Time { return e.timestamp }

// NewHandTurnEvent creates a new hand turn event
func NewHandTurnEvent(name string, hand *Hand) HandTurnEvent {
	return HandTurnEvent{
		Name:      name,
		Cards:     snapshotCards(hand),
		Value:     hand.Value(),
		timestamp: time.Now(),
	}
}

// HandSplitEvent is published when a pair is split into two hands
type HandSplitEvent struct {
	Name      string
	Stake     int
	timestamp time.Time
}

func (e HandSplitEvent) EventType() EventType { return EventTypeHandSplit }
func (e HandSplitEvent) Timestamp() time.Time { return e.timestamp }

// NewHandSplitEvent creates a new hand split event
func NewHandSplitEvent(name string, stake int) HandSplitEvent {
	return HandSplitEvent{Name: name, Stake: stake, timestamp: time.Now()}
}

// TwentyOneEvent is published when a hand reaches exactly 21 and play on
// it stops
type TwentyOneEvent struct {
	Name      string
	timestamp time.Time
}

func (e TwentyOneEvent) EventType() EventType { return EventTypeTwentyOne }
func (e TwentyOneEvent) Timestamp() time.Time { return e.timestamp }

// NewTwentyOneEvent creates a new twenty-one event
func NewTwentyOneEvent(name string) TwentyOneEvent {
	return TwentyOneEvent{Name: name, timestamp: time.Now()}
}

// BlackjackEvent is published for a natural, player or dealer
type BlackjackEvent struct {
	Name      string
	Dealer    bool
	Cards     []deck.Card
	timestamp time.Time
}

func (e BlackjackEvent) EventType() EventType { return EventTypeBlackjack }
func (e BlackjackEvent) Timestamp() time.Time { return e.timestamp }

// NewBlackjackEvent creates a new blackjack event
func NewBlackjackEvent(name string, hand *Hand, dealer bool) BlackjackEvent {
	return BlackjackEvent{
		Name:      name,
		Dealer:    dealer,
		Cards:     snapshotCards(hand),
		timestamp: time.Now(),
	}
}

// DealerNoBlackjackEvent is published when the dealer showed an ace but
// did not have blackjack, so insurance bets forfeit and play continues
type DealerNoBlackjackEvent struct {
	timestamp time.Time
}

func (e DealerNoBlackjackEvent) EventType() EventType { return EventTypeDealerNoBlackjack }
func (e DealerNoBlackjackEvent) Timestamp() time.Time { return e.timestamp }

// NewDealerNoBlackjackEvent creates a new dealer no-blackjack event
func NewDealerNoBlackjackEvent() DealerNoBlackjackEvent {
	return DealerNoBlackjackEvent{timestamp: time.Now()}
}

// InsuranceResolvedEvent is published when an insurance side-bet pays out
// or forfeits
type InsuranceResolvedEvent struct {
	Name      string
	Amount    int
	Won       bool
	Payout    int
	timestamp time.Time
}

func (e InsuranceResolvedEvent) EventType() EventType { return EventTypeInsuranceResolved }
func (e InsuranceResolvedEvent) Timestamp() time.Time { return e.timestamp }

// NewInsuranceResolvedEvent creates a new insurance resolved event
func NewInsuranceResolvedEvent(name string, amount int, won bool, payout int) InsuranceResolvedEvent {
	return InsuranceResolvedEvent{
		Name:      name,
		Amount:    amount,
		Won:       won,
		Payout:    payout,
		timestamp: time.Now(),
	}
}

// DoubleDownEvent is published when a hand doubles its stake for one
// final card
type DoubleDownEvent struct {
	Name      string
	Stake     int
	timestamp time.Time
}

func (e DoubleDownEvent) EventType() EventType { return EventTypeDoubleDown }
func (e DoubleDownEvent) Timestamp() time.Time { return e.timestamp }

// NewDoubleDownEvent creates a new double down event
func NewDoubleDownEvent(name string, stake int) DoubleDownEvent {
	return DoubleDownEvent{Name: name, Stake: stake, timestamp: time.Now()}
}

// HandOutcomeEvent is published when a hand settles, including immediate
// bust and blackjack settlements
type HandOutcomeEvent struct {
	Name        string
	Outcome     Outcome
	Blackjack   bool
	Stake       int
	Payout      int
	HandValue   int
	DealerValue int
	timestamp   time.Time
}

func (e HandOutcomeEvent) EventType() EventType { return EventTypeHandOutcome }
func (e HandOutcomeEvent) Timestamp() time.Time { return e.timestamp }

// NewHandOutcomeEvent creates a new hand outcome event
func NewHandOutcomeEvent(name string, outcome Outcome, blackjack bool, stake, payout, handValue, dealerValue int) HandOutcomeEvent {
	return HandOutcomeEvent{
		Name:        name,
		Outcome:     outcome,
		Blackjack:   blackjack,
		Stake:       stake,
		Payout:      payout,
		HandValue:   handValue,
		DealerValue: dealerValue,
		timestamp:   time.Now(),
	}
}

// DealerTurnEvent is published when the dealer reveals the hole card and
// begins drawing
type DealerTurnEvent struct {
	Revealed  deck.Card
	Value     int
	Cards     []deck.Card
	timestamp time.Time
}

func (e DealerTurnEvent) EventType() EventType { return EventTypeDealerTurn }
func (e DealerTurnEvent) Timestamp() time.Time { return e.timestamp }

// NewDealerTurnEvent creates a new dealer turn event
func NewDealerTurnEvent(hand *Hand) DealerTurnEvent {
	return DealerTurnEvent{
		Revealed:  hand.Last(),
		Value:     hand.Value(),
		Cards:     snapshotCards(hand),
		timestamp: time.Now(),
	}
}

// DealerBustEvent is published when the dealer draws past 21
type DealerBustEvent struct {
	Value     int
	timestamp time.Time
}

func (e DealerBustEvent) EventType() EventType { return EventTypeDealerBust }
func (e DealerBustEvent) Timestamp() time.Time { return e.timestamp }

// NewDealerBustEvent creates a new dealer bust event
func NewDealerBustEvent(value int) DealerBustEvent {
	return DealerBustEvent{Value: value, timestamp: time.Now()}
}

// snapshotCards copies a hand's cards so events stay stable after the
// hand mutates.
func snapshotCards(hand *Hand) []deck.Card {
	cards := make([]deck.Card, len(hand.Cards()))
	copy(cards, hand.Cards())
	return cards
}

// EventSubscriber can subscribe to game events
type EventSubscriber interface {
	OnEvent(event GameEvent)
}

// EventBus manages event publishing and subscription
type EventBus interface {
	Subscribe(subscriber EventSubscriber)
	Unsubscribe(subscriber EventSubscriber)
	Publish(event GameEvent)
}

// SimpleEventBus is a basic in-memory event bus implementation
type SimpleEventBus struct {
	subscribers []EventSubscriber
}

// NewEventBus creates a new event bus
func NewEventBus() EventBus {
	return &SimpleEventBus{
		subscribers: make([]EventSubscriber, 0),
	}
}

// Subscribe adds a subscriber to receive events
func (bus *SimpleEventBus) Subscribe(subscriber EventSubscriber) {
	bus.subscribers = append(bus.subscribers, subscriber)
}

// Unsubscribe removes a subscriber from receiving events
func (bus *SimpleEventBus) Unsubscribe(subscriber EventSubscriber) {
	for i, sub := range bus.subscribers {
		if sub == subscriber {
			bus.subscribers = append(bus.subscribers[:i], bus.subscribers[i+1:]...)
			break
		}
	}
}

// Publish sends an event to all subscribers
func (bus *SimpleEventBus) Publish(event GameEvent) {
	for _, subscriber := range bus.subscribers {
		subscriber.OnEvent(event)
	}
}
