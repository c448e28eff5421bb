// Package game implements the core blackjack rules and settlement engine.
//
// The main type is Game, which drives complete rounds for a set of
// participants against the house dealer: betting, the initial deal,
// insurance, blackjack checks, per-hand player decisions, the dealer's
// fixed draw-to-17 strategy, and final settlement.
//
// # Basic Usage
//
// Create a game and play rounds until nobody can cover the minimum:
//
//	players := []*game.Participant{game.NewParticipant("Alice", 100)}
//	g := game.NewGame(players, agent, logger)
//	for g.PlayRound() {
//	}
//
// # Deterministic Testing
//
// For deterministic play, inject a seeded RNG and a stacked shoe:
//
//	rng := randutil.New(42)
//	shoe := deck.NewStackedShoe(rng, deck.MustParseCards("TsAh9d5c")...)
//	g := game.NewGame(players, agent, logger, game.WithRNG(rng), game.WithShoe(shoe))
//
// # Architecture
//
// Game delegates responsibilities to specialized components:
//   - deck.Shoe: provides cards, replenishing itself when empty
//   - Hand: computes soft-ace values and classifies itself
//   - Participant: owns chips, hands and the win/tie/loss tally
//   - Agent: answers bet and decision requests (human or scripted)
//   - EventBus: publishes round events for presentation layers
//
// The engine is strictly sequential: one round owns all mutable state
// from betting through settlement, and the only blocking points are the
// Agent requests.
package game
