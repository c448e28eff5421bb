package console

import (
	"bytes"
	"io"
	"math/rand/v2"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/stretchr/testify/assert"

	"github.com/lox/blackjack/internal/deck"
	"github.com/lox/blackjack/internal/game"
	"github.com/lox/blackjack/internal/randutil"
)

func discardLogger() *log.Logger {
	return log.New(io.Discard)
}

func deckRNG() *rand.Rand {
	return randutil.New(1)
}

func testHand(t *testing.T, cards string, stake int) *game.Hand {
	t.Helper()
	h := game.NewHand(stake)
	for _, c := range deck.MustParseCards(cards) {
		h.Add(c)
	}
	return h
}

func renderOne(t *testing.T, event game.GameEvent) string {
	t.Helper()
	var buf bytes.Buffer
	r := NewRenderer(&buf, quartz.NewReal(), 0)
	r.OnEvent(event)
	return buf.String()
}

func TestRendererHandDealt(t *testing.T) {
	out := renderOne(t, game.NewHandDealtEvent("alice", testHand(t, "AsKh", 10)))
	assert.Contains(t, out, "alice")
	assert.Contains(t, out, "A♠")
	assert.Contains(t, out, "K♥")
	assert.Contains(t, out, "(21)")
}

func TestRendererDealerDraw(t *testing.T) {
	h := testHand(t, "Ts6h5s", 0)
	out := renderOne(t, game.NewCardDealtEvent("Dealer", deck.MustParseCards("5s")[0], h, true))
	assert.Contains(t, out, "Dealer")
	assert.Contains(t, out, "draws")
	assert.Contains(t, out, "(21)")
}

func TestRendererOutcomes(t *testing.T) {
	win := renderOne(t, game.NewHandOutcomeEvent("alice", game.OutcomeWin, false, 20, 40, 20, 18))
	assert.Contains(t, win, "wins 40")

	natural := renderOne(t, game.NewHandOutcomeEvent("alice", game.OutcomeWin, true, 10, 25, 21, 17))
	assert.Contains(t, natural, "3:2")

	push := renderOne(t, game.NewHandOutcomeEvent("alice", game.OutcomePush, false, 20, 20, 19, 19))
	assert.Contains(t, push, "pushes")

	loss := renderOne(t, game.NewHandOutcomeEvent("alice", game.OutcomeLoss, false, 20, 0, 17, 19))
	assert.Contains(t, loss, "loses 20")

	bust := renderOne(t, game.NewHandOutcomeEvent("alice", game.OutcomeBust, false, 20, 0, 24, 0))
	assert.Contains(t, bust, "busts on 24")
}

func TestRendererInsurance(t *testing.T) {
	won := renderOne(t, game.NewInsuranceResolvedEvent("alice", 4, true, 12))
	assert.Contains(t, won, "insurance pays")
	assert.Contains(t, won, "12")

	lost := renderOne(t, game.NewInsuranceResolvedEvent("alice", 4, false, 0))
	assert.Contains(t, lost, "forfeits")
}

func TestRendererFullRound(t *testing.T) {
	// Renderer narrates a whole scripted round without panicking and
	// mentions every participant.
	var buf bytes.Buffer
	r := NewRenderer(&buf, quartz.NewReal(), 0)

	p := game.NewParticipant("alice", 100)
	rng := deckRNG()
	shoe := deck.NewStackedShoe(rng, deck.MustParseCards("KhKsQsQh")...)
	g := game.NewGame([]*game.Participant{p}, game.NewBasicAgent(), discardLogger(),
		game.WithShoe(shoe), game.WithRNG(rng))
	g.EventBus().Subscribe(r)

	assert.True(t, g.PlayRound())

	out := buf.String()
	assert.Contains(t, out, "alice")
	assert.Contains(t, out, "Dealer")
	assert.Contains(t, out, "pushes")
}
