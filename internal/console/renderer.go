package console

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/coder/quartz"

	"github.com/lox/blackjack/internal/game"
)

// Renderer narrates round events to a terminal. It subscribes to the game
// bus and paces card announcements with a small delay so play reads like
// a dealt table rather than a log dump. The clock is injectable so tests
// run at full speed.
type Renderer struct {
	w     io.Writer
	clock quartz.Clock
	delay time.Duration

	styles map[string]lipgloss.Style
}

// NewRenderer creates a renderer writing to w. A zero delay disables
// pacing entirely.
func NewRenderer(w io.Writer, clock quartz.Clock, delay time.Duration) *Renderer {
	return &Renderer{
		w:      w,
		clock:  clock,
		delay:  delay,
		styles: make(map[string]lipgloss.Style),
	}
}

// nameStyle assigns seat colors in first-seen order.
func (r *Renderer) nameStyle(name string) lipgloss.Style {
	if s, ok := r.styles[name]; ok {
		return s
	}
	s := PlayerStyle(len(r.styles))
	r.styles[name] = s
	return s
}

func (r *Renderer) say(name string, style lipgloss.Style, format string, args ...any) {
	fmt.Fprintf(r.w, "  %s %s\n", style.Render(name+" ▸"), fmt.Sprintf(format, args...))
}

func (r *Renderer) player(name, format string, args ...any) {
	r.say(name, r.nameStyle(name), format, args...)
}

func (r *Renderer) dealer(format string, args ...any) {
	r.say("Dealer", DealerStyle, format, args...)
}

func (r *Renderer) pause() {
	if r.delay <= 0 {
		return
	}
	done := make(chan struct{})
	t := r.clock.AfterFunc(r.delay, func() {
		close(done)
	})
	defer t.Stop()
	<-done
}

// OnEvent implements game.EventSubscriber.
func (r *Renderer) OnEvent(event game.GameEvent) {
	switch e := event.(type) {
	case game.RoundStartEvent:
		fmt.Fprintf(r.w, "\n%s\n\n", TitleStyle.Render(fmt.Sprintf("New round, minimum bet %d", e.MinBet)))

	case game.HandDealtEvent:
		r.player(e.Name, "dealt %s  (%d)", RenderCards(e.Cards), e.Value)
		r.pause()

	case game.DealerUpCardEvent:
		r.dealer("shows %s", RenderCard(e.Card))
		r.pause()

	case game.HandTurnEvent:
		r.player(e.Name, "plays %s  (%d)", RenderCards(e.Cards), e.Value)

	case game.CardDealtEvent:
		if e.Dealer {
			r.dealer("draws %s  (%d)", RenderCard(e.Card), e.Value)
		} else {
			r.player(e.Name, "draws %s  (%d)", RenderCard(e.Card), e.Value)
		}
		r.pause()

	case game.HandSplitEvent:
		r.player(e.Name, "splits the pair for another %d", e.Stake)

	case game.DoubleDownEvent:
		r.player(e.Name, "doubles down, stake now %d", e.Stake)

	case game.TwentyOneEvent:
		r.player(e.Name, "%s", WinStyle.Render("twenty-one!"))

	case game.BlackjackEvent:
		if e.Dealer {
			r.dealer("%s  %s", WinStyle.Render("blackjack!"), RenderCards(e.Cards))
		} else {
			r.player(e.Name, "%s  %s", WinStyle.Render("blackjack!"), RenderCards(e.Cards))
		}
		r.pause()

	case game.DealerNoBlackjackEvent:
		r.dealer("no blackjack")

	case game.InsuranceResolvedEvent:
		if e.Won {
			r.player(e.Name, "insurance pays %s", WinStyle.Render(fmt.Sprintf("%d", e.Payout)))
		} else {
			r.player(e.Name, "insurance %s (%d)", LossStyle.Render("forfeits"), e.Amount)
		}

	case game.DealerTurnEvent:
		r.dealer("reveals %s  %s  (%d)", RenderCard(e.Revealed), RenderCards(e.Cards), e.Value)
		r.pause()

	case game.DealerBustEvent:
		r.dealer("%s on %d", WinStyle.Render("busts"), e.Value)

	case game.HandOutcomeEvent:
		r.renderOutcome(e)

	case game.RoundEndEvent:
		fmt.Fprintln(r.w)
	}
}

func (r *Renderer) renderOutcome(e game.HandOutcomeEvent) {
	switch e.Outcome {
	case game.OutcomeWin:
		verdict := WinStyle.Render(fmt.Sprintf("wins %d", e.Payout))
		if e.Blackjack {
			r.player(e.Name, "%s at 3:2", verdict)
		} else {
			r.player(e.Name, "%s (%d against %d)", verdict, e.HandValue, e.DealerValue)
		}
	case game.OutcomePush:
		r.player(e.Name, "%s on %d, stake returned", PushStyle.Render("pushes"), e.HandValue)
	case game.OutcomeBust:
		r.player(e.Name, "%s on %d", LossStyle.Render("busts"), e.HandValue)
	default:
		r.player(e.Name, "%s %d (%d against %d)", LossStyle.Render("loses"), e.Stake, e.HandValue, e.DealerValue)
	}
}
