package console

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lox/blackjack/internal/game"
)

func promptWith(input string) (*Prompter, *bytes.Buffer) {
	var out bytes.Buffer
	return NewPrompter(strings.NewReader(input), &out), &out
}

func TestPrompterBet(t *testing.T) {
	pr, _ := promptWith("50\n")
	p := game.NewParticipant("alice", 100)

	bet := pr.RequestBet(p, game.BetRequest{Reason: game.BetStake, Minimum: 10, Multiple: 2})
	assert.Equal(t, 50, bet)
}

func TestPrompterBetEmptyDefaultsToMinimum(t *testing.T) {
	pr, _ := promptWith("\n")
	p := game.NewParticipant("alice", 100)

	bet := pr.RequestBet(p, game.BetRequest{Reason: game.BetStake, Minimum: 10, Multiple: 2})
	assert.Equal(t, 10, bet)
}

func TestPrompterBetReasksOnGarbage(t *testing.T) {
	pr, out := promptWith("lots\n20\n")
	p := game.NewParticipant("alice", 100)

	bet := pr.RequestBet(p, game.BetRequest{Reason: game.BetStake, Minimum: 10, Multiple: 2})
	assert.Equal(t, 20, bet)
	assert.Contains(t, out.String(), "whole number")
}

func TestPrompterInsuranceEmptyDeclines(t *testing.T) {
	pr, _ := promptWith("\n")
	p := game.NewParticipant("alice", 100)

	bet := pr.RequestBet(p, game.BetRequest{Reason: game.BetInsurance, Minimum: 0, Multiple: 2})
	assert.Equal(t, 0, bet)
}

func TestPrompterClosedInputUsesDefaults(t *testing.T) {
	pr, _ := promptWith("")
	p := game.NewParticipant("alice", 100)

	bet := pr.RequestBet(p, game.BetRequest{Reason: game.BetStake, Minimum: 10, Multiple: 2})
	assert.Equal(t, 10, bet)
}

func TestPrompterSplitDecision(t *testing.T) {
	p := game.NewParticipant("alice", 100)
	hand := testHand(t, "8s8h", 20)
	offer := []game.Option{game.Split, game.Keep}

	pr, _ := promptWith("y\n")
	assert.Equal(t, game.Split, pr.RequestDecision(p, hand, offer))

	pr, _ = promptWith("n\n")
	assert.Equal(t, game.Keep, pr.RequestDecision(p, hand, offer))

	// Enter defaults to splitting.
	pr, _ = promptWith("\n")
	assert.Equal(t, game.Split, pr.RequestDecision(p, hand, offer))
}

func TestPrompterPlayDecision(t *testing.T) {
	p := game.NewParticipant("alice", 100)
	hand := testHand(t, "6s5h", 20)
	options := []game.Option{game.Hit, game.Stand, game.Double}

	pr, _ := promptWith("h\n")
	assert.Equal(t, game.Hit, pr.RequestDecision(p, hand, options))

	pr, _ = promptWith("stand\n")
	assert.Equal(t, game.Stand, pr.RequestDecision(p, hand, options))

	pr, _ = promptWith("d\n")
	assert.Equal(t, game.Double, pr.RequestDecision(p, hand, options))

	// Enter defaults to hitting.
	pr, _ = promptWith("\n")
	assert.Equal(t, game.Hit, pr.RequestDecision(p, hand, options))
}

func TestPrompterDoubleRefusedWhenNotOffered(t *testing.T) {
	p := game.NewParticipant("alice", 100)
	hand := testHand(t, "6s5h2d", 20)

	pr, out := promptWith("d\ns\n")
	choice := pr.RequestDecision(p, hand, []game.Option{game.Hit, game.Stand})
	assert.Equal(t, game.Stand, choice)
	assert.Contains(t, out.String(), "answer")
}
