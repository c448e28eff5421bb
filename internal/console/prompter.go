package console

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/lox/blackjack/internal/game"
)

// Prompter is an interactive game.Agent reading answers from a terminal.
// It validates what it can locally and re-asks on unparseable input, but
// the engine remains the final authority on every answer.
type Prompter struct {
	in  *bufio.Reader
	out io.Writer
}

// NewPrompter creates a prompter reading from in and writing to out.
func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{
		in:  bufio.NewReader(in),
		out: out,
	}
}

func (pr *Prompter) readLine() string {
	line, err := pr.in.ReadString('\n')
	if err != nil && line == "" {
		// Closed stdin: the empty answer maps to each prompt's default.
		return ""
	}
	return strings.TrimSpace(line)
}

// RequestBet implements game.Agent.
func (pr *Prompter) RequestBet(p *game.Participant, req game.BetRequest) int {
	for {
		switch req.Reason {
		case game.BetInsurance:
			fmt.Fprintf(pr.out, "%s %s",
				pr.name(p),
				PromptStyle.Render(fmt.Sprintf("insurance? (%d available, multiples of %d, enter for none) ",
					p.Chips, req.Multiple)))
		default:
			fmt.Fprintf(pr.out, "%s %s",
				pr.name(p),
				PromptStyle.Render(fmt.Sprintf("your bet? (%d available, minimum %d, multiples of %d) ",
					p.Chips, req.Minimum, req.Multiple)))
		}

		line := pr.readLine()
		if line == "" {
			if req.Reason == game.BetInsurance {
				return 0
			}
			return req.Minimum
		}

		amount, err := strconv.Atoi(line)
		if err != nil {
			fmt.Fprintf(pr.out, "  %s\n", InfoStyle.Render("enter a whole number of chips"))
			continue
		}
		return amount
	}
}

// RequestDecision implements game.Agent.
func (pr *Prompter) RequestDecision(p *game.Participant, hand *game.Hand, options []game.Option) game.Option {
	if isSplitOffer(options) {
		return pr.requestSplit(p, hand)
	}
	return pr.requestPlay(p, hand, options)
}

func (pr *Prompter) requestSplit(p *game.Participant, hand *game.Hand) game.Option {
	for {
		fmt.Fprintf(pr.out, "%s %s",
			pr.name(p),
			PromptStyle.Render(fmt.Sprintf("split your pair of %ss? (Y/n) ", hand.First().Rank)))

		switch strings.ToLower(pr.readLine()) {
		case "", "y", "yes":
			return game.Split
		case "n", "no":
			return game.Keep
		}
		fmt.Fprintf(pr.out, "  %s\n", InfoStyle.Render("answer y or n"))
	}
}

func (pr *Prompter) requestPlay(p *game.Participant, hand *game.Hand, options []game.Option) game.Option {
	canDouble := containsOption(options, game.Double)
	choices := "(H)it or (s)tand?"
	if canDouble {
		choices = "(H)it, (s)tand or (d)ouble down?"
	}

	for {
		fmt.Fprintf(pr.out, "%s %s",
			pr.name(p),
			PromptStyle.Render(fmt.Sprintf("%s  (%d) %s ", RenderCards(hand.Cards()), hand.Value(), choices)))

		switch strings.ToLower(pr.readLine()) {
		case "", "h", "hit":
			return game.Hit
		case "s", "stand", "stick":
			return game.Stand
		case "d", "double":
			if canDouble {
				return game.Double
			}
		}
		fmt.Fprintf(pr.out, "  %s\n", InfoStyle.Render("answer "+choices))
	}
}

func (pr *Prompter) name(p *game.Participant) string {
	return PromptStyle.Bold(true).Render(p.Name + " ▸")
}

func isSplitOffer(options []game.Option) bool {
	return containsOption(options, game.Split)
}

func containsOption(options []game.Option, o game.Option) bool {
	for _, opt := range options {
		if opt == o {
			return true
		}
	}
	return false
}
