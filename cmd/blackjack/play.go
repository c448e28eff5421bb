package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/coder/quartz"

	"github.com/lox/blackjack/internal/config"
	"github.com/lox/blackjack/internal/console"
	"github.com/lox/blackjack/internal/game"
	"github.com/lox/blackjack/internal/randutil"
)

var (
	titleStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#FAFAFA")).
		Background(lipgloss.Color("#1B5E20")).
		Padding(0, 1).
		Bold(true)
)

// PlayCmd runs an interactive session at the terminal.
type PlayCmd struct {
	Config string `short:"c" help:"Path to table configuration" default:"blackjack.hcl"`
	Seed   int64  `help:"Seed the shuffle for a reproducible session"`
	Fast   bool   `help:"Skip the dealing delays"`
}

func (cmd *PlayCmd) Run() error {
	cfg, err := config.Load(cmd.Config)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	logger, closeLog, err := newLogger(cfg)
	if err != nil {
		return err
	}
	defer closeLog()

	rng := randutil.Auto()
	if cmd.Seed != 0 {
		rng = randutil.New(cmd.Seed)
	}

	players := make([]*game.Participant, len(cfg.Players))
	for i, pc := range cfg.Players {
		players[i] = game.NewParticipant(pc.Name, pc.Chips)
	}

	in := bufio.NewReader(os.Stdin)
	prompter := console.NewPrompter(in, os.Stdout)

	delay := time.Duration(cfg.Table.DealDelayMS) * time.Millisecond
	if cmd.Fast {
		delay = 0
	}
	renderer := console.NewRenderer(os.Stdout, quartz.NewReal(), delay)

	g := game.NewGame(players, prompter, logger,
		game.WithRNG(rng),
		game.WithTableRules(cfg.Table.MinBet, cfg.Table.BetMultiple))
	g.EventBus().Subscribe(renderer)

	fmt.Print(titleStyle.Render(" ♠ ♥ Blackjack ♦ ♣ "))
	fmt.Println()

	// Interrupts finish the current round rather than abandoning it
	// mid-hand, so balances always reflect a settled table.
	interrupted := make(chan os.Signal, 1)
	signal.Notify(interrupted, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(interrupted)

	for g.PlayRound() {
		select {
		case <-interrupted:
			fmt.Println()
			printSummary(g)
			return nil
		default:
		}
		if !askAnotherRound(in) {
			break
		}
	}

	printSummary(g)
	return nil
}

func newLogger(cfg *config.Config) (*log.Logger, func(), error) {
	level, err := log.ParseLevel(cfg.Table.LogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid log_level %q: %w", cfg.Table.LogLevel, err)
	}

	var w io.Writer = io.Discard
	closeLog := func() {}
	if cfg.Table.LogFile != "" {
		f, err := os.OpenFile(cfg.Table.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open log file: %w", err)
		}
		w = f
		closeLog = func() {
			if err := f.Close(); err != nil {
				log.Error("Failed to close log file", "error", err)
			}
		}
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05",
		Prefix:          "table",
	})
	logger.SetLevel(level)
	return logger, closeLog, nil
}

func askAnotherRound(in *bufio.Reader) bool {
	fmt.Print("Play another round? (Y/n) ")
	line, err := in.ReadString('\n')
	if err != nil && line == "" {
		return false
	}
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "n", "no", "q", "quit":
		return false
	default:
		return true
	}
}

func printSummary(g *game.Game) {
	fmt.Println()
	fmt.Println(titleStyle.Render(" Final standings "))
	fmt.Println()
	for _, p := range g.SessionSummary() {
		fmt.Printf("  %-12s %4d chips   %d won, %d tied, %d lost\n",
			p.Name, p.Chips, p.Tally.Wins, p.Tally.Ties, p.Tally.Losses)
	}
	fmt.Println()
}
