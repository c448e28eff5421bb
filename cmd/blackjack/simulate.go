package main

import (
	"fmt"
	"io"
	"runtime"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/sanity-io/litter"
	"golang.org/x/sync/errgroup"

	"github.com/lox/blackjack/internal/game"
	"github.com/lox/blackjack/internal/randutil"
)

// SimulateCmd plays many unattended sessions with a scripted strategy and
// reports aggregate results. Useful for eyeballing the house edge and for
// soaking the engine.
type SimulateCmd struct {
	Sessions int    `short:"s" help:"Number of sessions to play" default:"100"`
	Rounds   int    `short:"r" help:"Maximum rounds per session" default:"500"`
	Players  int    `short:"p" help:"Players per table" default:"3"`
	Chips    int    `help:"Starting chips per player" default:"100"`
	Strategy string `help:"Playing strategy" enum:"basic,random" default:"basic"`
	Workers  int    `short:"w" help:"Concurrent sessions (defaults to CPU count)"`
	Seed     int64  `help:"Seed the simulation for reproducible results"`
	Debug    bool   `help:"Dump per-session results"`
}

type sessionResult struct {
	Rounds     int
	FinalChips int
	Tally      game.Tally
	Busted     int
}

func (cmd *SimulateCmd) Run() error {
	if cmd.Workers <= 0 {
		cmd.Workers = runtime.NumCPU()
	}
	seed := cmd.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	prog := tea.NewProgram(newProgressModel(cmd.Sessions))

	results := make([]sessionResult, cmd.Sessions)
	start := time.Now()

	go func() {
		var eg errgroup.Group
		eg.SetLimit(cmd.Workers)
		for i := 0; i < cmd.Sessions; i++ {
			eg.Go(func() error {
				results[i] = cmd.runSession(seed + int64(i))
				prog.Send(sessionDoneMsg{})
				return nil
			})
		}
		// Session workers never return errors; the group only bounds
		// concurrency.
		_ = eg.Wait()
	}()

	if _, err := prog.Run(); err != nil {
		return fmt.Errorf("progress display failed: %w", err)
	}
	elapsed := time.Since(start)

	if cmd.Debug {
		fmt.Println(litter.Sdump(results))
	}
	cmd.printAggregate(results, elapsed)
	return nil
}

// runSession plays one table to the round limit or until nobody can cover
// the minimum bet.
func (cmd *SimulateCmd) runSession(seed int64) sessionResult {
	rng := randutil.New(seed)
	logger := log.New(io.Discard)

	players := make([]*game.Participant, cmd.Players)
	for i := range players {
		players[i] = game.NewParticipant(fmt.Sprintf("sim-%d", i+1), cmd.Chips)
	}

	var agent game.Agent = game.NewBasicAgent()
	if cmd.Strategy == "random" {
		agent = game.NewRandomAgent(rng)
	}

	g := game.NewGame(players, agent, logger, game.WithRNG(rng))

	var res sessionResult
	for res.Rounds < cmd.Rounds && g.PlayRound() {
		res.Rounds++
	}

	for _, p := range players {
		res.FinalChips += p.Chips
		res.Tally.Wins += p.Tally.Wins
		res.Tally.Ties += p.Tally.Ties
		res.Tally.Losses += p.Tally.Losses
		if !p.HasChips(game.DefaultMinBet) {
			res.Busted++
		}
	}
	return res
}

func (cmd *SimulateCmd) printAggregate(results []sessionResult, elapsed time.Duration) {
	var rounds, finalChips, busted int
	var tally game.Tally
	for _, r := range results {
		rounds += r.Rounds
		finalChips += r.FinalChips
		busted += r.Busted
		tally.Wins += r.Tally.Wins
		tally.Ties += r.Tally.Ties
		tally.Losses += r.Tally.Losses
	}

	startChips := cmd.Sessions * cmd.Players * cmd.Chips
	hands := tally.Wins + tally.Ties + tally.Losses

	fmt.Println()
	fmt.Println(titleStyle.Render(" Simulation results "))
	fmt.Println()
	fmt.Printf("  sessions        %d (%s strategy, %d players, %d rounds max)\n",
		cmd.Sessions, cmd.Strategy, cmd.Players, cmd.Rounds)
	fmt.Printf("  rounds played   %d in %.1fs (%.0f rounds/sec)\n",
		rounds, elapsed.Seconds(), float64(rounds)/elapsed.Seconds())
	fmt.Printf("  hands settled   %d (%d won, %d tied, %d lost)\n",
		hands, tally.Wins, tally.Ties, tally.Losses)
	if hands > 0 {
		fmt.Printf("  win rate        %.1f%%\n", float64(tally.Wins)*100/float64(hands))
	}
	fmt.Printf("  chips           %d staked to start, %d remaining (%+d)\n",
		startChips, finalChips, finalChips-startChips)
	fmt.Printf("  players busted  %d of %d\n", busted, cmd.Sessions*cmd.Players)
	fmt.Println()
}
