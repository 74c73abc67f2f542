package main

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/alecthomas/kong"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"pokerbot-engine/internal/config"
	"pokerbot-engine/internal/util"
	"pokerbot-engine/pkg/poker/holdem"
)

// CLI is the command-line interface for the hand simulator
type CLI struct {
	Tables   int    `default:"4" help:"Number of tables to run concurrently"`
	Hands    int    `default:"250" help:"Hands to play per table"`
	Seats    int    `default:"4" help:"Players seated at each table"`
	Seed     int64  `default:"0" help:"Deck and actor seed (0 for random)"`
	LogLevel string `default:"" help:"Override the configured log level"`
}

func main() {
	var cli CLI
	kong.Parse(&cli)

	setupLogger(cli.LogLevel)

	opts := config.Instance().TableOptions()
	opts.TurnTimeout = 0 // actors never stall

	if cli.Seats < 2 || cli.Seats > opts.MaxSeats {
		logrus.Fatalf("seats must be between 2 and %d", opts.MaxSeats)
	}

	seed := cli.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	start := time.Now()
	handsPlayed := make([]int, cli.Tables)

	var g errgroup.Group
	for i := 0; i < cli.Tables; i++ {
		i := i
		g.Go(func() error {
			played, err := runTable(cli, opts, seed+int64(i)*7919)
			handsPlayed[i] = played
			return err
		})
	}

	if err := g.Wait(); err != nil {
		logrus.WithError(err).Fatal("simulation failed")
	}

	total := 0
	for _, n := range handsPlayed {
		total += n
	}

	logrus.WithFields(logrus.Fields{
		"tables":   cli.Tables,
		"hands":    total,
		"duration": time.Since(start).Round(time.Millisecond),
	}).Info("simulation complete")
}

// runTable plays up to cli.Hands hands at one table with random-but-legal
// actors and verifies chip conservation after every hand.
func runTable(cli CLI, opts holdem.Options, seed int64) (int, error) {
	rng := rand.New(rand.NewSource(seed)) // nolint:gosec
	opts.DeckSeed = seed

	ledger := newMemLedger(opts.BuyIn, cli.Seats)
	bankroll := cli.Seats * opts.BuyIn

	logger := logrus.WithField("name", util.GetRandomName())
	table, err := holdem.New(logger, ledger, opts)
	if err != nil {
		return 0, err
	}

	done := make(chan struct{})
	defer close(done)
	go drainEvents(table, done)

	for id := int64(1); id <= int64(cli.Seats); id++ {
		if err := table.Join(id); err != nil {
			return 0, err
		}
	}

	played := 0
	for hand := 0; hand < cli.Hands; hand++ {
		if err := table.StartHand(); err != nil {
			if err == holdem.ErrNotEnoughPlayers {
				// too many busts; the table cashed everyone out
				break
			}

			return played, err
		}

		if err := playHand(table, rng); err != nil {
			return played, err
		}
		played++

		if err := checkConservation(table, ledger, bankroll); err != nil {
			return played, err
		}
	}

	return played, nil
}

func playHand(table *holdem.Table, rng *rand.Rand) error {
	for table.State().InBettingRound() {
		snapshot := table.Snapshot()
		if snapshot.CurrentTurn == 0 {
			return fmt.Errorf("no seat on the clock in state %s", snapshot.State)
		}

		action := randomAction(rng, snapshot)
		if err := table.Act(snapshot.CurrentTurn, action); err != nil {
			return fmt.Errorf("action %s rejected: %w", action, err)
		}
	}

	return nil
}

// randomAction picks a legal action for the seat on the clock: mostly calls
// and checks, an occasional fold or raise.
func randomAction(rng *rand.Rand, s *holdem.Snapshot) holdem.Action {
	var seat *holdem.SeatState
	for _, st := range s.Seats {
		if st.PlayerID == s.CurrentTurn {
			seat = st
			break
		}
	}

	owed := s.CurrentBet - seat.StreetBet
	roll := rng.Intn(10)

	if roll == 0 && owed > 0 {
		return holdem.Action{Type: holdem.ActionFold}
	}

	if roll >= 8 {
		minRaise := s.CurrentBet + s.MinRaise
		maxRaise := seat.Stack + seat.StreetBet
		if maxRaise >= minRaise {
			return holdem.Action{
				Type:   holdem.ActionRaise,
				Amount: minRaise + rng.Intn(maxRaise-minRaise+1),
			}
		}
	}

	if owed == 0 {
		return holdem.Action{Type: holdem.ActionCheck}
	}

	return holdem.Action{Type: holdem.ActionCall}
}

// checkConservation verifies that no chip was created or destroyed: stacks
// at the table plus ledger balances always equal the combined bankroll.
func checkConservation(table *holdem.Table, ledger *memLedger, bankroll int) error {
	total := ledger.total()
	for _, seat := range table.Snapshot().Seats {
		total += seat.Stack
	}

	if total != bankroll {
		return fmt.Errorf("chip conservation violated after hand %d: have %d, want %d",
			table.HandNum(), total, bankroll)
	}

	return nil
}

func drainEvents(table *holdem.Table, done <-chan struct{}) {
	for {
		select {
		case <-table.Events():
		case <-done:
			return
		}
	}
}

func setupLogger(override string) {
	lvl := config.Instance().Log.Level
	if override != "" {
		lvl = override
	}

	if lvl != "" {
		level, err := logrus.ParseLevel(lvl)
		if err != nil {
			logrus.WithError(err).Fatal("could not parse level")
		}

		logrus.SetLevel(level)
	}
}
