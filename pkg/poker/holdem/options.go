package holdem

import (
	"errors"
	"time"
)

// Options configures a table of No-Limit Texas Hold'em
type Options struct {
	// BuyIn is debited from the ledger when a player joins
	BuyIn int

	SmallBlind int
	BigBlind   int

	// MaxSeats caps the table size, queue included
	MaxSeats int

	// TurnTimeout force-folds a seat that sits on the clock too long.
	// Zero disables the clock entirely.
	TurnTimeout time.Duration

	// DeckSeed makes every shuffle deterministic when non-zero. Each hand
	// offsets the seed by the hand number so consecutive hands still differ.
	DeckSeed int64
}

// DefaultOptions returns the default table options
func DefaultOptions() Options {
	return Options{
		BuyIn:       1000,
		SmallBlind:  5,
		BigBlind:    10,
		MaxSeats:    8,
		TurnTimeout: 30 * time.Second,
	}
}

func validateOptions(opts Options) error {
	if opts.SmallBlind <= 0 || opts.BigBlind <= 0 {
		return errors.New("blinds must be greater than zero")
	}

	if opts.SmallBlind > opts.BigBlind {
		return errors.New("small blind cannot exceed the big blind")
	}

	if opts.BuyIn < opts.BigBlind {
		return errors.New("buy-in must cover at least the big blind")
	}

	if opts.MaxSeats < 2 || opts.MaxSeats > 8 {
		return errors.New("max seats must be between 2 and 8")
	}

	if opts.TurnTimeout < 0 {
		return errors.New("turn timeout cannot be negative")
	}

	return nil
}
