package holdem

import "errors"

// recoverable, user-facing validation failures. None of them mutate table state.
var (
	// ErrInsufficientBuyIn is an error when a player cannot cover the buy-in
	ErrInsufficientBuyIn = errors.New("you cannot cover the buy-in")

	// ErrTableFull is an error when the table has no open seats
	ErrTableFull = errors.New("the table is full")

	// ErrNotSeated is an error when the player is not at the table
	ErrNotSeated = errors.New("you are not at this table")

	// ErrAlreadySeated is an error when the player is already at the table
	ErrAlreadySeated = errors.New("you are already at this table")

	// ErrNotEnoughPlayers is an error when a hand cannot start with fewer than two seats
	ErrNotEnoughPlayers = errors.New("there must be at least two players")

	// ErrHandInProgress is an error when an operation must wait for the hand to finish
	ErrHandInProgress = errors.New("a hand is in progress")

	// ErrNoHandInProgress is an error when an action arrives between hands
	ErrNoHandInProgress = errors.New("no hand is in progress")
)
