package betting

import (
	"errors"
	"fmt"
)

// ErrOutOfTurn is an error when an action arrives from a seat that is not on the clock
var ErrOutOfTurn = errors.New("it is not your turn")

// ErrInvalidRaise is an error when a raise is below the minimum or exceeds the seat's chips
var ErrInvalidRaise = errors.New("invalid raise")

// Round enforces the legal-action protocol for a single street.
// Rejected actions never mutate state.
type Round struct {
	seats      []*Seat
	byID       map[int64]*Seat
	turnIndex  int
	currentBet int
	minRaise   int
	closed     bool
}

// NewRound starts a betting round over the hand's seats.
// firstToAct is the table position that opens the street; bigBlind sets the
// minimum raise floor. If nobody can act the round closes immediately.
func NewRound(seats []*Seat, firstToAct, bigBlind int) *Round {
	byID := make(map[int64]*Seat, len(seats))
	for _, s := range seats {
		s.acted = false
		byID[s.ID()] = s
	}

	r := &Round{
		seats:     seats,
		byID:      byID,
		turnIndex: firstToAct,
		minRaise:  bigBlind,
	}

	if r.roundComplete() {
		r.closed = true
	} else {
		r.advanceToActionable()
	}

	return r
}

// PostBlind invests a forced bet for the seat without counting it as a
// voluntary action. A short stack posts what it can and is all-in, but the
// table-wide bet to match is still the full blind.
func (r *Round) PostBlind(s *Seat, amount int) int {
	paid := s.investTo(amount)
	if amount > r.currentBet {
		r.currentBet = amount
	}

	// a blind can put a seat all-in, so re-evaluate the clock
	if r.roundComplete() {
		r.closed = true
	} else if !r.closed && !r.seats[r.turnIndex].needsAction(r.currentBet) {
		r.turnIndex = (r.turnIndex + 1) % len(r.seats)
		r.advanceToActionable()
	}

	return paid
}

// CurrentTurn returns the seat that is on the clock, or nil if the round is closed
func (r *Round) CurrentTurn() *Seat {
	if r.closed {
		return nil
	}

	return r.seats[r.turnIndex]
}

// CurrentBet returns the table-wide bet each seat must match
func (r *Round) CurrentBet() int {
	return r.currentBet
}

// MinRaise returns the minimum amount a raise must exceed the current bet by
func (r *Round) MinRaise() int {
	return r.minRaise
}

// Closed returns true once no further actions may occur on this street
func (r *Round) Closed() bool {
	return r.closed
}

// Fold folds the seat's hand
func (r *Round) Fold(id int64) error {
	s, err := r.activeSeat(id)
	if err != nil {
		return err
	}

	s.folded = true
	s.acted = true
	r.finishTurn()
	return nil
}

// Forfeit folds the seat regardless of whose turn it is. Used when a seat
// times out or its player walks away mid-hand. A no-op if the round is
// closed, the seat is unknown, or the seat already folded.
func (r *Round) Forfeit(id int64) {
	s, ok := r.byID[id]
	if !ok || r.closed || s.folded {
		return
	}

	onClock := r.seats[r.turnIndex] == s
	s.folded = true
	s.acted = true

	if onClock {
		r.finishTurn()
		return
	}

	if r.roundComplete() {
		r.closed = true
	}
}

// CheckOrCall checks when there is nothing to match, otherwise calls as much
// of the outstanding bet as the stack allows (all-in if short).
// Returns the amount added to the seat's street investment.
func (r *Round) CheckOrCall(id int64) (int, error) {
	s, err := r.activeSeat(id)
	if err != nil {
		return 0, err
	}

	paid := s.investTo(r.currentBet)
	s.acted = true
	r.finishTurn()
	return paid, nil
}

// RaiseTo raises the table-wide bet to amount.
// The raise must exceed the current bet by at least the minimum raise and fit
// within the seat's chips. A successful raise reopens the action: every other
// active seat must respond again.
func (r *Round) RaiseTo(id int64, amount int) error {
	s, err := r.activeSeat(id)
	if err != nil {
		return err
	}

	if amount < r.currentBet+r.minRaise {
		return fmt.Errorf("%w: must raise to at least %d", ErrInvalidRaise, r.currentBet+r.minRaise)
	}

	if amount > s.invested+s.Balance() {
		return fmt.Errorf("%w: raise to %d exceeds your %d chips", ErrInvalidRaise, amount, s.invested+s.Balance())
	}

	r.minRaise = amount - r.currentBet
	r.currentBet = amount
	s.investTo(amount)
	s.acted = true

	for _, other := range r.seats {
		if other != s && other.canAct() {
			other.acted = false
		}
	}

	r.finishTurn()
	return nil
}

// NonFolded returns the seats still in the hand
func (r *Round) NonFolded() []*Seat {
	seats := make([]*Seat, 0, len(r.seats))
	for _, s := range r.seats {
		if !s.folded {
			seats = append(seats, s)
		}
	}

	return seats
}

// Uncontested returns the sole remaining seat if all others folded
func (r *Round) Uncontested() *Seat {
	nonFolded := r.NonFolded()
	if len(nonFolded) == 1 {
		return nonFolded[0]
	}

	return nil
}

// ActionableCount returns the number of seats that did not fold or go all-in
func (r *Round) ActionableCount() int {
	count := 0
	for _, s := range r.seats {
		if s.canAct() {
			count++
		}
	}

	return count
}

// Sweep moves every seat's street investment into its hand contribution and
// resets the per-street state. Must only be called once the round is closed.
// Returns the total swept.
func (r *Round) Sweep() int {
	total := 0
	for _, s := range r.seats {
		total += s.invested
		s.contributed += s.invested
		s.invested = 0
		s.acted = false
	}

	return total
}

// StreetTotal returns the chips invested on the current street so far
func (r *Round) StreetTotal() int {
	total := 0
	for _, s := range r.seats {
		total += s.invested
	}

	return total
}

func (r *Round) activeSeat(id int64) (*Seat, error) {
	s, ok := r.byID[id]
	if !ok {
		return nil, ErrOutOfTurn
	}

	if r.closed || r.seats[r.turnIndex] != s {
		return nil, ErrOutOfTurn
	}

	return s, nil
}

// finishTurn must be called after a seat folds, checks, calls, or raises
func (r *Round) finishTurn() {
	if r.roundComplete() {
		r.closed = true
		return
	}

	r.turnIndex = (r.turnIndex + 1) % len(r.seats)
	r.advanceToActionable()
}

// advanceToActionable moves the turn to the next seat owing a decision,
// always skipping folded and all-in seats
func (r *Round) advanceToActionable() {
	for i := 0; i < len(r.seats); i++ {
		if r.seats[r.turnIndex].needsAction(r.currentBet) {
			return
		}

		r.turnIndex = (r.turnIndex + 1) % len(r.seats)
	}

	panic("no actionable seat in an open round")
}

// roundComplete reports whether the street is done: every non-folded seat is
// all-in, or has acted and matched the current bet. A lone actionable seat
// with nothing left to match closes the round without further input.
func (r *Round) roundComplete() bool {
	pending := false
	owes := false
	for _, s := range r.seats {
		if s.needsAction(r.currentBet) {
			pending = true
			if s.invested != r.currentBet {
				owes = true
			}
		}
	}

	if !pending {
		return true
	}

	return r.ActionableCount() < 2 && !owes
}
