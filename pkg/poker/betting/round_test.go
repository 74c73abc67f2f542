package betting

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type testParticipant struct {
	id      int64
	balance int
}

func (t *testParticipant) ID() int64 {
	return t.id
}

func (t *testParticipant) Balance() int {
	return t.balance
}

func (t *testParticipant) AdjustBalance(amount int) {
	t.balance += amount
}

// setupSeats returns seats with IDs 1..n at positions 0..n-1
func setupSeats(balances ...int) []*Seat {
	seats := make([]*Seat, len(balances))
	for i, balance := range balances {
		seats[i] = NewSeat(&testParticipant{id: int64(i + 1), balance: balance}, i)
	}

	return seats
}

func TestRound_smokeTest(t *testing.T) {
	a := assert.New(t)

	seats := setupSeats(100, 100, 100, 100)
	r := NewRound(seats, 0, 10)

	a.False(r.Closed())
	a.Equal(int64(1), r.CurrentTurn().ID())

	// out of turn actions are rejected without mutating state
	a.Equal(ErrOutOfTurn, r.Fold(2))
	_, err := r.CheckOrCall(3)
	a.Equal(ErrOutOfTurn, err)
	a.Equal(int64(1), r.CurrentTurn().ID())

	paid, err := r.CheckOrCall(1) // check
	a.NoError(err)
	a.Equal(0, paid)

	a.ErrorIs(r.RaiseTo(2, 5), ErrInvalidRaise) // below the big blind floor
	a.NoError(r.RaiseTo(2, 10))
	a.Equal(10, r.CurrentBet())

	// the raise reopens action for seat 1
	a.False(seats[0].Acted())

	paid, err = r.CheckOrCall(3)
	a.NoError(err)
	a.Equal(10, paid)

	a.NoError(r.Fold(4))
	a.True(seats[3].Folded())

	paid, err = r.CheckOrCall(1)
	a.NoError(err)
	a.Equal(10, paid)

	a.True(r.Closed())
	a.Nil(r.CurrentTurn())
	a.Nil(r.Uncontested())
	a.Equal(30, r.StreetTotal())
	a.Equal(30, r.Sweep())
	a.Equal(0, seats[0].Invested())
	a.Equal(10, seats[0].Contributed())
	a.Equal(90, seats[0].Balance())
}

func TestRound_turnSkipsFoldedSeat(t *testing.T) {
	a := assert.New(t)

	seats := setupSeats(100, 100, 100, 100)
	r := NewRound(seats, 0, 10)

	a.NoError(r.RaiseTo(1, 10))
	a.NoError(r.Fold(2))
	a.Equal(int64(3), r.CurrentTurn().ID())
	a.NoError(r.RaiseTo(3, 20))
	a.Equal(int64(4), r.CurrentTurn().ID())
	_, err := r.CheckOrCall(4)
	a.NoError(err)

	// back around: seat 2 never comes up again
	a.Equal(int64(1), r.CurrentTurn().ID())
	_, err = r.CheckOrCall(1)
	a.NoError(err)
	a.True(r.Closed())
}

func TestRound_foldToUncontested(t *testing.T) {
	a := assert.New(t)

	seats := setupSeats(100, 100, 100)
	r := NewRound(seats, 0, 10)

	a.NoError(r.RaiseTo(1, 10))
	a.NoError(r.Fold(2))
	a.Nil(r.Uncontested())
	a.NoError(r.Fold(3))

	a.True(r.Closed())
	winner := r.Uncontested()
	a.NotNil(winner)
	a.Equal(int64(1), winner.ID())
}

func TestRound_raiseValidation(t *testing.T) {
	a := assert.New(t)

	seats := setupSeats(100, 40)
	r := NewRound(seats, 0, 10)

	a.NoError(r.RaiseTo(1, 30))
	a.Equal(30, r.MinRaise())

	// a re-raise must add at least the size of the last raise
	a.ErrorIs(r.RaiseTo(2, 50), ErrInvalidRaise)
	// and cannot exceed the seat's chips
	a.ErrorIs(r.RaiseTo(2, 60), ErrInvalidRaise)

	// rejected raises leave the round untouched
	a.Equal(30, r.CurrentBet())
	a.Equal(40, seats[1].Balance())
	a.Equal(int64(2), r.CurrentTurn().ID())
}

func TestRound_shortCallGoesAllIn(t *testing.T) {
	a := assert.New(t)

	seats := setupSeats(100, 30)
	r := NewRound(seats, 0, 10)

	a.NoError(r.RaiseTo(1, 50))

	paid, err := r.CheckOrCall(2)
	a.NoError(err)
	a.Equal(30, paid)
	a.True(seats[1].AllIn())
	a.Equal(0, seats[1].Balance())
	a.True(r.Closed())
}

func TestRound_blinds(t *testing.T) {
	a := assert.New(t)

	seats := setupSeats(100, 100, 100)
	r := NewRound(seats, 0, 10)

	a.Equal(5, r.PostBlind(seats[1], 5))
	a.Equal(10, r.PostBlind(seats[2], 10))
	a.Equal(10, r.CurrentBet())

	// blinds are not voluntary actions
	a.False(seats[1].Acted())
	a.False(seats[2].Acted())

	paid, err := r.CheckOrCall(1)
	a.NoError(err)
	a.Equal(10, paid)

	paid, err = r.CheckOrCall(2) // small blind completes
	a.NoError(err)
	a.Equal(5, paid)

	// big blind gets the option
	a.False(r.Closed())
	paid, err = r.CheckOrCall(3)
	a.NoError(err)
	a.Equal(0, paid)
	a.True(r.Closed())
}

func TestRound_bigBlindOptionRaise(t *testing.T) {
	a := assert.New(t)

	seats := setupSeats(100, 100, 100)
	r := NewRound(seats, 0, 10)
	r.PostBlind(seats[1], 5)
	r.PostBlind(seats[2], 10)

	_, err := r.CheckOrCall(1)
	a.NoError(err)
	_, err = r.CheckOrCall(2)
	a.NoError(err)

	a.NoError(r.RaiseTo(3, 20))
	a.False(r.Closed())

	_, err = r.CheckOrCall(1)
	a.NoError(err)
	_, err = r.CheckOrCall(2)
	a.NoError(err)
	a.True(r.Closed())
	a.Equal(60, r.StreetTotal())
}

func TestRound_allInBlind(t *testing.T) {
	a := assert.New(t)

	seats := setupSeats(100, 100, 6)
	r := NewRound(seats, 0, 10)
	r.PostBlind(seats[1], 5)
	r.PostBlind(seats[2], 10)

	a.True(seats[2].AllIn())
	a.Equal(6, seats[2].Invested())
	// the table-wide bet to match is still the full big blind
	a.Equal(10, r.CurrentBet())

	_, err := r.CheckOrCall(1)
	a.NoError(err)
	_, err = r.CheckOrCall(2)
	a.NoError(err)
	a.True(r.Closed())
}

func TestRound_closesWithoutInputWhenOneSeatRemains(t *testing.T) {
	a := assert.New(t)

	// seats 2 and 3 went all-in on an earlier street
	seats := setupSeats(100, 0, 0)
	seats[1].allIn = true
	seats[2].allIn = true

	r := NewRound(seats, 0, 10)
	a.True(r.Closed())
	a.Nil(r.CurrentTurn())
}

func TestRound_loneSeatMustRespondToAllInRaise(t *testing.T) {
	a := assert.New(t)

	seats := setupSeats(100, 60)
	r := NewRound(seats, 0, 10)

	a.NoError(r.RaiseTo(1, 10))
	a.NoError(r.RaiseTo(2, 60))
	a.True(seats[1].AllIn())

	// seat 1 is the only actionable seat, but it owes a call
	a.False(r.Closed())
	a.Equal(int64(1), r.CurrentTurn().ID())

	paid, err := r.CheckOrCall(1)
	a.NoError(err)
	a.Equal(50, paid)
	a.True(r.Closed())
}

func TestRound_forfeit(t *testing.T) {
	a := assert.New(t)

	seats := setupSeats(100, 100, 100)
	r := NewRound(seats, 0, 10)
	a.NoError(r.RaiseTo(1, 10))

	// seat 3 walks away while seat 2 is on the clock
	r.Forfeit(3)
	a.True(seats[2].Folded())
	a.Equal(int64(2), r.CurrentTurn().ID())

	_, err := r.CheckOrCall(2)
	a.NoError(err)
	a.True(r.Closed())

	// no-op once the round is closed
	r.Forfeit(1)
	a.False(seats[0].Folded())
}

func TestRound_forfeitOnClockAdvancesTurn(t *testing.T) {
	a := assert.New(t)

	seats := setupSeats(100, 100, 100)
	r := NewRound(seats, 0, 10)

	r.Forfeit(1)
	a.True(seats[0].Folded())
	a.Equal(int64(2), r.CurrentTurn().ID())

	r.Forfeit(2)
	a.True(r.Closed())
	a.Equal(int64(3), r.Uncontested().ID())
}

func TestRound_rejectedActionAfterClose(t *testing.T) {
	a := assert.New(t)

	seats := setupSeats(100, 100)
	r := NewRound(seats, 0, 10)

	_, err := r.CheckOrCall(1)
	a.NoError(err)
	_, err = r.CheckOrCall(2)
	a.NoError(err)
	a.True(r.Closed())

	a.Equal(ErrOutOfTurn, r.Fold(1))
	_, err = r.CheckOrCall(2)
	a.Equal(ErrOutOfTurn, err)
}
