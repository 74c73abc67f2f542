package betting

// Participant provides an interface for retrieving and adjusting a participant's chips
type Participant interface {
	ID() int64
	Balance() int
	AdjustBalance(amount int)
}

// Seat tracks a participant's betting state for the hand in progress
type Seat struct {
	Participant
	// position is where the player is seated at the table
	position int
	// invested is how much the player has committed on the current street
	invested int
	// contributed is how much the player has committed over the whole hand
	contributed int
	folded      bool
	allIn       bool
	acted       bool
}

// NewSeat returns a seat for the participant at the given table position
func NewSeat(pt Participant, position int) *Seat {
	return &Seat{
		Participant: pt,
		position:    position,
	}
}

// Position returns the seat's table position
func (s *Seat) Position() int {
	return s.position
}

// Invested returns the chips committed on the current street
func (s *Seat) Invested() int {
	return s.invested
}

// Contributed returns the chips committed over the whole hand, excluding the current street
func (s *Seat) Contributed() int {
	return s.contributed
}

// Folded returns true if the seat folded
func (s *Seat) Folded() bool {
	return s.folded
}

// AllIn returns true if the seat has no chips behind
func (s *Seat) AllIn() bool {
	return s.allIn
}

// Acted returns true if the seat has taken a voluntary action since the last bet change
func (s *Seat) Acted() bool {
	return s.acted
}

// investTo commits chips until the street investment reaches target, going
// all-in if the balance runs out first. Returns the amount committed.
func (s *Seat) investTo(target int) int {
	adjustment := target - s.invested
	if adjustment >= s.Balance() {
		adjustment = s.Balance()
		s.allIn = true
	}

	s.invested += adjustment
	s.AdjustBalance(-1 * adjustment)

	return adjustment
}

// canAct returns true if the seat can check, call, raise, or fold
func (s *Seat) canAct() bool {
	return !s.folded && !s.allIn
}

// needsAction returns true if the seat still owes a decision at the given bet
func (s *Seat) needsAction(currentBet int) bool {
	if !s.canAct() {
		return false
	}

	return !s.acted || s.invested != currentBet
}
