package holdem

import "encoding/json"

// State represents the phase of the table
type State int

// constants for State
const (
	StateLobby State = iota
	StatePreFlop
	StateFlop
	StateTurn
	StateRiver
	StateHandComplete
)

func (s State) String() string {
	switch s {
	case StateLobby:
		return "lobby"
	case StatePreFlop:
		return "pre-flop"
	case StateFlop:
		return "flop"
	case StateTurn:
		return "turn"
	case StateRiver:
		return "river"
	case StateHandComplete:
		return "hand-complete"
	}

	return ""
}

// InBettingRound returns true if seats may still act in this state
func (s State) InBettingRound() bool {
	return s >= StatePreFlop && s <= StateRiver
}

// MarshalJSON encodes JSON
func (s State) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		ID   int    `json:"id"`
		Name string `json:"name"`
	}{
		ID:   int(s),
		Name: s.String(),
	})
}
