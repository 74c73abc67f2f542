package holdem

import "fmt"

// ActionType is the kind of action a player can take
type ActionType string

// constants for ActionType
const (
	ActionFold  ActionType = "fold"
	ActionCheck ActionType = "check"
	ActionCall  ActionType = "call"
	ActionRaise ActionType = "raise"
)

// Action is a player decision submitted to the table. Amount is only
// meaningful for a raise, where it is the total street bet to raise to.
type Action struct {
	Type   ActionType `json:"type"`
	Amount int        `json:"amount"`
}

func (a Action) validate() error {
	switch a.Type {
	case ActionFold, ActionCheck, ActionCall:
		return nil
	case ActionRaise:
		if a.Amount <= 0 {
			return fmt.Errorf("a raise needs an amount")
		}

		return nil
	}

	return fmt.Errorf("%s is not a valid action", a.Type)
}

func (a Action) String() string {
	if a.Type == ActionRaise {
		return fmt.Sprintf("raise to %d", a.Amount)
	}

	return string(a.Type)
}
