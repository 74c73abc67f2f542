package holdem

import (
	"pokerbot-engine/pkg/deck"
	"pokerbot-engine/pkg/poker/handrank"
)

// SeatState is the public view of one seat
type SeatState struct {
	PlayerID   int64  `json:"playerId"`
	Position   int    `json:"position"`
	Stack      int    `json:"stack"`
	StreetBet  int    `json:"streetBet"`
	Folded     bool   `json:"folded"`
	AllIn      bool   `json:"allIn"`
	Leaving    bool   `json:"leaving"`
	LastAction string `json:"lastAction,omitempty"`
	Result     result `json:"result,omitempty"`
	Winnings   int    `json:"winnings,omitempty"`
}

// PotState is the public view of one pot after settlement
type PotState struct {
	Amount      int     `json:"amount"`
	EligibleIDs []int64 `json:"eligibleIds"`
}

// Snapshot is the public table state emitted after every accepted action.
// It carries no hole cards; those travel only through PlayerState.
type Snapshot struct {
	TableID     string        `json:"tableId"`
	HandNum     int           `json:"handNum"`
	State       State         `json:"state"`
	Community   deck.Hand     `json:"community"`
	Dealer      int64         `json:"dealer,omitempty"`
	PotTotal    int           `json:"potTotal"`
	Pots        []*PotState   `json:"pots,omitempty"`
	CurrentBet  int           `json:"currentBet"`
	MinRaise    int           `json:"minRaise"`
	Seats       []*SeatState  `json:"seats"`
	QueuedIDs   []int64       `json:"queuedIds,omitempty"`
	CurrentTurn int64         `json:"currentTurn,omitempty"`
	Winners     map[int64]int `json:"winners,omitempty"`
}

// PlayerState is the per-seat private payload: the public snapshot plus the
// seat's own hole cards and current best hand.
type PlayerState struct {
	PlayerID int64            `json:"playerId"`
	Cards    deck.Hand        `json:"cards"`
	Hand     string           `json:"hand,omitempty"`
	Result   *handrank.Result `json:"-"`
	Table    *Snapshot        `json:"table"`
}
