package holdem

import (
	"pokerbot-engine/pkg/deck"
)

type result string

const (
	resultPending result = ""
	resultFolded  result = "folded"
	resultLost    result = "lost"
	resultWon     result = "won"
)

// player is a seat's persistent identity across hands. The stack carries
// over until the player leaves or busts; cards and results reset every hand.
type player struct {
	id    int64
	stack int
	cards deck.Hand

	// leaving defers removal to the next hand boundary
	leaving bool

	lastAction string
	result     result
	winnings   int
}

func newPlayer(id int64, stack int) *player {
	return &player{
		id:    id,
		stack: stack,
		cards: make(deck.Hand, 0, 2),
	}
}

func (p *player) newHand() {
	p.cards = make(deck.Hand, 0, 2)
	p.lastAction = ""
	p.result = resultPending
	p.winnings = 0
}

// betting.Participant interface

func (p *player) ID() int64 {
	return p.id
}

func (p *player) Balance() int {
	return p.stack
}

func (p *player) AdjustBalance(amount int) {
	p.stack += amount
}
