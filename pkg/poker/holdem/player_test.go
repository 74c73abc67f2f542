package holdem

import (
	"github.com/bmizerany/assert"
	"testing"
)

func TestNewPlayer(t *testing.T) {
	p := newPlayer(1, 500)
	assert.Equal(t, int64(1), p.ID())
	assert.Equal(t, 500, p.Balance())

	p.AdjustBalance(-100)
	assert.Equal(t, 400, p.Balance())

	p.lastAction = "call 10"
	p.result = resultWon
	p.winnings = 20
	p.newHand()
	assert.Equal(t, "", p.lastAction)
	assert.Equal(t, resultPending, p.result)
	assert.Equal(t, 0, p.winnings)
	assert.Equal(t, 0, len(p.cards))
}
