package deck

import (
	"github.com/stretchr/testify/assert"
	"testing"
)

func TestHand_AddCard(t *testing.T) {
	a := assert.New(t)

	hand := Hand{}
	a.Nil(hand.FirstCard())
	a.Nil(hand.LastCard())

	hand.AddCard(CardFromString("2c"))
	hand.AddCard(CardFromString("14s"))

	a.Equal(2, len(hand))
	a.Equal("2c", CardToString(hand.FirstCard()))
	a.Equal("14s", CardToString(hand.LastCard()))
	a.Equal("2c,14s", hand.String())
}

func TestHand_HasCard(t *testing.T) {
	a := assert.New(t)

	hand := Hand(CardsFromString("2c,3d,4h"))
	a.True(hand.HasCard(CardFromString("3d")))
	a.False(hand.HasCard(CardFromString("3c")))
}

func TestHand_Clone(t *testing.T) {
	a := assert.New(t)

	hand := Hand(CardsFromString("2c,3d"))
	clone := hand.Clone()
	a.Equal(hand, clone)

	clone.AddCard(CardFromString("4h"))
	a.Equal(2, len(hand))
	a.Equal(3, len(clone))
}
