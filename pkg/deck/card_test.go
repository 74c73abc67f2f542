package deck

import (
	"github.com/stretchr/testify/assert"
	"testing"
)

func Test_constants(t *testing.T) {
	assert.Equal(t, 11, Jack)
	assert.Equal(t, 12, Queen)
	assert.Equal(t, 13, King)
	assert.Equal(t, 14, Ace)
	assert.Equal(t, 1, LowAce)
}

func TestCard_String(t *testing.T) {
	card := Card{
		Rank: 2,
		Suit: Hearts,
	}

	assert.Equal(t, "2♡", card.String())

	card = Card{
		Rank: 11,
		Suit: Clubs,
	}

	assert.Equal(t, "J♣", card.String())

	card = Card{
		Rank: 12,
		Suit: Diamonds,
	}

	assert.Equal(t, "Q♢", card.String())

	card = Card{
		Rank: 13,
		Suit: Spades,
	}

	assert.Equal(t, "K♠", card.String())

	card = Card{
		Rank: 14,
		Suit: Spades,
	}

	assert.Equal(t, "A♠", card.String())
}

func TestCard_Equal(t *testing.T) {
	a := assert.New(t)

	a.True(CardFromString("14s").Equal(CardFromString("14s")))
	a.False(CardFromString("14s").Equal(CardFromString("14c")))
	a.False(CardFromString("14s").Equal(CardFromString("13s")))
}

func TestCard_AceLowRank(t *testing.T) {
	a := assert.New(t)

	a.Equal(1, CardFromString("14s").AceLowRank())
	a.Equal(13, CardFromString("13s").AceLowRank())
	a.Equal(2, CardFromString("2s").AceLowRank())
}

func TestCardFromString(t *testing.T) {
	a := assert.New(t)

	a.Equal(&Card{Rank: 2, Suit: Clubs}, CardFromString("2c"))
	a.Equal(&Card{Rank: 10, Suit: Diamonds}, CardFromString("10d"))
	a.Equal(&Card{Rank: Queen, Suit: Hearts}, CardFromString("12h"))
	a.Equal(&Card{Rank: Ace, Suit: Spades}, CardFromString("14s"))
	a.Nil(CardFromString(""))

	a.Panics(func() {
		CardFromString("15s")
	})

	a.Panics(func() {
		CardFromString("2x")
	})
}

func TestCardsFromString(t *testing.T) {
	a := assert.New(t)

	a.Equal([]*Card{}, CardsFromString(""))

	cards := CardsFromString("2c,13h,14s")
	a.Equal(3, len(cards))
	a.Equal(&Card{Rank: 2, Suit: Clubs}, cards[0])
	a.Equal(&Card{Rank: King, Suit: Hearts}, cards[1])
	a.Equal(&Card{Rank: Ace, Suit: Spades}, cards[2])

	a.Equal("2c,13h,14s", CardsToString(cards))
}
