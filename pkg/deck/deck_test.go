package deck

import (
	"github.com/stretchr/testify/assert"
	"testing"
)

func TestNewDeck(t *testing.T) {
	deck := New()

	assert.Equal(t, 52, deck.CardsLeft())
	assert.Equal(t, Card{Rank: 2, Suit: Clubs}, *deck.Cards[0])
	assert.Equal(t, Card{Rank: 14, Suit: Spades}, *deck.Cards[51])

	unshuffled := deck.HashCode()

	deck.Shuffle(1)
	assert.NotEqual(t, unshuffled, deck.HashCode())
	assert.Equal(t, int64(1), deck.GetSeed())

	// same seed yields the same permutation
	deck2 := New()
	deck2.Shuffle(1)
	assert.Equal(t, deck.HashCode(), deck2.HashCode())

	deck2.Shuffle(2)
	assert.NotEqual(t, deck.HashCode(), deck2.HashCode())
}

func TestDeck_noDuplicates(t *testing.T) {
	a := assert.New(t)

	d := New()
	d.Shuffle(42)

	seen := make(map[string]bool)
	for {
		card, err := d.Draw()
		if err != nil {
			a.Equal(ErrEndOfDeck, err)
			break
		}

		key := CardToString(card)
		a.False(seen[key], "duplicate card: %s", key)
		seen[key] = true
	}

	a.Equal(52, len(seen))
}

func TestDeck_Draw(t *testing.T) {
	deck := New()

	if !deck.CanDraw(52) {
		t.Errorf("expected CanDraw(52) to be true")
	}

	if deck.CanDraw(53) {
		t.Errorf("expected CanDraw(53) to be false")
	}

	for i := 0; i < 52; i++ {
		card, err := deck.Draw()
		if card == nil {
			t.Error("expected card, got nil")
		}

		if err != nil {
			t.Errorf("expected err to be nil, got %v", err)
		}
	}

	if deck.CanDraw(1) {
		t.Errorf("expected CanDraw(1) to be false")
	}

	card, err := deck.Draw()
	if card != nil {
		t.Errorf("expected card to be nil, got %#v", card)
	}

	if err != ErrEndOfDeck {
		t.Errorf("expected err to be ErrEndOfDeck, got %#v", err)
	}

	deck.Shuffle(0)
	if !deck.CanDraw(52) {
		t.Errorf("expected Shuffle() to rebuild the deck")
	}
}

func TestDeck_DrawMany(t *testing.T) {
	a := assert.New(t)

	d := New()
	cards, err := d.DrawMany(2)
	a.NoError(err)
	a.Equal(2, len(cards))
	a.Equal(50, d.CardsLeft())

	_, err = d.DrawMany(50)
	a.NoError(err)
	a.Equal(0, d.CardsLeft())

	cards, err = d.DrawMany(1)
	a.Equal(ErrEndOfDeck, err)
	a.Nil(cards)
}
