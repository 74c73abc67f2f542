package rng

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCrypto_Seed(t *testing.T) {
	a := assert.New(t)

	c := Crypto{}
	found := make(map[int64]bool)
	// it's possible this could fail, but not likely
	for i := 0; i < 100; i++ {
		seed := c.Seed()
		a.True(seed >= 0)
		found[seed] = true
	}

	a.True(len(found) > 1)
}
