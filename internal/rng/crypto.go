package rng

import (
	"crypto/rand"
	"math"
	"math/big"
)

// Crypto derives seeds from the operating system's entropy source
type Crypto struct{}

// Seed returns a new non-negative seed
func (c Crypto) Seed() int64 {
	b, err := rand.Int(rand.Reader, big.NewInt(math.MaxInt64))
	if err != nil {
		panic(err)
	}

	return b.Int64()
}
