package rng

// Generator provides seeds for deck shuffles
type Generator interface {
	// Seed returns a new non-negative seed
	Seed() int64
}
