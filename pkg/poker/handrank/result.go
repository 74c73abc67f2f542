package handrank

import (
	"math"
)

// Result is a fully classified poker hand.
// Ranks holds the ordered tiebreak ranks for the category: the primary rank(s)
// first, then any kickers. Two results compare by category, then by Ranks
// lexicographically.
type Result struct {
	Category Category `json:"category"`
	Ranks    []int    `json:"ranks"`
}

// Strength encodes the result as a single comparable integer
// Each rank occupies a base-15 digit below the category.
func (r Result) Strength() int {
	ranks := make([]int, 5)
	copy(ranks, r.Ranks)

	strength := math.Pow(15, 5) * float64(r.Category)
	for i := 0; i < 5; i++ {
		strength += math.Pow(15, float64(4-i)) * float64(ranks[i])
	}

	return int(strength)
}

// Compare returns -1 if r is a weaker hand than other, 1 if stronger, and 0 for
// a genuine tie. Ties are valid results that split the pot.
func (r Result) Compare(other Result) int {
	if r.Category != other.Category {
		if r.Category < other.Category {
			return -1
		}

		return 1
	}

	n := len(r.Ranks)
	if len(other.Ranks) > n {
		n = len(other.Ranks)
	}

	for i := 0; i < n; i++ {
		var a, b int
		if i < len(r.Ranks) {
			a = r.Ranks[i]
		}
		if i < len(other.Ranks) {
			b = other.Ranks[i]
		}

		if a != b {
			if a < b {
				return -1
			}

			return 1
		}
	}

	return 0
}

func (r Result) String() string {
	return r.Category.String()
}
