package handrank

import (
	"sort"

	"pokerbot-engine/pkg/deck"
)

// Evaluate classifies the best five-card hand from a player's hole cards and
// the community board. It is pure: no side effects, deterministic output.
func Evaluate(hole deck.Hand, community deck.Hand) Result {
	cards := make(deck.Hand, 0, len(hole)+len(community))
	cards = append(cards, hole...)
	cards = append(cards, community...)
	sort.Sort(sort.Reverse(sortByRank(cards)))

	flushRanks := findFlush(cards)

	// a straight flush requires the straight within the flush suit itself,
	// not merely a straight and a flush somewhere in the same seven cards
	if flushRanks != nil {
		if high := straightHigh(flushRanks); high > 0 {
			if high == deck.Ace {
				return Result{Category: RoyalFlush, Ranks: []int{}}
			}

			return Result{Category: StraightFlush, Ranks: []int{high}}
		}
	}

	quads, trips, pairs := groupByRank(cards)
	ranks := distinctRanks(cards)

	// quads dominate flush and straight
	if len(quads) > 0 {
		return Result{
			Category: FourOfAKind,
			Ranks:    append([]int{quads[0]}, kickers(ranks, 1, quads[0])...),
		}
	}

	if len(trips) > 0 {
		pair := 0
		if len(pairs) > 0 {
			pair = pairs[0]
		}
		if len(trips) > 1 && trips[1] > pair {
			// a second set of trips supplies the pair in a seven-card hand
			pair = trips[1]
		}

		if pair > 0 {
			return Result{Category: FullHouse, Ranks: []int{trips[0], pair}}
		}
	}

	if flushRanks != nil {
		return Result{Category: Flush, Ranks: flushRanks[0:5]}
	}

	if high := straightHigh(ranks); high > 0 {
		return Result{Category: Straight, Ranks: []int{high}}
	}

	if len(trips) > 0 {
		return Result{
			Category: ThreeOfAKind,
			Ranks:    append([]int{trips[0]}, kickers(ranks, 2, trips[0])...),
		}
	}

	if len(pairs) >= 2 {
		return Result{
			Category: TwoPair,
			Ranks:    append([]int{pairs[0], pairs[1]}, kickers(ranks, 1, pairs[0], pairs[1])...),
		}
	}

	if len(pairs) == 1 {
		return Result{
			Category: OnePair,
			Ranks:    append([]int{pairs[0]}, kickers(ranks, 3, pairs[0])...),
		}
	}

	if len(ranks) > 5 {
		ranks = ranks[0:5]
	}

	return Result{Category: HighCard, Ranks: ranks}
}

// findFlush returns the descending ranks of a suit with five or more cards,
// or nil if no flush exists
func findFlush(sorted deck.Hand) []int {
	suitRanks := make(map[deck.Suit][]int)
	for _, card := range sorted {
		suitRanks[card.Suit] = append(suitRanks[card.Suit], card.Rank)
	}

	for _, suit := range deck.Suits {
		if len(suitRanks[suit]) >= 5 {
			return suitRanks[suit]
		}
	}

	return nil
}

// straightHigh scans descending, distinct ranks for five consecutive values
// and returns the high rank of the best straight, or 0.
// The wheel (A-5-4-3-2) is checked explicitly since the ace sorts high; its
// comparison rank is 5, the low end, because it is the weakest straight.
func straightHigh(ranks []int) int {
	run := 1
	for i := 1; i < len(ranks); i++ {
		if ranks[i] == ranks[i-1]-1 {
			run++
			if run == 5 {
				return ranks[i] + 4
			}
		} else if ranks[i] != ranks[i-1] {
			run = 1
		}
	}

	if hasRanks(ranks, deck.Ace, 5, 4, 3, 2) {
		return 5
	}

	return 0
}

func hasRanks(ranks []int, want ...int) bool {
	for _, w := range want {
		found := false
		for _, r := range ranks {
			if r == w {
				found = true
				break
			}
		}

		if !found {
			return false
		}
	}

	return true
}

// groupByRank collects ranks occurring four, three, and two times, each list
// in descending rank order
func groupByRank(sorted deck.Hand) (quads, trips, pairs []int) {
	prevRank := 0
	count := 0

	flush := func() {
		switch count {
		case 4:
			quads = append(quads, prevRank)
		case 3:
			trips = append(trips, prevRank)
		case 2:
			pairs = append(pairs, prevRank)
		}
	}

	for _, card := range sorted {
		if card.Rank == prevRank {
			count++
			continue
		}

		flush()
		prevRank = card.Rank
		count = 1
	}
	flush()

	return
}

func distinctRanks(sorted deck.Hand) []int {
	ranks := make([]int, 0, len(sorted))
	prev := 0
	for _, card := range sorted {
		if card.Rank != prev {
			ranks = append(ranks, card.Rank)
			prev = card.Rank
		}
	}

	return ranks
}

// kickers returns up to n of the best distinct ranks not used by the hand
func kickers(ranks []int, n int, exclude ...int) []int {
	picked := make([]int, 0, n)
	for _, rank := range ranks {
		skip := false
		for _, ex := range exclude {
			if rank == ex {
				skip = true
				break
			}
		}

		if skip {
			continue
		}

		picked = append(picked, rank)
		if len(picked) == n {
			break
		}
	}

	return picked
}

type sortByRank deck.Hand

func (s sortByRank) Len() int {
	return len(s)
}

func (s sortByRank) Less(i, j int) bool {
	return s[i].Rank < s[j].Rank
}

func (s sortByRank) Swap(i, j int) {
	s[i], s[j] = s[j], s[i]
}
