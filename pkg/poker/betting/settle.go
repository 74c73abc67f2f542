package betting

import (
	"sort"

	"pokerbot-engine/pkg/poker/handrank"
)

// Settle awards each pot independently to the best hand among its eligible
// seats and returns the payout per participant ID. Winners' balances are
// adjusted in place.
//
// Ties split a pot evenly. Remainder chips from an uneven split are assigned
// one each to the tied winners in table order starting from the seat closest
// to the dealer's left, so no chip is ever discarded.
func Settle(pots Pots, results map[int64]handrank.Result, dealerPosition, seatCount int) map[int64]int {
	payouts := make(map[int64]int)

	for _, pot := range pots {
		winners := potWinners(pot, results)
		if len(winners) == 0 {
			continue
		}

		payPot(pot.Amount, winners, dealerPosition, seatCount, payouts)
	}

	return payouts
}

// AwardAll pays every pot to a single seat. Used for an uncontested win,
// which never invokes the evaluator.
func AwardAll(pots Pots, winner *Seat) map[int64]int {
	total := pots.Total()
	winner.AdjustBalance(total)

	return map[int64]int{winner.ID(): total}
}

// ClearContributions zeroes the seats' swept contributions. Called once the
// pots they funded are paid out, so the chips are not counted both in the
// winners' stacks and in the pot.
func ClearContributions(seats []*Seat) {
	for _, s := range seats {
		s.contributed = 0
	}
}

// Refund returns every chip a seat has invested or contributed this hand to
// its balance. Used when a hand aborts mid-deal.
func Refund(seats []*Seat) {
	for _, s := range seats {
		if amount := s.invested + s.contributed; amount > 0 {
			s.AdjustBalance(amount)
		}

		s.invested = 0
		s.contributed = 0
	}
}

func potWinners(pot *Pot, results map[int64]handrank.Result) []*Seat {
	var best handrank.Result
	winners := make([]*Seat, 0, len(pot.Eligible))

	for _, s := range pot.Eligible {
		result, ok := results[s.ID()]
		if !ok {
			continue
		}

		if len(winners) == 0 {
			best = result
			winners = append(winners, s)
			continue
		}

		switch result.Compare(best) {
		case 1:
			best = result
			winners = winners[:0]
			winners = append(winners, s)
		case 0:
			winners = append(winners, s)
		}
	}

	return winners
}

func payPot(amount int, winners []*Seat, dealerPosition, seatCount int, payouts map[int64]int) {
	// order by distance left of the dealer so remainder chips land deterministically
	sort.Slice(winners, func(i, j int) bool {
		return leftOfDealer(winners[i].position, dealerPosition, seatCount) <
			leftOfDealer(winners[j].position, dealerPosition, seatCount)
	})

	share := amount / len(winners)
	remainder := amount % len(winners)

	for i, w := range winners {
		payout := share
		if i < remainder {
			payout++
		}

		w.AdjustBalance(payout)
		payouts[w.ID()] += payout
	}
}

func leftOfDealer(position, dealerPosition, seatCount int) int {
	return ((position-dealerPosition-1)%seatCount + seatCount) % seatCount
}
