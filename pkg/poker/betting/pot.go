package betting

import "sort"

// Pot is a single main or side pot. Eligible holds the non-folded seats that
// may win it: seats all-in below a pot's cap are excluded from that pot.
type Pot struct {
	Amount   int
	Eligible []*Seat
}

// Pots is an ordered list of pots: the main pot first, then side pots
type Pots []*Pot

// Total returns the combined total of all pots
func (p Pots) Total() int {
	total := 0
	for _, pot := range p {
		total += pot.Amount
	}

	return total
}

// BuildPots segments the seats' hand contributions into a main pot and side
// pots. Every distinct amount a non-folded seat went all-in for forms a layer
// boundary: chips up to the boundary go to a pot the all-in seat is eligible
// for, the excess goes to pots it is not. Folded contributions stay in the
// layers they reach but earn no eligibility.
func BuildPots(seats []*Seat) Pots {
	caps := make(map[int]bool)
	maxContribution := 0
	for _, s := range seats {
		if s.contributed > maxContribution {
			maxContribution = s.contributed
		}

		if !s.folded && s.allIn && s.contributed > 0 {
			caps[s.contributed] = true
		}
	}

	if maxContribution == 0 {
		return Pots{}
	}
	caps[maxContribution] = true

	amounts := make([]int, 0, len(caps))
	for amount := range caps {
		amounts = append(amounts, amount)
	}
	sort.Ints(amounts)

	pots := make(Pots, 0, len(amounts))
	prev := 0
	for _, level := range amounts {
		amount := 0
		for _, s := range seats {
			in := s.contributed
			if in > level {
				in = level
			}

			if in > prev {
				amount += in - prev
			}
		}

		eligible := make([]*Seat, 0, len(seats))
		for _, s := range seats {
			if !s.folded && s.contributed >= level {
				eligible = append(eligible, s)
			}
		}

		if amount == 0 {
			prev = level
			continue
		}

		if len(eligible) == 0 {
			// layer funded entirely by folded seats; keep the chips in play
			if n := len(pots); n > 0 {
				pots[n-1].Amount += amount
				prev = level
				continue
			}
		}

		pots = append(pots, &Pot{
			Amount:   amount,
			Eligible: eligible,
		})
		prev = level
	}

	return pots
}
