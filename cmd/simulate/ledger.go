package main

import (
	"sync"

	"pokerbot-engine/pkg/poker/holdem"
)

// memLedger is an in-memory currency backend for simulated players
type memLedger struct {
	mu       sync.Mutex
	balances map[int64]int
}

func newMemLedger(balance, numPlayers int) *memLedger {
	balances := make(map[int64]int, numPlayers)
	for id := int64(1); id <= int64(numPlayers); id++ {
		balances[id] = balance
	}

	return &memLedger{balances: balances}
}

func (l *memLedger) Debit(playerID int64, amount int) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.balances[playerID] < amount {
		return holdem.ErrInsufficientFunds
	}

	l.balances[playerID] -= amount
	return nil
}

func (l *memLedger) Credit(playerID int64, amount int) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.balances[playerID] += amount
}

func (l *memLedger) total() int {
	l.mu.Lock()
	defer l.mu.Unlock()

	total := 0
	for _, balance := range l.balances {
		total += balance
	}

	return total
}
