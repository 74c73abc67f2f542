package holdem

import "errors"

// ErrInsufficientFunds is returned by a Ledger that cannot cover a debit
var ErrInsufficientFunds = errors.New("insufficient funds")

// Ledger is the currency backend the table settles buy-ins and cash-outs
// against. The table never touches player money any other way.
type Ledger interface {
	// Debit removes amount from the player's account. Returns
	// ErrInsufficientFunds if the account cannot cover it.
	Debit(playerID int64, amount int) error

	// Credit adds amount to the player's account
	Credit(playerID int64, amount int)
}
