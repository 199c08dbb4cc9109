package domain

// InitialBalance is credited to every account at creation.
const InitialBalance int64 = 100

// Account is a ledger entry holding spendable and escrow-reserved funds for
// one identity. It is a plain value type: every mutation produces a new
// value, the stored record is only replaced through the schema primitives.
//
// Balance is signed on purpose. The transition guards keep it non-negative
// after every commit, but the confirmation guard must still reason about a
// balance that has gone non-positive (see CanConfirmWithdrawal).
type Account struct {
	PubKey       PublicKey `json:"pub_key"`
	Name         string    `json:"name"`
	Balance      int64     `json:"balance"`
	FrozenAmount uint64    `json:"frozen_amount"`
	HistoryLen   uint64    `json:"history_len"`
	HistoryHash  Hash      `json:"history_hash"`
}

// NewAccount builds a freshly created account record.
func NewAccount(pubKey PublicKey, name string, balance int64, historyLen uint64, historyHash Hash) Account {
	return Account{
		PubKey:      pubKey,
		Name:        name,
		Balance:     balance,
		HistoryLen:  historyLen,
		HistoryHash: historyHash,
	}
}

// WithBalance returns a copy with the spendable balance replaced.
func (a Account) WithBalance(balance int64) Account {
	a.Balance = balance
	return a
}

// WithFrozen returns a copy with the reserved amount replaced.
func (a Account) WithFrozen(frozen uint64) Account {
	a.FrozenAmount = frozen
	return a
}

// WithHistory returns a copy with the history commitment replaced.
func (a Account) WithHistory(length uint64, digest Hash) Account {
	a.HistoryLen = length
	a.HistoryHash = digest
	return a
}
