// Package schema composes the account and pending-transfer stores behind
// typed accessors and owns the balance primitives that keep an account's
// record and its history log in sync.
package schema

import (
	"encoding/json"
	"fmt"

	"github.com/escrowd/go-escrow-ledger/internal/app/core/domain"
)

// Index names of the underlying authenticated stores.
const (
	accountsIndex         = "ledger.accounts"
	accountHistoryIndex   = "ledger.account_history"
	pendingTransfersIndex = "ledger.pending_transfers"
	committedTxIndex      = "ledger.committed_transactions"
)

// Schema wraps a read-only view with typed access to the ledger indexes.
type Schema struct {
	view View
}

// New creates a schema over the given view.
func New(view View) Schema {
	return Schema{view: view}
}

// Account returns the account stored under pubKey.
func (s Schema) Account(pubKey domain.PublicKey) (domain.Account, bool) {
	raw, ok := s.view.Get(accountsIndex, pubKey[:])
	if !ok {
		return domain.Account{}, false
	}
	var account domain.Account
	mustDecode(raw, &account)
	return account, true
}

// PendingTransfer returns the escrow ticket keyed by the hash of the
// transfer transaction that created it.
func (s Schema) PendingTransfer(txHash domain.Hash) (domain.PendingTransfer, bool) {
	raw, ok := s.view.Get(pendingTransfersIndex, txHash[:])
	if !ok {
		return domain.PendingTransfer{}, false
	}
	var transfer domain.PendingTransfer
	mustDecode(raw, &transfer)
	return transfer, true
}

// AccountHistory returns the transaction ids appended for pubKey, oldest
// first.
func (s Schema) AccountHistory(pubKey domain.PublicKey) []domain.Hash {
	entries := s.view.ListEntries(accountHistoryIndex, pubKey[:])
	history := make([]domain.Hash, len(entries))
	for i, e := range entries {
		if len(e) != len(history[i]) {
			panic(fmt.Sprintf("schema: malformed history entry of %d bytes", len(e)))
		}
		copy(history[i][:], e)
	}
	return history
}

// IsCommitted reports whether a transaction id has already been applied.
func (s Schema) IsCommitted(tx domain.Hash) bool {
	_, ok := s.view.Get(committedTxIndex, tx[:])
	return ok
}

// StateHash is the externally published commitment. It covers the account
// map only; pending transfers and history logs are authenticated internally
// but deliberately excluded from the root.
func (s Schema) StateHash() domain.Hash {
	return s.view.MapDigest(accountsIndex)
}

// MutSchema extends Schema with the balance primitives. Every primitive
// appends the triggering transaction id to the account's history, recomputes
// the log commitment, and writes the updated record back in the same staged
// unit; record and log are never touched independently.
type MutSchema struct {
	Schema
	fork Fork
}

// NewMut creates a mutable schema over the given fork.
func NewMut(fork Fork) MutSchema {
	return MutSchema{Schema: New(fork), fork: fork}
}

// IncreaseBalance credits amount to the account.
func (s MutSchema) IncreaseBalance(account domain.Account, amount uint64, tx domain.Hash) {
	length, digest := s.appendHistory(account.PubKey, tx)
	updated := account.
		WithBalance(account.Balance + int64(amount)).
		WithHistory(length, digest)
	s.putAccount(updated)
}

// DecreaseBalance moves amount from the account's spendable balance into its
// frozen reserve. This is the escrow-reservation step, not a withdrawal.
func (s MutSchema) DecreaseBalance(account domain.Account, amount uint64, tx domain.Hash) {
	length, digest := s.appendHistory(account.PubKey, tx)
	updated := account.
		WithBalance(account.Balance - int64(amount)).
		WithFrozen(account.FrozenAmount + amount).
		WithHistory(length, digest)
	s.putAccount(updated)
}

// DecreaseFrozen releases amount from the account's frozen reserve without
// crediting anyone; the caller pairs it with a credit to the receiver.
func (s MutSchema) DecreaseFrozen(account domain.Account, amount uint64, tx domain.Hash) {
	length, digest := s.appendHistory(account.PubKey, tx)
	updated := account.
		WithFrozen(account.FrozenAmount - amount).
		WithHistory(length, digest)
	s.putAccount(updated)
}

// CreateAccount initializes a new account with the initial balance and tx as
// the first history entry.
func (s MutSchema) CreateAccount(pubKey domain.PublicKey, name string, tx domain.Hash) {
	length, digest := s.appendHistory(pubKey, tx)
	s.putAccount(domain.NewAccount(pubKey, name, domain.InitialBalance, length, digest))
}

// CreatePendingTransfer inserts an unfulfilled escrow ticket keyed by the
// transfer transaction's hash.
func (s MutSchema) CreatePendingTransfer(txHash domain.Hash, from, to, approver domain.PublicKey, amount uint64) {
	s.putPendingTransfer(domain.NewPendingTransfer(txHash, from, to, approver, amount))
}

// FulfillPendingTransfer stores a fulfilled copy of the ticket. The ticket
// must already be in the store; a miss here is an executor bug.
func (s MutSchema) FulfillPendingTransfer(transfer domain.PendingTransfer) {
	if _, ok := s.PendingTransfer(transfer.TxHash); !ok {
		panic(fmt.Sprintf("schema: fulfilling unknown pending transfer %s", transfer.TxHash))
	}
	s.putPendingTransfer(transfer.Fulfill())
}

// MarkCommitted records tx as applied. A resubmission of the same id must
// be rejected before execution: the transitions themselves are not
// idempotent (a transfer would debit again and revive its fulfilled ticket).
func (s MutSchema) MarkCommitted(tx domain.Hash) {
	s.fork.Put(committedTxIndex, tx[:], []byte{1})
}

// appendHistory pushes tx onto the account's log and returns the log's new
// length and commitment.
func (s MutSchema) appendHistory(pubKey domain.PublicKey, tx domain.Hash) (uint64, domain.Hash) {
	s.fork.ListPush(accountHistoryIndex, pubKey[:], tx[:])
	return s.fork.ListLen(accountHistoryIndex, pubKey[:]),
		s.fork.ListDigest(accountHistoryIndex, pubKey[:])
}

func (s MutSchema) putAccount(account domain.Account) {
	s.fork.Put(accountsIndex, account.PubKey[:], mustEncode(account))
}

func (s MutSchema) putPendingTransfer(transfer domain.PendingTransfer) {
	s.fork.Put(pendingTransfersIndex, transfer.TxHash[:], mustEncode(transfer))
}

func mustEncode(v any) []byte {
	raw, err := json.Marshal(v)
	if err != nil {
		panic("schema: encode record: " + err.Error())
	}
	return raw
}

// mustDecode panics on malformed stored data: the schema is the only writer
// of these indexes, so a decode failure means the store is corrupt.
func mustDecode(raw []byte, v any) {
	if err := json.Unmarshal(raw, v); err != nil {
		panic("schema: decode record: " + err.Error())
	}
}
