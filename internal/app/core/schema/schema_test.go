package schema_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/escrowd/go-escrow-ledger/internal/app/core/adapter/out/memory"
	"github.com/escrowd/go-escrow-ledger/internal/app/core/domain"
	"github.com/escrowd/go-escrow-ledger/internal/app/core/schema"
)

func pk(b byte) domain.PublicKey {
	var key domain.PublicKey
	key[0] = b
	return key
}

func tx(b byte) domain.Hash {
	var h domain.Hash
	h[0] = b
	return h
}

func TestCreateAccountInitializesRecord(t *testing.T) {
	t.Parallel()
	db := memory.NewDatabase()
	fork := db.Fork()

	s := schema.NewMut(fork)
	s.CreateAccount(pk(1), "alice", tx(1))
	require.NoError(t, db.Merge(fork))

	account, ok := schema.New(db.Snapshot()).Account(pk(1))
	require.True(t, ok)
	assert.Equal(t, domain.InitialBalance, account.Balance)
	assert.Zero(t, account.FrozenAmount)
	assert.Equal(t, uint64(1), account.HistoryLen)
}

func TestPrimitivesKeepRecordAndHistoryInSync(t *testing.T) {
	t.Parallel()
	db := memory.NewDatabase()

	fork := db.Fork()
	s := schema.NewMut(fork)
	s.CreateAccount(pk(1), "alice", tx(1))
	account, ok := s.Account(pk(1))
	require.True(t, ok)

	s.IncreaseBalance(account, 25, tx(2))
	require.NoError(t, db.Merge(fork))

	s2 := schema.New(db.Snapshot())
	account, ok = s2.Account(pk(1))
	require.True(t, ok)
	assert.Equal(t, domain.InitialBalance+25, account.Balance)
	assert.Equal(t, uint64(2), account.HistoryLen)

	history := s2.AccountHistory(pk(1))
	require.Len(t, history, 2)
	assert.Equal(t, tx(1), history[0])
	assert.Equal(t, tx(2), history[1])
}

func TestDecreaseBalanceReserves(t *testing.T) {
	t.Parallel()
	db := memory.NewDatabase()

	fork := db.Fork()
	s := schema.NewMut(fork)
	s.CreateAccount(pk(1), "alice", tx(1))
	account, _ := s.Account(pk(1))

	s.DecreaseBalance(account, 40, tx(2))
	account, _ = s.Account(pk(1))
	assert.Equal(t, domain.InitialBalance-40, account.Balance)
	assert.Equal(t, uint64(40), account.FrozenAmount)

	s.DecreaseFrozen(account, 40, tx(3))
	account, _ = s.Account(pk(1))
	assert.Equal(t, domain.InitialBalance-40, account.Balance)
	assert.Zero(t, account.FrozenAmount)
	assert.Equal(t, uint64(3), account.HistoryLen)
}

func TestHistoryDigestChangesOnAppend(t *testing.T) {
	t.Parallel()
	db := memory.NewDatabase()

	fork := db.Fork()
	s := schema.NewMut(fork)
	s.CreateAccount(pk(1), "alice", tx(1))
	first, _ := s.Account(pk(1))

	s.IncreaseBalance(first, 1, tx(2))
	second, _ := s.Account(pk(1))

	assert.NotEqual(t, first.HistoryHash, second.HistoryHash)
}

func TestStateHashCoversAccountsOnly(t *testing.T) {
	t.Parallel()
	db := memory.NewDatabase()

	fork := db.Fork()
	s := schema.NewMut(fork)
	s.CreateAccount(pk(1), "alice", tx(1))
	require.NoError(t, db.Merge(fork))

	before := schema.New(db.Snapshot()).StateHash()

	// The pending-transfer store is authenticated internally but excluded
	// from the published root.
	fork = db.Fork()
	schema.NewMut(fork).CreatePendingTransfer(tx(2), pk(1), pk(2), pk(3), 10)
	require.NoError(t, db.Merge(fork))

	assert.Equal(t, before, schema.New(db.Snapshot()).StateHash())

	// An account mutation does move the root.
	fork = db.Fork()
	s = schema.NewMut(fork)
	account, _ := s.Account(pk(1))
	s.IncreaseBalance(account, 1, tx(3))
	require.NoError(t, db.Merge(fork))

	assert.NotEqual(t, before, schema.New(db.Snapshot()).StateHash())
}

func TestMarkCommittedStagesWithTheFork(t *testing.T) {
	t.Parallel()
	db := memory.NewDatabase()

	fork := db.Fork()
	s := schema.NewMut(fork)
	require.False(t, s.IsCommitted(tx(1)))

	s.MarkCommitted(tx(1))
	assert.True(t, s.IsCommitted(tx(1)))

	// Staged only: a discarded fork leaves no committed id behind.
	assert.False(t, schema.New(db.Snapshot()).IsCommitted(tx(1)))

	require.NoError(t, db.Merge(fork))
	assert.True(t, schema.New(db.Snapshot()).IsCommitted(tx(1)))
}

func TestCommittedIndexOutsideStateHash(t *testing.T) {
	t.Parallel()
	db := memory.NewDatabase()

	before := schema.New(db.Snapshot()).StateHash()

	fork := db.Fork()
	schema.NewMut(fork).MarkCommitted(tx(1))
	require.NoError(t, db.Merge(fork))

	assert.Equal(t, before, schema.New(db.Snapshot()).StateHash())
}

func TestFulfillPendingTransfer(t *testing.T) {
	t.Parallel()
	db := memory.NewDatabase()

	fork := db.Fork()
	s := schema.NewMut(fork)
	s.CreatePendingTransfer(tx(1), pk(1), pk(2), pk(3), 10)

	transfer, ok := s.PendingTransfer(tx(1))
	require.True(t, ok)
	require.False(t, transfer.Fulfilled)

	s.FulfillPendingTransfer(transfer)
	fulfilled, ok := s.PendingTransfer(tx(1))
	require.True(t, ok)
	assert.True(t, fulfilled.Fulfilled)

	// The caller's copy is untouched; fulfillment is a functional update.
	assert.False(t, transfer.Fulfilled)
}

func TestFulfillUnknownTransferPanics(t *testing.T) {
	t.Parallel()
	db := memory.NewDatabase()
	s := schema.NewMut(db.Fork())

	assert.Panics(t, func() {
		s.FulfillPendingTransfer(domain.NewPendingTransfer(tx(1), pk(1), pk(2), pk(3), 10))
	})
}
