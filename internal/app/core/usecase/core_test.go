package usecase

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/escrowd/go-escrow-ledger/internal/app/core/adapter/out/memory"
	"github.com/escrowd/go-escrow-ledger/internal/app/core/domain"
	"github.com/escrowd/go-escrow-ledger/pkg/wal"
)

func TestRecoverRebuildsState(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "wal.log")

	journal, err := wal.New(path)
	require.NoError(t, err)

	db := memory.NewDatabase()
	core := NewCoreUseCase(db, WithJournal(journal))

	alice, bob, carol := key(1), key(2), key(3)
	ctx := context.Background()
	for i, pk := range []domain.PublicKey{alice, bob, carol} {
		require.NoError(t, core.Submit(ctx, domain.NewEnvelope(pk, domain.CreateAccount{Name: string(rune('a' + i))})))
	}
	transfer := domain.NewEnvelope(alice, domain.Transfer{To: bob, Approver: carol, Amount: 30, Seed: 1})
	require.NoError(t, core.Submit(ctx, transfer))
	require.NoError(t, core.Submit(ctx, domain.NewEnvelope(carol, domain.ConfirmTransfer{TxHash: transfer.TxID, Seed: 2})))

	want := core.StateHash(ctx)
	require.NoError(t, journal.Close())

	// Fresh process: empty store, same journal.
	journal, err = wal.New(path)
	require.NoError(t, err)
	defer journal.Close()

	recovered := NewCoreUseCase(memory.NewDatabase(), WithJournal(journal))
	require.NoError(t, recovered.Recover())

	assert.Equal(t, want, recovered.StateHash(ctx))

	account, err := recovered.GetAccount(ctx, bob)
	require.NoError(t, err)
	assert.Equal(t, domain.InitialBalance+30, account.Balance)

	ticket, err := recovered.GetPendingTransfer(ctx, transfer.TxID)
	require.NoError(t, err)
	assert.True(t, ticket.Fulfilled)
}

func TestRecoverRetainsDuplicateGuard(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "wal.log")

	journal, err := wal.New(path)
	require.NoError(t, err)

	core := NewCoreUseCase(memory.NewDatabase(), WithJournal(journal))
	ctx := context.Background()

	alice := key(1)
	create := domain.NewEnvelope(alice, domain.CreateAccount{Name: "alice"})
	require.NoError(t, core.Submit(ctx, create))
	issue := domain.NewEnvelope(alice, domain.Issue{Amount: 50, Seed: 1})
	require.NoError(t, core.Submit(ctx, issue))
	require.NoError(t, journal.Close())

	journal, err = wal.New(path)
	require.NoError(t, err)
	defer journal.Close()

	recovered := NewCoreUseCase(memory.NewDatabase(), WithJournal(journal))
	require.NoError(t, recovered.Recover())

	// The committed-id index rebuilt with the state: replaying the journaled
	// issue by hand must not credit the account a second time.
	assert.Equal(t, ErrDuplicateTransaction, recovered.Submit(ctx, issue))

	account, err := recovered.GetAccount(ctx, alice)
	require.NoError(t, err)
	assert.Equal(t, domain.InitialBalance+50, account.Balance)
}

func TestRejectedTransactionsAreNotJournaled(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "wal.log")

	journal, err := wal.New(path)
	require.NoError(t, err)
	defer journal.Close()

	core := NewCoreUseCase(memory.NewDatabase(), WithJournal(journal))
	ctx := context.Background()

	alice := key(1)
	require.NoError(t, core.Submit(ctx, domain.NewEnvelope(alice, domain.CreateAccount{Name: "alice"})))
	require.Error(t, core.Submit(ctx, domain.NewEnvelope(alice, domain.CreateAccount{Name: "dup"})))

	count := 0
	require.NoError(t, journal.ReadAll(func(raw []byte) error {
		count++
		return nil
	}))
	assert.Equal(t, 1, count)
}

func TestQueriesOnMissingRecords(t *testing.T) {
	t.Parallel()
	core := NewCoreUseCase(memory.NewDatabase())
	ctx := context.Background()

	_, err := core.GetAccount(ctx, key(1))
	assert.Equal(t, ErrAccountNotFound, err)

	_, err = core.GetAccountHistory(ctx, key(1))
	assert.Equal(t, ErrAccountNotFound, err)

	_, err = core.GetPendingTransfer(ctx, domain.Hash{1})
	assert.Equal(t, ErrTransferNotFound, err)
}
