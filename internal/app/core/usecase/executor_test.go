package usecase

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/escrowd/go-escrow-ledger/internal/app/core/adapter/out/memory"
	"github.com/escrowd/go-escrow-ledger/internal/app/core/domain"
)

func TestCanConfirmWithdrawal(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		balance int64
		frozen  uint64
		amount  uint64
		want    bool
	}{
		{"sufficient frozen", 100, 100, 10, true},
		{"insufficient frozen", 100, 2, 10, false},
		{"negative balance eats reserve", -100, 20, 10, false},
		{"reserve covers negative balance", -100, 120, 10, true},
		{"exact reserve", 0, 10, 10, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CanConfirmWithdrawal(tt.balance, tt.frozen, tt.amount))
		})
	}
}

type testLedger struct {
	db   *memory.Database
	core *CoreUseCase
}

func newTestLedger() *testLedger {
	db := memory.NewDatabase()
	return &testLedger{db: db, core: NewCoreUseCase(db)}
}

func (l *testLedger) submit(t *testing.T, author domain.PublicKey, payload domain.Payload) *domain.Envelope {
	t.Helper()
	env := domain.NewEnvelope(author, payload)
	require.NoError(t, l.core.Submit(context.Background(), env))
	return env
}

func (l *testLedger) submitErr(author domain.PublicKey, payload domain.Payload) error {
	return l.core.Submit(context.Background(), domain.NewEnvelope(author, payload))
}

func (l *testLedger) account(t *testing.T, pk domain.PublicKey) domain.Account {
	t.Helper()
	account, err := l.core.GetAccount(context.Background(), pk)
	require.NoError(t, err)
	return account
}

func key(b byte) domain.PublicKey {
	var pk domain.PublicKey
	pk[0] = b
	return pk
}

func (l *testLedger) createAccounts(t *testing.T, keys ...domain.PublicKey) {
	t.Helper()
	for i, pk := range keys {
		l.submit(t, pk, domain.CreateAccount{Name: string(rune('a' + i))})
	}
}

func TestCreateAccount(t *testing.T) {
	t.Parallel()
	l := newTestLedger()
	alice := key(1)

	env := l.submit(t, alice, domain.CreateAccount{Name: "alice"})

	account := l.account(t, alice)
	assert.Equal(t, "alice", account.Name)
	assert.Equal(t, domain.InitialBalance, account.Balance)
	assert.Zero(t, account.FrozenAmount)
	assert.Equal(t, uint64(1), account.HistoryLen)

	history, err := l.core.GetAccountHistory(context.Background(), alice)
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, env.TxID, history[0])
}

func TestCreateAccountTwice(t *testing.T) {
	t.Parallel()
	l := newTestLedger()
	alice := key(1)

	l.submit(t, alice, domain.CreateAccount{Name: "alice"})
	err := l.submitErr(alice, domain.CreateAccount{Name: "alice again"})
	assert.Equal(t, domain.ErrAlreadyExists, err)

	// The first record stays intact.
	assert.Equal(t, "alice", l.account(t, alice).Name)
}

func TestIssue(t *testing.T) {
	t.Parallel()
	l := newTestLedger()
	alice := key(1)
	l.createAccounts(t, alice)

	l.submit(t, alice, domain.Issue{Amount: 50, Seed: 1})

	account := l.account(t, alice)
	assert.Equal(t, domain.InitialBalance+50, account.Balance)
	assert.Equal(t, uint64(2), account.HistoryLen)
}

func TestIssueWithoutAccount(t *testing.T) {
	t.Parallel()
	l := newTestLedger()

	err := l.submitErr(key(1), domain.Issue{Amount: 50, Seed: 1})
	assert.Equal(t, domain.ErrReceiverNotFound, err)
}

func TestIssueSeedDistinguishesRepeats(t *testing.T) {
	t.Parallel()
	l := newTestLedger()
	alice := key(1)
	l.createAccounts(t, alice)

	first := l.submit(t, alice, domain.Issue{Amount: 50, Seed: 1})
	second := l.submit(t, alice, domain.Issue{Amount: 50, Seed: 2})

	assert.NotEqual(t, first.TxID, second.TxID)
	assert.Equal(t, domain.InitialBalance+100, l.account(t, alice).Balance)
}

func TestTransferCreatesEscrow(t *testing.T) {
	t.Parallel()
	l := newTestLedger()
	alice, bob, carol := key(1), key(2), key(3)
	l.createAccounts(t, alice, bob, carol)

	env := l.submit(t, alice, domain.Transfer{To: bob, Approver: carol, Amount: 30, Seed: 1})

	sender := l.account(t, alice)
	assert.Equal(t, domain.InitialBalance-30, sender.Balance)
	assert.Equal(t, uint64(30), sender.FrozenAmount)

	// Receiver and approver are untouched until confirmation.
	assert.Equal(t, domain.InitialBalance, l.account(t, bob).Balance)
	assert.Equal(t, domain.InitialBalance, l.account(t, carol).Balance)

	transfer, err := l.core.GetPendingTransfer(context.Background(), env.TxID)
	require.NoError(t, err)
	assert.Equal(t, alice, transfer.From)
	assert.Equal(t, bob, transfer.To)
	assert.Equal(t, carol, transfer.Approver)
	assert.Equal(t, uint64(30), transfer.Amount)
	assert.False(t, transfer.Fulfilled)
}

func TestTransferValidation(t *testing.T) {
	t.Parallel()
	alice, bob, carol, nobody := key(1), key(2), key(3), key(9)

	tests := []struct {
		name    string
		author  domain.PublicKey
		payload domain.Transfer
		want    *domain.ExecutionError
	}{
		{
			name:    "approver same as receiver",
			author:  alice,
			payload: domain.Transfer{To: bob, Approver: bob, Amount: 10, Seed: 1},
			want:    domain.ErrThirdPartySameAsSenderOrReceiver,
		},
		{
			name:    "approver same as sender",
			author:  alice,
			payload: domain.Transfer{To: bob, Approver: alice, Amount: 10, Seed: 1},
			want:    domain.ErrThirdPartySameAsSenderOrReceiver,
		},
		{
			name:    "sender same as receiver",
			author:  alice,
			payload: domain.Transfer{To: alice, Approver: carol, Amount: 10, Seed: 1},
			want:    domain.ErrSenderSameAsReceiver,
		},
		{
			name:    "approver has no account",
			author:  alice,
			payload: domain.Transfer{To: bob, Approver: nobody, Amount: 10, Seed: 1},
			want:    domain.ErrApproverNotFound,
		},
		{
			name:    "sender has no account",
			author:  nobody,
			payload: domain.Transfer{To: bob, Approver: carol, Amount: 10, Seed: 1},
			want:    domain.ErrSenderNotFound,
		},
		{
			name:    "receiver has no account",
			author:  alice,
			payload: domain.Transfer{To: nobody, Approver: carol, Amount: 10, Seed: 1},
			want:    domain.ErrReceiverNotFound,
		},
		{
			name:    "amount exceeds available funds",
			author:  alice,
			payload: domain.Transfer{To: bob, Approver: carol, Amount: uint64(domain.InitialBalance) + 1, Seed: 1},
			want:    domain.ErrInsufficientCurrencyAmount,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := newTestLedger()
			l.createAccounts(t, alice, bob, carol)
			before := l.core.StateHash(context.Background())

			err := l.submitErr(tt.author, tt.payload)
			assert.Equal(t, tt.want, err)

			// A rejected transition leaves no trace.
			assert.Equal(t, before, l.core.StateHash(context.Background()))
		})
	}
}

func TestTransferCountsFrozenAsAvailable(t *testing.T) {
	t.Parallel()
	l := newTestLedger()
	alice, bob, carol := key(1), key(2), key(3)
	l.createAccounts(t, alice, bob, carol)

	// First transfer reserves most of the balance.
	l.submit(t, alice, domain.Transfer{To: bob, Approver: carol, Amount: 80, Seed: 1})

	// A second reservation is admitted against balance plus frozen, because
	// the first transfer may never be confirmed.
	second := l.submit(t, alice, domain.Transfer{To: bob, Approver: carol, Amount: 80, Seed: 2})

	sender := l.account(t, alice)
	assert.Equal(t, domain.InitialBalance-160, sender.Balance)
	assert.Equal(t, uint64(160), sender.FrozenAmount)

	// Confirming the second transfer after the first leaves too little in
	// the combined funds; the guard rejects the release.
	first := domain.NewEnvelope(alice, domain.Transfer{To: bob, Approver: carol, Amount: 80, Seed: 1})
	l.submit(t, carol, domain.ConfirmTransfer{TxHash: first.TxID, Seed: 1})

	err := l.submitErr(carol, domain.ConfirmTransfer{TxHash: second.TxID, Seed: 2})
	assert.Equal(t, domain.ErrInsufficientCurrencyAmount, err)
}

func TestConfirmTransfer(t *testing.T) {
	t.Parallel()
	l := newTestLedger()
	alice, bob, carol := key(1), key(2), key(3)
	l.createAccounts(t, alice, bob, carol)

	transfer := l.submit(t, alice, domain.Transfer{To: bob, Approver: carol, Amount: 30, Seed: 1})
	l.submit(t, carol, domain.ConfirmTransfer{TxHash: transfer.TxID, Seed: 2})

	sender := l.account(t, alice)
	assert.Equal(t, domain.InitialBalance-30, sender.Balance)
	assert.Zero(t, sender.FrozenAmount)

	receiver := l.account(t, bob)
	assert.Equal(t, domain.InitialBalance+30, receiver.Balance)

	ticket, err := l.core.GetPendingTransfer(context.Background(), transfer.TxID)
	require.NoError(t, err)
	assert.True(t, ticket.Fulfilled)
}

func TestConfirmTransferValidation(t *testing.T) {
	t.Parallel()
	l := newTestLedger()
	alice, bob, carol := key(1), key(2), key(3)
	l.createAccounts(t, alice, bob, carol)

	transfer := l.submit(t, alice, domain.Transfer{To: bob, Approver: carol, Amount: 30, Seed: 1})

	// Unknown ticket.
	err := l.submitErr(carol, domain.ConfirmTransfer{TxHash: domain.Hash{0xff}, Seed: 1})
	assert.Equal(t, domain.ErrPendingTransferNotFound, err)

	// Only the recorded approver may confirm.
	err = l.submitErr(bob, domain.ConfirmTransfer{TxHash: transfer.TxID, Seed: 1})
	assert.Equal(t, domain.ErrUnexpectedThirdParty, err)

	l.submit(t, carol, domain.ConfirmTransfer{TxHash: transfer.TxID, Seed: 2})

	// The identity check fires before the fulfilled check.
	err = l.submitErr(bob, domain.ConfirmTransfer{TxHash: transfer.TxID, Seed: 3})
	assert.Equal(t, domain.ErrUnexpectedThirdParty, err)

	// Fulfillment is terminal; a second confirmation moves nothing.
	before := l.core.StateHash(context.Background())
	err = l.submitErr(carol, domain.ConfirmTransfer{TxHash: transfer.TxID, Seed: 4})
	assert.Equal(t, domain.ErrPendingTransferAlreadyFulfilled, err)
	assert.Equal(t, before, l.core.StateHash(context.Background()))
}

func TestResubmitCommittedTransaction(t *testing.T) {
	t.Parallel()
	l := newTestLedger()
	alice, bob, carol := key(1), key(2), key(3)
	l.createAccounts(t, alice, bob, carol)

	transfer := l.submit(t, alice, domain.Transfer{To: bob, Approver: carol, Amount: 30, Seed: 1})
	l.submit(t, carol, domain.ConfirmTransfer{TxHash: transfer.TxID, Seed: 2})

	before := l.core.StateHash(context.Background())

	// A byte-identical payload derives the same transaction id. Re-applying
	// it would debit the sender again and revive the fulfilled ticket.
	err := l.submitErr(alice, domain.Transfer{To: bob, Approver: carol, Amount: 30, Seed: 1})
	assert.Equal(t, ErrDuplicateTransaction, err)

	assert.Equal(t, before, l.core.StateHash(context.Background()))

	ticket, err := l.core.GetPendingTransfer(context.Background(), transfer.TxID)
	require.NoError(t, err)
	assert.True(t, ticket.Fulfilled)

	sender := l.account(t, alice)
	assert.Equal(t, domain.InitialBalance-30, sender.Balance)
	assert.Zero(t, sender.FrozenAmount)
	assert.Equal(t, uint64(3), sender.HistoryLen)
}

func TestConcurrentSubmitsSerialize(t *testing.T) {
	t.Parallel()
	l := newTestLedger()
	alice := key(1)
	l.createAccounts(t, alice)

	// Barrier-release the submitters so the forks would race if application
	// were not serialized; every issued unit must survive the merges.
	const workers = 64
	start := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func(seed uint64) {
			defer wg.Done()
			<-start
			env := domain.NewEnvelope(alice, domain.Issue{Amount: 1, Seed: seed})
			assert.NoError(t, l.core.Submit(context.Background(), env))
		}(uint64(i))
	}
	close(start)
	wg.Wait()

	account := l.account(t, alice)
	assert.Equal(t, domain.InitialBalance+workers, account.Balance)
	assert.Equal(t, uint64(workers+1), account.HistoryLen)
}

func TestTransferConfirmConservation(t *testing.T) {
	t.Parallel()
	l := newTestLedger()
	alice, bob, carol := key(1), key(2), key(3)
	l.createAccounts(t, alice, bob, carol)

	total := func() int64 {
		a := l.account(t, alice)
		b := l.account(t, bob)
		return a.Balance + int64(a.FrozenAmount) + b.Balance
	}

	before := total()
	transfer := l.submit(t, alice, domain.Transfer{To: bob, Approver: carol, Amount: 30, Seed: 1})
	assert.Equal(t, before, total())

	l.submit(t, carol, domain.ConfirmTransfer{TxHash: transfer.TxID, Seed: 2})
	assert.Equal(t, before, total())

	// Issue, by contrast, does create value.
	l.submit(t, alice, domain.Issue{Amount: 5, Seed: 3})
	assert.Equal(t, before+5, total())
}

func TestBalancesStayNonNegative(t *testing.T) {
	t.Parallel()
	l := newTestLedger()
	alice, bob, carol := key(1), key(2), key(3)
	l.createAccounts(t, alice, bob, carol)

	transfer := l.submit(t, alice, domain.Transfer{To: bob, Approver: carol, Amount: uint64(domain.InitialBalance), Seed: 1})
	l.submit(t, carol, domain.ConfirmTransfer{TxHash: transfer.TxID, Seed: 2})

	for _, pk := range []domain.PublicKey{alice, bob, carol} {
		account := l.account(t, pk)
		assert.GreaterOrEqual(t, account.Balance, int64(0))
	}
}

func TestHistoryRecordsEveryMutation(t *testing.T) {
	t.Parallel()
	l := newTestLedger()
	alice, bob, carol := key(1), key(2), key(3)
	l.createAccounts(t, alice, bob, carol)

	transfer := l.submit(t, alice, domain.Transfer{To: bob, Approver: carol, Amount: 30, Seed: 1})
	confirm := l.submit(t, carol, domain.ConfirmTransfer{TxHash: transfer.TxID, Seed: 2})

	history, err := l.core.GetAccountHistory(context.Background(), alice)
	require.NoError(t, err)
	require.Len(t, history, 3)
	assert.Equal(t, transfer.TxID, history[1])
	assert.Equal(t, confirm.TxID, history[2])

	// The confirmation also lands in the receiver's history.
	history, err = l.core.GetAccountHistory(context.Background(), bob)
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, confirm.TxID, history[1])

	account := l.account(t, alice)
	assert.Equal(t, uint64(3), account.HistoryLen)
}
