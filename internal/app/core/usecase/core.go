package usecase

import (
	"context"
	"sync"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/escrowd/go-escrow-ledger/internal/app/core/domain"
	"github.com/escrowd/go-escrow-ledger/internal/app/core/schema"
	"github.com/escrowd/go-escrow-ledger/pkg/wal"
)

// Query errors for absent records. Distinct from the execution error set:
// these are read-path misses, not transition failures.
var (
	ErrAccountNotFound  = errors.New("account not found")
	ErrTransferNotFound = errors.New("pending transfer not found")
)

// ErrDuplicateTransaction rejects a resubmission of an already-committed
// transaction id. It sits outside the execution-error set: the transition
// never ran, the first commit simply stands.
var ErrDuplicateTransaction = errors.New("transaction already committed")

// Archive mirrors committed state into an external read model. Failures are
// reported but never undo a committed transition.
type Archive interface {
	RecordCommit(ctx context.Context, env *domain.Envelope, accounts []domain.Account, transfer *domain.PendingTransfer) error
}

// CoreUseCase drives the ledger: it executes envelopes against a fresh fork,
// journals and merges on success, and exposes the read-only query surface.
type CoreUseCase struct {
	// mu serializes transaction application: every fork must stage against
	// the state left by the previous merge, or two concurrent submits pass
	// their preconditions on the same stale balances and the last merge wins.
	mu sync.Mutex

	db       schema.Database
	executor *TransactionExecutor
	journal  *wal.WAL
	archive  Archive
	log      *logrus.Logger
}

type Option func(*CoreUseCase)

// WithJournal makes every committed envelope durable before the merge.
func WithJournal(journal *wal.WAL) Option {
	return func(c *CoreUseCase) { c.journal = journal }
}

// WithArchive mirrors committed state into an external read model.
func WithArchive(archive Archive) Option {
	return func(c *CoreUseCase) { c.archive = archive }
}

func WithLogger(log *logrus.Logger) Option {
	return func(c *CoreUseCase) { c.log = log }
}

func NewCoreUseCase(db schema.Database, opts ...Option) *CoreUseCase {
	c := &CoreUseCase{
		db:       db,
		executor: NewTransactionExecutor(),
		log:      logrus.StandardLogger(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Submit applies one verified envelope. All mutations of the transition
// stage in a fork and become visible together on success; any execution
// error discards the fork untouched. An envelope whose transaction id has
// already committed is rejected before execution.
func (c *CoreUseCase) Submit(ctx context.Context, env *domain.Envelope) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	fork, err := c.apply(env)
	if err != nil {
		return err
	}

	// Journal first: a crash between journal and merge replays the envelope
	// at boot, a crash before the journal write loses nothing committed.
	if c.journal != nil {
		if err := c.journal.Write(env); err != nil {
			return errors.Wrap(err, "journal envelope")
		}
	}
	if err := c.db.Merge(fork); err != nil {
		return errors.Wrap(err, "merge fork")
	}

	if c.archive != nil {
		c.archiveCommit(ctx, env)
	}
	return nil
}

// apply runs one transition against a fresh fork and records the transaction
// id in the same staged unit, so the id becomes visible exactly when the
// state change does. Caller holds mu.
func (c *CoreUseCase) apply(env *domain.Envelope) (schema.Fork, error) {
	fork := c.db.Fork()
	s := schema.NewMut(fork)
	if s.IsCommitted(env.TxID) {
		return nil, ErrDuplicateTransaction
	}
	if err := c.executor.Execute(fork, env); err != nil {
		return nil, err
	}
	s.MarkCommitted(env.TxID)
	return fork, nil
}

// Recover replays the journal through the executor to rebuild state. Replay
// applies, never re-journals. Every journaled envelope committed once, so a
// replay failure means the journal and the executor disagree - corruption,
// not a business error.
func (c *CoreUseCase) Recover() error {
	if c.journal == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	count := 0
	err := c.journal.ReadAll(func(raw []byte) error {
		var env domain.Envelope
		if err := env.UnmarshalJSON(raw); err != nil {
			return errors.Wrap(err, "decode journaled envelope")
		}
		fork, err := c.apply(&env)
		if err != nil {
			return errors.Wrapf(err, "replay tx %s", env.TxID)
		}
		if err := c.db.Merge(fork); err != nil {
			return err
		}
		count++
		return nil
	})
	if err != nil {
		return err
	}
	c.log.WithField("transactions", count).Info("journal replayed")
	return nil
}

// GetAccount returns the account stored under pubKey.
func (c *CoreUseCase) GetAccount(ctx context.Context, pubKey domain.PublicKey) (domain.Account, error) {
	s := schema.New(c.db.Snapshot())
	account, ok := s.Account(pubKey)
	if !ok {
		return domain.Account{}, ErrAccountNotFound
	}
	return account, nil
}

// GetAccountHistory returns the transaction ids recorded for pubKey.
func (c *CoreUseCase) GetAccountHistory(ctx context.Context, pubKey domain.PublicKey) ([]domain.Hash, error) {
	s := schema.New(c.db.Snapshot())
	if _, ok := s.Account(pubKey); !ok {
		return nil, ErrAccountNotFound
	}
	return s.AccountHistory(pubKey), nil
}

// GetPendingTransfer returns the escrow ticket keyed by txHash.
func (c *CoreUseCase) GetPendingTransfer(ctx context.Context, txHash domain.Hash) (domain.PendingTransfer, error) {
	s := schema.New(c.db.Snapshot())
	transfer, ok := s.PendingTransfer(txHash)
	if !ok {
		return domain.PendingTransfer{}, ErrTransferNotFound
	}
	return transfer, nil
}

// StateHash returns the externally published commitment of the account map.
func (c *CoreUseCase) StateHash(ctx context.Context) domain.Hash {
	return schema.New(c.db.Snapshot()).StateHash()
}

// archiveCommit mirrors the records touched by env into the archive. Best
// effort: the authoritative state already committed.
func (c *CoreUseCase) archiveCommit(ctx context.Context, env *domain.Envelope) {
	s := schema.New(c.db.Snapshot())

	var accounts []domain.Account
	var transfer *domain.PendingTransfer

	appendAccount := func(pk domain.PublicKey) {
		if account, ok := s.Account(pk); ok {
			accounts = append(accounts, account)
		}
	}

	switch p := env.Payload.(type) {
	case domain.CreateAccount, domain.Issue:
		appendAccount(env.Author)
	case domain.Transfer:
		appendAccount(env.Author)
		if t, ok := s.PendingTransfer(env.TxID); ok {
			transfer = &t
		}
	case domain.ConfirmTransfer:
		if t, ok := s.PendingTransfer(p.TxHash); ok {
			transfer = &t
			appendAccount(t.From)
			appendAccount(t.To)
		}
	}

	if err := c.archive.RecordCommit(ctx, env, accounts, transfer); err != nil {
		c.log.WithError(err).WithField("tx", env.TxID.String()).Warn("archive write failed")
	}
}
