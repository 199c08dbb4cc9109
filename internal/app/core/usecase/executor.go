package usecase

import (
	"fmt"

	"github.com/escrowd/go-escrow-ledger/internal/app/core/domain"
	"github.com/escrowd/go-escrow-ledger/internal/app/core/schema"
)

// CanConfirmWithdrawal reports whether a confirmation may release amount
// from an account holding the given balances. The frozen reserve must cover
// the amount, and so must reserve plus available: the second clause blocks
// confirmation when the signed balance has gone non-positive and the
// combined funds no longer cover the release.
func CanConfirmWithdrawal(balance int64, frozen, amount uint64) bool {
	return frozen >= amount && int64(frozen)+balance >= int64(amount)
}

// TransactionExecutor applies verified transaction envelopes against a fork.
// Each handler is a guarded state transition: preconditions are checked in a
// fixed order, the first failure aborts with one of the closed execution
// errors, and only a nil return entitles the caller to merge the fork.
type TransactionExecutor struct{}

func NewTransactionExecutor() *TransactionExecutor {
	return &TransactionExecutor{}
}

// Execute runs one transition. On error the caller must discard the fork:
// handlers never stage a mutation before every precondition has passed.
func (e *TransactionExecutor) Execute(fork schema.Fork, env *domain.Envelope) error {
	switch p := env.Payload.(type) {
	case domain.CreateAccount:
		return e.executeCreateAccount(fork, env, p)
	case domain.Issue:
		return e.executeIssue(fork, env, p)
	case domain.Transfer:
		return e.executeTransfer(fork, env, p)
	case domain.ConfirmTransfer:
		return e.executeConfirmTransfer(fork, env, p)
	default:
		// Envelope construction owns the payload set; an unknown payload is
		// an executor bug, not a recoverable transaction error.
		panic(fmt.Sprintf("usecase: unknown payload type %T", env.Payload))
	}
}

func (e *TransactionExecutor) executeCreateAccount(fork schema.Fork, env *domain.Envelope, p domain.CreateAccount) error {
	s := schema.NewMut(fork)
	if _, ok := s.Account(env.Author); ok {
		return domain.ErrAlreadyExists
	}
	s.CreateAccount(env.Author, p.Name, env.TxID)
	return nil
}

// executeIssue mints new units into the author's account. The author acts
// as the receiver, hence the error code on a missing account.
func (e *TransactionExecutor) executeIssue(fork schema.Fork, env *domain.Envelope, p domain.Issue) error {
	s := schema.NewMut(fork)
	account, ok := s.Account(env.Author)
	if !ok {
		return domain.ErrReceiverNotFound
	}
	s.IncreaseBalance(account, p.Amount, env.TxID)
	return nil
}

func (e *TransactionExecutor) executeTransfer(fork schema.Fork, env *domain.Envelope, p domain.Transfer) error {
	s := schema.NewMut(fork)
	from := env.Author

	if from == p.Approver || p.To == p.Approver {
		return domain.ErrThirdPartySameAsSenderOrReceiver
	}
	if from == p.To {
		return domain.ErrSenderSameAsReceiver
	}
	if _, ok := s.Account(p.Approver); !ok {
		return domain.ErrApproverNotFound
	}
	sender, ok := s.Account(from)
	if !ok {
		return domain.ErrSenderNotFound
	}
	if _, ok := s.Account(p.To); !ok {
		return domain.ErrReceiverNotFound
	}

	// Frozen funds still count as available here: a pending transfer may
	// never be confirmed.
	if sender.Balance+int64(sender.FrozenAmount) < int64(p.Amount) {
		return domain.ErrInsufficientCurrencyAmount
	}

	s.DecreaseBalance(sender, p.Amount, env.TxID)
	s.CreatePendingTransfer(env.TxID, from, p.To, p.Approver, p.Amount)
	return nil
}

func (e *TransactionExecutor) executeConfirmTransfer(fork schema.Fork, env *domain.Envelope, p domain.ConfirmTransfer) error {
	s := schema.NewMut(fork)

	transfer, ok := s.PendingTransfer(p.TxHash)
	if !ok {
		return domain.ErrPendingTransferNotFound
	}
	// Identity is checked before the fulfilled flag: a stranger learns
	// nothing about the ticket's state.
	if transfer.Approver != env.Author {
		return domain.ErrUnexpectedThirdParty
	}
	if transfer.Fulfilled {
		return domain.ErrPendingTransferAlreadyFulfilled
	}

	sender, ok := s.Account(transfer.From)
	if !ok {
		return domain.ErrSenderNotFound
	}
	receiver, ok := s.Account(transfer.To)
	if !ok {
		return domain.ErrReceiverNotFound
	}
	if !CanConfirmWithdrawal(sender.Balance, sender.FrozenAmount, transfer.Amount) {
		return domain.ErrInsufficientCurrencyAmount
	}

	s.DecreaseFrozen(sender, transfer.Amount, env.TxID)
	s.IncreaseBalance(receiver, transfer.Amount, env.TxID)
	s.FulfillPendingTransfer(transfer)
	return nil
}
