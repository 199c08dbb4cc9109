package domain

// ErrorCode is the stable numeric discriminant of an execution error. The
// codes are part of the wire contract across versions and replicas; never
// renumber them.
type ErrorCode uint8

const (
	CodeAlreadyExists                    ErrorCode = 0
	CodeSenderNotFound                   ErrorCode = 1
	CodeReceiverNotFound                 ErrorCode = 2
	CodeInsufficientCurrencyAmount       ErrorCode = 3
	CodePendingTransferNotFound          ErrorCode = 4
	CodePendingTransferAlreadyFulfilled  ErrorCode = 5
	CodeApproverNotFound                 ErrorCode = 6
	CodeThirdPartySameAsSenderOrReceiver ErrorCode = 7
	CodeSenderSameAsReceiver             ErrorCode = 8
	CodeUnexpectedThirdParty             ErrorCode = 9
)

// ExecutionError aborts a transition with no effect on the stores. The set
// below is closed: handlers return one of these values, never new ones.
type ExecutionError struct {
	Code        ErrorCode
	Description string
}

func (e *ExecutionError) Error() string {
	return e.Description
}

var (
	// ErrAlreadyExists is returned by CreateAccount.
	ErrAlreadyExists = &ExecutionError{CodeAlreadyExists, "account already exists"}

	// ErrSenderNotFound is returned by Transfer and ConfirmTransfer.
	ErrSenderNotFound = &ExecutionError{CodeSenderNotFound, "sender doesn't exist"}

	// ErrReceiverNotFound is returned by Transfer, ConfirmTransfer and Issue.
	ErrReceiverNotFound = &ExecutionError{CodeReceiverNotFound, "receiver doesn't exist"}

	// ErrInsufficientCurrencyAmount is returned by Transfer and ConfirmTransfer.
	ErrInsufficientCurrencyAmount = &ExecutionError{CodeInsufficientCurrencyAmount, "insufficient currency amount"}

	// ErrPendingTransferNotFound is returned by ConfirmTransfer.
	ErrPendingTransferNotFound = &ExecutionError{CodePendingTransferNotFound, "pending transfer doesn't exist"}

	// ErrPendingTransferAlreadyFulfilled is returned by ConfirmTransfer.
	ErrPendingTransferAlreadyFulfilled = &ExecutionError{CodePendingTransferAlreadyFulfilled, "pending transfer has already been fulfilled"}

	// ErrApproverNotFound is returned by Transfer.
	ErrApproverNotFound = &ExecutionError{CodeApproverNotFound, "approver doesn't exist"}

	// ErrThirdPartySameAsSenderOrReceiver is returned by Transfer when the
	// approver coincides with either end of the transfer.
	ErrThirdPartySameAsSenderOrReceiver = &ExecutionError{CodeThirdPartySameAsSenderOrReceiver, "approver must differ from sender and receiver"}

	// ErrSenderSameAsReceiver is returned by Transfer.
	ErrSenderSameAsReceiver = &ExecutionError{CodeSenderSameAsReceiver, "sender same as receiver"}

	// ErrUnexpectedThirdParty is returned by ConfirmTransfer when the author
	// is not the recorded approver.
	ErrUnexpectedThirdParty = &ExecutionError{CodeUnexpectedThirdParty, "confirmation author is not the recorded approver"}
)
