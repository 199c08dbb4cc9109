package domain

// PendingTransfer is the escrow ticket created by a Transfer transaction.
// It is keyed by the hash of that transaction and stays in the store forever
// as an audit record; fulfillment flips the flag exactly once.
type PendingTransfer struct {
	TxHash    Hash      `json:"tx_hash"`
	From      PublicKey `json:"from"`
	To        PublicKey `json:"to"`
	Approver  PublicKey `json:"approver"`
	Amount    uint64    `json:"amount"`
	Fulfilled bool      `json:"fulfilled"`
}

// NewPendingTransfer builds an unfulfilled escrow ticket.
func NewPendingTransfer(txHash Hash, from, to, approver PublicKey, amount uint64) PendingTransfer {
	return PendingTransfer{
		TxHash:   txHash,
		From:     from,
		To:       to,
		Approver: approver,
		Amount:   amount,
	}
}

// Fulfill returns a copy with the fulfilled flag set.
func (t PendingTransfer) Fulfill() PendingTransfer {
	t.Fulfilled = true
	return t
}
