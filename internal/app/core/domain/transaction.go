package domain

import (
	"encoding/json"

	"github.com/pkg/errors"
)

// TransactionType tags the payload carried by an envelope.
type TransactionType uint8

const (
	TransactionTypeCreateAccount   TransactionType = 1
	TransactionTypeIssue           TransactionType = 2
	TransactionTypeTransfer        TransactionType = 3
	TransactionTypeConfirmTransfer TransactionType = 4
)

// Payload is one of the four transaction bodies.
type Payload interface {
	Type() TransactionType
}

// CreateAccount registers a new account under the author's identity.
type CreateAccount struct {
	Name string `json:"name"`
}

// Issue mints Amount new units into the author's own account.
// Seed has no semantic effect; it only makes otherwise-identical payloads
// hash to distinct transaction ids.
type Issue struct {
	Amount uint64 `json:"amount"`
	Seed   uint64 `json:"seed"`
}

// Transfer moves Amount from the author into escrow towards To, to be
// released by Approver.
type Transfer struct {
	To       PublicKey `json:"to"`
	Approver PublicKey `json:"approver"`
	Amount   uint64    `json:"amount"`
	Seed     uint64    `json:"seed"`
}

// ConfirmTransfer releases the escrow ticket created by the Transfer
// transaction with hash TxHash. Only the recorded approver may author it.
type ConfirmTransfer struct {
	TxHash Hash   `json:"tx_hash"`
	Seed   uint64 `json:"seed"`
}

func (CreateAccount) Type() TransactionType   { return TransactionTypeCreateAccount }
func (Issue) Type() TransactionType           { return TransactionTypeIssue }
func (Transfer) Type() TransactionType        { return TransactionTypeTransfer }
func (ConfirmTransfer) Type() TransactionType { return TransactionTypeConfirmTransfer }

// Envelope is a verified transaction as delivered by the transport layer:
// the signer identity, a unique transaction id, and the typed payload.
type Envelope struct {
	Author  PublicKey
	TxID    Hash
	Payload Payload
}

// NewEnvelope derives the transaction id from the author, the payload type
// and the canonical payload encoding. Two envelopes collide only if author
// and payload (seed included) are byte-identical.
func NewEnvelope(author PublicKey, payload Payload) *Envelope {
	body, err := json.Marshal(payload)
	if err != nil {
		panic("domain: unencodable payload: " + err.Error())
	}
	buf := make([]byte, 0, len(author)+1+len(body))
	buf = append(buf, author[:]...)
	buf = append(buf, byte(payload.Type()))
	buf = append(buf, body...)
	return &Envelope{
		Author:  author,
		TxID:    HashBytes(buf),
		Payload: payload,
	}
}

type envelopeJSON struct {
	Author  PublicKey       `json:"author"`
	TxID    Hash            `json:"tx_id"`
	Type    TransactionType `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

func (e *Envelope) MarshalJSON() ([]byte, error) {
	body, err := json.Marshal(e.Payload)
	if err != nil {
		return nil, err
	}
	return json.Marshal(envelopeJSON{
		Author:  e.Author,
		TxID:    e.TxID,
		Type:    e.Payload.Type(),
		Payload: body,
	})
}

func (e *Envelope) UnmarshalJSON(data []byte) error {
	var raw envelopeJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	var payload Payload
	switch raw.Type {
	case TransactionTypeCreateAccount:
		var p CreateAccount
		if err := json.Unmarshal(raw.Payload, &p); err != nil {
			return err
		}
		payload = p
	case TransactionTypeIssue:
		var p Issue
		if err := json.Unmarshal(raw.Payload, &p); err != nil {
			return err
		}
		payload = p
	case TransactionTypeTransfer:
		var p Transfer
		if err := json.Unmarshal(raw.Payload, &p); err != nil {
			return err
		}
		payload = p
	case TransactionTypeConfirmTransfer:
		var p ConfirmTransfer
		if err := json.Unmarshal(raw.Payload, &p); err != nil {
			return err
		}
		payload = p
	default:
		return errors.Errorf("unknown transaction type %d", raw.Type)
	}
	e.Author = raw.Author
	e.TxID = raw.TxID
	e.Payload = payload
	return nil
}
