package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnvelopeSeedYieldsDistinctIDs(t *testing.T) {
	t.Parallel()
	var author PublicKey
	author[0] = 1

	a := NewEnvelope(author, Issue{Amount: 50, Seed: 1})
	b := NewEnvelope(author, Issue{Amount: 50, Seed: 2})
	c := NewEnvelope(author, Issue{Amount: 50, Seed: 1})

	assert.NotEqual(t, a.TxID, b.TxID)
	assert.Equal(t, a.TxID, c.TxID)
}

func TestEnvelopeIDBindsAuthor(t *testing.T) {
	t.Parallel()
	var alice, bob PublicKey
	alice[0] = 1
	bob[0] = 2

	payload := Issue{Amount: 50, Seed: 1}
	assert.NotEqual(t, NewEnvelope(alice, payload).TxID, NewEnvelope(bob, payload).TxID)
}

func TestEnvelopeJSONRoundTrip(t *testing.T) {
	t.Parallel()
	var author, to, approver PublicKey
	author[0], to[0], approver[0] = 1, 2, 3
	var h Hash
	h[0] = 9

	payloads := []Payload{
		CreateAccount{Name: "alice"},
		Issue{Amount: 50, Seed: 7},
		Transfer{To: to, Approver: approver, Amount: 30, Seed: 8},
		ConfirmTransfer{TxHash: h, Seed: 9},
	}
	for _, p := range payloads {
		env := NewEnvelope(author, p)
		raw, err := json.Marshal(env)
		require.NoError(t, err)

		var decoded Envelope
		require.NoError(t, json.Unmarshal(raw, &decoded))
		assert.Equal(t, env.Author, decoded.Author)
		assert.Equal(t, env.TxID, decoded.TxID)
		assert.Equal(t, env.Payload, decoded.Payload)
	}
}

func TestAccountFunctionalUpdates(t *testing.T) {
	t.Parallel()
	var pk PublicKey
	pk[0] = 1

	account := NewAccount(pk, "alice", InitialBalance, 1, Hash{})

	updated := account.WithBalance(7).WithFrozen(3)
	assert.Equal(t, int64(7), updated.Balance)
	assert.Equal(t, uint64(3), updated.FrozenAmount)

	// The original value is untouched.
	assert.Equal(t, InitialBalance, account.Balance)
	assert.Zero(t, account.FrozenAmount)
}

func TestPendingTransferFulfillIsCopy(t *testing.T) {
	t.Parallel()
	var h Hash
	h[0] = 1
	var from, to, approver PublicKey
	from[0], to[0], approver[0] = 1, 2, 3

	ticket := NewPendingTransfer(h, from, to, approver, 10)
	fulfilled := ticket.Fulfill()

	assert.True(t, fulfilled.Fulfilled)
	assert.False(t, ticket.Fulfilled)
}

func TestParsePublicKey(t *testing.T) {
	t.Parallel()
	var pk PublicKey
	pk[5] = 0xab

	parsed, err := ParsePublicKey(pk.String())
	require.NoError(t, err)
	assert.Equal(t, pk, parsed)

	_, err = ParsePublicKey("zz")
	assert.Error(t, err)

	_, err = ParsePublicKey("abcd")
	assert.Error(t, err)
}
