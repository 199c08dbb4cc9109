package memory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testIndex = "test.index"

func TestForkStagesWritesUntilMerge(t *testing.T) {
	t.Parallel()
	db := NewDatabase()

	fork := db.Fork()
	fork.Put(testIndex, []byte("k"), []byte("v"))

	// The fork sees its own write, the snapshot does not.
	v, ok := fork.Get(testIndex, []byte("k"))
	require.True(t, ok)
	assert.Equal(t, []byte("v"), v)

	_, ok = db.Snapshot().Get(testIndex, []byte("k"))
	assert.False(t, ok)

	require.NoError(t, db.Merge(fork))

	v, ok = db.Snapshot().Get(testIndex, []byte("k"))
	require.True(t, ok)
	assert.Equal(t, []byte("v"), v)
}

func TestDiscardedForkLeavesNoTrace(t *testing.T) {
	t.Parallel()
	db := NewDatabase()

	before := db.Snapshot().MapDigest(testIndex)

	fork := db.Fork()
	fork.Put(testIndex, []byte("k"), []byte("v"))
	fork.ListPush(testIndex, []byte("f"), []byte("e"))
	// fork dropped, never merged

	assert.Equal(t, before, db.Snapshot().MapDigest(testIndex))
	assert.Zero(t, db.Snapshot().ListLen(testIndex, []byte("f")))
}

func TestForkDigestsSeeStagedState(t *testing.T) {
	t.Parallel()
	db := NewDatabase()

	fork := db.Fork()
	fork.Put(testIndex, []byte("k"), []byte("v"))
	staged := fork.MapDigest(testIndex)
	assert.NotEqual(t, db.Snapshot().MapDigest(testIndex), staged)

	// After the merge the committed digest equals what the fork reported.
	require.NoError(t, db.Merge(fork))
	assert.Equal(t, staged, db.Snapshot().MapDigest(testIndex))
}

func TestListAppendsAcrossForks(t *testing.T) {
	t.Parallel()
	db := NewDatabase()
	family := []byte("acct")

	fork := db.Fork()
	fork.ListPush(testIndex, family, []byte("e1"))
	fork.ListPush(testIndex, family, []byte("e2"))
	assert.Equal(t, uint64(2), fork.ListLen(testIndex, family))
	require.NoError(t, db.Merge(fork))

	fork = db.Fork()
	fork.ListPush(testIndex, family, []byte("e3"))
	assert.Equal(t, uint64(3), fork.ListLen(testIndex, family))
	require.NoError(t, db.Merge(fork))

	entries := db.Snapshot().ListEntries(testIndex, family)
	require.Len(t, entries, 3)
	assert.Equal(t, []byte("e1"), entries[0])
	assert.Equal(t, []byte("e3"), entries[2])
}

func TestOverwriteChangesDigest(t *testing.T) {
	t.Parallel()
	db := NewDatabase()

	fork := db.Fork()
	fork.Put(testIndex, []byte("k"), []byte("v1"))
	require.NoError(t, db.Merge(fork))
	first := db.Snapshot().MapDigest(testIndex)

	fork = db.Fork()
	fork.Put(testIndex, []byte("k"), []byte("v2"))
	require.NoError(t, db.Merge(fork))

	assert.NotEqual(t, first, db.Snapshot().MapDigest(testIndex))
}

func TestMergeRejectsForeignFork(t *testing.T) {
	t.Parallel()
	db := NewDatabase()
	other := NewDatabase()

	fork := other.Fork()
	assert.Error(t, db.Merge(fork))
}
