package merkle

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListRoot(t *testing.T) {
	t.Parallel()

	empty := ListRoot(nil)
	one := ListRoot([][]byte{[]byte("a")})
	two := ListRoot([][]byte{[]byte("a"), []byte("b")})

	assert.NotEqual(t, empty, one)
	assert.NotEqual(t, one, two)

	// Deterministic for identical contents.
	assert.Equal(t, two, ListRoot([][]byte{[]byte("a"), []byte("b")}))

	// Order matters for a log.
	assert.NotEqual(t, two, ListRoot([][]byte{[]byte("b"), []byte("a")}))
}

func TestListRootOddCount(t *testing.T) {
	t.Parallel()

	entries := [][]byte{[]byte("a"), []byte("b"), []byte("c")}
	root := ListRoot(entries)
	require.NotEqual(t, ListRoot(entries[:2]), root)
	assert.Equal(t, root, ListRoot(entries))
}

func TestMapRootOrderIndependent(t *testing.T) {
	t.Parallel()

	a := Pair{Key: []byte("k1"), Value: []byte("v1")}
	b := Pair{Key: []byte("k2"), Value: []byte("v2")}

	assert.Equal(t, MapRoot([]Pair{a, b}), MapRoot([]Pair{b, a}))
}

func TestMapRootValueSensitive(t *testing.T) {
	t.Parallel()

	base := MapRoot([]Pair{{Key: []byte("k"), Value: []byte("v")}})
	changed := MapRoot([]Pair{{Key: []byte("k"), Value: []byte("w")}})
	assert.NotEqual(t, base, changed)
}

func TestMapRootKeyValueFraming(t *testing.T) {
	t.Parallel()

	// Shifting a byte across the key/value boundary must change the root.
	a := MapRoot([]Pair{{Key: []byte("ab"), Value: []byte("c")}})
	b := MapRoot([]Pair{{Key: []byte("a"), Value: []byte("bc")}})
	assert.NotEqual(t, a, b)
}
