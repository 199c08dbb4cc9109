// Package merkle computes sha256 Merkle roots over map and list contents.
// The roots are the commitments published for the authenticated stores; the
// tree itself is recomputed from the contents and never materialized.
package merkle

import (
	"bytes"
	"crypto/sha256"
	"encoding/binary"
	"sort"
)

// Domain-separation prefixes so a leaf can never be reinterpreted as an
// interior node.
const (
	leafPrefix = 0x00
	nodePrefix = 0x01
)

// Pair is one key/value entry of an authenticated map.
type Pair struct {
	Key   []byte
	Value []byte
}

// ListRoot returns the Merkle root of an append-only log. The empty log has
// a fixed, non-zero root.
func ListRoot(entries [][]byte) [32]byte {
	if len(entries) == 0 {
		return sha256.Sum256(nil)
	}
	level := make([][32]byte, len(entries))
	for i, e := range entries {
		level[i] = hashLeaf(e)
	}
	return fold(level)
}

// MapRoot returns the Merkle root of a map's contents in canonical (sorted
// key) order. The caller may pass pairs in any order.
func MapRoot(pairs []Pair) [32]byte {
	if len(pairs) == 0 {
		return sha256.Sum256(nil)
	}
	sorted := make([]Pair, len(pairs))
	copy(sorted, pairs)
	sort.Slice(sorted, func(i, j int) bool {
		return bytes.Compare(sorted[i].Key, sorted[j].Key) < 0
	})

	level := make([][32]byte, len(sorted))
	for i, p := range sorted {
		// Length-prefix the key so (key, value) framing is unambiguous.
		var klen [binary.MaxVarintLen64]byte
		n := binary.PutUvarint(klen[:], uint64(len(p.Key)))
		buf := make([]byte, 0, n+len(p.Key)+len(p.Value))
		buf = append(buf, klen[:n]...)
		buf = append(buf, p.Key...)
		buf = append(buf, p.Value...)
		level[i] = hashLeaf(buf)
	}
	return fold(level)
}

func hashLeaf(data []byte) [32]byte {
	h := sha256.New()
	h.Write([]byte{leafPrefix})
	h.Write(data)
	var out [32]byte
	h.Sum(out[:0])
	return out
}

func hashNode(left, right [32]byte) [32]byte {
	h := sha256.New()
	h.Write([]byte{nodePrefix})
	h.Write(left[:])
	h.Write(right[:])
	var out [32]byte
	h.Sum(out[:0])
	return out
}

// fold reduces one level of hashes to the root. An odd node is promoted to
// the next level unchanged.
func fold(level [][32]byte) [32]byte {
	for len(level) > 1 {
		next := make([][32]byte, 0, (len(level)+1)/2)
		for i := 0; i < len(level); i += 2 {
			if i+1 == len(level) {
				next = append(next, level[i])
				continue
			}
			next = append(next, hashNode(level[i], level[i+1]))
		}
		level = next
	}
	return level[0]
}
