package schema

import "github.com/escrowd/go-escrow-ledger/internal/app/core/domain"

// View is a read-only snapshot over the authenticated stores: point lookups
// on named map indexes, reads over per-family append-only logs, and digest
// computation for both.
type View interface {
	// Get returns the value stored under key in the named map index.
	Get(index string, key []byte) ([]byte, bool)
	// ListLen returns the number of entries of one log family.
	ListLen(index string, family []byte) uint64
	// ListEntries returns all entries of one log family in append order.
	ListEntries(index string, family []byte) [][]byte
	// MapDigest returns the commitment of the named map index.
	MapDigest(index string) domain.Hash
	// ListDigest returns the commitment of one log family.
	ListDigest(index string, family []byte) domain.Hash
}

// Fork is a read-write transactional view. Writes are staged inside the
// fork and become visible to other views only when the database merges it;
// a fork that is simply dropped leaves no trace. Reads and digests observe
// the staged writes.
type Fork interface {
	View
	// Put stores value under key in the named map index.
	Put(index string, key, value []byte)
	// ListPush appends value to one log family.
	ListPush(index string, family []byte, value []byte)
}

// Database hands out snapshots and forks over the persistent state. The
// caller serializes transaction application; a fork is exclusively owned by
// the transition executing against it.
type Database interface {
	Snapshot() View
	Fork() Fork
	// Merge applies a fork's staged writes atomically.
	Merge(Fork) error
}
