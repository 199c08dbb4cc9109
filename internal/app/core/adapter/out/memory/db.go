// Package memory implements the authenticated store behind the schema
// storage port: named map indexes plus per-family append-only logs, all in
// process memory. State is rebuilt at boot by replaying the journal, so the
// process owns no other persistence.
package memory

import (
	"sync"

	"github.com/pkg/errors"

	"github.com/escrowd/go-escrow-ledger/internal/app/core/domain"
	"github.com/escrowd/go-escrow-ledger/internal/app/core/schema"
	"github.com/escrowd/go-escrow-ledger/pkg/merkle"
)

// Database is the in-memory authenticated store. The RWMutex only guards
// concurrent readers against a merge; transaction application itself is
// serialized by the caller, never by this lock.
type Database struct {
	mu sync.RWMutex
	// index -> key -> value
	maps map[string]map[string][]byte
	// index -> family -> entries in append order
	lists map[string]map[string][][]byte
}

func NewDatabase() *Database {
	return &Database{
		maps:  make(map[string]map[string][]byte),
		lists: make(map[string]map[string][][]byte),
	}
}

// Snapshot returns a read-only view of the current committed state.
func (d *Database) Snapshot() schema.View {
	return &snapshot{db: d}
}

// Fork returns a read-write view that stages all writes until merged.
func (d *Database) Fork() schema.Fork {
	return &fork{
		db:      d,
		puts:    make(map[string]map[string][]byte),
		appends: make(map[string]map[string][][]byte),
	}
}

// Merge applies a fork's staged writes under the write lock. Forks are
// created by this database only; anything else is a wiring bug.
func (d *Database) Merge(f schema.Fork) error {
	staged, ok := f.(*fork)
	if !ok {
		return errors.Errorf("memory: cannot merge foreign fork %T", f)
	}
	if staged.db != d {
		return errors.New("memory: fork belongs to another database")
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	for index, kv := range staged.puts {
		base := d.maps[index]
		if base == nil {
			base = make(map[string][]byte)
			d.maps[index] = base
		}
		for key, value := range kv {
			base[key] = value
		}
	}
	for index, families := range staged.appends {
		base := d.lists[index]
		if base == nil {
			base = make(map[string][][]byte)
			d.lists[index] = base
		}
		for family, entries := range families {
			base[family] = append(base[family], entries...)
		}
	}
	return nil
}

// Unlocked reads shared by snapshot and fork. Callers hold at least RLock.

func (d *Database) get(index string, key []byte) ([]byte, bool) {
	v, ok := d.maps[index][string(key)]
	return v, ok
}

func (d *Database) listEntries(index string, family []byte) [][]byte {
	return d.lists[index][string(family)]
}

func (d *Database) mapPairs(index string) []merkle.Pair {
	kv := d.maps[index]
	pairs := make([]merkle.Pair, 0, len(kv))
	for k, v := range kv {
		pairs = append(pairs, merkle.Pair{Key: []byte(k), Value: v})
	}
	return pairs
}

type snapshot struct {
	db *Database
}

func (s *snapshot) Get(index string, key []byte) ([]byte, bool) {
	s.db.mu.RLock()
	defer s.db.mu.RUnlock()
	return s.db.get(index, key)
}

func (s *snapshot) ListLen(index string, family []byte) uint64 {
	s.db.mu.RLock()
	defer s.db.mu.RUnlock()
	return uint64(len(s.db.listEntries(index, family)))
}

func (s *snapshot) ListEntries(index string, family []byte) [][]byte {
	s.db.mu.RLock()
	defer s.db.mu.RUnlock()
	base := s.db.listEntries(index, family)
	out := make([][]byte, len(base))
	copy(out, base)
	return out
}

func (s *snapshot) MapDigest(index string) domain.Hash {
	s.db.mu.RLock()
	defer s.db.mu.RUnlock()
	return merkle.MapRoot(s.db.mapPairs(index))
}

func (s *snapshot) ListDigest(index string, family []byte) domain.Hash {
	s.db.mu.RLock()
	defer s.db.mu.RUnlock()
	return merkle.ListRoot(s.db.listEntries(index, family))
}

// fork overlays staged writes on the committed base. Reads and digests see
// the staged state; the base is untouched until Merge.
type fork struct {
	db      *Database
	puts    map[string]map[string][]byte
	appends map[string]map[string][][]byte
}

func (f *fork) Get(index string, key []byte) ([]byte, bool) {
	if v, ok := f.puts[index][string(key)]; ok {
		return v, true
	}
	f.db.mu.RLock()
	defer f.db.mu.RUnlock()
	return f.db.get(index, key)
}

func (f *fork) ListLen(index string, family []byte) uint64 {
	f.db.mu.RLock()
	base := len(f.db.listEntries(index, family))
	f.db.mu.RUnlock()
	return uint64(base + len(f.appends[index][string(family)]))
}

func (f *fork) ListEntries(index string, family []byte) [][]byte {
	f.db.mu.RLock()
	base := f.db.listEntries(index, family)
	out := make([][]byte, len(base), len(base)+len(f.appends[index][string(family)]))
	copy(out, base)
	f.db.mu.RUnlock()
	return append(out, f.appends[index][string(family)]...)
}

func (f *fork) MapDigest(index string) domain.Hash {
	f.db.mu.RLock()
	pairs := f.db.mapPairs(index)
	f.db.mu.RUnlock()

	staged := f.puts[index]
	if len(staged) > 0 {
		merged := make(map[string][]byte, len(pairs)+len(staged))
		for _, p := range pairs {
			merged[string(p.Key)] = p.Value
		}
		for k, v := range staged {
			merged[k] = v
		}
		pairs = pairs[:0]
		for k, v := range merged {
			pairs = append(pairs, merkle.Pair{Key: []byte(k), Value: v})
		}
	}
	return merkle.MapRoot(pairs)
}

func (f *fork) ListDigest(index string, family []byte) domain.Hash {
	return merkle.ListRoot(f.ListEntries(index, family))
}

func (f *fork) Put(index string, key, value []byte) {
	kv := f.puts[index]
	if kv == nil {
		kv = make(map[string][]byte)
		f.puts[index] = kv
	}
	kv[string(key)] = value
}

func (f *fork) ListPush(index string, family []byte, value []byte) {
	families := f.appends[index]
	if families == nil {
		families = make(map[string][][]byte)
		f.appends[index] = families
	}
	families[string(family)] = append(families[string(family)], value)
}

var _ schema.Database = (*Database)(nil)
