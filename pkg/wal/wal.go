// Package wal is an append-only JSON journal. The ledger appends every
// committed transaction envelope and replays the file at boot to rebuild
// its in-memory state.
package wal

import (
	"encoding/json"
	"io"
	"io/fs"
	"os"
	"sync"

	"github.com/pkg/errors"
)

// FileMode for journal files: owner read-write, others read-only.
const FileMode fs.FileMode = 0644

type WAL struct {
	file *os.File
	mu   sync.Mutex
}

// New opens or creates the journal at path. O_APPEND keeps every write at
// the end of the file regardless of reads in between.
func New(path string) (*WAL, error) {
	file, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_RDWR, FileMode)
	if err != nil {
		return nil, errors.Wrapf(err, "open wal %s", path)
	}
	return &WAL{file: file}, nil
}

// Write appends one record and forces it to disk before returning. A record
// that Write acknowledged survives a crash.
func (w *WAL) Write(v any) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if err := json.NewEncoder(w.file).Encode(v); err != nil {
		return errors.Wrap(err, "encode wal record")
	}
	return errors.Wrap(w.file.Sync(), "sync wal")
}

// ReadAll streams every record to callback in write order. Records are
// handed over raw so the caller decides the concrete type.
func (w *WAL) ReadAll(callback func(raw []byte) error) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if _, err := w.file.Seek(0, io.SeekStart); err != nil {
		return errors.Wrap(err, "seek wal")
	}

	decoder := json.NewDecoder(w.file)
	for {
		var raw json.RawMessage
		if err := decoder.Decode(&raw); err != nil {
			if err == io.EOF {
				return nil
			}
			return errors.Wrap(err, "decode wal record")
		}
		if err := callback(raw); err != nil {
			return err
		}
	}
}

// Close closes the underlying file.
func (w *WAL) Close() error {
	return w.file.Close()
}
