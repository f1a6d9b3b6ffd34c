package kv

import (
	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/pebble"
	"github.com/cockroachdb/pebble/vfs"
)

// DB wraps a Pebble database holding a single flat keyspace.
type DB struct {
	db *pebble.DB
}

// Open opens the database at path, creating it if necessary. The path
// ":memory:" opens a volatile database backed by an in-memory
// filesystem.
func Open(path string) (*DB, error) {
	var opts pebble.Options
	if path == ":memory:" {
		opts.FS = vfs.NewMem()
		path = ""
	}

	db, err := pebble.Open(path, &opts)
	if err != nil {
		return nil, err
	}

	return &DB{db: db}, nil
}

// Put stores a key value pair. If it already exists, it overrides it.
func (d *DB) Put(k, v []byte) error {
	if len(k) == 0 {
		return errors.New("cannot store empty key")
	}

	if len(v) == 0 {
		return errors.New("cannot store empty value")
	}

	return d.db.Set(k, v, pebble.Sync)
}

// Get returns the value associated with the given key. If not found,
// returns ErrKeyNotFound. The returned slice is a copy the caller
// owns.
func (d *DB) Get(k []byte) ([]byte, error) {
	value, closer, err := d.db.Get(k)
	if err != nil {
		if errors.Is(err, pebble.ErrNotFound) {
			return nil, errors.WithStack(ErrKeyNotFound)
		}

		return nil, err
	}

	cp := make([]byte, len(value))
	copy(cp, value)

	err = closer.Close()
	if err != nil {
		return nil, err
	}

	return cp, nil
}

// Exists reports whether the given key is present.
func (d *DB) Exists(k []byte) (bool, error) {
	_, closer, err := d.db.Get(k)
	if err != nil {
		if errors.Is(err, pebble.ErrNotFound) {
			return false, nil
		}

		return false, err
	}

	return true, closer.Close()
}

// Delete removes a key. If not found, returns ErrKeyNotFound.
func (d *DB) Delete(k []byte) error {
	ok, err := d.Exists(k)
	if err != nil {
		return err
	}
	if !ok {
		return errors.WithStack(ErrKeyNotFound)
	}

	return d.db.Delete(k, pebble.Sync)
}

// Ascend calls fn for every key value pair in ascending key order.
// Both slices passed to fn are copies the callback may retain.
func (d *DB) Ascend(fn func(k, v []byte) error) error {
	it := d.db.NewIter(nil)
	defer it.Close()

	for it.First(); it.Valid(); it.Next() {
		k := append([]byte(nil), it.Key()...)
		v := append([]byte(nil), it.Value()...)
		if err := fn(k, v); err != nil {
			return err
		}
	}

	return it.Error()
}

// Close closes the underlying Pebble database.
func (d *DB) Close() error {
	return d.db.Close()
}
