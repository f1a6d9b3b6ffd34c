package chip

import (
	"github.com/chaisql/chip/internal/kv"
	"github.com/cockroachdb/errors"
)

// ErrKeyNotFound is returned by Get and Delete when the key doesn't
// exist.
var ErrKeyNotFound = kv.ErrKeyNotFound

// Store is a persistent map of string keys to values. Values are kept
// in their binary encoding and decoded on the way out.
type Store struct {
	db *kv.DB
}

// Open opens a store at path, creating it if necessary. The path
// ":memory:" opens a volatile in-memory store.
func Open(path string) (*Store, error) {
	db, err := kv.Open(path)
	if err != nil {
		return nil, err
	}
	return &Store{db: db}, nil
}

// Put encodes v and stores it under key, overriding any previous
// value.
func (s *Store) Put(key string, v Value) error {
	if key == "" {
		return errors.New("cannot store empty key")
	}
	enc, err := Encode(v)
	if err != nil {
		return err
	}
	return s.db.Put([]byte(key), enc)
}

// Get returns the value stored under key. The decoded value owns its
// memory.
func (s *Store) Get(key string) (Value, error) {
	enc, err := s.db.Get([]byte(key))
	if err != nil {
		return nil, err
	}
	return Decode(enc)
}

// Delete removes key. Missing keys are reported with ErrKeyNotFound.
func (s *Store) Delete(key string) error {
	return s.db.Delete([]byte(key))
}

// Walk calls fn for every entry in ascending key order. Decoded values
// own their memory; fn may retain them.
func (s *Store) Walk(fn func(key string, v Value) error) error {
	return s.db.Ascend(func(k, enc []byte) error {
		v, err := Decode(enc)
		if err != nil {
			return errors.Wrapf(err, "key %q", k)
		}
		return fn(string(k), v)
	})
}

// Close closes the store.
func (s *Store) Close() error {
	return s.db.Close()
}
