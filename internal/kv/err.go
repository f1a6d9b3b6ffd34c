package kv

import "github.com/cockroachdb/errors"

// ErrKeyNotFound is returned when the targeted key doesn't exist.
var ErrKeyNotFound = errors.New("key not found")
