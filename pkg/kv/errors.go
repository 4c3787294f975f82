package kv

import "errors"

// ErrNotFound is returned when a key or case is absent from the store.
var ErrNotFound = errors.New("not found")
