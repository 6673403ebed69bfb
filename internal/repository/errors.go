package repository

import "errors"

// ErrNotFound is returned when a requested record does not exist in the backing store.
var ErrNotFound = errors.New("not found")
