package repository

import "errors"

// ErrNotFound indicates the plan ID has no stored plan (never stored, or
// evicted from the bounded store).
var ErrNotFound = errors.New("plan not found in store")
