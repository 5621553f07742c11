package service

import "errors"

// ErrNotFound is wrapped by every entity-specific not-found error in this package.
var ErrNotFound = errors.New("not found")
