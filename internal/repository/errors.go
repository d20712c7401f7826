package repository

import "errors"

// ErrNotFound indicates a missing user or slot.
var ErrNotFound = errors.New("not found")

// ErrEmailTaken indicates a registration attempt with an email that already
// has an account.
var ErrEmailTaken = errors.New("email already registered")
