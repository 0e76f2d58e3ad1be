// Package store holds the in-memory record stores backing the service layer.
// Each entity type gets its own store with its own lock; records are keyed by
// generated uuid and survive only as long as the process. The origin system is
// a prototype whose relational store was itself a stand-in, so durability
// across restarts is an explicit non-feature.
package store

import "errors"

var (
	// ErrNotFound is returned when a lookup key matches no record.
	ErrNotFound = errors.New("record not found")
	// ErrDuplicateUsername rejects signup with an already-taken username.
	ErrDuplicateUsername = errors.New("username already taken")
)
