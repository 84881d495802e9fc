// Package search: sentinel errors for traversal construction.
package search

import "errors"

var (
	// ErrNilHypergraph is returned if a nil hypergraph pointer is passed.
	ErrNilHypergraph = errors.New("search: hypergraph is nil")

	// ErrStartNotFound is returned when the start vertex is absent.
	ErrStartNotFound = errors.New("search: start vertex not found")
)
