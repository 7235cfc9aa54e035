package graph

import "errors"

// Sentinel errors for graph operations.
// These errors can be used with errors.Is() for error checking.
var (
	// ErrEntityNotFound indicates that the requested entity ID does not
	// exist in the store.
	ErrEntityNotFound = errors.New("entity not found")

	// ErrDuplicateEntity indicates that an entity with the same ID was
	// already added during graph construction.
	ErrDuplicateEntity = errors.New("duplicate entity id")

	// ErrInvalidRelation indicates a relation name outside the fixed
	// vocabulary was passed to the Builder.
	ErrInvalidRelation = errors.New("invalid relation")
)
