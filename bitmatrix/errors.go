package bitmatrix

import "errors"

// Sentinel errors for bitmatrix construction and indexing.
var (
	// ErrInvalidSize indicates a negative vertex count was requested.
	ErrInvalidSize = errors.New("bitmatrix: size must be >= 0")

	// ErrOutOfRange indicates a vertex index outside [0, n).
	ErrOutOfRange = errors.New("bitmatrix: vertex index out of range")

	// ErrLoopNotAllowed indicates an attempt to set/clear/toggle the
	// self-pair (u,u); the matrix's diagonal is always zero.
	ErrLoopNotAllowed = errors.New("bitmatrix: self-loops not representable")

	// ErrAlreadyMarked indicates an attempt to edit a pair the search
	// driver has already marked fixed in the edit-mask protocol.
	ErrAlreadyMarked = errors.New("bitmatrix: pair already marked in edit mask")
)
