// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the matrix
// package. Every fallible operation returns one of these (possibly wrapped with
// method context) and tests check them via errors.Is. No operation panics on
// user-triggered error conditions; panics are reserved for broken internal
// invariants and nonsensical option values.

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs. Public methods wrap these sentinels with their
// name and coordinates ("Dense.At(3,0): matrix: index out of range"); callers
// still match with errors.Is.
//
// ERROR PRIORITY (documented, enforced in tests):
// nil -> index -> corner order -> dimension/size mismatch.

var (
	// ErrOutOfRange indicates that a row or column index lies outside
	// [0,rows) x [0,cols). Public accessors MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrInvalidDataLen indicates that flattened data does not hold exactly rows*cols values.
	ErrInvalidDataLen = errors.New("matrix: data length does not match rows*cols")

	// ErrReshapeNotPossible is returned when a reshape would change the element count.
	ErrReshapeNotPossible = errors.New("matrix: reshape changes element count")

	// ErrReplacementMismatch is returned when a replacement block does not have
	// the exact shape of the target area.
	ErrReplacementMismatch = errors.New("matrix: replacement shape does not match area")

	// ErrDimensionMismatch indicates incompatible dimensions between the operands
	// of a paired elementwise operation.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrBadShape is returned for an area whose bottom-right corner lies above or
	// left of its top-left corner.
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrNilMatrix indicates that a nil matrix argument was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrBadRowDocument indicates that a YAML document is not a sequence of row sequences.
	ErrBadRowDocument = errors.New("matrix: row document must be a sequence of sequences")
)
