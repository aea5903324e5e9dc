// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single source of truth for the guards shared by slicing and
//    paired operations (area corners, same-shape operands, nil arguments).
//  - Return plain sentinel errors (no wrapping) so call sites can wrap uniformly.
//
// All checks are pure, deterministic and allocate nothing.

package matrix

// validateArea checks the inclusive corners (r1,c1) and (r2,c2) of an area.
//
// Order:
//   - Stage 1: both corners must be in bounds (ErrOutOfRange).
//   - Stage 2: the bottom-right corner must not precede the top-left one (ErrBadShape).
//
// Returns the area height and width on success.
// Complexity: O(1).
func (m *Dense[T]) validateArea(r1, c1, r2, c2 int) (h, w int, err error) {
	if !m.InBounds(r1, c1) || !m.InBounds(r2, c2) {
		return 0, 0, ErrOutOfRange
	}
	if r2 < r1 || c2 < c1 {
		return 0, 0, ErrBadShape
	}

	return r2 - r1 + 1, c2 - c1 + 1, nil
}

// validatePaired checks the other operand of a paired elementwise operation.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(1).
func (m *Dense[T]) validatePaired(other *Dense[T]) error {
	if other == nil {
		return ErrNilMatrix
	}
	if !m.SameShape(other) {
		return ErrDimensionMismatch
	}

	return nil
}
