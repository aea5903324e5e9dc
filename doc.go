// Package genmatrix is a small home for a generic, dense two-dimensional grid.
//
// 🚀 What is genmatrix/matrix?
//
//	A dependency-light grid container that brings together:
//		• Dense[T]: fixed-size, row-major storage for any element type
//		• Bounds-checked access: At, Set, Ptr, Swap (errors, never panics)
//		• Slicing: rows, columns, inclusive rectangular areas in and out
//		• Transforms: reshape, transpose, flips, quarter-turn rotations
//		• Search & apply: predicate or equality scans, elementwise callbacks
//		• Builder: row-by-row construction, also from YAML documents
//
// ✨ Why a separate grid type?
//
//   - No arithmetic baggage – elements only need to be copyable
//   - Capability interfaces – depend on Slicer or Searcher, not the whole type
//   - Deterministic – every traversal is row-major
//
// Layout:
//
//	matrix/   — Dense[T], Builder[T], capability interfaces, sentinel errors
//	examples/ — a runnable walkthrough
//
// Quick ASCII example of the row-major contract:
//
//	[[a, b, c]      data = [a b c d e f]
//	 [d, e, f]]     (1,2) → 1*3 + 2 = 5 → f
//
//	go get github.com/katalvlaran/genmatrix/matrix
package genmatrix
