// Package matrix provides Dense[T], a generic fixed-size two-dimensional grid.
//
// What & Why:
//
//	Dense[T] stores rows*cols values of any element type in one flat
//	row-major slice: the value at (row, col) lives at offset row*cols + col.
//	It is a building block for code that needs a rectangular grid (numeric
//	or not) without a linear-algebra stack, so there is no arithmetic here.
//
// Capability groups:
//
//   - Slicer      – Row, Col, Area, ReplaceArea.
//   - Transformer – Reshape, Transpose, FlipHorizontal, FlipVertical, rotations.
//   - Searcher    – HasFunc, CountFunc, IndicesFunc; Has, Count, IndicesOf for comparable T.
//   - Executor    – Apply, ApplyWith, RefApply, RefApplyWith.
//
// Each group is its own interface so a consumer can depend on just what it
// needs; Matrix[T] is the union and *Dense[T] implements it.
//
// Construction:
//
//	NewDense fills every cell with a value, NewDenseFrom adopts a flattened
//	slice, and Builder assembles a matrix row by row (also from YAML).
//
// Errors:
//
//	Every failure is one of the sentinels in errors.go; match them with
//	errors.Is. Nothing in this package panics on misuse or logs.
//
// Concurrency:
//
//	Dense[T] does no locking. Concurrent readers are fine; any writer needs
//	exclusive access, which the caller provides.
package matrix
