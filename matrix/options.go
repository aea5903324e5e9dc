// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for Builder.
// This file defines:
//   - BuilderOption / builderOptions (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherBuilderOptions helper (internal).
//
// Design goals:
//   - Deterministic behavior: no global state.
//   - No dead switches: each flag impacts behavior and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).
package matrix

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultStrictRows keeps the late-validation contract: row widths are
	// only checked by Build.
	DefaultStrictRows = false

	// DefaultRowCapacity is the initial capacity of the row buffer.
	DefaultRowCapacity = 0
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicRowCapacityInvalid = "matrix: WithRowCapacity: n must be >= 0"
)

// BuilderOption mutates builder options. Safe to apply repeatedly.
type BuilderOption func(*builderOptions)

// builderOptions stores the effective configuration after applying options.
type builderOptions struct {
	strictRows  bool // DefaultStrictRows
	rowCapacity int  // DefaultRowCapacity
}

// WithStrictRows makes Push compare every row width against the first row.
//
// Behavior highlights:
//   - The first mismatch is recorded as a sticky error: Err() reports it right
//     away, later pushes are ignored, and Build returns it.
//   - The error wraps ErrInvalidDataLen, the same sentinel late validation uses.
//
// Complexity:
//   - Time O(1), Space O(1).
func WithStrictRows() BuilderOption {
	return func(o *builderOptions) { o.strictRows = true }
}

// WithRowCapacity preallocates room for n rows.
// Panics when n < 0.
func WithRowCapacity(n int) BuilderOption {
	if n < 0 {
		panic(panicRowCapacityInvalid)
	}

	return func(o *builderOptions) { o.rowCapacity = n }
}

// gatherBuilderOptions resolves options over the documented defaults.
// Nil options are skipped.
func gatherBuilderOptions(opts ...BuilderOption) builderOptions {
	o := builderOptions{
		strictRows:  DefaultStrictRows,
		rowCapacity: DefaultRowCapacity,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
