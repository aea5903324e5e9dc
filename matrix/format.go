// SPDX-License-Identifier: MIT

// Package matrix - textual rendering.
//
// Display form (String, %v, %s):
//
//	[[v00, v01]
//	[v10, v11]]
//
// Debug form (GoString, %#v) prefixes "{rows} x {cols}\n" and renders every
// element with %#v instead of %v. Neither form ends with a newline.

package matrix

import (
	"fmt"
	"strings"
)

// ---------- Formatting literals ----------
const (
	_fmtOpen     = "["
	_fmtClose    = "]"
	_fmtSep      = ", "
	_fmtRowBreak = "\n"
	_fmtDisplay  = "%v"
	_fmtDebug    = "%#v"
)

// render writes every row as "[a, b, ...]", rows joined by newlines, the
// whole block wrapped in one more pair of brackets.
// Complexity: O(r*c).
func (m *Dense[T]) render(b *strings.Builder, verb string) {
	var i, j, base int
	b.WriteString(_fmtOpen)
	for i = 0; i < m.r; i++ { // iterate rows deterministically
		b.WriteString(_fmtOpen) // open row
		base = i * m.c
		for j = 0; j < m.c; j++ {
			fmt.Fprintf(b, verb, m.data[base+j])
			if j+1 < m.c {
				b.WriteString(_fmtSep)
			}
		}
		b.WriteString(_fmtClose) // close row
		if i+1 < m.r {
			b.WriteString(_fmtRowBreak)
		}
	}
	b.WriteString(_fmtClose)
}

// String renders the display form, e.g. "[[1, 2]\n[3, 4]]".
func (m *Dense[T]) String() string {
	var b strings.Builder
	m.render(&b, _fmtDisplay)

	return b.String()
}

// GoString renders the debug form, e.g. "2 x 2\n[[1, 2]\n[3, 4]]".
// Strings come out quoted because elements use %#v.
func (m *Dense[T]) GoString() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%d x %d\n", m.r, m.c)
	m.render(&b, _fmtDebug)

	return b.String()
}
