// SPDX-License-Identifier: MIT

// Package matrix - YAML row ingestion for Builder.
//
// Accepted document: a sequence of row sequences, each row decoded into []T
// by yaml.v3, e.g.
//
//	- [1, 2, 3]
//	- [4, 5, 6]
//
// Rows go through Push, so the builder's width policy (late or strict) applies.

package matrix

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// Compile-time assertion: *Builder can be a yaml.Unmarshal target.
var _ yaml.Unmarshaler = (*Builder[int])(nil)

// UnmarshalYAML pushes every row of a sequence-of-sequences node.
//
// Errors:
//   - ErrBadRowDocument when the node or one of its items is not a sequence.
//   - yaml decode errors for cells that do not fit T.
//
// Complexity:
//   - Time O(r*c).
func (b *Builder[T]) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.SequenceNode {
		return fmt.Errorf("Builder.UnmarshalYAML: line %d: %w", value.Line, ErrBadRowDocument)
	}
	for i, item := range value.Content {
		if item.Kind != yaml.SequenceNode {
			return fmt.Errorf("Builder.UnmarshalYAML: row %d (line %d): %w", i, item.Line, ErrBadRowDocument)
		}
		row := make([]T, 0, len(item.Content))
		if err := item.Decode(&row); err != nil {
			return fmt.Errorf("Builder.UnmarshalYAML: row %d: %w", i, err)
		}
		b.Push(row)
	}

	return nil
}

// DecodeYAML reads one YAML row document from r and builds a Dense from it.
//
// Errors:
//   - ErrBadRowDocument for an empty stream or a non-sequence document.
//   - Any Build error (ErrInvalidDimensions, ErrInvalidDataLen).
func DecodeYAML[T any](r io.Reader, opts ...BuilderOption) (*Dense[T], error) {
	b := NewBuilder[T](opts...)
	if err := yaml.NewDecoder(r).Decode(b); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("DecodeYAML: empty input: %w", ErrBadRowDocument)
		}
		return nil, fmt.Errorf("DecodeYAML: %w", err)
	}

	return b.Build()
}
