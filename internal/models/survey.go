package models

import (
	"errors"
	"fmt"
)

// ErrColumnNotFound is returned when a field has no matching header.
var ErrColumnNotFound = errors.New("column not found")

// Column is the physical header a field resolved to.
type Column struct {
	Index  int
	Header string
}

// Resolution binds logical fields to physical columns. Fields absent from
// the map are unresolved.
type Resolution map[Field]Column

// Lookup returns the column for f.
func (r Resolution) Lookup(f Field) (Column, bool) {
	c, ok := r[f]
	return c, ok
}

// Owner returns the first field, in resolution order, bound to the same
// column as f. Only the owner's struct field is populated when two fields
// collide on one header.
func (r Resolution) Owner(f Field) Field {
	c, ok := r[f]
	if !ok {
		return f
	}
	for _, other := range Fields {
		if oc, ok := r[other]; ok && oc.Index == c.Index {
			return other
		}
	}
	return f
}

// Survey is a loaded form export.
type Survey struct {
	Source     string
	Headers    []string
	Resolution Resolution
	Responses  []Response
}

// Len is the number of submissions.
func (s *Survey) Len() int {
	return len(s.Responses)
}

// Values returns the answers to f, one per response, in row order.
func (s *Survey) Values(f Field) ([]*string, error) {
	if _, ok := s.Resolution.Lookup(f); !ok {
		return nil, fmt.Errorf("%s: %w", f, ErrColumnNotFound)
	}
	owner := s.Resolution.Owner(f)
	values := make([]*string, len(s.Responses))
	for i, r := range s.Responses {
		values[i] = r.Value(owner)
	}
	return values, nil
}

// Has reports whether f resolved to a column.
func (s *Survey) Has(f Field) bool {
	_, ok := s.Resolution.Lookup(f)
	return ok
}
