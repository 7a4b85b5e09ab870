// Package repository holds the error kinds shared by all entity
// repositories so handlers can map store outcomes onto HTTP statuses
// without depending on driver error types.
package repository

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrNotFound signals that no record matched the given identifier.
var ErrNotFound = errors.New("record not found")

// ErrVersionConflict signals that an update carried an expected version
// that no longer matches the stored record.
var ErrVersionConflict = errors.New("record version conflict")

// ValidationError reports field-level validation failures detected at
// the store boundary (missing required fields, enum violations).
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	names := make([]string, 0, len(e.Fields))
	for f := range e.Fields {
		names = append(names, f)
	}
	sort.Strings(names)
	return fmt.Sprintf("validation failed: %s", strings.Join(names, ", "))
}

// Messages returns the per-field messages in field-name order.
func (e *ValidationError) Messages() []string {
	names := make([]string, 0, len(e.Fields))
	for f := range e.Fields {
		names = append(names, f)
	}
	sort.Strings(names)
	msgs := make([]string, 0, len(names))
	for _, f := range names {
		msgs = append(msgs, e.Fields[f])
	}
	return msgs
}

// AsValidation unwraps err into a ValidationError if it is one.
func AsValidation(err error) (*ValidationError, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}
