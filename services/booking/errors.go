package booking

import (
	"fmt"
	"sort"
	"strings"

	"playzone/models"
)

// MissingFieldsError reports which required fields were absent from a
// request, keyed by field name.
type MissingFieldsError struct {
	Fields map[string]bool
}

func (e *MissingFieldsError) Error() string {
	names := make([]string, 0, len(e.Fields))
	for f := range e.Fields {
		names = append(names, f)
	}
	sort.Strings(names)
	return "missing required fields: " + strings.Join(names, ", ")
}

// InvalidTransitionError reports a status write the transition table
// does not allow for the acting party.
type InvalidTransitionError struct {
	From  models.BookingStatus
	To    models.BookingStatus
	Actor models.Actor
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("%s may not move a booking from %s to %s", e.Actor, e.From, e.To)
}

// InvalidDateError reports a date string that could not be coerced.
type InvalidDateError struct {
	Value string
}

func (e *InvalidDateError) Error() string {
	return fmt.Sprintf("invalid date value %q", e.Value)
}
