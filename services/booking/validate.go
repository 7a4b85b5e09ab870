package booking

import (
	"time"
)

// dateLayouts are the accepted wire formats for booking dates. The
// frontend date picker submits plain dates; API clients may send full
// RFC 3339 timestamps.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02",
}

// parseDate coerces a wire date string into a store date value.
func parseDate(value string) (time.Time, error) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, &InvalidDateError{Value: value}
}

// checkRequired runs the declarative shape check shared by all booking
// writes: every named field must be non-empty. It returns nil when the
// shape is satisfied.
func checkRequired(fields map[string]string) error {
	missing := map[string]bool{}
	for name, value := range fields {
		if value == "" {
			missing[name] = true
		}
	}
	if len(missing) > 0 {
		return &MissingFieldsError{Fields: missing}
	}
	return nil
}
