// Package time contains time related helpers
package time

import "time"

// UTCPtr returns t in UTC, or nil for the zero time so it serializes as null
func UTCPtr(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	u := t.UTC()
	return &u
}
