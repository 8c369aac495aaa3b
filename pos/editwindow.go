package pos

import (
	"regexp"
	"strings"
	"time"
)

// EditWindow is how long after creation an open order may still be edited.
const EditWindow = 12 * time.Hour

// CanEdit reports whether a persisted order may be reopened for mutation:
// it must not be closed and must be younger than the edit window.
func CanEdit(closed bool, createdAt time.Time, now time.Time) bool {
	if closed {
		return false
	}
	return now.Sub(createdAt) <= EditWindow
}

var tzSuffix = regexp.MustCompile(`(?i)(z|[+-]\d{2}:?\d{2})$`)

// ParseDBTimestamp parses a timestamp string coming back from the store.
// Values carrying timezone information are parsed as-is; naive values are
// treated as UTC so the edit window is not skewed by the server's zone.
func ParseDBTimestamp(s string) (time.Time, error) {
	s = strings.Replace(strings.TrimSpace(s), " ", "T", 1)
	if !tzSuffix.MatchString(s) {
		s += "Z"
	}
	return time.Parse(time.RFC3339, s)
}
