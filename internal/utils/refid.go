package utils

import (
	"fmt"
	"math/rand"
	"regexp"
	"time"
)

// Reference ID formats (external contract, must stay bit-exact):
//   Standard:   WCR-<4-digit-year>-<4-digit-number 1000..9999>
//   Internship: WCR-INT-<4-digit-year>-<4-digit-number 1000..9999>

var refIDPattern = regexp.MustCompile(`^WCR-(INT-)?\d{4}-\d{4}$`)

// GenerateReferenceID produces a new human-readable application handle.
// Suffixes are random, not sequential, so callers must retry on a
// primary-key conflict.
func GenerateReferenceID(internship bool, now time.Time) string {
	suffix := 1000 + rand.Intn(9000)
	if internship {
		return fmt.Sprintf("WCR-INT-%d-%d", now.Year(), suffix)
	}
	return fmt.Sprintf("WCR-%d-%d", now.Year(), suffix)
}

// ValidReferenceID reports whether id matches either documented format.
func ValidReferenceID(id string) bool {
	return refIDPattern.MatchString(id)
}

// CalendarDate formats a time the way applied/lastUpdated dates are
// stored and displayed.
func CalendarDate(t time.Time) string {
	return t.Format("1/2/2006")
}
