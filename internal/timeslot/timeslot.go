// Package timeslot provides the wall-clock time representation used by
// session scheduling. Times arrive as zero-padded 24-hour "HH:MM" strings
// and are converted to minutes since midnight before any comparison, so
// ordering never depends on string formatting.
package timeslot

import (
	"fmt"
	"net/http"

	"github.com/banquetdesk/banquet-backend/internal/pkg/apperror"
)

var ErrInvalidTime = apperror.New(http.StatusBadRequest, "time must be in 24-hour HH:MM format")

// Minute is a wall-clock time expressed as minutes since midnight.
type Minute int

// Parse converts a zero-padded 24-hour "HH:MM" string to a Minute.
// Seconds, 12-hour clock and out-of-range values are rejected.
func Parse(s string) (Minute, error) {
	if len(s) != 5 || s[2] != ':' {
		return 0, ErrInvalidTime
	}
	for _, i := range [4]int{0, 1, 3, 4} {
		if s[i] < '0' || s[i] > '9' {
			return 0, ErrInvalidTime
		}
	}

	h := int(s[0]-'0')*10 + int(s[1]-'0')
	m := int(s[3]-'0')*10 + int(s[4]-'0')
	if h > 23 || m > 59 {
		return 0, ErrInvalidTime
	}

	return Minute(h*60 + m), nil
}

// String formats the minute back to zero-padded "HH:MM".
func (m Minute) String() string {
	return fmt.Sprintf("%02d:%02d", int(m)/60, int(m)%60)
}

// Overlap reports whether the ranges [aStart, aEnd) and [bStart, bEnd)
// intersect. Touching ranges (aEnd == bStart) do not overlap.
func Overlap(aStart, aEnd, bStart, bEnd Minute) bool {
	return aStart < bEnd && bStart < aEnd
}
