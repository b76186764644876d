package screenshot

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"
)

// ErrBadFilename reports a filename that does not carry the expected
// Screenshot_YYYY-MM-DD-HH-MM-SS-mmm timestamp. Callers skip such files
// and continue.
var ErrBadFilename = errors.New("filename does not match screenshot pattern")

var filenamePattern = regexp.MustCompile(
	`^Screenshot_(\d{4})-(\d{2})-(\d{2})-(\d{2})-(\d{2})-(\d{2})-\d+\.(?i:png|jpe?g)$`)

// File is one discovered screenshot, immutable once scanned.
type File struct {
	Path      string
	Name      string
	Timestamp time.Time
}

// ParseTimestamp extracts the capture time encoded in a screenshot filename.
// The trailing numeric suffix (milliseconds) participates only in filename
// tie-breaking, not in the timestamp itself.
func ParseTimestamp(name string) (time.Time, error) {
	m := filenamePattern.FindStringSubmatch(name)
	if m == nil {
		return time.Time{}, fmt.Errorf("%w: %s", ErrBadFilename, name)
	}

	ts, err := time.ParseInLocation("2006-01-02-15-04-05", strings.Join(m[1:7], "-"), time.Local)
	if err != nil {
		// Matched shape but impossible calendar values, e.g. month 13
		return time.Time{}, fmt.Errorf("%w: %s: %v", ErrBadFilename, name, err)
	}

	return ts, nil
}

// Date returns the capture timestamp truncated to its calendar date.
func (f File) Date() time.Time {
	y, m, d := f.Timestamp.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, f.Timestamp.Location())
}
