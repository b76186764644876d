package report

import (
	"fmt"
	"time"
)

const dateLayout = "January 02"

// Filename derives the output PDF name from the configured identity and the
// date range the report covers. A single-date run drops the range.
func Filename(identity string, minDate, maxDate time.Time) string {
	if sameDate(minDate, maxDate) {
		return fmt.Sprintf("%s - %s.pdf", identity, minDate.Format(dateLayout))
	}
	return fmt.Sprintf("%s - %s - %s.pdf", identity, minDate.Format(dateLayout), maxDate.Format(dateLayout))
}

func sameDate(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
