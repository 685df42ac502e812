package store

import (
	"fmt"
	"math"
	"time"
)

// WeekBucket returns the usage bucket key for the given instant, in the form
// "YYYY-WW". Week numbering counts Sunday-started weeks from January 1 of the
// instant's year, so the first partial week is week 01 and a year can reach
// week 53 or 54. Buckets never cross a year boundary.
func WeekBucket(t time.Time) string {
	year := t.Year()
	firstDay := time.Date(year, time.January, 1, 0, 0, 0, 0, t.Location())
	pastDays := t.Sub(firstDay).Hours() / 24
	week := int(math.Ceil((pastDays + float64(firstDay.Weekday()) + 1) / 7))
	return fmt.Sprintf("%d-%02d", year, week)
}

// usageKey addresses a usage bucket within a week: owned buckets are keyed
// per user, the anonymous bucket is keyed by the week alone.
func usageKey(week string, owner *string) string {
	if owner != nil {
		return week + "-" + *owner
	}
	return week
}
