package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestWeekBucket(t *testing.T) {
	tests := []struct {
		name string
		at   time.Time
		want string
	}{
		{
			name: "first day of year starting on Monday",
			at:   time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC),
			want: "2024-01",
		},
		{
			name: "first day of year starting on Sunday",
			at:   time.Date(2023, time.January, 1, 0, 0, 0, 0, time.UTC),
			want: "2023-01",
		},
		{
			name: "mid-year",
			at:   time.Date(2023, time.June, 15, 12, 0, 0, 0, time.UTC),
			want: "2023-24",
		},
		{
			name: "leap year spring",
			at:   time.Date(2024, time.March, 10, 18, 0, 0, 0, time.UTC),
			want: "2024-11",
		},
		{
			name: "last hours of a leap year",
			at:   time.Date(2024, time.December, 31, 23, 0, 0, 0, time.UTC),
			want: "2024-53",
		},
		{
			name: "last day of year starting on Saturday",
			at:   time.Date(2022, time.December, 31, 0, 0, 0, 0, time.UTC),
			want: "2022-53",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.want, WeekBucket(test.at))
		})
	}
}

func TestWeekBucketNeverCrossesYears(t *testing.T) {
	dec := WeekBucket(time.Date(2025, time.December, 31, 23, 59, 0, 0, time.UTC))
	jan := WeekBucket(time.Date(2026, time.January, 1, 0, 1, 0, 0, time.UTC))

	assert.NotEqual(t, dec, jan)
	assert.Equal(t, "2026-01", jan)
}

func TestUsageKey(t *testing.T) {
	owner := "user-1"

	assert.Equal(t, "2024-01", usageKey("2024-01", nil))
	assert.Equal(t, "2024-01-user-1", usageKey("2024-01", &owner))
}
