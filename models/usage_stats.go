package models

import "time"

// UsageStats is a per-(owner, week) generation counter. At most one record
// exists for each owner and week bucket; it is created lazily on the first
// increment of a new week and its count never decreases.
type UsageStats struct {
	ID int64 `json:"id"`

	// UserID references the owning user; nil buckets anonymous usage.
	UserID *string `json:"userId"`

	// Week is the bucket key in "YYYY-WW" form.
	Week string `json:"week"`

	Count    int       `json:"count"`
	LastUsed time.Time `json:"lastUsed"`
}

// TableName returns the name of the database table
// associated with the UsageStats model.
func (s UsageStats) TableName() string {
	return "usage_stats"
}

// UsageSummary is the current-week view returned to API callers. LastUsed is
// nil when the owner has not generated anything this week.
type UsageSummary struct {
	Count    int        `json:"count"`
	LastUsed *time.Time `json:"lastUsed"`
	Warning  bool       `json:"warning"`
}
