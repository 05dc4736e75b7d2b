package cache

import (
	"time"
)

// TimeUntilNextMidnightUTC returns the duration until the next UTC
// midnight. Snapshot freshness is keyed to the UTC calendar date, so
// cache entries created during a day expire exactly when that day ends.
func TimeUntilNextMidnightUTC() time.Duration {
	now := time.Now().UTC()
	next := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC).Add(24 * time.Hour)
	return next.Sub(now)
}
