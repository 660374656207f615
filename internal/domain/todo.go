package domain

import "time"

// Field length limits enforced before any write reaches the store.
const (
	TitleMaxLen       = 100
	DescriptionMaxLen = 500
)

// Todo is the sole persisted entity: a short text task.
// ID is assigned by the store on insert and never reused.
// CreatedAt is set once at creation; UpdatedAt is refreshed on every update
// and never precedes CreatedAt.
type Todo struct {
	ID          int64
	Title       string
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// epochMillisThreshold separates epoch seconds from epoch milliseconds.
// Values below it are read as seconds. Ambiguous for seconds past year 2286;
// kept as-is for compatibility with existing database files.
const epochMillisThreshold = 10_000_000_000

// TimeFromEpoch converts a stored numeric timestamp to local time.
// The on-device schema historically wrote epoch seconds while some rows
// carry milliseconds, so the unit is inferred from magnitude.
func TimeFromEpoch(v int64) time.Time {
	if v < epochMillisThreshold {
		return time.Unix(v, 0)
	}
	return time.UnixMilli(v)
}
