package repository

import "time"

// timeToEpoch converts a time.Time to the epoch-seconds representation used
// by the todos table.
func timeToEpoch(t time.Time) int64 {
	return t.Unix()
}
