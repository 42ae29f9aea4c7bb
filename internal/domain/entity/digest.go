package entity

import "time"

// QueueDigest is a snapshot of the review backlog and store sizes.
type QueueDigest struct {
	Unmoderated int64
	Moderated   int64
	Articles    int64
	Rejected    int64
	GeneratedAt time.Time
}

// Backlog is the number of submissions still waiting for a moderator or an analyst.
func (d QueueDigest) Backlog() int64 {
	return d.Unmoderated + d.Moderated
}
