package domain

import "time"

// Completion records that a user finished a challenge at a given time.
// At most one exists per (UserID, ChallengeID) pair; rows are never
// updated or deleted.
type Completion struct {
	ID          int64
	UserID      int64
	ChallengeID int64
	CompletedAt time.Time
}
