package domain

import "time"

// User is the domain entity for a user account.
// Points is written only by the completion award; it always equals the sum
// of point values of the user's distinct completed challenges.
type User struct {
	ID           int64
	Username     string
	PasswordHash string
	Points       int
	CreatedAt    time.Time
}
