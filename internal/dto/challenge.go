package dto

// ChallengeResponse is a catalog entry. Completed marks whether the
// requesting user has already finished it.
type ChallengeResponse struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Points      int    `json:"points"`
	Completed   bool   `json:"completed"`
}

type ListChallengesResponse struct {
	Items []ChallengeResponse `json:"items"`
}

// CompleteResponse is the outcome of POST /challenges/{id}/complete.
// AlreadyCompleted=true means the call was a no-op: no points were awarded
// because the user had finished this challenge before.
type CompleteResponse struct {
	ChallengeID      int64 `json:"challenge_id"`
	AlreadyCompleted bool  `json:"already_completed"`
	PointsAwarded    int   `json:"points_awarded"`
	TotalPoints      int   `json:"total_points"`
}
