package dto

// LeaderboardEntry is one row of the ranking, ordered by points descending
// with ties broken by earlier registration.
type LeaderboardEntry struct {
	Rank     int    `json:"rank"`
	Username string `json:"username"`
	Points   int    `json:"points"`
}

type LeaderboardResponse struct {
	Items []LeaderboardEntry `json:"items"`
}
