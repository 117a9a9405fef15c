package service

import (
	"context"
	"strconv"

	"challengeboard/internal/cache"
	dom "challengeboard/internal/domain"
	"challengeboard/internal/repo"

	"golang.org/x/sync/singleflight"
)

// defaultTopLimit matches the top-N block on the landing page.
const defaultTopLimit = 5

// LeaderboardService derives ranked views from the users table. Ordering is
// points descending, earlier registration first on ties; it is recomputed
// per request and optionally cached with a short TTL.
type LeaderboardService struct {
	users       repo.UserRepo
	completions repo.CompletionRepo
	cache       *cache.LeaderboardCache
	sf          singleflight.Group
}

// NewLeaderboardService creates a LeaderboardService. If c is nil, caching
// is disabled.
func NewLeaderboardService(users repo.UserRepo, completions repo.CompletionRepo, c *cache.LeaderboardCache) *LeaderboardService {
	return &LeaderboardService{users: users, completions: completions, cache: c}
}

// TopScorers returns the highest-ranked users, at most limit of them.
// Non-positive limits fall back to the default.
func (s *LeaderboardService) TopScorers(ctx context.Context, limit int) ([]dom.User, error) {
	if limit <= 0 {
		limit = defaultTopLimit
	}
	if s.cache != nil {
		key := "top:" + strconv.Itoa(limit)
		v, err, _ := s.sf.Do(key, func() (interface{}, error) {
			if list, err := s.cache.GetTop(ctx, limit); err == nil && list != nil {
				return list, nil
			}
			list, err := s.users.TopScorers(ctx, limit)
			if err != nil {
				return nil, err
			}
			_ = s.cache.SetTop(ctx, limit, list)
			return list, nil
		})
		if err != nil {
			return nil, err
		}
		return v.([]dom.User), nil
	}
	return s.users.TopScorers(ctx, limit)
}

// FullRanking returns every user in leaderboard order.
func (s *LeaderboardService) FullRanking(ctx context.Context) ([]dom.User, error) {
	if s.cache != nil {
		v, err, _ := s.sf.Do("full", func() (interface{}, error) {
			if list, err := s.cache.GetFull(ctx); err == nil && list != nil {
				return list, nil
			}
			list, err := s.users.FullRanking(ctx)
			if err != nil {
				return nil, err
			}
			_ = s.cache.SetFull(ctx, list)
			return list, nil
		})
		if err != nil {
			return nil, err
		}
		return v.([]dom.User), nil
	}
	return s.users.FullRanking(ctx)
}

// CompletedChallengeIDs returns the set of challenge IDs the user has
// finished, for marking catalog views. Always read fresh.
func (s *LeaderboardService) CompletedChallengeIDs(ctx context.Context, userID int64) (map[int64]bool, error) {
	ids, err := s.completions.ChallengeIDs(ctx, userID)
	if err != nil {
		return nil, err
	}
	set := make(map[int64]bool, len(ids))
	for _, id := range ids {
		set[id] = true
	}
	return set, nil
}
