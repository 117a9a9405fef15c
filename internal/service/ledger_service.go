package service

import (
	"context"
	"errors"

	"challengeboard/internal/cache"
	"challengeboard/internal/repo"
	"challengeboard/internal/utils"

	"github.com/jackc/pgx/v5"
	"github.com/sirupsen/logrus"
)

// CompletionResult is the outcome of a Complete call. AlreadyCompleted means
// the user had finished the challenge before and nothing changed.
type CompletionResult struct {
	AlreadyCompleted bool
	PointsAwarded    int
	TotalPoints      int
}

// LedgerService records challenge completions and awards points. It is the
// only writer of a user's point total: a completion row and its point award
// commit in the same transaction, so the total always equals the sum of
// point values of the user's distinct completed challenges.
type LedgerService struct {
	challenges  repo.ChallengeRepo
	completions repo.CompletionRepo
	users       repo.UserRepo
	cache       *cache.LeaderboardCache
}

// NewLedgerService creates a LedgerService. If c is nil, leaderboard cache
// invalidation is skipped.
func NewLedgerService(challenges repo.ChallengeRepo, completions repo.CompletionRepo, users repo.UserRepo, c *cache.LeaderboardCache) *LedgerService {
	return &LedgerService{challenges: challenges, completions: completions, users: users, cache: c}
}

// Complete awards the challenge's points to the user at most once, ever.
// A repeat call for the same pair is a no-op reported via AlreadyCompleted.
// Two concurrent calls for the same pair are serialized by the unique
// constraint on (user_id, challenge_id): the loser's insert fails with a
// unique violation and is reported as AlreadyCompleted, not as an error.
func (s *LedgerService) Complete(ctx context.Context, userID, challengeID int64) (CompletionResult, error) {
	ch, err := s.challenges.GetByID(ctx, challengeID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return CompletionResult{}, ErrChallengeNotFound
		}
		return CompletionResult{}, err
	}

	done, err := s.completions.Exists(ctx, userID, challengeID)
	if err != nil {
		return CompletionResult{}, err
	}
	if done {
		return s.alreadyCompleted(ctx, userID)
	}

	_, total, err := s.completions.CreateAndAward(ctx, userID, challengeID, ch.Points)
	if err != nil {
		if utils.IsPGUniqueViolation(err) {
			// Lost the race against a concurrent duplicate; the other call
			// already awarded the points.
			return s.alreadyCompleted(ctx, userID)
		}
		return CompletionResult{}, err
	}

	if s.cache != nil {
		_ = s.cache.Invalidate(ctx)
	}
	logrus.WithFields(logrus.Fields{
		"user_id":      userID,
		"challenge_id": challengeID,
		"points":       ch.Points,
	}).Info("challenge completed")
	return CompletionResult{PointsAwarded: ch.Points, TotalPoints: total}, nil
}

func (s *LedgerService) alreadyCompleted(ctx context.Context, userID int64) (CompletionResult, error) {
	u, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return CompletionResult{}, err
	}
	return CompletionResult{AlreadyCompleted: true, TotalPoints: u.Points}, nil
}
