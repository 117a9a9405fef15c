package service

import (
	"context"
	"errors"

	dom "challengeboard/internal/domain"
	"challengeboard/internal/repo"

	"github.com/jackc/pgx/v5"
	"github.com/sirupsen/logrus"
)

var ErrChallengeNotFound = errors.New("challenge not found")

// starterChallenges is the fixed set inserted on first startup.
var starterChallenges = []dom.Challenge{
	{Title: "Morning warm-up", Description: "Do a 10-minute warm-up and write down the result.", Points: 15},
	{Title: "Walk 5,000 steps", Description: "Walk at least 5,000 steps today.", Points: 25},
	{Title: "Study sprint", Description: "Spend 30 minutes learning a new topic.", Points: 20},
	{Title: "Good deed", Description: "Do a small good deed and tell a friend about it.", Points: 30},
}

// CatalogService serves the immutable challenge catalog.
type CatalogService struct {
	repo repo.ChallengeRepo
}

// NewCatalogService returns a new CatalogService.
func NewCatalogService(repo repo.ChallengeRepo) *CatalogService {
	return &CatalogService{repo: repo}
}

// EnsureSeeded inserts the starter challenges if the catalog is empty and
// does nothing otherwise. Count-then-insert is not transactional across
// concurrent first startups; at worst a few duplicate seed sets appear under
// that race, which is accepted. Called once at startup, not per request.
func (s *CatalogService) EnsureSeeded(ctx context.Context) error {
	n, err := s.repo.Count(ctx)
	if err != nil {
		return err
	}
	if n > 0 {
		return nil
	}
	if err := s.repo.CreateBatch(ctx, starterChallenges); err != nil {
		return err
	}
	logrus.WithField("count", len(starterChallenges)).Info("challenge catalog seeded")
	return nil
}

// ListAll returns the catalog ordered by point value descending.
func (s *CatalogService) ListAll(ctx context.Context) ([]dom.Challenge, error) {
	return s.repo.List(ctx)
}

// GetByID resolves a challenge by ID.
func (s *CatalogService) GetByID(ctx context.Context, id int64) (dom.Challenge, error) {
	c, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return dom.Challenge{}, ErrChallengeNotFound
		}
		return dom.Challenge{}, err
	}
	return c, nil
}
