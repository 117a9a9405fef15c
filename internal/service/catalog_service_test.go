package service_test

import (
	"context"
	"testing"

	dom "challengeboard/internal/domain"
	"challengeboard/internal/repo/mocks"
	"challengeboard/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCatalogService_EnsureSeeded_EmptyCatalog(t *testing.T) {
	challenges := new(mocks.ChallengeRepo)
	svc := service.NewCatalogService(challenges)
	ctx := context.Background()

	challenges.On("Count", ctx).Return(int64(0), nil).Once()
	challenges.On("CreateBatch", ctx, mock.MatchedBy(func(list []dom.Challenge) bool {
		if len(list) == 0 {
			return false
		}
		for _, c := range list {
			if c.Points <= 0 || c.Title == "" {
				return false
			}
		}
		return true
	})).Return(nil).Once()

	require.NoError(t, svc.EnsureSeeded(ctx))
	challenges.AssertExpectations(t)
}

func TestCatalogService_EnsureSeeded_AlreadySeeded(t *testing.T) {
	challenges := new(mocks.ChallengeRepo)
	svc := service.NewCatalogService(challenges)
	ctx := context.Background()

	challenges.On("Count", ctx).Return(int64(4), nil).Once()

	require.NoError(t, svc.EnsureSeeded(ctx))
	challenges.AssertNotCalled(t, "CreateBatch", mock.Anything, mock.Anything)
	challenges.AssertExpectations(t)
}

func TestCatalogService_EnsureSeeded_SequentialCallsSeedOnce(t *testing.T) {
	challenges := new(mocks.ChallengeRepo)
	svc := service.NewCatalogService(challenges)
	ctx := context.Background()

	challenges.On("Count", ctx).Return(int64(0), nil).Once()
	challenges.On("CreateBatch", ctx, mock.AnythingOfType("[]domain.Challenge")).
		Return(nil).Once()
	// After the first seed the count is non-zero.
	challenges.On("Count", ctx).Return(int64(4), nil).Once()

	require.NoError(t, svc.EnsureSeeded(ctx))
	require.NoError(t, svc.EnsureSeeded(ctx))
	challenges.AssertNumberOfCalls(t, "CreateBatch", 1)
	challenges.AssertExpectations(t)
}

func TestCatalogService_GetByID_NotFound(t *testing.T) {
	store := newLedgerStore()
	svc := service.NewCatalogService(store)
	ctx := context.Background()

	_, err := svc.GetByID(ctx, 42)
	assert.ErrorIs(t, err, service.ErrChallengeNotFound)
}

func TestCatalogService_ListAll(t *testing.T) {
	challenges := new(mocks.ChallengeRepo)
	svc := service.NewCatalogService(challenges)
	ctx := context.Background()

	ordered := []dom.Challenge{
		{ID: 4, Title: "Good deed", Points: 30},
		{ID: 2, Title: "Walk 5,000 steps", Points: 25},
		{ID: 3, Title: "Study sprint", Points: 20},
		{ID: 1, Title: "Morning warm-up", Points: 15},
	}
	challenges.On("List", ctx).Return(ordered, nil).Once()

	list, err := svc.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, list, 4)
	for i := 1; i < len(list); i++ {
		assert.GreaterOrEqual(t, list[i-1].Points, list[i].Points, "catalog is ordered by points descending")
	}
	challenges.AssertExpectations(t)
}
