package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	dom "challengeboard/internal/domain"
	"challengeboard/internal/dto"
	"challengeboard/internal/handlers"
	"challengeboard/internal/repo/mocks"
	"challengeboard/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newLeaderboardRouter(users *mocks.UserRepo, completions *mocks.CompletionRepo) *gin.Engine {
	gin.SetMode(gin.TestMode)
	svc := service.NewLeaderboardService(users, completions, nil)
	h := handlers.NewLeaderboardHandler(svc)
	r := gin.New()
	r.GET("/api/v1/leaderboard", h.Full)
	r.GET("/api/v1/leaderboard/top", h.Top)
	return r
}

func TestLeaderboardHandler_Full_AssignsRanks(t *testing.T) {
	users := new(mocks.UserRepo)
	completions := new(mocks.CompletionRepo)
	r := newLeaderboardRouter(users, completions)

	users.On("FullRanking", mock.Anything).Return([]dom.User{
		{ID: 1, Username: "a", Points: 30},
		{ID: 2, Username: "b", Points: 30},
		{ID: 3, Username: "c", Points: 10},
	}, nil).Once()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/leaderboard", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var resp dto.LeaderboardResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Items, 3)
	assert.Equal(t, []dto.LeaderboardEntry{
		{Rank: 1, Username: "a", Points: 30},
		{Rank: 2, Username: "b", Points: 30},
		{Rank: 3, Username: "c", Points: 10},
	}, resp.Items)
	users.AssertExpectations(t)
}

func TestLeaderboardHandler_Top_LimitQuery(t *testing.T) {
	users := new(mocks.UserRepo)
	completions := new(mocks.CompletionRepo)
	r := newLeaderboardRouter(users, completions)

	users.On("TopScorers", mock.Anything, 2).Return([]dom.User{
		{ID: 1, Username: "a", Points: 30},
		{ID: 2, Username: "b", Points: 30},
	}, nil).Once()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/leaderboard/top?limit=2", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var resp dto.LeaderboardResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Items, 2)
	assert.Equal(t, 1, resp.Items[0].Rank)
	users.AssertExpectations(t)
}

func TestLeaderboardHandler_Top_DefaultLimit(t *testing.T) {
	users := new(mocks.UserRepo)
	completions := new(mocks.CompletionRepo)
	r := newLeaderboardRouter(users, completions)

	users.On("TopScorers", mock.Anything, 5).Return([]dom.User{}, nil).Once()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/leaderboard/top", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	users.AssertExpectations(t)
}
