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

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/gin-gonic/gin"
)

const testUserID int64 = 7

func newChallengeRouter(challenges *mocks.ChallengeRepo, completions *mocks.CompletionRepo, users *mocks.UserRepo) *gin.Engine {
	gin.SetMode(gin.TestMode)
	catalog := service.NewCatalogService(challenges)
	ledger := service.NewLedgerService(challenges, completions, users, nil)
	board := service.NewLeaderboardService(users, completions, nil)
	h := handlers.NewChallengeHandler(catalog, ledger, board)

	r := gin.New()
	// Stands in for the session middleware.
	r.Use(func(c *gin.Context) { c.Set("user_id", testUserID) })
	r.GET("/api/v1/challenges", h.List)
	r.POST("/api/v1/challenges/:id/complete", h.Complete)
	return r
}

func TestChallengeHandler_Complete_Awards(t *testing.T) {
	challenges := new(mocks.ChallengeRepo)
	completions := new(mocks.CompletionRepo)
	users := new(mocks.UserRepo)
	r := newChallengeRouter(challenges, completions, users)

	ch := dom.Challenge{ID: 1, Title: "Morning warm-up", Points: 15}
	challenges.On("GetByID", mock.Anything, int64(1)).Return(ch, nil).Once()
	completions.On("Exists", mock.Anything, testUserID, int64(1)).Return(false, nil).Once()
	completions.On("CreateAndAward", mock.Anything, testUserID, int64(1), 15).
		Return(dom.Completion{ID: 1, UserID: testUserID, ChallengeID: 1}, 15, nil).Once()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/challenges/1/complete", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var resp dto.CompleteResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.AlreadyCompleted)
	assert.Equal(t, 15, resp.PointsAwarded)
	assert.Equal(t, 15, resp.TotalPoints)
}

func TestChallengeHandler_Complete_Repeat(t *testing.T) {
	challenges := new(mocks.ChallengeRepo)
	completions := new(mocks.CompletionRepo)
	users := new(mocks.UserRepo)
	r := newChallengeRouter(challenges, completions, users)

	ch := dom.Challenge{ID: 1, Title: "Morning warm-up", Points: 15}
	challenges.On("GetByID", mock.Anything, int64(1)).Return(ch, nil).Once()
	completions.On("Exists", mock.Anything, testUserID, int64(1)).Return(true, nil).Once()
	users.On("GetByID", mock.Anything, testUserID).Return(dom.User{ID: testUserID, Points: 15}, nil).Once()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/challenges/1/complete", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code, "a repeat completion is an outcome, not an error")
	var resp dto.CompleteResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.AlreadyCompleted)
	assert.Zero(t, resp.PointsAwarded)
	assert.Equal(t, 15, resp.TotalPoints)
}

func TestChallengeHandler_Complete_NotFound(t *testing.T) {
	challenges := new(mocks.ChallengeRepo)
	completions := new(mocks.CompletionRepo)
	users := new(mocks.UserRepo)
	r := newChallengeRouter(challenges, completions, users)

	challenges.On("GetByID", mock.Anything, int64(99)).Return(dom.Challenge{}, pgx.ErrNoRows).Once()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/challenges/99/complete", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestChallengeHandler_Complete_InvalidID(t *testing.T) {
	challenges := new(mocks.ChallengeRepo)
	completions := new(mocks.CompletionRepo)
	users := new(mocks.UserRepo)
	r := newChallengeRouter(challenges, completions, users)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/challenges/abc/complete", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	challenges.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
}

func TestChallengeHandler_List_MarksCompleted(t *testing.T) {
	challenges := new(mocks.ChallengeRepo)
	completions := new(mocks.CompletionRepo)
	users := new(mocks.UserRepo)
	r := newChallengeRouter(challenges, completions, users)

	challenges.On("List", mock.Anything).Return([]dom.Challenge{
		{ID: 4, Title: "Good deed", Points: 30},
		{ID: 1, Title: "Morning warm-up", Points: 15},
	}, nil).Once()
	completions.On("ChallengeIDs", mock.Anything, testUserID).Return([]int64{1}, nil).Once()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/challenges", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var resp dto.ListChallengesResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Items, 2)
	assert.False(t, resp.Items[0].Completed)
	assert.True(t, resp.Items[1].Completed)
}
