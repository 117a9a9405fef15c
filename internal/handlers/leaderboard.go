package handlers

import (
	"net/http"
	"strconv"

	dom "challengeboard/internal/domain"
	"challengeboard/internal/dto"
	"challengeboard/internal/service"

	"github.com/gin-gonic/gin"
)

// LeaderboardHandler serves ranked user views. Both routes are public.
type LeaderboardHandler struct {
	svc *service.LeaderboardService
}

// NewLeaderboardHandler returns a new LeaderboardHandler.
func NewLeaderboardHandler(svc *service.LeaderboardService) *LeaderboardHandler {
	return &LeaderboardHandler{svc: svc}
}

// Full godoc
// @Summary      Full ranking of all users
// @Tags         leaderboard
// @Produce      json
// @Success      200  {object}  dto.LeaderboardResponse
// @Failure      500  {object}  map[string]string
// @Router       /leaderboard [get]
func (h *LeaderboardHandler) Full(c *gin.Context) {
	list, err := h.svc.FullRanking(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, dto.LeaderboardResponse{Items: usersToEntries(list)})
}

// Top godoc
// @Summary      Top scorers
// @Tags         leaderboard
// @Produce      json
// @Param        limit  query  int  false  "Max entries (default 5)"
// @Success      200  {object}  dto.LeaderboardResponse
// @Failure      500  {object}  map[string]string
// @Router       /leaderboard/top [get]
func (h *LeaderboardHandler) Top(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "5"))
	list, err := h.svc.TopScorers(c.Request.Context(), limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, dto.LeaderboardResponse{Items: usersToEntries(list)})
}

func usersToEntries(list []dom.User) []dto.LeaderboardEntry {
	out := make([]dto.LeaderboardEntry, len(list))
	for i, u := range list {
		out[i] = dto.LeaderboardEntry{Rank: i + 1, Username: u.Username, Points: u.Points}
	}
	return out
}
