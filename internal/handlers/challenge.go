package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"challengeboard/internal/auth"
	dom "challengeboard/internal/domain"
	"challengeboard/internal/dto"
	"challengeboard/internal/service"

	"github.com/gin-gonic/gin"
)

// ChallengeHandler serves the catalog and the complete operation.
type ChallengeHandler struct {
	catalog     *service.CatalogService
	ledger      *service.LedgerService
	leaderboard *service.LeaderboardService
}

// NewChallengeHandler returns a new ChallengeHandler.
func NewChallengeHandler(catalog *service.CatalogService, ledger *service.LedgerService, leaderboard *service.LeaderboardService) *ChallengeHandler {
	return &ChallengeHandler{catalog: catalog, ledger: ledger, leaderboard: leaderboard}
}

// List godoc
// @Summary      List challenges with the caller's completion marks
// @Tags         challenges
// @Produce      json
// @Security     CookieAuth
// @Success      200  {object}  dto.ListChallengesResponse
// @Failure      401  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /challenges [get]
func (h *ChallengeHandler) List(c *gin.Context) {
	userID := auth.UserIDFromContext(c)
	challenges, err := h.catalog.ListAll(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	completed, err := h.leaderboard.CompletedChallengeIDs(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, dto.ListChallengesResponse{Items: challengesToResponses(challenges, completed)})
}

// Complete godoc
// @Summary      Complete a challenge and earn its points
// @Tags         challenges
// @Produce      json
// @Security     CookieAuth
// @Param        id   path      int  true  "Challenge ID"
// @Success      200  {object}  dto.CompleteResponse
// @Failure      400  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /challenges/{id}/complete [post]
func (h *ChallengeHandler) Complete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	userID := auth.UserIDFromContext(c)
	result, err := h.ledger.Complete(c.Request.Context(), userID, id)
	if err != nil {
		if errors.Is(err, service.ErrChallengeNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "challenge not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, dto.CompleteResponse{
		ChallengeID:      id,
		AlreadyCompleted: result.AlreadyCompleted,
		PointsAwarded:    result.PointsAwarded,
		TotalPoints:      result.TotalPoints,
	})
}

func parseID(c *gin.Context, name string) (int64, bool) {
	raw := c.Param(name)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return 0, false
	}
	return id, true
}

func challengesToResponses(list []dom.Challenge, completed map[int64]bool) []dto.ChallengeResponse {
	out := make([]dto.ChallengeResponse, len(list))
	for i, ch := range list {
		out[i] = dto.ChallengeResponse{
			ID:          ch.ID,
			Title:       ch.Title,
			Description: ch.Description,
			Points:      ch.Points,
			Completed:   completed[ch.ID],
		}
	}
	return out
}
