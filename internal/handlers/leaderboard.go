package handlers

import (
	"net/http"

	"github.com/toniliu672/ira-server-sub000/internal/services"

	"github.com/gin-gonic/gin"
)

type LeaderboardHandler struct {
	leaderboardService *services.LeaderboardService
}

func NewLeaderboardHandler(leaderboardService *services.LeaderboardService) *LeaderboardHandler {
	return &LeaderboardHandler{leaderboardService: leaderboardService}
}

// GetLeaderboard godoc
// @Summary      Quiz leaderboard
// @Description  Rank participating students by quiz-scoped average; the requester is always included
// @Tags         mobile
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Quiz ID"
// @Success      200 {object} Response
// @Failure      404 {object} ErrorResponse
// @Router       /api/v1/mobile/quizzes/{id}/leaderboard [get]
func (h *LeaderboardHandler) GetLeaderboard(c *gin.Context) {
	studentID := c.GetUint("user_id")
	quizID, err := parseID(c, "id")
	if err != nil {
		respondErr(c, err)
		return
	}

	leaderboard, err := h.leaderboardService.Build(quizID, studentID)
	if err != nil {
		respondErr(c, err)
		return
	}
	respond(c, http.StatusOK, leaderboard)
}

// GetQuizResults godoc
// @Summary      Quiz results for admins
// @Description  Full ranking with per-student grading state
// @Tags         grading
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Quiz ID"
// @Success      200 {object} Response
// @Failure      404 {object} ErrorResponse
// @Router       /api/v1/admin/quizzes/{id}/results [get]
func (h *LeaderboardHandler) GetQuizResults(c *gin.Context) {
	quizID, err := parseID(c, "id")
	if err != nil {
		respondErr(c, err)
		return
	}

	results, err := h.leaderboardService.AdminResults(quizID)
	if err != nil {
		respondErr(c, err)
		return
	}
	respond(c, http.StatusOK, results)
}
