package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/resumerank/backend/api/http/presenter"
	"github.com/resumerank/backend/pkg/leaderboard"
)

type LeaderboardHandler struct {
	uc         leaderboard.UseCase
	production bool
}

func NewLeaderboardHandler(uc leaderboard.UseCase, production bool) *LeaderboardHandler {
	return &LeaderboardHandler{uc: uc, production: production}
}

// Top returns the ranked leaderboard, best score first.
// @Summary Leaderboard
// @Tags    leaderboard
// @Produce json
// @Param   limit query int false "maximum entries (default 50)"
// @Success 200 {array} leaderboard.Entry
// @Failure 500 {object} presenter.ErrorResponse
// @Router  /leaderboard [get]
func (h *LeaderboardHandler) Top(c *fiber.Ctx) error {
	limit := parseLimit(c, leaderboard.DefaultLimit)
	entries, err := h.uc.TopEntries(c.Context(), limit)
	if err != nil {
		return presenter.ServerError(c, h.production, err, "failed to fetch leaderboard data")
	}
	return presenter.JSON(c, http.StatusOK, entries)
}

func parseLimit(c *fiber.Ctx, def int) int {
	if v := strings.TrimSpace(c.Query("limit")); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 && n <= def {
			return n
		}
	}
	return def
}
