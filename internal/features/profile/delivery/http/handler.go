package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"botforge-backend/internal/features/profile/models"
	"botforge-backend/internal/features/profile/service"
)

type ProfileHandler struct {
	service service.ProfileService
}

func NewProfileHandler(service service.ProfileService) *ProfileHandler {
	return &ProfileHandler{
		service: service,
	}
}

func (h *ProfileHandler) RegisterRoutes(router *gin.RouterGroup) {
	profile := router.Group("/profile")
	{
		profile.GET("", h.GetProfile)
		profile.GET("/stats", h.GetStats)
		profile.GET("/history", h.GetHistory)
		profile.POST("/daily-reward", h.ClaimDailyReward)
	}
}

// @Summary Get profile
// @Description Get the current user profile with currency, level, experience and activity history
// @Tags profile
// @Produce json
// @Success 200 {object} models.UserProfile "Profile snapshot"
// @Router /profile [get]
func (h *ProfileHandler) GetProfile(c *gin.Context) {
	c.JSON(http.StatusOK, h.service.Profile())
}

// @Summary Get profile stats
// @Description Get aggregate numbers shown on the settings screen
// @Tags profile
// @Produce json
// @Success 200 {object} models.StatsResponse "Aggregate stats"
// @Router /profile/stats [get]
func (h *ProfileHandler) GetStats(c *gin.Context) {
	c.JSON(http.StatusOK, h.service.Stats())
}

// @Summary Get activity history
// @Description Get the capped activity history, newest first
// @Tags profile
// @Produce json
// @Success 200 {object} models.HistoryResponse "Activity history"
// @Router /profile/history [get]
func (h *ProfileHandler) GetHistory(c *gin.Context) {
	profile := h.service.Profile()
	c.JSON(http.StatusOK, models.HistoryResponse{
		Items: profile.History,
		Total: len(profile.History),
	})
}

// @Summary Claim daily reward
// @Description Grant the daily bonus when at least 24 hours elapsed since the previous successful claim. Repeated calls within the window are no-ops.
// @Tags profile
// @Produce json
// @Success 200 {object} models.ClaimResponse "Claim outcome"
// @Router /profile/daily-reward [post]
func (h *ProfileHandler) ClaimDailyReward(c *gin.Context) {
	claimed, profile := h.service.ClaimDailyReward(c.Request.Context())

	resp := models.ClaimResponse{
		Claimed: claimed,
		Profile: profile,
	}
	if claimed {
		resp.Amount = models.DailyRewardAmount
	}

	c.JSON(http.StatusOK, resp)
}
