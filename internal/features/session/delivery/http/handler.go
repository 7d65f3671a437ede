package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "botforge-backend/internal/common/errors"
	"botforge-backend/internal/features/session/models"
	"botforge-backend/internal/features/session/service"
)

type SessionHandler struct {
	service service.SessionService
}

func NewSessionHandler(service service.SessionService) *SessionHandler {
	return &SessionHandler{
		service: service,
	}
}

func (h *SessionHandler) RegisterRoutes(router *gin.RouterGroup) {
	sessions := router.Group("/session")
	{
		sessions.POST("", h.CreateSession)
		sessions.GET("/:id", h.GetSession)
		sessions.POST("/:id/login", h.Login)
		sessions.PUT("/:id/tab", h.SelectTab)
	}
}

// @Summary Start session
// @Description Create a new session in the intro state; it advances to auth automatically after the intro delay
// @Tags session
// @Produce json
// @Success 201 {object} models.SessionResponse "New session"
// @Router /session [post]
func (h *SessionHandler) CreateSession(c *gin.Context) {
	c.JSON(http.StatusCreated, h.service.Create(c.Request.Context()))
}

// @Summary Get session
// @Description Get the current screen state of a session
// @Tags session
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} models.SessionResponse "Session state"
// @Failure 404 {object} models.ErrorResponse "Session not found"
// @Router /session/{id} [get]
func (h *SessionHandler) GetSession(c *gin.Context) {
	resp, err := h.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// @Summary Log in
// @Description Authenticate and move the session to the replay state, then the dashboard. Any credentials succeed.
// @Tags session
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param credentials body models.Credentials true "Login form or provider button"
// @Success 200 {object} models.SessionResponse "Session state after login"
// @Failure 404 {object} models.ErrorResponse "Session not found"
// @Failure 409 {object} models.ErrorResponse "Login not allowed in current state"
// @Router /session/{id}/login [post]
func (h *SessionHandler) Login(c *gin.Context) {
	var creds models.Credentials
	if err := c.ShouldBindJSON(&creds); err != nil {
		c.Error(apperrors.Wrap(err, apperrors.ErrCodeBadRequest, "Invalid login payload"))
		return
	}

	resp, err := h.service.Login(c.Request.Context(), c.Param("id"), creds)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// @Summary Select tab
// @Description Select the active dashboard tab
// @Tags session
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param tab body models.TabUpdate true "Tab selection"
// @Success 200 {object} models.SessionResponse "Session state after selection"
// @Failure 400 {object} models.ErrorResponse "Unknown tab"
// @Failure 404 {object} models.ErrorResponse "Session not found"
// @Failure 409 {object} models.ErrorResponse "Tab selection not allowed in current state"
// @Router /session/{id}/tab [put]
func (h *SessionHandler) SelectTab(c *gin.Context) {
	var update models.TabUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		c.Error(apperrors.Wrap(err, apperrors.ErrCodeBadRequest, "Invalid tab payload"))
		return
	}

	resp, err := h.service.SelectTab(c.Request.Context(), c.Param("id"), update.Tab)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
