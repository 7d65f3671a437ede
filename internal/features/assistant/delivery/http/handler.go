package http

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "botforge-backend/internal/common/errors"
	"botforge-backend/internal/common/logger"
	"botforge-backend/internal/common/validation"
	"botforge-backend/internal/features/assistant/models"
	"botforge-backend/internal/features/assistant/service"
)

// Сообщение об ошибке чата, которое показывает клиент
const chatErrorMessage = "Error communicating with BotForge neural link. Please try again."

// Лимит загружаемого изображения для редактирования фона
const maxUploadSize = 10 << 20

type AssistantHandler struct {
	service service.AssistantService
}

func NewAssistantHandler(service service.AssistantService) *AssistantHandler {
	return &AssistantHandler{
		service: service,
	}
}

func (h *AssistantHandler) RegisterRoutes(router *gin.RouterGroup) {
	assistant := router.Group("/assistant")
	{
		assistant.POST("/chat", h.Chat)
		assistant.POST("/images", h.GenerateImage)
		assistant.POST("/background", h.EditBackground)
		assistant.POST("/voice", h.SynthesizeSpeech)
	}
}

// @Summary Chat with streaming response
// @Description Send a prompt with prior history; text fragments are streamed back as server-sent events ("chunk"), followed by a final "done" event with the assembled text, extracted code block and updated profile. On failure an "error" event carries a generic message.
// @Tags assistant
// @Accept json
// @Produce text/event-stream
// @Param request body models.ChatRequest true "Prompt and history"
// @Success 200 {object} models.ChatResult "Delivered as the final done event"
// @Failure 400 {object} models.ErrorResponse "Invalid payload"
// @Router /assistant/chat [post]
func (h *AssistantHandler) Chat(c *gin.Context) {
	var req models.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperrors.Wrap(err, apperrors.ErrCodeBadRequest, "Invalid chat payload"))
		return
	}

	// Проверяем prompt до заголовков стрима, чтобы ошибка валидации
	// ушла обычным JSON-ответом
	if err := validation.ValidatePrompt(req.Prompt); err != nil {
		c.Error(apperrors.NewValidationError("prompt", err.Error()))
		return
	}

	c.Writer.Header().Set("Content-Type", "text/event-stream")
	c.Writer.Header().Set("Cache-Control", "no-cache")
	c.Writer.Header().Set("Connection", "keep-alive")

	result, err := h.service.Chat(c.Request.Context(), req.Prompt, req.History, func(chunk string) error {
		if c.Request.Context().Err() != nil {
			return c.Request.Context().Err()
		}
		c.SSEvent("chunk", chunk)
		c.Writer.Flush()
		return nil
	})
	if err != nil {
		// Стрим уже мог начаться: отдаём общую ошибку событием
		logger.Error().Err(err).Msg("Chat stream failed")
		c.SSEvent("error", chatErrorMessage)
		c.Writer.Flush()
		return
	}
	if result == nil {
		// Потребитель отключился до завершения стрима
		return
	}

	c.SSEvent("done", result)
	c.Writer.Flush()
}

// @Summary Generate image
// @Description Generate a single image from a text prompt
// @Tags assistant
// @Accept json
// @Produce json
// @Param request body models.ImageRequest true "Image prompt"
// @Success 200 {object} models.ImageResult "Generated image and updated profile"
// @Failure 400 {object} models.ErrorResponse "Invalid payload"
// @Failure 502 {object} models.ErrorResponse "Model returned no image"
// @Router /assistant/images [post]
func (h *AssistantHandler) GenerateImage(c *gin.Context) {
	var req models.ImageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperrors.Wrap(err, apperrors.ErrCodeBadRequest, "Invalid image payload"))
		return
	}

	result, err := h.service.GenerateImage(c.Request.Context(), req.Prompt)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// @Summary Edit image background
// @Description Upload an image and an instruction; the background is re-generated while the subject is preserved
// @Tags assistant
// @Accept multipart/form-data
// @Produce json
// @Param image formData file true "Source image"
// @Param instruction formData string true "Background instruction"
// @Success 200 {object} models.ImageResult "Edited image and updated profile"
// @Failure 400 {object} models.ErrorResponse "Invalid payload"
// @Failure 502 {object} models.ErrorResponse "Model returned no image"
// @Router /assistant/background [post]
func (h *AssistantHandler) EditBackground(c *gin.Context) {
	fileHeader, err := c.FormFile("image")
	if err != nil {
		c.Error(apperrors.Wrap(err, apperrors.ErrCodeBadRequest, "Image file is required"))
		return
	}
	if fileHeader.Size > maxUploadSize {
		c.Error(apperrors.NewValidationError("image", "file too large"))
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.Error(apperrors.Wrap(err, apperrors.ErrCodeBadRequest, "Failed to open uploaded image"))
		return
	}
	defer file.Close()

	image, err := io.ReadAll(file)
	if err != nil {
		c.Error(apperrors.Wrap(err, apperrors.ErrCodeBadRequest, "Failed to read uploaded image"))
		return
	}

	result, err := h.service.EditBackground(
		c.Request.Context(),
		image,
		fileHeader.Header.Get("Content-Type"),
		c.PostForm("instruction"),
	)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// @Summary Synthesize speech
// @Description Convert text to speech; the response body is a playable WAV (16-bit PCM, 24 kHz mono)
// @Tags assistant
// @Accept json
// @Produce audio/wav
// @Param request body models.SpeechRequest true "Text to synthesize"
// @Success 200 {string} binary "WAV audio"
// @Failure 400 {object} models.ErrorResponse "Invalid payload"
// @Failure 502 {object} models.ErrorResponse "Model returned no audio"
// @Router /assistant/voice [post]
func (h *AssistantHandler) SynthesizeSpeech(c *gin.Context) {
	var req models.SpeechRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperrors.Wrap(err, apperrors.ErrCodeBadRequest, "Invalid speech payload"))
		return
	}

	result, err := h.service.SynthesizeSpeech(c.Request.Context(), req.Text)
	if err != nil {
		c.Error(err)
		return
	}

	c.Data(http.StatusOK, "audio/wav", result.WAV)
}
