package service

import (
	"context"
	"errors"
	"strings"

	apperrors "botforge-backend/internal/common/errors"
	"botforge-backend/internal/common/validation"
	"botforge-backend/internal/features/assistant/models"
	profilemodels "botforge-backend/internal/features/profile/models"
	profileservice "botforge-backend/internal/features/profile/service"
	"botforge-backend/internal/platform/gemini"
)

// Награды за успешные операции
const (
	chatReward       = 10
	imageReward      = 50
	voiceReward      = 25
	backgroundReward = 100

	chatDetail       = "Advanced Neural Link Established"
	backgroundDetail = "Global Scene Transformation"

	detailPreviewLen = 20
)

type assistantService struct {
	ai      AIClient
	profile profileservice.ProfileService
}

func NewAssistantService(ai AIClient, profile profileservice.ProfileService) AssistantService {
	return &assistantService{
		ai:      ai,
		profile: profile,
	}
}

func (s *assistantService) Chat(ctx context.Context, prompt string, history []models.ChatTurn, onChunk func(string) error) (*models.ChatResult, error) {
	if err := validation.ValidatePrompt(prompt); err != nil {
		return nil, apperrors.NewValidationError("prompt", err.Error())
	}

	turns := make([]gemini.Turn, 0, len(history))
	for _, t := range history {
		turns = append(turns, gemini.Turn{Role: t.Role, Text: t.Text})
	}

	var full strings.Builder
	err := s.ai.ChatStream(ctx, prompt, turns, func(chunk string) error {
		full.WriteString(chunk)
		return onChunk(chunk)
	})
	if err != nil {
		if isCancelled(ctx, err) {
			// Потребитель отвалился: прекращаем без ошибки и без награды
			return nil, nil
		}
		return nil, apperrors.NewGeminiAPIError("chat", err)
	}

	text := full.String()
	result := &models.ChatResult{
		Text: text,
		Code: ExtractCodeBlock(text),
	}
	if result.Code != "" {
		// Код уходит отдельным полем, в прозе fenced-блоки не показываются
		result.Text = strings.TrimSpace(StripCodeBlocks(text))
	}
	result.Profile = s.profile.Grant(ctx, chatReward, chatDetail, profilemodels.TypeChat)

	return result, nil
}

func (s *assistantService) GenerateImage(ctx context.Context, prompt string) (*models.ImageResult, error) {
	if err := validation.ValidatePrompt(prompt); err != nil {
		return nil, apperrors.NewValidationError("prompt", err.Error())
	}

	data, mimeType, err := s.ai.GenerateImage(ctx, prompt)
	if err != nil {
		return nil, apperrors.NewGeminiAPIError("generate_image", err)
	}
	if len(data) == 0 {
		return nil, apperrors.NewEmptyResultError("generate_image")
	}

	detail := "Image Asset Manifested: " + truncateDetail(prompt, detailPreviewLen) + "..."
	profile := s.profile.Grant(ctx, imageReward, detail, profilemodels.TypeImage)

	return &models.ImageResult{MimeType: mimeType, Data: data, Profile: profile}, nil
}

func (s *assistantService) EditBackground(ctx context.Context, image []byte, mimeType, instruction string) (*models.ImageResult, error) {
	if len(image) == 0 {
		return nil, apperrors.NewValidationError("image", "image payload is empty")
	}
	if err := validation.ValidateInstruction(instruction); err != nil {
		return nil, apperrors.NewValidationError("instruction", err.Error())
	}
	if mimeType == "" {
		mimeType = "image/png"
	}

	data, outMime, err := s.ai.EditBackground(ctx, image, mimeType, instruction)
	if err != nil {
		return nil, apperrors.NewGeminiAPIError("edit_background", err)
	}
	if len(data) == 0 {
		return nil, apperrors.NewEmptyResultError("edit_background")
	}

	profile := s.profile.Grant(ctx, backgroundReward, backgroundDetail, profilemodels.TypeImage)

	return &models.ImageResult{MimeType: outMime, Data: data, Profile: profile}, nil
}

func (s *assistantService) SynthesizeSpeech(ctx context.Context, text string) (*models.SpeechResult, error) {
	if err := validation.ValidateSpeechText(text); err != nil {
		return nil, apperrors.NewValidationError("text", err.Error())
	}

	pcm, err := s.ai.Speech(ctx, text)
	if err != nil {
		return nil, apperrors.NewGeminiAPIError("speech", err)
	}
	if len(pcm) == 0 {
		return nil, apperrors.NewEmptyResultError("speech")
	}

	detail := "Vocal Matrix Render: " + truncateDetail(text, detailPreviewLen) + "..."
	profile := s.profile.Grant(ctx, voiceReward, detail, profilemodels.TypeVoice)

	return &models.SpeechResult{
		WAV:     EncodeWAV(pcm, SpeechSampleRate, SpeechChannels),
		Profile: profile,
	}, nil
}

func isCancelled(ctx context.Context, err error) bool {
	return ctx.Err() != nil || errors.Is(err, context.Canceled)
}

// truncateDetail повторяет substring(0, n) исходного клиента
func truncateDetail(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
