package service

import (
	"context"

	"botforge-backend/internal/features/assistant/models"
	"botforge-backend/internal/platform/gemini"
)

// AIClient is the consumed contract of the generative-AI collaborator.
// *gemini.Client satisfies it.
type AIClient interface {
	ChatStream(ctx context.Context, prompt string, history []gemini.Turn, onChunk func(string) error) error
	GenerateImage(ctx context.Context, prompt string) ([]byte, string, error)
	EditBackground(ctx context.Context, image []byte, mimeType, instruction string) ([]byte, string, error)
	Speech(ctx context.Context, text string) ([]byte, error)
}

// AssistantService delegates to the AI collaborator and, on success, grants
// botcoins through the profile store. A failed call leaves state unchanged.
type AssistantService interface {
	// Chat streams text fragments to onChunk in order and returns the
	// assembled result; when a fenced code block was extracted the prose
	// text comes back with the fences stripped. A torn-down consumer stops
	// the stream without error: Chat then returns (nil, nil) and no reward
	// is granted.
	Chat(ctx context.Context, prompt string, history []models.ChatTurn, onChunk func(string) error) (*models.ChatResult, error)

	GenerateImage(ctx context.Context, prompt string) (*models.ImageResult, error)
	EditBackground(ctx context.Context, image []byte, mimeType, instruction string) (*models.ImageResult, error)
	SynthesizeSpeech(ctx context.Context, text string) (*models.SpeechResult, error)
}
