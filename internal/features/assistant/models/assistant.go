package models

import (
	profilemodels "botforge-backend/internal/features/profile/models"
)

// ChatTurn представляет одну реплику прошедшего диалога
type ChatTurn struct {
	Role string `json:"role" example:"user" enums:"user,model"`
	Text string `json:"text" example:"Build me a landing page"`
}

// ChatRequest представляет запрос к чат-модели
type ChatRequest struct {
	Prompt  string     `json:"prompt" example:"Build me a landing page"`
	History []ChatTurn `json:"history"`
}

// ChatResult представляет итог завершённого стрима
type ChatResult struct {
	Text    string                    `json:"text"`
	Code    string                    `json:"code,omitempty" description:"Содержимое первого fenced-блока кода, если найден"`
	Profile profilemodels.UserProfile `json:"profile"`
}

// ImageRequest представляет запрос генерации изображения
type ImageRequest struct {
	Prompt string `json:"prompt" example:"a chrome forge floating in space"`
}

// ImageResult представляет сгенерированное или отредактированное изображение
type ImageResult struct {
	MimeType string                    `json:"mime_type" example:"image/png"`
	Data     []byte                    `json:"data" swaggertype:"string" format:"base64"`
	Profile  profilemodels.UserProfile `json:"profile"`
}

// SpeechRequest представляет запрос синтеза речи
type SpeechRequest struct {
	Text string `json:"text" example:"Welcome to BotForge"`
}

// SpeechResult представляет синтезированную речь в WAV-контейнере
type SpeechResult struct {
	WAV     []byte
	Profile profilemodels.UserProfile
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error" example:"Error message"`
}
