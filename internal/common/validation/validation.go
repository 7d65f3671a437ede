package validation

import (
	"fmt"
	"strings"
)

const (
	// Максимальные длины для различных полей
	MaxPromptLength      = 4000
	MaxInstructionLength = 1000
	MaxSpeechTextLength  = 2000
	MaxDetailLength      = 200

	// Минимальные длины
	MinPromptLength = 1
)

// ValidatePrompt проверяет текст запроса к модели
func ValidatePrompt(prompt string) error {
	prompt = strings.TrimSpace(prompt)
	if prompt == "" {
		return fmt.Errorf("prompt cannot be empty")
	}

	if len(prompt) > MaxPromptLength {
		return fmt.Errorf("prompt cannot exceed %d characters", MaxPromptLength)
	}

	return nil
}

// ValidateInstruction проверяет инструкцию редактирования изображения
func ValidateInstruction(instruction string) error {
	instruction = strings.TrimSpace(instruction)
	if instruction == "" {
		return fmt.Errorf("instruction cannot be empty")
	}

	if len(instruction) > MaxInstructionLength {
		return fmt.Errorf("instruction cannot exceed %d characters", MaxInstructionLength)
	}

	return nil
}

// ValidateSpeechText проверяет текст для синтеза речи
func ValidateSpeechText(text string) error {
	text = strings.TrimSpace(text)
	if text == "" {
		return fmt.Errorf("text cannot be empty")
	}

	if len(text) > MaxSpeechTextLength {
		return fmt.Errorf("text cannot exceed %d characters", MaxSpeechTextLength)
	}

	return nil
}
