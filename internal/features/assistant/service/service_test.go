package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "botforge-backend/internal/common/errors"
	"botforge-backend/internal/features/assistant/models"
	profilemodels "botforge-backend/internal/features/profile/models"
	"botforge-backend/internal/features/profile/repository/memory"
	profileservice "botforge-backend/internal/features/profile/service"
	"botforge-backend/internal/platform/gemini"
)

type fakeAIClient struct {
	chatChunks []string
	chatErr    error
	image      []byte
	imageErr   error
	edited     []byte
	editErr    error
	pcm        []byte
	speechErr  error

	gotPrompt      string
	gotHistory     []gemini.Turn
	gotInstruction string
}

func (f *fakeAIClient) ChatStream(ctx context.Context, prompt string, history []gemini.Turn, onChunk func(string) error) error {
	f.gotPrompt = prompt
	f.gotHistory = history
	for _, chunk := range f.chatChunks {
		if err := onChunk(chunk); err != nil {
			return err
		}
	}
	return f.chatErr
}

func (f *fakeAIClient) GenerateImage(ctx context.Context, prompt string) ([]byte, string, error) {
	f.gotPrompt = prompt
	if f.imageErr != nil {
		return nil, "", f.imageErr
	}
	return f.image, "image/png", nil
}

func (f *fakeAIClient) EditBackground(ctx context.Context, image []byte, mimeType, instruction string) ([]byte, string, error) {
	f.gotInstruction = instruction
	if f.editErr != nil {
		return nil, "", f.editErr
	}
	return f.edited, "image/png", nil
}

func (f *fakeAIClient) Speech(ctx context.Context, text string) ([]byte, error) {
	f.gotPrompt = text
	if f.speechErr != nil {
		return nil, f.speechErr
	}
	return f.pcm, nil
}

func newTestService(t *testing.T, ai *fakeAIClient) (AssistantService, profileservice.ProfileService) {
	t.Helper()
	profile := profileservice.NewProfileService(memory.NewProfileRepository())
	profile.Load(context.Background())
	return NewAssistantService(ai, profile), profile
}

func TestChatStreamsGrantsAndExtractsCode(t *testing.T) {
	ai := &fakeAIClient{chatChunks: []string{"Here you go:\n```html\n", "<div>app</div>\n```", " done"}}
	svc, profile := newTestService(t, ai)
	before := profile.Profile().Botcoins

	var streamed []string
	result, err := svc.Chat(context.Background(), "build an app", []models.ChatTurn{{Role: "user", Text: "hi"}},
		func(chunk string) error {
			streamed = append(streamed, chunk)
			return nil
		})

	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, ai.chatChunks, streamed)
	// Fenced-блок вынесен в code, проза отдаётся без него
	assert.Equal(t, "Here you go:\n done", result.Text)
	assert.Equal(t, "<div>app</div>\n", result.Code)

	// История передана как есть, prompt отдельно
	require.Len(t, ai.gotHistory, 1)
	assert.Equal(t, "hi", ai.gotHistory[0].Text)
	assert.Equal(t, "build an app", ai.gotPrompt)

	assert.Equal(t, before+10, result.Profile.Botcoins)
	require.NotEmpty(t, result.Profile.History)
	assert.Equal(t, profilemodels.TypeChat, result.Profile.History[0].Type)
	assert.Equal(t, "Advanced Neural Link Established", result.Profile.History[0].Detail)
}

func TestChatWithoutCodeKeepsProseIntact(t *testing.T) {
	ai := &fakeAIClient{chatChunks: []string{"Hello ", "world"}}
	svc, _ := newTestService(t, ai)

	result, err := svc.Chat(context.Background(), "greet me", nil, func(string) error { return nil })

	require.NoError(t, err)
	assert.Equal(t, "Hello world", result.Text)
	assert.Empty(t, result.Code)
}

func TestChatFailureLeavesStateUnchanged(t *testing.T) {
	ai := &fakeAIClient{chatChunks: []string{"partial"}, chatErr: errors.New("upstream 500")}
	svc, profile := newTestService(t, ai)
	before := profile.Profile()

	result, err := svc.Chat(context.Background(), "prompt", nil, func(string) error { return nil })

	require.Error(t, err)
	assert.Nil(t, result)
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.ErrCodeGeminiAPI, appErr.Code)
	assert.Equal(t, before, profile.Profile())
}

func TestChatCancelledConsumerStopsSilently(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	ai := &fakeAIClient{chatChunks: []string{"a", "b", "c"}}
	svc, profile := newTestService(t, ai)
	before := profile.Profile()

	result, err := svc.Chat(ctx, "prompt", nil, func(chunk string) error {
		cancel()
		return ctx.Err()
	})

	assert.NoError(t, err)
	assert.Nil(t, result)
	assert.Equal(t, before, profile.Profile())
}

func TestChatRejectsEmptyPrompt(t *testing.T) {
	svc, _ := newTestService(t, &fakeAIClient{})

	_, err := svc.Chat(context.Background(), "   ", nil, func(string) error { return nil })

	require.Error(t, err)
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.ErrCodeValidation, appErr.Code)
}

func TestGenerateImageGrantsWithTruncatedDetail(t *testing.T) {
	ai := &fakeAIClient{image: []byte{0x89, 0x50}}
	svc, profile := newTestService(t, ai)
	before := profile.Profile().Botcoins

	result, err := svc.GenerateImage(context.Background(), "a chrome forge floating in space")

	require.NoError(t, err)
	assert.Equal(t, "image/png", result.MimeType)
	assert.Equal(t, []byte{0x89, 0x50}, result.Data)
	assert.Equal(t, before+50, result.Profile.Botcoins)
	require.NotEmpty(t, result.Profile.History)
	assert.Equal(t, "Image Asset Manifested: a chrome forge float...", result.Profile.History[0].Detail)
	assert.Equal(t, profilemodels.TypeImage, result.Profile.History[0].Type)
}

func TestGenerateImageEmptyResult(t *testing.T) {
	svc, profile := newTestService(t, &fakeAIClient{})
	before := profile.Profile()

	_, err := svc.GenerateImage(context.Background(), "prompt")

	require.Error(t, err)
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.ErrCodeEmptyResult, appErr.Code)
	assert.Equal(t, before, profile.Profile())
}

func TestEditBackgroundGrants(t *testing.T) {
	ai := &fakeAIClient{edited: []byte{1, 2, 3}}
	svc, profile := newTestService(t, ai)
	before := profile.Profile().Botcoins

	result, err := svc.EditBackground(context.Background(), []byte{9}, "image/png", "make it cyberpunk")

	require.NoError(t, err)
	assert.Equal(t, []byte{1, 2, 3}, result.Data)
	assert.Equal(t, before+100, result.Profile.Botcoins)
	assert.Equal(t, "Global Scene Transformation", result.Profile.History[0].Detail)
	assert.Equal(t, "make it cyberpunk", ai.gotInstruction)
}

func TestEditBackgroundRejectsEmptyImage(t *testing.T) {
	svc, _ := newTestService(t, &fakeAIClient{})

	_, err := svc.EditBackground(context.Background(), nil, "image/png", "instruction")

	require.Error(t, err)
}

func TestSynthesizeSpeechWrapsPCMAndGrants(t *testing.T) {
	pcm := make([]byte, 480)
	ai := &fakeAIClient{pcm: pcm}
	svc, profile := newTestService(t, ai)
	before := profile.Profile().Botcoins

	result, err := svc.SynthesizeSpeech(context.Background(), "Welcome to BotForge")

	require.NoError(t, err)
	require.Len(t, result.WAV, 44+len(pcm))
	assert.Equal(t, "RIFF", string(result.WAV[0:4]))
	assert.Equal(t, before+25, result.Profile.Botcoins)
	assert.Equal(t, "Vocal Matrix Render: Welcome to BotForge...", result.Profile.History[0].Detail)
	assert.Equal(t, profilemodels.TypeVoice, result.Profile.History[0].Type)
}

func TestSpeechFailureGrantsNothing(t *testing.T) {
	svc, profile := newTestService(t, &fakeAIClient{speechErr: errors.New("quota")})
	before := profile.Profile()

	_, err := svc.SynthesizeSpeech(context.Background(), "text")

	require.Error(t, err)
	assert.Equal(t, before, profile.Profile())
}

func TestTruncateDetail(t *testing.T) {
	assert.Equal(t, "short", truncateDetail("short", 20))
	assert.Equal(t, "exactly twenty chars", truncateDetail("exactly twenty chars", 20))
	assert.Equal(t, "a chrome forge float", truncateDetail("a chrome forge floating in space", 20))
}
