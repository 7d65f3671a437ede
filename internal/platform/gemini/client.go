package gemini

import (
	"context"
	"fmt"

	"google.golang.org/genai"
)

const systemInstruction = `You are BotForge AI. You are a world-class assistant, helpful, professional, and slightly futuristic.
If the user asks to build an app or a visual component, provide a complete, standalone, single-file HTML/CSS/JS solution inside a markdown code block starting with ` + "```html" + `.
Make the apps look premium with Tailwind CSS (already available via CDN).
Always identify yourself as BotForge.`

// Config holds model selection for the Gemini API.
type Config struct {
	APIKey     string
	ChatModel  string
	ImageModel string
	TTSModel   string
	Voice      string
}

// Turn is a single prior exchange in a chat conversation.
// Role is either "user" or "model".
type Turn struct {
	Role string `json:"role"`
	Text string `json:"text"`
}

// Client wraps the Gemini SDK client to allow future extensions.
type Client struct {
	ai  *genai.Client
	cfg Config
}

func NewClient(ctx context.Context, cfg Config) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("empty gemini api key")
	}
	ai, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, err
	}
	return &Client{ai: ai, cfg: cfg}, nil
}

// ChatStream sends the prompt with prior history and delivers text fragments
// to onChunk in order. A non-nil error from onChunk stops the stream.
func (c *Client) ChatStream(ctx context.Context, prompt string, history []Turn, onChunk func(string) error) error {
	contents := make([]*genai.Content, 0, len(history)+1)
	for _, t := range history {
		contents = append(contents, genai.NewContentFromText(t.Text, genai.Role(t.Role)))
	}
	contents = append(contents, genai.NewContentFromText(prompt, genai.RoleUser))

	config := &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(systemInstruction, genai.RoleUser),
	}

	for resp, err := range c.ai.Models.GenerateContentStream(ctx, c.cfg.ChatModel, contents, config) {
		if err != nil {
			return err
		}
		if text := resp.Text(); text != "" {
			if err := onChunk(text); err != nil {
				return err
			}
		}
	}
	return nil
}

// GenerateImage returns encoded image bytes and their mime type, or nil bytes
// when the model produced no image part.
func (c *Client) GenerateImage(ctx context.Context, prompt string) ([]byte, string, error) {
	contents := genai.Text("Generate a high-quality, professional, aesthetic image of: " + prompt)
	config := &genai.GenerateContentConfig{
		ImageConfig: &genai.ImageConfig{AspectRatio: "1:1"},
	}

	resp, err := c.ai.Models.GenerateContent(ctx, c.cfg.ImageModel, contents, config)
	if err != nil {
		return nil, "", err
	}
	return firstInlineData(resp)
}

// EditBackground re-generates the background of the given image according to
// the instruction. Returns nil bytes when the model produced no image part.
func (c *Client) EditBackground(ctx context.Context, image []byte, mimeType, instruction string) ([]byte, string, error) {
	parts := []*genai.Part{
		genai.NewPartFromBytes(image, mimeType),
		genai.NewPartFromText("Re-architect the background of this image based on: " + instruction + ". Maintain the subject integrity."),
	}
	contents := []*genai.Content{genai.NewContentFromParts(parts, genai.RoleUser)}

	resp, err := c.ai.Models.GenerateContent(ctx, c.cfg.ImageModel, contents, nil)
	if err != nil {
		return nil, "", err
	}
	return firstInlineData(resp)
}

// Speech synthesizes the text into raw 16-bit PCM at 24 kHz mono.
// Returns nil when the model produced no audio part.
func (c *Client) Speech(ctx context.Context, text string) ([]byte, error) {
	config := &genai.GenerateContentConfig{
		ResponseModalities: []string{"AUDIO"},
		SpeechConfig: &genai.SpeechConfig{
			VoiceConfig: &genai.VoiceConfig{
				PrebuiltVoiceConfig: &genai.PrebuiltVoiceConfig{VoiceName: c.cfg.Voice},
			},
		},
	}

	resp, err := c.ai.Models.GenerateContent(ctx, c.cfg.TTSModel, genai.Text(text), config)
	if err != nil {
		return nil, err
	}
	data, _, err := firstInlineData(resp)
	return data, err
}

func firstInlineData(resp *genai.GenerateContentResponse) ([]byte, string, error) {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return nil, "", nil
	}
	for _, part := range resp.Candidates[0].Content.Parts {
		if part != nil && part.InlineData != nil {
			return part.InlineData.Data, part.InlineData.MIMEType, nil
		}
	}
	return nil, "", nil
}
