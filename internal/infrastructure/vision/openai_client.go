package vision

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"os"

	openai "github.com/sashabaranov/go-openai"

	"snapbook/internal/usecase/interfaces"
)

const (
	defaultModel     = "gpt-4o"
	defaultMaxTokens = 1024
	maxImages        = 8
)

// OpenAIClient calls the OpenAI chat completions API with image parts and
// asks for a JSON object back.
//
// Without OPENAI_API_KEY the client runs in mock mode: AnalyzeImages returns
// a fixed payload flagged with "_mock" instead of failing, so the rest of the
// pipeline stays exercisable in local and CI environments.
type OpenAIClient struct {
	client *openai.Client
	model  string
}

var _ interfaces.IVisionClient = (*OpenAIClient)(nil)

// NewOpenAIClientFromEnv builds the client from OPENAI_API_KEY and
// OPENAI_VISION_MODEL.
func NewOpenAIClientFromEnv() *OpenAIClient {
	model := getenvDefault("OPENAI_VISION_MODEL", defaultModel)

	key := os.Getenv("OPENAI_API_KEY")
	if key == "" {
		log.Printf("[vision][client] OPENAI_API_KEY not set, running in mock mode")
		return &OpenAIClient{model: model}
	}
	return &OpenAIClient{client: openai.NewClient(key), model: model}
}

func (c *OpenAIClient) AnalyzeImages(ctx context.Context, req interfaces.VisionRequest) (json.RawMessage, error) {
	if c.client == nil {
		return json.RawMessage(`{"_mock": true, "analysis": "Vision analysis unavailable without an API key"}`), nil
	}

	refs := req.ImageRefs
	if len(refs) > maxImages {
		refs = refs[:maxImages]
	}

	parts := make([]openai.ChatMessagePart, 0, len(refs)+1)
	parts = append(parts, openai.ChatMessagePart{
		Type: openai.ChatMessagePartTypeText,
		Text: req.Prompt,
	})
	for _, ref := range refs {
		parts = append(parts, openai.ChatMessagePart{
			Type: openai.ChatMessagePartTypeImageURL,
			ImageURL: &openai.ChatMessageImageURL{
				URL:    ref,
				Detail: openai.ImageURLDetailHigh,
			},
		})
	}

	maxTokens := req.MaxTokens
	if maxTokens <= 0 {
		maxTokens = defaultMaxTokens
	}

	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:     c.model,
		MaxTokens: maxTokens,
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, MultiContent: parts},
		},
	})
	if err != nil {
		return nil, err
	}
	if len(resp.Choices) == 0 {
		return nil, errors.New("vision completion returned no choices")
	}

	content := resp.Choices[0].Message.Content
	if !json.Valid([]byte(content)) {
		// The model occasionally replies with prose despite JSON mode. Wrap
		// it as a JSON object tagged "_degraded" so callers treat it as a
		// failed analysis rather than a usable one.
		log.Printf("[vision][client] non-json reply, returning degraded payload")
		wrapped, err := json.Marshal(map[string]any{"_degraded": true, "analysis": content})
		if err != nil {
			return nil, err
		}
		return wrapped, nil
	}
	return json.RawMessage(content), nil
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
