package generator

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

// OpenAIProvider calls the OpenAI chat completions API with a strict JSON schema
type OpenAIProvider struct {
	client      openai.Client
	model       string
	temperature float64
}

// NewOpenAIProvider creates an OpenAI client for the given model
func NewOpenAIProvider(apiKey, model string, temperature float64) *OpenAIProvider {
	return &OpenAIProvider{
		client:      openai.NewClient(option.WithAPIKey(apiKey)),
		model:       model,
		temperature: temperature,
	}
}

func (p *OpenAIProvider) Name() string { return "openai/" + p.model }

// GenerateJSON implements Provider
func (p *OpenAIProvider) GenerateJSON(ctx context.Context, prompt string, schemaName string, schema *Node) ([]byte, error) {
	resp, err := p.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: openai.ChatModel(p.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.UserMessage(prompt),
		},
		Temperature: openai.Float(p.temperature),
		ResponseFormat: openai.ChatCompletionNewParamsResponseFormatUnion{
			OfJSONSchema: &openai.ResponseFormatJSONSchemaParam{
				JSONSchema: openai.ResponseFormatJSONSchemaJSONSchemaParam{
					Name:   schemaName,
					Schema: schema.JSONSchema(),
					Strict: openai.Bool(true),
				},
			},
		},
	})
	if err != nil {
		return nil, err
	}
	if len(resp.Choices) == 0 {
		return nil, errors.New("openai returned no choices")
	}
	msg := resp.Choices[0].Message
	if msg.Refusal != "" {
		return nil, fmt.Errorf("openai refused: %s", msg.Refusal)
	}
	text := strings.TrimSpace(msg.Content)
	if text == "" {
		return nil, errors.New("openai returned an empty response")
	}
	return []byte(text), nil
}
