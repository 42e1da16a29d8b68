package generator

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"google.golang.org/genai"
)

// GeminiProvider calls the Gemini API with a response schema
type GeminiProvider struct {
	client      *genai.Client
	model       string
	temperature float32
}

// NewGeminiProvider creates a Gemini client for the given model
func NewGeminiProvider(ctx context.Context, apiKey, model string, temperature float32) (*GeminiProvider, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}
	return &GeminiProvider{client: client, model: model, temperature: temperature}, nil
}

func (p *GeminiProvider) Name() string { return "gemini/" + p.model }

// GenerateJSON implements Provider
func (p *GeminiProvider) GenerateJSON(ctx context.Context, prompt string, _ string, schema *Node) ([]byte, error) {
	res, err := p.client.Models.GenerateContent(ctx, p.model, genai.Text(prompt), &genai.GenerateContentConfig{
		Temperature:      genai.Ptr(p.temperature),
		ResponseMIMEType: "application/json",
		ResponseSchema:   schema.Genai(),
	})
	if err != nil {
		return nil, err
	}
	text := strings.TrimSpace(res.Text())
	if text == "" {
		return nil, errors.New("gemini returned an empty response")
	}
	return []byte(text), nil
}
