package service

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"english_quest_backend/internal/config"

	"google.golang.org/genai"
)

// ContentGenerator is the external model used for theory, questions and comics.
type ContentGenerator interface {
	GenerateText(ctx context.Context, prompt string, asJSON bool) (string, error)
	GenerateImage(ctx context.Context, prompt string) ([]byte, error)
}

// NewContentGenerator builds the backend named by cfg.Provider.
func NewContentGenerator(ctx context.Context, cfg config.AIConfig) (ContentGenerator, error) {
	if cfg.APIKey == "" {
		return nil, errors.New("ai api key is not configured")
	}
	switch cfg.Provider {
	case "", "gemini":
		return newGeminiGenerator(ctx, cfg)
	case "openai":
		return newOpenAIGenerator(cfg), nil
	}
	return nil, fmt.Errorf("unknown ai provider %q", cfg.Provider)
}

type geminiGenerator struct {
	client     *genai.Client
	model      string
	imageModel string
}

func newGeminiGenerator(ctx context.Context, cfg config.AIConfig) (*geminiGenerator, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}
	return &geminiGenerator{client: client, model: cfg.Model, imageModel: cfg.ImageModel}, nil
}

func (g *geminiGenerator) GenerateText(ctx context.Context, prompt string, asJSON bool) (string, error) {
	var genCfg *genai.GenerateContentConfig
	if asJSON {
		genCfg = &genai.GenerateContentConfig{ResponseMIMEType: "application/json"}
	}
	result, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(prompt), genCfg)
	if err != nil {
		return "", err
	}
	return result.Text(), nil
}

func (g *geminiGenerator) GenerateImage(ctx context.Context, prompt string) ([]byte, error) {
	result, err := g.client.Models.GenerateContent(ctx, g.imageModel, genai.Text(prompt), nil)
	if err != nil {
		return nil, err
	}
	for _, cand := range result.Candidates {
		if cand.Content == nil {
			continue
		}
		for _, part := range cand.Content.Parts {
			if part.InlineData != nil && len(part.InlineData.Data) > 0 {
				return part.InlineData.Data, nil
			}
		}
	}
	return nil, errors.New("model returned no image")
}

// openAIGenerator talks to any OpenAI-compatible endpoint.
type openAIGenerator struct {
	cfg    config.AIConfig
	client *http.Client
}

func newOpenAIGenerator(cfg config.AIConfig) *openAIGenerator {
	timeout := time.Duration(cfg.TimeoutSeconds) * time.Second
	return &openAIGenerator{cfg: cfg, client: &http.Client{Timeout: timeout}}
}

type aiChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatCompletionRequest struct {
	Model          string            `json:"model"`
	Messages       []aiChatMessage   `json:"messages"`
	ResponseFormat map[string]string `json:"response_format,omitempty"`
}

type chatCompletionResponse struct {
	Choices []struct {
		Message aiChatMessage `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

type imageGenerationResponse struct {
	Data []struct {
		B64JSON string `json:"b64_json"`
	} `json:"data"`
}

func (g *openAIGenerator) GenerateText(ctx context.Context, prompt string, asJSON bool) (string, error) {
	reqBody := chatCompletionRequest{
		Model:    g.cfg.Model,
		Messages: []aiChatMessage{{Role: "user", Content: prompt}},
	}
	if asJSON {
		reqBody.ResponseFormat = map[string]string{"type": "json_object"}
	}

	var result chatCompletionResponse
	if err := g.post(ctx, "/chat/completions", reqBody, &result); err != nil {
		return "", err
	}
	if result.Error != nil {
		return "", errors.New(result.Error.Message)
	}
	if len(result.Choices) == 0 {
		return "", errors.New("AI returned no choices")
	}
	return result.Choices[0].Message.Content, nil
}

func (g *openAIGenerator) GenerateImage(ctx context.Context, prompt string) ([]byte, error) {
	reqBody := map[string]interface{}{
		"model":           g.cfg.ImageModel,
		"prompt":          prompt,
		"n":               1,
		"response_format": "b64_json",
	}
	var result imageGenerationResponse
	if err := g.post(ctx, "/images/generations", reqBody, &result); err != nil {
		return nil, err
	}
	if len(result.Data) == 0 || result.Data[0].B64JSON == "" {
		return nil, errors.New("AI returned no image")
	}
	return base64.StdEncoding.DecodeString(result.Data[0].B64JSON)
}

func (g *openAIGenerator) post(ctx context.Context, endpoint string, body, out interface{}) error {
	jsonData, err := json.Marshal(body)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, strings.TrimSuffix(g.cfg.BaseURL, "/")+endpoint, bytes.NewBuffer(jsonData))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+g.cfg.APIKey)

	resp, err := g.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	respBody, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("AI API error (status %d): %s", resp.StatusCode, string(respBody))
	}
	return json.Unmarshal(respBody, out)
}
