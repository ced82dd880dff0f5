package generate

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// GeminiConfig configures the Gemini REST client
type GeminiConfig struct {
	BaseURL    string
	APIKey     string
	HTTPClient *http.Client
}

// DefaultGeminiConfig returns defaults for the hosted API; the API key
// must still be supplied
func DefaultGeminiConfig() GeminiConfig {
	return GeminiConfig{
		BaseURL: "https://generativelanguage.googleapis.com",
		HTTPClient: &http.Client{
			Timeout: 60 * time.Second,
		},
	}
}

// GeminiClient is a minimal client for the generateContent endpoint
// with JSON-schema constrained responses
type GeminiClient struct {
	cfg GeminiConfig
}

// NewGeminiClient builds a Gemini client
func NewGeminiClient(cfg GeminiConfig) (*GeminiClient, error) {
	if strings.TrimSpace(cfg.APIKey) == "" {
		return nil, fmt.Errorf("api key is required")
	}
	if strings.TrimSpace(cfg.BaseURL) == "" {
		cfg.BaseURL = DefaultGeminiConfig().BaseURL
	}
	if cfg.HTTPClient == nil {
		cfg.HTTPClient = DefaultGeminiConfig().HTTPClient
	}
	return &GeminiClient{cfg: cfg}, nil
}

// Part is one piece of user content: text or inline image data
type Part struct {
	Text       string      `json:"text,omitempty"`
	InlineData *InlineData `json:"inlineData,omitempty"`
}

// InlineData is a base64-encoded image part
type InlineData struct {
	MIMEType string `json:"mimeType"`
	Data     string `json:"data"`
}

type generateRequest struct {
	SystemInstruction *content         `json:"systemInstruction,omitempty"`
	Contents          []content        `json:"contents"`
	GenerationConfig  generationConfig `json:"generationConfig"`
}

type content struct {
	Role  string `json:"role,omitempty"`
	Parts []Part `json:"parts"`
}

type generationConfig struct {
	ResponseMIMEType string         `json:"responseMimeType"`
	ResponseSchema   map[string]any `json:"responseSchema"`
}

type generateResponse struct {
	Candidates []struct {
		Content struct {
			Parts []struct {
				Text string `json:"text"`
			} `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

// GenerateJSON sends a single-turn request and decodes the
// schema-constrained JSON reply into out.
func (c *GeminiClient) GenerateJSON(ctx context.Context, modelName, system string, parts []Part, schema map[string]any, out any) error {
	if strings.TrimSpace(modelName) == "" {
		return fmt.Errorf("model is required")
	}
	if len(parts) == 0 {
		return fmt.Errorf("at least one content part is required")
	}

	reqBody := generateRequest{
		Contents: []content{{Role: "user", Parts: parts}},
		GenerationConfig: generationConfig{
			ResponseMIMEType: "application/json",
			ResponseSchema:   schema,
		},
	}
	if system != "" {
		reqBody.SystemInstruction = &content{Parts: []Part{{Text: system}}}
	}

	body, err := json.Marshal(reqBody)
	if err != nil {
		return fmt.Errorf("marshal generate request: %w", err)
	}

	url := fmt.Sprintf("%s/v1beta/models/%s:generateContent",
		strings.TrimSuffix(c.cfg.BaseURL, "/"), modelName)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build generate request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	// Credential material goes only in this header and is never echoed
	// in errors or logs.
	req.Header.Set("x-goog-api-key", c.cfg.APIKey)

	res, err := c.cfg.HTTPClient.Do(req)
	if err != nil {
		return fmt.Errorf("generate request failed: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		errBody, readErr := io.ReadAll(io.LimitReader(res.Body, 4096))
		if readErr != nil {
			return fmt.Errorf("generate request status %d", res.StatusCode)
		}
		return fmt.Errorf("generate request status %d: %s", res.StatusCode, strings.TrimSpace(string(errBody)))
	}

	var payload generateResponse
	if err := json.NewDecoder(res.Body).Decode(&payload); err != nil {
		return fmt.Errorf("decode generate response: %w", err)
	}

	text := ""
	for _, cand := range payload.Candidates {
		for _, part := range cand.Content.Parts {
			if strings.TrimSpace(part.Text) != "" {
				text = part.Text
				break
			}
		}
		if text != "" {
			break
		}
	}
	if text == "" {
		return fmt.Errorf("generate response missing output text")
	}

	if err := json.Unmarshal([]byte(text), out); err != nil {
		return fmt.Errorf("decode structured output: %w", err)
	}
	return nil
}
