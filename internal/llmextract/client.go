// Package llmextract adapts a Claude messages endpoint into the pipeline's
// best-effort LlmExtractor fallback: a constrained-JSON extraction used only
// when the rule-based extractor's confidence score is too low.
package llmextract

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/pkg/errors"
	"golang.org/x/time/rate"
)

const (
	apiEndpoint = "https://api.anthropic.com/v1/messages"
	apiVersion  = "2023-06-01"
	defaultModel = "claude-sonnet-4-20250514"

	// requestTimeout bounds the LLM suspension point per the pipeline's
	// resource model: a fault or expiry always degrades to an empty record,
	// never blocks the caller indefinitely.
	requestTimeout = 8 * time.Second

	// requestsPerSecond caps sustained calls to the LLM API across every
	// concurrent upload, independent of how many uploads are in flight.
	requestsPerSecond = 2
	burstSize         = 5
)

// Client is a minimal Claude Messages API client scoped to a single
// constrained-JSON extraction call.
type Client struct {
	apiKey     string
	model      string
	endpoint   string
	httpClient *http.Client
	limiter    *rate.Limiter
}

// NewClient builds a Client. An empty model falls back to defaultModel.
func NewClient(apiKey, model string) *Client {
	if model == "" {
		model = defaultModel
	}
	return &Client{
		apiKey:   apiKey,
		model:    model,
		endpoint: apiEndpoint,
		httpClient: &http.Client{
			Timeout: requestTimeout,
		},
		limiter: rate.NewLimiter(rate.Limit(requestsPerSecond), burstSize),
	}
}

type claudeRequest struct {
	Model       string    `json:"model"`
	MaxTokens   int       `json:"max_tokens"`
	Temperature float64   `json:"temperature"`
	Messages    []message `json:"messages"`
}

type message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type claudeResponse struct {
	Content []content `json:"content"`
}

type content struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

// complete sends a single low-temperature user message and returns the raw
// text of the model's reply.
func (c *Client) complete(ctx context.Context, prompt string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	if err := c.limiter.Wait(ctx); err != nil {
		return "", errors.Wrap(err, "rate limiter wait failed")
	}

	reqBody, err := json.Marshal(claudeRequest{
		Model:       c.model,
		MaxTokens:   4096,
		Temperature: 0.1,
		Messages:    []message{{Role: "user", Content: prompt}},
	})
	if err != nil {
		return "", errors.Wrap(err, "failed to marshal request")
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(reqBody))
	if err != nil {
		return "", errors.Wrap(err, "failed to create HTTP request")
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("X-Api-Key", c.apiKey)
	httpReq.Header.Set("Anthropic-Version", apiVersion)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return "", errors.Wrap(err, "HTTP request failed")
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", errors.Wrap(err, "failed to read response body")
	}
	if resp.StatusCode != http.StatusOK {
		return "", errors.Errorf("LLM API request failed with status %d: %s", resp.StatusCode, string(respBody))
	}

	var claudeResp claudeResponse
	if err := json.Unmarshal(respBody, &claudeResp); err != nil {
		return "", errors.Wrapf(err, "failed to parse LLM response: %s", string(respBody))
	}
	if len(claudeResp.Content) == 0 {
		return "", errors.New("no content in LLM response")
	}
	return claudeResp.Content[0].Text, nil
}

// stripMarkdownFences removes a leading ```json fence and any prefatory
// commentary before the first JSON object, mirroring what the model
// occasionally emits around an otherwise-valid JSON body.
func stripMarkdownFences(text string) string {
	cleaned := text

	codeBlockStart := indexOf(cleaned, "```json")
	jsonStart := -1
	for i, ch := range cleaned {
		if ch == '{' {
			jsonStart = i
			break
		}
	}

	switch {
	case codeBlockStart >= 0:
		cleaned = cleaned[codeBlockStart:]
	case jsonStart > 0:
		cleaned = cleaned[jsonStart:]
	}

	if len(cleaned) >= 7 && cleaned[:7] == "```json" {
		start := 7
		for start < len(cleaned) && cleaned[start] != '\n' {
			start++
		}
		start++
		end := len(cleaned)
		if end >= 3 && cleaned[end-3:] == "```" {
			end -= 3
		}
		for end > 0 && (cleaned[end-1] == '\n' || cleaned[end-1] == ' ' || cleaned[end-1] == '\r') {
			end--
		}
		cleaned = cleaned[start:end]
	}
	return cleaned
}

func indexOf(s, substr string) int {
	if len(substr) > len(s) {
		return -1
	}
	for i := 0; i <= len(s)-len(substr); i++ {
		if s[i:i+len(substr)] == substr {
			return i
		}
	}
	return -1
}
