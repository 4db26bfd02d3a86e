package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/valyala/fasthttp"

	"seogen-go/pkg/logger"
)

// ClientConfig holds connection settings for the completion API.
type ClientConfig struct {
	BaseURL string        `json:"base_url"`
	APIKey  string        `json:"api_key"`
	Model   string        `json:"model"`
	Timeout time.Duration `json:"timeout"`
}

type httpCompletionClient struct {
	config ClientConfig
	client *fasthttp.Client
	log    *logger.Logger

	// Metrics
	totalRequests  uint64
	failedRequests uint64
	totalLatency   uint64
}

// NewHTTPCompletionClient creates a completion client against an
// OpenAI-compatible chat completions endpoint.
func NewHTTPCompletionClient(config ClientConfig) (CompletionClient, error) {
	if config.BaseURL == "" {
		return nil, fmt.Errorf("completion API base URL is required")
	}
	if config.Model == "" {
		config.Model = "gpt-4o-mini"
	}
	if config.Timeout == 0 {
		config.Timeout = 60 * time.Second
	}

	client := &fasthttp.Client{
		ReadTimeout:         config.Timeout,
		WriteTimeout:        config.Timeout,
		MaxConnsPerHost:     100,
		MaxIdleConnDuration: 90 * time.Second,
	}

	return &httpCompletionClient{
		config: config,
		client: client,
		log:    logger.Component("completion_client"),
	}, nil
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
	MaxTokens   int           `json:"max_tokens,omitempty"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
		Type    string `json:"type"`
	} `json:"error,omitempty"`
}

func (c *httpCompletionClient) Complete(ctx context.Context, creq CompletionRequest) (string, error) {
	atomic.AddUint64(&c.totalRequests, 1)
	start := time.Now()
	defer func() {
		atomic.AddUint64(&c.totalLatency, uint64(time.Since(start).Milliseconds()))
	}()

	if err := ctx.Err(); err != nil {
		return "", err
	}

	body, err := json.Marshal(chatRequest{
		Model: c.config.Model,
		Messages: []chatMessage{
			{Role: "system", Content: creq.SystemPrompt},
			{Role: "user", Content: creq.UserPrompt},
		},
		Temperature: creq.Temperature,
		MaxTokens:   creq.MaxTokens,
	})
	if err != nil {
		return "", fmt.Errorf("failed to marshal completion request: %w", err)
	}

	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseRequest(req)
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI(c.config.BaseURL + "/v1/chat/completions")
	req.Header.SetMethod(fasthttp.MethodPost)
	req.Header.SetContentType("application/json")
	req.Header.Set("Accept", "application/json")
	if c.config.APIKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.config.APIKey)
	}
	req.SetBody(body)

	if err := c.client.DoTimeout(req, resp, c.config.Timeout); err != nil {
		atomic.AddUint64(&c.failedRequests, 1)
		return "", fmt.Errorf("completion request failed: %w", err)
	}

	if resp.StatusCode() != fasthttp.StatusOK {
		atomic.AddUint64(&c.failedRequests, 1)
		return "", fmt.Errorf("completion API returned status %d: %s", resp.StatusCode(), string(resp.Body()))
	}

	var parsed chatResponse
	if err := json.Unmarshal(resp.Body(), &parsed); err != nil {
		atomic.AddUint64(&c.failedRequests, 1)
		return "", fmt.Errorf("failed to decode completion response: %w", err)
	}
	if parsed.Error != nil {
		atomic.AddUint64(&c.failedRequests, 1)
		return "", fmt.Errorf("completion API error: %s", parsed.Error.Message)
	}
	if len(parsed.Choices) == 0 || parsed.Choices[0].Message.Content == "" {
		atomic.AddUint64(&c.failedRequests, 1)
		return "", fmt.Errorf("completion API returned no content")
	}

	c.log.WithField("duration_ms", time.Since(start).Milliseconds()).Debug("Completion request finished")
	return parsed.Choices[0].Message.Content, nil
}
