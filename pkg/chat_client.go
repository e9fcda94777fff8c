package pkg

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	"github.com/ezeflt/horizon-ai/errs"
)

const (
	// DefaultModel is used when no model is configured.
	DefaultModel = "google/gemini-2.0-flash-exp:free"

	// DefaultReferer is sent as HTTP-Referer when none is configured.
	DefaultReferer = "http://localhost:3000"

	appTitle = "Horizon AI Chat"

	// maxAttempts bounds retries on rate limits and transport failures.
	maxAttempts = 3

	emptyReplySentinel = "No response generated."
)

// ChatConfig holds the completion endpoint settings. EndpointURL and
// APIKey are required; Model and Referer fall back to defaults.
type ChatConfig struct {
	EndpointURL string
	APIKey      string
	Model       string
	Referer     string
}

type RequestMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type ResponseMessage struct {
	Role    string `json:"role,omitempty"`
	Content string `json:"content"`
}

type ChatCompletionRequest struct {
	Model    string           `json:"model"`
	Messages []RequestMessage `json:"messages"`
}

type ChatChoice struct {
	Index        uint32           `json:"index"`
	Message      *ResponseMessage `json:"message"`
	FinishReason string           `json:"finish_reason,omitempty"`
}

type ChatCompletionResponse struct {
	ID      string       `json:"id,omitempty"`
	Model   string       `json:"model,omitempty"`
	Choices []ChatChoice `json:"choices"`
}

// ChatClient calls the remote chat-completion endpoint.
type ChatClient struct {
	client   *http.Client
	endpoint string
	apiKey   string
	model    string
	referer  string

	// sleep is swapped out in tests to avoid real backoff waits.
	sleep func(time.Duration)
}

// NewChatClient validates the configuration and builds a client.
func NewChatClient(cfg ChatConfig) (*ChatClient, error) {
	if cfg.EndpointURL == "" {
		return nil, errs.New(errs.KindConfiguration, "chat endpoint URL is not set")
	}
	if cfg.APIKey == "" {
		return nil, errs.New(errs.KindConfiguration, "chat API key is not set")
	}
	model := cfg.Model
	if model == "" {
		model = DefaultModel
	}
	referer := cfg.Referer
	if referer == "" {
		referer = DefaultReferer
	}
	return &ChatClient{
		client:   &http.Client{},
		endpoint: cfg.EndpointURL,
		apiKey:   cfg.APIKey,
		model:    model,
		referer:  referer,
		sleep:    time.Sleep,
	}, nil
}

// Model returns the configured model identifier.
func (c *ChatClient) Model() string {
	return c.model
}

func (c *ChatClient) post(ctx context.Context, payload []byte) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %v", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("HTTP-Referer", c.referer)
	req.Header.Set("X-Title", appTitle)

	return c.client.Do(req)
}

// retryDelay returns the wait before attempt+1: 2s after the first
// attempt, 4s after the second.
func retryDelay(attempt int) time.Duration {
	return time.Duration(1<<uint(attempt)) * time.Second
}

// CreateChatCompletion sends the message list and returns the assistant
// reply text. HTTP 429 and transport failures are retried with
// exponential backoff up to maxAttempts; any other non-2xx status is
// terminal.
func (c *ChatClient) CreateChatCompletion(ctx context.Context, messages []RequestMessage) (string, error) {
	reqBody := ChatCompletionRequest{
		Model:    c.model,
		Messages: messages,
	}
	payload, err := json.Marshal(reqBody)
	if err != nil {
		return "", errs.Wrap(errs.KindRemote, "failed to marshal chat request", err)
	}

	var resp *http.Response
	for attempt := 1; ; attempt++ {
		resp, err = c.post(ctx, payload)
		if err != nil {
			if attempt >= maxAttempts {
				return "", errs.Wrap(errs.KindRemote, "chat request failed", err)
			}
			log.Printf("chat request failed, retrying (attempt %d/%d, model=%s): %v", attempt, maxAttempts, c.model, err)
			c.sleep(retryDelay(attempt))
			continue
		}
		if resp.StatusCode == http.StatusTooManyRequests {
			io.Copy(io.Discard, resp.Body)
			resp.Body.Close()
			if attempt >= maxAttempts {
				return "", errs.New(errs.KindServiceOverloaded, "chat service is rate limited, try again shortly")
			}
			log.Printf("chat service rate limited, retrying (attempt %d/%d, model=%s)", attempt, maxAttempts, c.model)
			c.sleep(retryDelay(attempt))
			continue
		}
		break
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", errs.Wrap(errs.KindRemote, "failed to read chat response", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", errs.Newf(errs.KindRemote, "chat endpoint returned status %d: %s", resp.StatusCode, truncate(string(body), 400))
	}

	var parsed ChatCompletionResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return "", errs.Newf(errs.KindMalformedResponse, "failed to parse chat response: %s", truncate(string(body), 400))
	}
	if len(parsed.Choices) == 0 || parsed.Choices[0].Message == nil {
		return "", errs.New(errs.KindMalformedResponse, "chat response contains no completion choice")
	}

	content := parsed.Choices[0].Message.Content
	if content == "" {
		return emptyReplySentinel, nil
	}
	return content, nil
}

func truncate(s string, maxChars int) string {
	runes := []rune(s)
	if len(runes) <= maxChars {
		return s
	}
	return string(runes[:maxChars])
}
