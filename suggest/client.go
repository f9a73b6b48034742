// Package suggest talks to the OpenAI chat completions API to propose
// function names and commented renditions of function bodies. It uses
// the REST API directly over net/http, no SDK.
package suggest

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

const (
	defaultBaseURL     = "https://api.openai.com/v1/chat/completions"
	defaultModel       = "gpt-4"
	defaultMaxTokens   = 8192
	defaultTemperature = 0.2

	// marker is what the model is asked to put in front of the
	// suggested name so it can be picked out of a chatty reply.
	marker = ">> "
)

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	MaxTokens   int           `json:"max_tokens,omitempty"`
	Temperature float64       `json:"temperature"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResponse struct {
	Choices []chatChoice `json:"choices"`
	Error   *chatError   `json:"error,omitempty"`
}

type chatChoice struct {
	Message      chatMessage `json:"message"`
	FinishReason string      `json:"finish_reason"`
}

type chatError struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

// Options configures a Client. Zero values fall back to the package
// defaults.
type Options struct {
	APIKey      string
	Model       string
	BaseURL     string
	MaxTokens   int
	Temperature float64
	Log         logrus.FieldLogger
}

// Client calls the chat completions endpoint. It is safe for
// concurrent use.
type Client struct {
	httpClient  *http.Client
	apiKey      string
	model       string
	baseURL     string
	maxTokens   int
	temperature float64
	log         logrus.FieldLogger
}

// NewClient builds a Client from opts, reading OPENAI_API_KEY when no
// key is given.
func NewClient(opts Options) (*Client, error) {
	if opts.APIKey == "" {
		opts.APIKey = os.Getenv("OPENAI_API_KEY")
	}
	if opts.APIKey == "" {
		return nil, fmt.Errorf("openai: API key is missing (OPENAI_API_KEY)")
	}
	if opts.Model == "" {
		opts.Model = defaultModel
	}
	if opts.BaseURL == "" {
		opts.BaseURL = defaultBaseURL
	}
	if opts.MaxTokens == 0 {
		opts.MaxTokens = defaultMaxTokens
	}
	if opts.Temperature == 0 {
		opts.Temperature = defaultTemperature
	}
	if opts.Log == nil {
		log := logrus.New()
		log.SetLevel(logrus.WarnLevel)
		opts.Log = log
	}
	return &Client{
		httpClient:  &http.Client{Timeout: 120 * time.Second},
		apiKey:      opts.APIKey,
		model:       opts.Model,
		baseURL:     opts.BaseURL,
		maxTokens:   opts.MaxTokens,
		temperature: opts.Temperature,
		log:         opts.Log,
	}, nil
}

// SuggestName asks the model for a better name for the function given
// as source. ok is false when the function was over the token budget
// and the call was skipped.
func (c *Client) SuggestName(ctx context.Context, name, source string) (suggested string, ok bool, err error) {
	budget := int(float64(len(source))*1.4 + 20)
	if budget > c.maxTokens {
		c.log.WithField("function", name).Warn("function is too big to suggest a name for")
		return "", false, nil
	}

	prompt := fmt.Sprintf("Can you please suggest a better name for the following JavaScript function? "+
		"Please precede the suggested name with '%s'.\n%s\n", marker, source)

	c.log.WithField("function", name).Info("requesting name suggestion")
	reply, err := c.chat(ctx, prompt, budget)
	if err != nil {
		return "", false, err
	}

	// The model tends to restate the marker while thinking out loud;
	// the last occurrence precedes the actual answer.
	idx := strings.LastIndex(reply, marker)
	if idx == -1 {
		return "", false, fmt.Errorf("openai: no suggested name for %s in reply: %s", name, reply)
	}
	fields := strings.Fields(reply[idx+len(marker):])
	if len(fields) == 0 {
		return "", false, fmt.Errorf("openai: empty suggested name for %s in reply: %s", name, reply)
	}
	return strings.Trim(fields[0], "`'\"()"), true, nil
}

// Describe asks the model for a commented rendition of the function.
// ok is false when the function was over the token budget and the call
// was skipped.
func (c *Client) Describe(ctx context.Context, name, source string) (revised string, ok bool, err error) {
	budget := int(float64(len(source)) * 2.6)
	if budget > c.maxTokens {
		c.log.WithField("function", name).Warn("function is too big to add comments to")
		return "", false, nil
	}

	prompt := fmt.Sprintf("Can you please add comments to the following JavaScript function? "+
		"Include a few line comments and a header with a general description of the function, arguments, "+
		"and return value. Don't comment every line, and please ignore any nested functions.\n%s\n", source)

	c.log.WithField("function", name).Info("requesting comments")
	reply, err := c.chat(ctx, prompt, budget)
	if err != nil {
		return "", false, err
	}

	code, err := unfence(reply)
	if err != nil {
		return "", false, fmt.Errorf("openai: description of %s: %w", name, err)
	}
	return code, true, nil
}

// unfence extracts the body of the first ``` code fence. A reply with
// no fence is taken to be code as-is.
func unfence(reply string) (string, error) {
	start := strings.Index(reply, "```")
	if start == -1 {
		return reply, nil
	}
	nl := strings.Index(reply[start:], "\n")
	if nl == -1 {
		return "", fmt.Errorf("malformed code fence in reply: %s", reply)
	}
	open := start + nl + 1
	end := strings.Index(reply[open:], "```")
	if end == -1 {
		return "", fmt.Errorf("malformed code fence in reply: %s", reply)
	}
	return reply[open : open+end], nil
}

func (c *Client) chat(ctx context.Context, prompt string, maxTokens int) (string, error) {
	payload := chatRequest{
		Model:       c.model,
		Messages:    []chatMessage{{Role: "user", Content: prompt}},
		MaxTokens:   maxTokens,
		Temperature: c.temperature,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("openai: marshaling request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("openai: creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("openai: request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("openai: reading response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("openai: API returned status %d: %s", resp.StatusCode, strings.TrimSpace(string(respBody)))
	}

	var parsed chatResponse
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		return "", fmt.Errorf("openai: parsing response: %w", err)
	}
	if parsed.Error != nil {
		return "", fmt.Errorf("openai: API error: %s - %s", parsed.Error.Type, parsed.Error.Message)
	}
	if len(parsed.Choices) == 0 {
		return "", fmt.Errorf("openai: returned no choices")
	}
	return parsed.Choices[0].Message.Content, nil
}
