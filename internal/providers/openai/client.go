package openai

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/vtopia/nft-assistant/internal/adapter"
	"github.com/vtopia/nft-assistant/internal/ratelimit"
)

const PROVIDER_NAME = "openai"

// Message roles
const (
	ROLE_SYSTEM    = "system"
	ROLE_USER      = "user"
	ROLE_ASSISTANT = "assistant"
)

var (
	ErrNoAPIKey  = errors.New("no API key provided")
	ErrNoChoices = errors.New("chat completion returned no choices")
)

// FunctionCall is a function invocation requested by the model.
// Arguments is a JSON object encoded as a string.
type FunctionCall struct {
	Name      string `json:"name"`
	Arguments string `json:"arguments"`
}

// Message is a single chat message
type Message struct {
	Role         string        `json:"role"`
	Content      string        `json:"content"`
	FunctionCall *FunctionCall `json:"function_call,omitempty"`
}

// FunctionDefinition describes a function the model may call.
// Parameters is a JSON schema object.
type FunctionDefinition struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Parameters  json.RawMessage `json:"parameters"`
}

// ChatRequest is the input of a chat completion
type ChatRequest struct {
	Messages    []Message
	Functions   []FunctionDefinition
	Temperature *float64
}

type chatCompletionRequest struct {
	Model       string               `json:"model"`
	Messages    []Message            `json:"messages"`
	Functions   []FunctionDefinition `json:"functions,omitempty"`
	Temperature *float64             `json:"temperature,omitempty"`
}

type chatCompletionResponse struct {
	Choices []struct {
		Message      Message `json:"message"`
		FinishReason string  `json:"finish_reason"`
	} `json:"choices"`
}

// Client defines the interface for OpenAI client operations to enable mocking
//
//go:generate mockgen -source=client.go -destination=../../mocks/openai_client.go -package=mocks -mock_names=Client=MockOpenAIClient
type Client interface {
	// ChatCompletion sends the conversation and returns the first choice
	ChatCompletion(ctx context.Context, req ChatRequest) (*Message, error)
}

// OpenAIClient implements OpenAI client
type OpenAIClient struct {
	httpClient     adapter.HTTPClient
	rateLimitProxy ratelimit.Proxy
	apiURL         string
	apiKey         string
	model          string
	json           adapter.JSON
}

// NewClient creates a new OpenAI client
func NewClient(httpClient adapter.HTTPClient, rateLimitProxy ratelimit.Proxy, apiURL string, apiKey string, model string, json adapter.JSON) Client {
	return &OpenAIClient{
		httpClient:     httpClient,
		rateLimitProxy: rateLimitProxy,
		apiURL:         strings.TrimRight(apiURL, "/"),
		apiKey:         apiKey,
		model:          model,
		json:           json,
	}
}

// ChatCompletion sends the conversation and returns the first choice
func (c *OpenAIClient) ChatCompletion(ctx context.Context, req ChatRequest) (*Message, error) {
	if c.apiKey == "" {
		return nil, ErrNoAPIKey
	}

	body, err := c.json.Marshal(chatCompletionRequest{
		Model:       c.model,
		Messages:    req.Messages,
		Functions:   req.Functions,
		Temperature: req.Temperature,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	url := c.apiURL + "/chat/completions"
	headers := map[string]string{
		"Authorization": "Bearer " + c.apiKey,
	}

	respBody, err := ratelimit.Request(ctx, c.rateLimitProxy, PROVIDER_NAME, func(ctx context.Context) ([]byte, error) {
		return c.httpClient.PostBytes(ctx, url, headers, body)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to call OpenAI API: %w", err)
	}

	var resp chatCompletionResponse
	if err := c.json.Unmarshal(respBody, &resp); err != nil {
		return nil, fmt.Errorf("failed to unmarshal response: %w", err)
	}

	if len(resp.Choices) == 0 {
		return nil, ErrNoChoices
	}

	msg := resp.Choices[0].Message
	return &msg, nil
}
