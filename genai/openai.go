package genai

import (
	"context"
	"fmt"
	"time"

	openai "github.com/sashabaranov/go-openai"

	"github.com/Vk18phoenix/friday"
)

const systemPrompt = "You are FRIDAY, a warm, concise personal assistant. " +
	"Answer in the language the user writes in."

// OpenAIConfig configures the OpenAI-compatible generation adapter.
type OpenAIConfig struct {
	APIKey  string
	BaseURL string // optional, for OpenAI-compatible providers
	Model   string

	// Context bounds applied to the prior conversation before building the
	// prompt. Zero values fall back to the defaults below.
	TokenLimit   int
	MessageLimit int

	// Timeout for one generation call. Zero falls back to the default.
	Timeout time.Duration
}

const (
	defaultTokenLimit   = 3000
	defaultMessageLimit = 20
	defaultTimeout      = 60 * time.Second
)

// OpenAI implements Generator against any OpenAI-compatible chat API.
type OpenAI struct {
	client       *openai.Client
	model        string
	tokenLimit   int
	messageLimit int
	timeout      time.Duration
}

// NewOpenAI creates the adapter.
func NewOpenAI(cfg OpenAIConfig) (*OpenAI, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("openai API key is required")
	}
	if cfg.Model == "" {
		cfg.Model = openai.GPT4oMini
	}
	if cfg.TokenLimit <= 0 {
		cfg.TokenLimit = defaultTokenLimit
	}
	if cfg.MessageLimit <= 0 {
		cfg.MessageLimit = defaultMessageLimit
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultTimeout
	}

	clientConfig := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientConfig.BaseURL = cfg.BaseURL
	}

	return &OpenAI{
		client:       openai.NewClientWithConfig(clientConfig),
		model:        cfg.Model,
		tokenLimit:   cfg.TokenLimit,
		messageLimit: cfg.MessageLimit,
		timeout:      cfg.Timeout,
	}, nil
}

// Generate implements Generator.
func (g *OpenAI) Generate(ctx context.Context, text string, prior []friday.Message) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	prior = friday.TruncateHistory(prior, g.tokenLimit, g.messageLimit)

	messages := make([]openai.ChatCompletionMessage, 0, len(prior)+2)
	messages = append(messages, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleSystem,
		Content: systemPrompt,
	})
	for _, m := range prior {
		role := openai.ChatMessageRoleUser
		if m.Sender == friday.SenderAssistant {
			role = openai.ChatMessageRoleAssistant
		}
		messages = append(messages, openai.ChatCompletionMessage{
			Role:    role,
			Content: m.Text,
		})
	}
	messages = append(messages, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleUser,
		Content: text,
	})

	resp, err := g.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:    g.model,
		Messages: messages,
	})
	if err != nil {
		return "", fmt.Errorf("chat completion failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("empty response from model")
	}

	return resp.Choices[0].Message.Content, nil
}

// Compile-time check that OpenAI implements Generator
var _ Generator = (*OpenAI)(nil)
