package llm

import (
	"context"
	"fmt"
	"time"

	openai "github.com/sashabaranov/go-openai"
)

// DefaultTimeout bounds a single completion call when the caller's context
// carries no deadline of its own.
const DefaultTimeout = 60 * time.Second

// OpenAI is a Completer backed by the OpenAI chat completion API. A custom
// base URL points it at any OpenAI-compatible server (Ollama, vLLM,
// LM Studio).
type OpenAI struct {
	client  *openai.Client
	model   string
	timeout time.Duration
}

// OpenAIOption configures an OpenAI client.
type OpenAIOption func(*OpenAI)

// WithTimeout overrides the per-call timeout. Values <= 0 keep the default.
func WithTimeout(d time.Duration) OpenAIOption {
	return func(o *OpenAI) {
		if d > 0 {
			o.timeout = d
		}
	}
}

// NewOpenAI creates an OpenAI-compatible Completer. baseURL may be empty
// for the hosted OpenAI API; apiKey may be empty for local servers that
// skip authentication.
func NewOpenAI(baseURL, apiKey, model string, opts ...OpenAIOption) *OpenAI {
	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}
	o := &OpenAI{
		client:  openai.NewClientWithConfig(cfg),
		model:   model,
		timeout: DefaultTimeout,
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// Model returns the configured model name.
func (o *OpenAI) Model() string {
	return o.model
}

// Complete performs a single chat completion. There are no retries: the
// caller decides whether the question is worth asking again.
func (o *OpenAI) Complete(ctx context.Context, messages []Message, opts ...CompletionOption) (*CompletionResponse, error) {
	req := NewCompletionRequest(messages, opts...)

	apiReq := openai.ChatCompletionRequest{
		Model:    o.model,
		Messages: make([]openai.ChatCompletionMessage, 0, len(req.Messages)),
	}
	for _, m := range req.Messages {
		apiReq.Messages = append(apiReq.Messages, openai.ChatCompletionMessage{
			Role:    string(m.Role),
			Content: m.Content,
		})
	}
	if req.Temperature != nil {
		apiReq.Temperature = float32(*req.Temperature)
	}
	if req.MaxTokens != nil {
		apiReq.MaxTokens = *req.MaxTokens
	}
	if req.TopP != nil {
		apiReq.TopP = float32(*req.TopP)
	}
	if len(req.Stop) > 0 {
		apiReq.Stop = req.Stop
	}

	if _, ok := ctx.Deadline(); !ok {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, o.timeout)
		defer cancel()
	}

	resp, err := o.client.CreateChatCompletion(ctx, apiReq)
	if err != nil {
		return nil, fmt.Errorf("chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("chat completion: empty choice list")
	}

	choice := resp.Choices[0]
	return &CompletionResponse{
		Content:      choice.Message.Content,
		FinishReason: string(choice.FinishReason),
		Usage: TokenUsage{
			InputTokens:  resp.Usage.PromptTokens,
			OutputTokens: resp.Usage.CompletionTokens,
			TotalTokens:  resp.Usage.TotalTokens,
		},
	}, nil
}
