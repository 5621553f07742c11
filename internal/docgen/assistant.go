package docgen

import (
	"context"
	"fmt"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

// Assistant is the thread-based protocol the pipeline drives: open a thread,
// post the prompt, start a run, poll it, then read the reply.
type Assistant interface {
	CreateThread(ctx context.Context) (string, error)
	AddMessage(ctx context.Context, threadID, content string) error
	CreateRun(ctx context.Context, threadID, instructions string) (string, error)
	RunStatus(ctx context.Context, threadID, runID string) (string, error)
	// LatestReply returns the text of the newest assistant message.
	LatestReply(ctx context.Context, threadID string) (string, error)
}

type AssistantConfig struct {
	APIKey      string
	BaseURL     string
	AssistantID string
}

type openaiAssistant struct {
	client      openai.Client
	assistantID string
}

func NewOpenAIAssistant(cfg AssistantConfig) (Assistant, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("API key is required")
	}
	if cfg.AssistantID == "" {
		return nil, fmt.Errorf("assistant ID is required")
	}

	opts := []option.RequestOption{
		option.WithAPIKey(cfg.APIKey),
	}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.BaseURL))
	}

	return &openaiAssistant{
		client:      openai.NewClient(opts...),
		assistantID: cfg.AssistantID,
	}, nil
}

func (a *openaiAssistant) CreateThread(ctx context.Context) (string, error) {
	thread, err := a.client.Beta.Threads.New(ctx, openai.BetaThreadNewParams{})
	if err != nil {
		return "", fmt.Errorf("creating thread: %w", err)
	}
	return thread.ID, nil
}

func (a *openaiAssistant) AddMessage(ctx context.Context, threadID, content string) error {
	_, err := a.client.Beta.Threads.Messages.New(ctx, threadID, openai.BetaThreadMessageNewParams{
		Role: openai.BetaThreadMessageNewParamsRoleUser,
		Content: openai.BetaThreadMessageNewParamsContentUnion{
			OfString: openai.String(content),
		},
	})
	if err != nil {
		return fmt.Errorf("adding message: %w", err)
	}
	return nil
}

func (a *openaiAssistant) CreateRun(ctx context.Context, threadID, instructions string) (string, error) {
	params := openai.BetaThreadRunNewParams{
		AssistantID: a.assistantID,
	}
	if instructions != "" {
		params.Instructions = openai.String(instructions)
	}
	run, err := a.client.Beta.Threads.Runs.New(ctx, threadID, params)
	if err != nil {
		return "", fmt.Errorf("creating run: %w", err)
	}
	return run.ID, nil
}

func (a *openaiAssistant) RunStatus(ctx context.Context, threadID, runID string) (string, error) {
	run, err := a.client.Beta.Threads.Runs.Get(ctx, threadID, runID)
	if err != nil {
		return "", fmt.Errorf("retrieving run: %w", err)
	}
	return string(run.Status), nil
}

func (a *openaiAssistant) LatestReply(ctx context.Context, threadID string) (string, error) {
	page, err := a.client.Beta.Threads.Messages.List(ctx, threadID, openai.BetaThreadMessageListParams{
		Order: openai.BetaThreadMessageListParamsOrderDesc,
	})
	if err != nil {
		return "", fmt.Errorf("listing messages: %w", err)
	}

	var newest *openai.Message
	for i := range page.Data {
		msg := &page.Data[i]
		if msg.Role != openai.MessageRoleAssistant {
			continue
		}
		if newest == nil || msg.CreatedAt > newest.CreatedAt {
			newest = msg
		}
	}
	if newest == nil || len(newest.Content) == 0 || newest.Content[0].Type != "text" {
		return "", ErrInvalidResponseFormat
	}
	return newest.Content[0].Text.Value, nil
}
