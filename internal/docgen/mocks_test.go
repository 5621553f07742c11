package docgen_test

import (
	"context"
	"fmt"
	"time"
)

type mockAssistant struct {
	createThreadFn func(ctx context.Context) (string, error)
	addMessageFn   func(ctx context.Context, threadID, content string) error
	createRunFn    func(ctx context.Context, threadID, instructions string) (string, error)
	runStatusFn    func(ctx context.Context, threadID, runID string) (string, error)
	latestReplyFn  func(ctx context.Context, threadID string) (string, error)

	threads      int
	statusPolls  int
	prompts      []string
	instructions []string
}

func (m *mockAssistant) CreateThread(ctx context.Context) (string, error) {
	m.threads++
	if m.createThreadFn != nil {
		return m.createThreadFn(ctx)
	}
	return fmt.Sprintf("thread_%d", m.threads), nil
}

func (m *mockAssistant) AddMessage(ctx context.Context, threadID, content string) error {
	m.prompts = append(m.prompts, content)
	if m.addMessageFn != nil {
		return m.addMessageFn(ctx, threadID, content)
	}
	return nil
}

func (m *mockAssistant) CreateRun(ctx context.Context, threadID, instructions string) (string, error) {
	m.instructions = append(m.instructions, instructions)
	if m.createRunFn != nil {
		return m.createRunFn(ctx, threadID, instructions)
	}
	return "run_" + threadID, nil
}

func (m *mockAssistant) RunStatus(ctx context.Context, threadID, runID string) (string, error) {
	m.statusPolls++
	if m.runStatusFn != nil {
		return m.runStatusFn(ctx, threadID, runID)
	}
	return "completed", nil
}

func (m *mockAssistant) LatestReply(ctx context.Context, threadID string) (string, error) {
	if m.latestReplyFn != nil {
		return m.latestReplyFn(ctx, threadID)
	}
	return "OVERVIEW\n• generated", nil
}

// fakeClock advances only when the pipeline sleeps.
type fakeClock struct {
	now    time.Time
	sleeps []time.Duration
}

func (c *fakeClock) Now() time.Time {
	return c.now
}

func (c *fakeClock) Sleep(_ context.Context, d time.Duration) error {
	c.sleeps = append(c.sleeps, d)
	c.now = c.now.Add(d)
	return nil
}
