// Package docgen produces artifact documentation with a thread-based AI
// assistant. A call truncates the payload, builds a prompt, drives one
// assistant run through a polling state machine and normalizes the reply,
// retrying the whole flow a bounded number of times.
package docgen

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"fluxera.app/api/common/logger"
)

type Generator interface {
	Generate(ctx context.Context, data json.RawMessage, name string) (string, error)
	Update(ctx context.Context, data json.RawMessage, name, current, instruction string) (string, error)
}

type Config struct {
	PollInterval time.Duration
	Timeout      time.Duration
	MaxAttempts  int
	RetryDelay   time.Duration
}

func DefaultConfig() Config {
	return Config{
		PollInterval: time.Second,
		Timeout:      30 * time.Second,
		MaxAttempts:  3,
		RetryDelay:   time.Second,
	}
}

type Option func(*Pipeline)

// WithClock replaces the wall clock and the sleep used between polls and retries.
func WithClock(now func() time.Time, sleep func(ctx context.Context, d time.Duration) error) Option {
	return func(p *Pipeline) {
		p.now = now
		p.sleep = sleep
	}
}

type Pipeline struct {
	assistant Assistant
	cfg       Config
	now       func() time.Time
	sleep     func(ctx context.Context, d time.Duration) error
}

func NewPipeline(assistant Assistant, cfg Config, opts ...Option) *Pipeline {
	if cfg.MaxAttempts < 1 {
		cfg.MaxAttempts = 1
	}
	p := &Pipeline{
		assistant: assistant,
		cfg:       cfg,
		now:       time.Now,
		sleep:     sleepContext,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

func (p *Pipeline) Generate(ctx context.Context, data json.RawMessage, name string) (string, error) {
	if p.assistant == nil {
		return "", ErrDisabled
	}
	sample, err := TruncateJSON(data)
	if err != nil {
		return "", err
	}
	prompt := generatePrompt(name, DescribeStructure(data), sample)

	return p.retry(ctx, "generate", func(int) time.Duration { return p.cfg.RetryDelay }, func(ctx context.Context) (string, error) {
		return p.run(ctx, prompt, "")
	})
}

func (p *Pipeline) Update(ctx context.Context, data json.RawMessage, name, current, instruction string) (string, error) {
	if p.assistant == nil {
		return "", ErrDisabled
	}
	sample, err := TruncateJSON(data)
	if err != nil {
		return "", err
	}
	prompt := updatePrompt(name, current, instruction, sample)

	backoff := func(attempt int) time.Duration {
		return p.cfg.RetryDelay * time.Duration(1<<(attempt-1))
	}
	return p.retry(ctx, "update", backoff, func(ctx context.Context) (string, error) {
		return p.run(ctx, prompt, updateInstructions)
	})
}

func (p *Pipeline) retry(ctx context.Context, op string, delay func(attempt int) time.Duration, fn func(ctx context.Context) (string, error)) (string, error) {
	var (
		last     error
		attempts int
	)
	for attempt := 1; attempt <= p.cfg.MaxAttempts; attempt++ {
		attempts = attempt
		sc := logger.StartSpan(ctx, "docgen."+op,
			trace.WithAttributes(attribute.Int("docgen.attempt", attempt)))
		text, err := fn(sc.Context())
		if err == nil {
			sc.End()
			return text, nil
		}
		sc.RecordError(err)
		sc.End()

		last = err
		slog.WarnContext(ctx, "documentation attempt failed",
			"op", op,
			"attempt", attempt,
			"max_attempts", p.cfg.MaxAttempts,
			"error", err,
		)

		if ctx.Err() != nil {
			break
		}
		if attempt < p.cfg.MaxAttempts {
			if err := p.sleep(ctx, delay(attempt)); err != nil {
				break
			}
		}
	}
	return "", &RetryError{Op: op, Attempts: attempts, Last: last}
}

func (p *Pipeline) run(ctx context.Context, prompt, instructions string) (string, error) {
	threadID, err := p.assistant.CreateThread(ctx)
	if err != nil {
		return "", err
	}
	if err := p.assistant.AddMessage(ctx, threadID, prompt); err != nil {
		return "", err
	}
	runID, err := p.assistant.CreateRun(ctx, threadID, instructions)
	if err != nil {
		return "", err
	}

	machine := newRunMachine(p.cfg.Timeout)
	start := p.now()
	for {
		if machine.Tick(p.now().Sub(start)) == RunTimedOut {
			return "", machine.Err()
		}

		status, err := p.assistant.RunStatus(ctx, threadID, runID)
		if err != nil {
			return "", err
		}

		switch machine.Observe(status) {
		case RunCompleted:
			reply, err := p.assistant.LatestReply(ctx, threadID)
			if err != nil {
				return "", err
			}
			text := Normalize(reply)
			if text == "" {
				return "", fmt.Errorf("%w: empty reply", ErrInvalidResponseFormat)
			}
			return text, nil
		case RunFailed:
			return "", machine.Err()
		}

		if err := p.sleep(ctx, p.cfg.PollInterval); err != nil {
			return "", err
		}
	}
}

func sleepContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// IsRunFailure reports whether err came from a run that ended as failed, cancelled or expired.
func IsRunFailure(err error) bool {
	var runErr *AssistantRunFailedError
	return errors.As(err, &runErr)
}
