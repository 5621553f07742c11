package docgen

import "time"

// RunState tracks one assistant run from submission to a terminal outcome.
type RunState string

const (
	RunSubmitted RunState = "submitted"
	RunPolling   RunState = "polling"
	RunCompleted RunState = "completed"
	RunFailed    RunState = "failed"
	RunTimedOut  RunState = "timed_out"
)

func (s RunState) Terminal() bool {
	return s == RunCompleted || s == RunFailed || s == RunTimedOut
}

// runMachine is the polling state machine. Tick is fed the elapsed time before
// each poll, Observe the status the poll returned. The deadline is checked on
// Tick, so a run that has exceeded the timeout is never polled again.
type runMachine struct {
	state   RunState
	timeout time.Duration
	status  string
}

func newRunMachine(timeout time.Duration) *runMachine {
	return &runMachine{state: RunSubmitted, timeout: timeout}
}

func (m *runMachine) Tick(elapsed time.Duration) RunState {
	if m.state.Terminal() {
		return m.state
	}
	if elapsed > m.timeout {
		m.state = RunTimedOut
		return m.state
	}
	m.state = RunPolling
	return m.state
}

func (m *runMachine) Observe(status string) RunState {
	if m.state.Terminal() {
		return m.state
	}
	m.status = status
	switch status {
	case "completed":
		m.state = RunCompleted
	case "failed", "cancelled", "expired":
		m.state = RunFailed
	default:
		m.state = RunPolling
	}
	return m.state
}

// Err converts a terminal non-success state into its error.
func (m *runMachine) Err() error {
	switch m.state {
	case RunTimedOut:
		return ErrTimedOut
	case RunFailed:
		return &AssistantRunFailedError{Status: m.status}
	}
	return nil
}
