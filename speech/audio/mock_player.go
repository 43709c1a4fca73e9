package audio

import (
	"sync"
	"time"
)

// MockPlayer records play requests without touching a sound device. It
// satisfies speech.ClipPlayer and exists for tests and headless runs.
type MockPlayer struct {
	mu     sync.Mutex
	played []string

	// FailOn maps clip paths to the error PlayFile should return for them.
	FailOn map[string]error
	// Delay simulates clip duration; PlayFile blocks for it.
	Delay time.Duration
}

// NewMockPlayer creates an empty mock player.
func NewMockPlayer() *MockPlayer {
	return &MockPlayer{FailOn: make(map[string]error)}
}

// PlayFile records the path, blocks for the configured delay and returns
// the configured error, if any.
func (m *MockPlayer) PlayFile(path string) error {
	m.mu.Lock()
	m.played = append(m.played, path)
	err := m.FailOn[path]
	m.mu.Unlock()

	if m.Delay > 0 {
		time.Sleep(m.Delay)
	}
	return err
}

// Played returns a copy of the paths played so far, in order.
func (m *MockPlayer) Played() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]string, len(m.played))
	copy(out, m.played)
	return out
}

// Reset clears the recorded plays.
func (m *MockPlayer) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.played = nil
}
