package mouse

import (
	"sync"

	"github.com/ayusman/skytouch/internal/gesture"
)

// MockController records applied results for tests.
type MockController struct {
	mu      sync.Mutex
	applied []gesture.Result
	resets  int
	cfg     Config
	err     error
}

// NewMockController creates a new MockController instance.
func NewMockController() *MockController {
	return &MockController{}
}

// SetError sets the error returned by Apply.
func (m *MockController) SetError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.err = err
}

// Apply records the result.
func (m *MockController) Apply(res gesture.Result) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	m.applied = append(m.applied, res)
	return nil
}

// Reset counts baseline resets.
func (m *MockController) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.resets++
}

// UpdateConfig stores the settings.
func (m *MockController) UpdateConfig(cfg Config) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.cfg = cfg
}

// Applied returns a copy of the recorded results.
func (m *MockController) Applied() []gesture.Result {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]gesture.Result, len(m.applied))
	copy(out, m.applied)
	return out
}

// Resets returns how many times Reset was called.
func (m *MockController) Resets() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.resets
}

// Config returns the last settings passed to UpdateConfig.
func (m *MockController) Config() Config {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.cfg
}
