package mocks

import (
	"sync"
	"time"

	"snapquest/internal/dependencies/clock"
)

// MockClock is a mock implementation of Clock for testing
type MockClock struct {
	mu          sync.Mutex
	currentTime time.Time
	tickers     []*ManualTicker
}

// Ensure MockClock implements Clock
var _ clock.Clock = (*MockClock)(nil)

// NewMockClock creates a MockClock set to the given time
func NewMockClock(t time.Time) *MockClock {
	return &MockClock{currentTime: t}
}

// Now returns the mocked current time
func (c *MockClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.currentTime
}

// Advance moves the clock forward by the given duration
func (c *MockClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.currentTime = c.currentTime.Add(d)
}

// Set sets the clock to the given time
func (c *MockClock) Set(t time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.currentTime = t
}

// NewTicker returns a ManualTicker the test can fire explicitly
func (c *MockClock) NewTicker(d time.Duration) clock.Ticker {
	c.mu.Lock()
	defer c.mu.Unlock()
	t := &ManualTicker{ch: make(chan time.Time, 16)}
	c.tickers = append(c.tickers, t)
	return t
}

// FireTickers delivers one tick at the current mock time to every
// ticker handed out so far
func (c *MockClock) FireTickers() {
	c.mu.Lock()
	now := c.currentTime
	tickers := append([]*ManualTicker(nil), c.tickers...)
	c.mu.Unlock()
	for _, t := range tickers {
		t.Fire(now)
	}
}

// ManualTicker is a Ticker driven explicitly by the test
type ManualTicker struct {
	mu      sync.Mutex
	ch      chan time.Time
	stopped bool
}

// Chan returns the tick channel
func (t *ManualTicker) Chan() <-chan time.Time {
	return t.ch
}

// Stop marks the ticker stopped; further fires are dropped
func (t *ManualTicker) Stop() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.stopped = true
}

// Fire delivers a tick unless the ticker is stopped or the channel full
func (t *ManualTicker) Fire(now time.Time) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.stopped {
		return
	}
	select {
	case t.ch <- now:
	default:
	}
}
