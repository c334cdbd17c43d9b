package clock

import "time"

// Clock provides time operations that can be mocked for testing
type Clock interface {
	Now() time.Time
	// Sleep blocks for d; used only to pace terminal output
	Sleep(d time.Duration)
}

// RealClock implements Clock using the system clock
type RealClock struct{}

// New creates a new RealClock
func New() *RealClock {
	return &RealClock{}
}

// Now returns the current time
func (c *RealClock) Now() time.Time {
	return time.Now()
}

// Sleep pauses the calling goroutine
func (c *RealClock) Sleep(d time.Duration) {
	time.Sleep(d)
}
