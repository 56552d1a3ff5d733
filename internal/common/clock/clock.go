package clock

import "time"

//go:generate mockgen -package=mocks -destination=mocks/mock_clock.go github.com/KirkDiggler/roll20log/internal/common/clock Clock
type Clock interface {
	Now() time.Time
}

// DefaultClock implements the Clock interface using the system clock in UTC
type DefaultClock struct{}

// New returns the system clock
func New() *DefaultClock {
	return &DefaultClock{}
}

// Now returns the current time
func (c *DefaultClock) Now() time.Time {
	return time.Now().UTC()
}
