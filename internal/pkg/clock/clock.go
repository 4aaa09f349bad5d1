// Package clock abstracts the wall clock so timestamps can be fixed in tests
package clock

import "time"

//go:generate mockgen -destination=mock/mock.go -package=mockclock github.com/KirkDiggler/rpg-rules/internal/pkg/clock Clock

// Clock provides the current time
type Clock interface {
	Now() time.Time
}

// Real implements Clock using the system time
type Real struct{}

// Now returns the current time
func (c *Real) Now() time.Time {
	return time.Now()
}

// New returns the system clock
func New() Clock {
	return &Real{}
}

// Millis returns c's current time as epoch milliseconds
func Millis(c Clock) int64 {
	return c.Now().UnixMilli()
}
