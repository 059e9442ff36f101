// Package clock abstracts wall time so stored timestamps and draft expiry
// can be controlled in tests
package clock

import "time"

//go:generate mockgen -destination=mock/mock.go -package=mockclock github.com/KirkDiggler/rpg-sheet/internal/pkg/clock Clock

// Clock provides the current time
type Clock interface {
	Now() time.Time
}

type system struct{}

// Now returns the current UTC time
func (system) Now() time.Time {
	return time.Now().UTC()
}

// New returns a clock backed by the system time
func New() Clock {
	return system{}
}

// Unix returns the clock's current time in Unix seconds, the resolution
// sheets and drafts are stamped with
func Unix(c Clock) int64 {
	return c.Now().Unix()
}
