package clock

import "time"

// Clock supplies the current time. Services take it as a dependency so
// elapsed-time arithmetic can be exercised with a fixed time in tests.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time {
	return time.Now().UTC()
}

// New returns a Clock backed by the system time in UTC.
func New() Clock {
	return systemClock{}
}
