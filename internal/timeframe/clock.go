package timeframe

import "time"

// Clock supplies the current instant so callers can pin "now" in tests
// instead of reading the ambient system time.
type Clock interface {
	Now() time.Time
}

type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now()
}

// FixedClock always reports the same instant.
type FixedClock struct {
	Instant time.Time
}

func (clock FixedClock) Now() time.Time {
	return clock.Instant
}
