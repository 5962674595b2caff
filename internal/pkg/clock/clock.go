package clock

import "time"

// Clock abstracts the wall clock so date-sensitive logic can run against
// a controlled time source in tests.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time {
	return time.Now()
}

// System returns a Clock backed by time.Now.
func System() Clock {
	return systemClock{}
}

// LocalDate renders t as a local calendar date (YYYY-MM-DD).
func LocalDate(t time.Time) string {
	return t.Format("2006-01-02")
}
