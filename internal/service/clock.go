package service

import "time"

// Clock abstracts "today" so the past-date gate in the booking committer
// is testable against fixed dates.
type Clock interface {
	Now() time.Time
}

type RealClock struct{}

func (RealClock) Now() time.Time { return time.Now() }
