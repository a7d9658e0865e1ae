package services

import "time"

// Clock supplies the current instant to date-sensitive logic
type Clock interface {
	Now() time.Time
	// Today is the current calendar day, normalized like stored hearing dates
	Today() time.Time
}

// SystemClock reads the wall clock. Location decides which calendar day "today" is.
type SystemClock struct {
	Location *time.Location
}

func (c SystemClock) Now() time.Time {
	return time.Now().UTC()
}

func (c SystemClock) Today() time.Time {
	loc := c.Location
	if loc == nil {
		loc = time.UTC
	}
	return NormalizeDate(time.Now().In(loc))
}

// FixedClock always reports the same instant
type FixedClock struct {
	At time.Time
}

func (c FixedClock) Now() time.Time {
	return c.At.UTC()
}

func (c FixedClock) Today() time.Time {
	return NormalizeDate(c.At)
}
