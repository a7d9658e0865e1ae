package services

import "time"

// EnrolmentReminderOffset is how many business days before a hearing the
// enrolment reminder falls due
const EnrolmentReminderOffset = 4

// IsWeekend reports whether the date falls on a Saturday or Sunday
func IsWeekend(date time.Time) bool {
	switch date.Weekday() {
	case time.Saturday, time.Sunday:
		return true
	}
	return false
}

// NextWorkingDay returns the first business day strictly after date
func NextWorkingDay(date time.Time) time.Time {
	next := date.AddDate(0, 0, 1)
	for IsWeekend(next) {
		next = next.AddDate(0, 0, 1)
	}
	return next
}

// PreviousWorkingDay returns the last business day strictly before date
func PreviousWorkingDay(date time.Time) time.Time {
	prev := date.AddDate(0, 0, -1)
	for IsWeekend(prev) {
		prev = prev.AddDate(0, 0, -1)
	}
	return prev
}

// SubtractBusinessDays steps back n business days, so the result is always a
// business day. n <= 0 returns date unchanged.
func SubtractBusinessDays(date time.Time, n int) time.Time {
	result := date
	for i := 0; i < n; i++ {
		result = PreviousWorkingDay(result)
	}
	return result
}

// EnrolmentReminderDate is the reminder deadline for a hearing held on date
func EnrolmentReminderDate(date time.Time) time.Time {
	return NormalizeDate(SubtractBusinessDays(NormalizeDate(date), EnrolmentReminderOffset))
}
