package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestIsWeekend(t *testing.T) {
	tests := []struct {
		date time.Time
		want bool
	}{
		{day(2026, 3, 13), false}, // Friday
		{day(2026, 3, 14), true},
		{day(2026, 3, 15), true},
		{day(2026, 3, 16), false},
	}
	for _, tt := range tests {
		t.Run(tt.date.Weekday().String(), func(t *testing.T) {
			assert.Equal(t, tt.want, IsWeekend(tt.date))
		})
	}
}

func TestNextAndPreviousWorkingDay(t *testing.T) {
	assert.Equal(t, day(2026, 3, 16), NextWorkingDay(day(2026, 3, 13)))
	assert.Equal(t, day(2026, 3, 16), NextWorkingDay(day(2026, 3, 14)))
	assert.Equal(t, day(2026, 3, 17), NextWorkingDay(day(2026, 3, 16)))

	assert.Equal(t, day(2026, 3, 13), PreviousWorkingDay(day(2026, 3, 16)))
	assert.Equal(t, day(2026, 3, 13), PreviousWorkingDay(day(2026, 3, 15)))
	assert.Equal(t, day(2026, 3, 16), PreviousWorkingDay(day(2026, 3, 17)))
}

func TestSubtractBusinessDays(t *testing.T) {
	tests := []struct {
		name string
		from time.Time
		n    int
		want time.Time
	}{
		{"zero is identity", day(2026, 3, 18), 0, day(2026, 3, 18)},
		{"negative is identity", day(2026, 3, 18), -2, day(2026, 3, 18)},
		{"within a week", day(2026, 3, 20), 2, day(2026, 3, 18)},
		{"across a weekend", day(2026, 3, 18), 4, day(2026, 3, 12)},
		{"from a Monday", day(2026, 3, 16), 1, day(2026, 3, 13)},
		{"from a Sunday", day(2026, 3, 15), 1, day(2026, 3, 13)},
		{"across month end", day(2026, 4, 2), 4, day(2026, 3, 27)},
		{"two weeks", day(2026, 3, 27), 10, day(2026, 3, 13)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SubtractBusinessDays(tt.from, tt.n))
		})
	}
}

func TestEnrolmentReminderDate(t *testing.T) {
	assert.Equal(t, day(2026, 3, 12), EnrolmentReminderDate(day(2026, 3, 18)))

	// time of day never shifts the result
	assert.Equal(t, day(2026, 3, 12), EnrolmentReminderDate(time.Date(2026, 3, 18, 23, 59, 0, 0, time.UTC)))

	t.Run("always a weekday four business days back", func(t *testing.T) {
		start := day(2026, 1, 1)
		for i := 0; i < 400; i++ {
			date := start.AddDate(0, 0, i)
			if IsWeekend(date) {
				continue
			}
			reminder := EnrolmentReminderDate(date)
			assert.False(t, IsWeekend(reminder), "reminder for %s", date.Format(DateLayout))
			assert.True(t, reminder.Before(date))

			count := 0
			for d := reminder; d.Before(date); d = d.AddDate(0, 0, 1) {
				if !IsWeekend(d) {
					count++
				}
			}
			assert.Equal(t, EnrolmentReminderOffset, count, "business days between reminder and %s", date.Format(DateLayout))
		}
	})
}
