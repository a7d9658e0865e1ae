package services

import (
	"court_docket_app_go/models"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateHearing(t *testing.T) {
	db := setupTestDB(t)
	caseRecord := createTestCase(t, db, "2026-00042")
	svc := NewHearingService(db, FixedClock{At: monday})
	ctx := t.Context()

	t.Run("weekday hearing", func(t *testing.T) {
		hearing, err := svc.CreateHearing(ctx, caseRecord.ID, HearingInput{
			Date: strPtr("2026-03-18"),
			Time: strPtr(" 09:30 "),
			Type: strPtr("pleadings"),
			City: strPtr("  "),
		}, "clerk-1")
		require.NoError(t, err)

		assert.Equal(t, models.HearingStatusUpcoming, hearing.Status)
		assert.Equal(t, day(2026, 3, 12), hearing.EnrolmentReminderDate)
		assert.Equal(t, day(2026, 3, 18), hearing.Date)
		assert.Equal(t, models.HearingTypePleadings, hearing.Type)
		assert.Equal(t, "09:30", *hearing.Time)
		assert.Nil(t, hearing.City)
		assert.True(t, hearing.ReminderEnabled)
		assert.False(t, hearing.EnrolmentDone)
		assert.Equal(t, "clerk-1", *hearing.CreatedBy)
	})

	t.Run("Saturday is rejected and nothing is stored", func(t *testing.T) {
		var before int64
		db.Model(&models.Hearing{}).Count(&before)

		_, err := svc.CreateHearing(ctx, caseRecord.ID, HearingInput{Date: strPtr("2026-03-21")}, "")
		assert.ErrorIs(t, err, ErrInvalidSchedule)
		assert.Contains(t, err.Error(), "Saturday")
		assert.Contains(t, err.Error(), "2026-03-23")

		var after int64
		db.Model(&models.Hearing{}).Count(&after)
		assert.Equal(t, before, after)
	})

	t.Run("Sunday is rejected", func(t *testing.T) {
		_, err := svc.CreateHearing(ctx, caseRecord.ID, HearingInput{Date: strPtr("2026-03-22")}, "")
		assert.ErrorIs(t, err, ErrInvalidSchedule)
	})

	t.Run("defaults", func(t *testing.T) {
		hearing, err := svc.CreateHearing(ctx, caseRecord.ID, HearingInput{Date: strPtr("2026-03-19")}, "")
		require.NoError(t, err)
		assert.Equal(t, models.HearingTypeOther, hearing.Type)
		assert.Nil(t, hearing.CreatedBy)
	})

	t.Run("reminder can be disabled", func(t *testing.T) {
		hearing, err := svc.CreateHearing(ctx, caseRecord.ID, HearingInput{
			Date:            strPtr("2026-03-19"),
			ReminderEnabled: boolPtr(false),
		}, "")
		require.NoError(t, err)

		var stored models.Hearing
		db.First(&stored, "id = ?", hearing.ID)
		assert.False(t, stored.ReminderEnabled)
	})

	t.Run("preparation notes are sanitized", func(t *testing.T) {
		hearing, err := svc.CreateHearing(ctx, caseRecord.ID, HearingInput{
			Date:             strPtr("2026-03-19"),
			PreparationNotes: strPtr(`<p>Bring exhibits</p><script>alert(1)</script>`),
		}, "")
		require.NoError(t, err)
		assert.Equal(t, "<p>Bring exhibits</p>", *hearing.PreparationNotes)
	})

	t.Run("explicit initial status", func(t *testing.T) {
		hearing, err := svc.CreateHearing(ctx, caseRecord.ID, HearingInput{
			Date:   strPtr("2026-03-19"),
			Status: strPtr(models.HearingStatusPastUnreported),
		}, "")
		require.NoError(t, err)
		assert.Equal(t, models.HearingStatusPastUnreported, hearing.Status)
	})

	t.Run("validation errors", func(t *testing.T) {
		tests := []struct {
			name  string
			input HearingInput
		}{
			{"missing date", HearingInput{}},
			{"impossible date", HearingInput{Date: strPtr("2026-02-31")}},
			{"bad time", HearingInput{Date: strPtr("2026-03-18"), Time: strPtr("9h30")}},
			{"unknown type", HearingInput{Date: strPtr("2026-03-18"), Type: strPtr("TRIAL_BY_COMBAT")}},
			{"unknown status", HearingInput{Date: strPtr("2026-03-18"), Status: strPtr("LOST")}},
			{"reported status", HearingInput{Date: strPtr("2026-03-18"), Status: strPtr(models.HearingStatusReported)}},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				_, err := svc.CreateHearing(ctx, caseRecord.ID, tt.input, "")
				assert.ErrorIs(t, err, ErrValidation)
			})
		}
	})

	t.Run("unknown case", func(t *testing.T) {
		_, err := svc.CreateHearing(ctx, "missing", HearingInput{Date: strPtr("2026-03-18")}, "")
		assert.ErrorIs(t, err, ErrCaseNotFound)
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestUpdateHearing(t *testing.T) {
	db := setupTestDB(t)
	caseRecord := createTestCase(t, db, "2026-00042")
	svc := NewHearingService(db, FixedClock{At: monday})
	ctx := t.Context()

	t.Run("past hearing stays UPCOMING until the next write", func(t *testing.T) {
		hearing, err := svc.CreateHearing(ctx, caseRecord.ID, HearingInput{Date: strPtr("2026-03-02")}, "")
		require.NoError(t, err)
		assert.Equal(t, models.HearingStatusUpcoming, hearing.Status)

		// re-supplying the date is what triggers the date rule
		updated, err := svc.UpdateHearing(ctx, hearing.ID, HearingInput{Date: strPtr("2026-03-02"), City: strPtr("Lyon")})
		require.NoError(t, err)
		assert.Equal(t, models.HearingStatusPastUnreported, updated.Status)
		assert.Equal(t, "Lyon", *updated.City)

		t.Run("rescheduling forward recovers", func(t *testing.T) {
			updated, err := svc.UpdateHearing(ctx, hearing.ID, HearingInput{Date: strPtr("2026-03-25")})
			require.NoError(t, err)
			assert.Equal(t, models.HearingStatusUpcoming, updated.Status)
			assert.Equal(t, day(2026, 3, 19), updated.EnrolmentReminderDate)
		})
	})

	t.Run("update without a date leaves status and reminder alone", func(t *testing.T) {
		hearing, err := svc.CreateHearing(ctx, caseRecord.ID, HearingInput{Date: strPtr("2026-03-03")}, "")
		require.NoError(t, err)

		updated, err := svc.UpdateHearing(ctx, hearing.ID, HearingInput{Prepared: boolPtr(true)})
		require.NoError(t, err)
		assert.Equal(t, models.HearingStatusUpcoming, updated.Status)
		assert.Equal(t, hearing.EnrolmentReminderDate, updated.EnrolmentReminderDate)
		assert.True(t, updated.Prepared)
	})

	t.Run("explicit status wins over the derived one", func(t *testing.T) {
		hearing, err := svc.CreateHearing(ctx, caseRecord.ID, HearingInput{Date: strPtr("2026-03-18")}, "")
		require.NoError(t, err)

		updated, err := svc.UpdateHearing(ctx, hearing.ID, HearingInput{
			Date:   strPtr("2026-03-04"),
			Status: strPtr(models.HearingStatusUpcoming),
		})
		require.NoError(t, err)
		assert.Equal(t, models.HearingStatusUpcoming, updated.Status)
		assert.Equal(t, day(2026, 2, 26), updated.EnrolmentReminderDate)
	})

	t.Run("weekend date is rejected and the hearing unchanged", func(t *testing.T) {
		hearing, err := svc.CreateHearing(ctx, caseRecord.ID, HearingInput{Date: strPtr("2026-03-18")}, "")
		require.NoError(t, err)

		_, err = svc.UpdateHearing(ctx, hearing.ID, HearingInput{Date: strPtr("2026-03-28"), City: strPtr("Lyon")})
		assert.ErrorIs(t, err, ErrInvalidSchedule)

		stored, err := svc.GetHearing(ctx, hearing.ID)
		require.NoError(t, err)
		assert.Equal(t, day(2026, 3, 18), stored.Date)
		assert.Nil(t, stored.City)
	})

	t.Run("reported hearing keeps its status when rescheduled", func(t *testing.T) {
		hearing, err := svc.CreateHearing(ctx, caseRecord.ID, HearingInput{Date: strPtr("2026-03-18")}, "")
		require.NoError(t, err)
		_, err = svc.RecordOutcome(ctx, hearing.ID, OutcomeInput{Type: strPtr(models.OutcomeTypeStrikeOff)}, "")
		require.NoError(t, err)

		updated, err := svc.UpdateHearing(ctx, hearing.ID, HearingInput{Date: strPtr("2026-03-09")})
		require.NoError(t, err)
		assert.Equal(t, models.HearingStatusReported, updated.Status)
	})

	t.Run("time can be cleared", func(t *testing.T) {
		hearing, err := svc.CreateHearing(ctx, caseRecord.ID, HearingInput{Date: strPtr("2026-03-18"), Time: strPtr("14:00")}, "")
		require.NoError(t, err)

		updated, err := svc.UpdateHearing(ctx, hearing.ID, HearingInput{Time: strPtr("")})
		require.NoError(t, err)
		assert.Nil(t, updated.Time)
	})

	t.Run("not found", func(t *testing.T) {
		_, err := svc.UpdateHearing(ctx, "missing", HearingInput{City: strPtr("Lyon")})
		assert.ErrorIs(t, err, ErrHearingNotFound)
	})
}

func TestListAndDeleteHearings(t *testing.T) {
	db := setupTestDB(t)
	caseRecord := createTestCase(t, db, "2026-00042")
	svc := NewHearingService(db, FixedClock{At: monday})
	ctx := t.Context()

	for _, date := range []string{"2026-04-15", "2026-03-18", "2026-03-25"} {
		_, err := svc.CreateHearing(ctx, caseRecord.ID, HearingInput{Date: strPtr(date)}, "")
		require.NoError(t, err)
	}

	hearings, err := svc.ListCaseHearings(ctx, caseRecord.ID)
	require.NoError(t, err)
	require.Len(t, hearings, 3)
	assert.Equal(t, "2026-03-18", hearings[0].DateString())
	assert.Equal(t, "2026-04-15", hearings[2].DateString())

	_, err = svc.ListCaseHearings(ctx, "missing")
	assert.ErrorIs(t, err, ErrCaseNotFound)

	t.Run("delete removes the outcome too", func(t *testing.T) {
		target := hearings[0]
		_, err := svc.RecordOutcome(ctx, target.ID, OutcomeInput{Type: strPtr(models.OutcomeTypeDeliberation)}, "")
		require.NoError(t, err)

		require.NoError(t, svc.DeleteHearing(ctx, target.ID))

		_, err = svc.GetHearing(ctx, target.ID)
		assert.ErrorIs(t, err, ErrHearingNotFound)

		var outcomes int64
		db.Model(&models.HearingOutcome{}).Where("hearing_id = ?", target.ID).Count(&outcomes)
		assert.Zero(t, outcomes)

		assert.ErrorIs(t, svc.DeleteHearing(ctx, target.ID), ErrHearingNotFound)
	})
}

func TestNewHearingServiceDefaultsClock(t *testing.T) {
	svc := NewHearingService(nil, nil)
	assert.IsType(t, SystemClock{}, svc.clock)
	assert.WithinDuration(t, time.Now(), svc.clock.Now(), time.Minute)
}
