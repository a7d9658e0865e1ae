package services

import (
	"court_docket_app_go/models"
	"time"
)

// Hearing status rules.
//
// Status only moves when a hearing is written: scheduling updates that touch
// the date, and outcome record/remove. Nothing sweeps stored hearings, so a
// hearing whose date passes untouched keeps reporting UPCOMING until its next
// write. Readers that need the live picture should compare Date with today.

// DeriveStatus applies the date rule to a hearing without an outcome.
// REPORTED is never produced here.
func DeriveStatus(current string, date, today time.Time) string {
	if BeforeDay(date, today) {
		return models.HearingStatusPastUnreported
	}
	if current == models.HearingStatusPastUnreported {
		// rescheduled forward
		return models.HearingStatusUpcoming
	}
	return current
}

// StatusOnOutcomeRecorded is unconditional: recording an outcome reports the hearing
func StatusOnOutcomeRecorded() string {
	return models.HearingStatusReported
}

// StatusOnOutcomeRemoved re-derives status once the outcome is gone. A past
// hearing is overdue again; a hearing still ahead goes back to UPCOMING.
func StatusOnOutcomeRemoved(date, today time.Time) string {
	if BeforeDay(date, today) {
		return models.HearingStatusPastUnreported
	}
	return models.HearingStatusUpcoming
}

// StatusDirective says how an update settles the hearing status: derived
// from the date rule, or set explicitly by the caller.
type StatusDirective struct {
	explicit bool
	status   string
}

// DerivedStatus lets the date rule decide
func DerivedStatus() StatusDirective {
	return StatusDirective{}
}

// ExplicitStatus overrides the date rule with the given status
func ExplicitStatus(status string) StatusDirective {
	return StatusDirective{explicit: true, status: status}
}

// IsExplicit reports whether the caller supplied the status
func (d StatusDirective) IsExplicit() bool {
	return d.explicit
}

// Resolve returns the status a hearing ends up with after its date is
// (re)established. An explicit status always wins. Otherwise a hearing with
// an outcome keeps its status and the rest follow DeriveStatus.
func (d StatusDirective) Resolve(current string, date, today time.Time, hasOutcome bool) string {
	if d.explicit {
		return d.status
	}
	if hasOutcome {
		return current
	}
	return DeriveStatus(current, date, today)
}
