package jobs

import (
	"context"
	"court_docket_app_go/config"
	"court_docket_app_go/services"
	"log"
	"time"

	"github.com/robfig/cron/v3"
	"gorm.io/gorm"
)

// StartScheduler starts the enrolment reminder digest on cfg.ReminderCron.
// The digest only reads; hearing statuses are never touched from here.
func StartScheduler(database *gorm.DB, cfg *config.Config) (*cron.Cron, error) {
	loc, err := time.LoadLocation(cfg.ReminderTimezone)
	if err != nil {
		log.Printf("[CRON] Unknown timezone %q, using UTC", cfg.ReminderTimezone)
		loc = time.UTC
	}

	c := cron.New(cron.WithLocation(loc), cron.WithChain(cron.SkipIfStillRunning(cron.DefaultLogger)))

	_, err = c.AddFunc(cfg.ReminderCron, func() {
		log.Println("[CRON] Running enrolment reminder digest...")
		LogDueEnrolmentReminders(database, services.SystemClock{Location: loc})
	})
	if err != nil {
		return nil, err
	}

	c.Start()
	log.Printf("[CRON] Reminder scheduler started (%s, %s)", cfg.ReminderCron, loc)
	return c, nil
}

// LogDueEnrolmentReminders logs every hearing whose enrolment reminder is due
// and returns how many there were. Delivery is left to downstream consumers.
func LogDueEnrolmentReminders(database *gorm.DB, clock services.Clock) int {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	hearings, err := services.NewHearingService(database, clock).ListDueEnrolmentReminders(ctx)
	if err != nil {
		log.Printf("[JOB] Error fetching due enrolment reminders: %v", err)
		return 0
	}

	log.Printf("[JOB] Found %d enrolment reminders due", len(hearings))

	for _, h := range hearings {
		caseNumber := h.CaseID
		if h.Case != nil {
			caseNumber = h.Case.CaseNumber
		}
		log.Printf("[JOB] Enrolment due: case %s, hearing %s on %s (reminder since %s)",
			caseNumber, h.ID, h.DateString(), h.EnrolmentReminderDate.Format(services.DateLayout))
	}

	return len(hearings)
}
