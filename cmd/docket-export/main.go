package main

import (
	"context"
	"court_docket_app_go/config"
	"court_docket_app_go/db"
	"court_docket_app_go/models"
	"court_docket_app_go/services"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"
)

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		log.Fatal(err)
	}
}

// run exports either a case's hearings or the due enrolment reminders to an XLSX file
func run(args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet("docket-export", flag.ContinueOnError)
	caseID := fs.String("case", "", "export every hearing of this case instead of the due reminders")
	output := fs.String("out", "", "output file (default: <kind>-<date>.xlsx in the current directory)")
	date := fs.String("date", "", "treat this YYYY-MM-DD day as today (default: today)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg := config.Load()

	loc, err := time.LoadLocation(cfg.ReminderTimezone)
	if err != nil {
		loc = time.UTC
	}
	var clock services.Clock = services.SystemClock{Location: loc}
	if *date != "" {
		day, err := services.ParseDate(*date)
		if err != nil {
			return fmt.Errorf("invalid -date: %w", err)
		}
		clock = services.FixedClock{At: day}
	}

	if err := db.Initialize(cfg); err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer db.Close()

	if err := db.AutoMigrate(&models.Case{}, &models.Hearing{}, &models.HearingOutcome{}); err != nil {
		return err
	}

	svc := services.NewHearingService(db.DB, clock)
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	kind := "enrolment-reminders"
	var count int
	var content []byte

	if *caseID != "" {
		kind = "case-hearings"
		buf, err := svc.ExportCaseHearings(ctx, *caseID)
		if err != nil {
			return fmt.Errorf("failed to export case hearings: %w", err)
		}
		content = buf.Bytes()
	} else {
		hearings, err := svc.ListDueEnrolmentReminders(ctx)
		if err != nil {
			return fmt.Errorf("failed to list due reminders: %w", err)
		}
		buf, err := services.BuildHearingWorkbook(services.SheetEnrolmentReminders, hearings)
		if err != nil {
			return fmt.Errorf("failed to build workbook: %w", err)
		}
		count = len(hearings)
		content = buf.Bytes()
	}

	path := *output
	if path == "" {
		path = services.ExportFileName(kind, clock.Today())
	}
	if err := os.WriteFile(path, content, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}

	if *caseID == "" {
		fmt.Fprintf(stdout, "Wrote %d due enrolment reminders to %s\n", count, path)
	} else {
		fmt.Fprintf(stdout, "Wrote hearings of case %s to %s\n", *caseID, path)
	}
	return nil
}
