package services

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// DocketMetrics holds the Prometheus metrics of the hearing engine
type DocketMetrics struct {
	HearingsScheduled   prometheus.Counter
	HearingsRescheduled prometheus.Counter
	ScheduleRejections  *prometheus.CounterVec
	OutcomesRecorded    *prometheus.CounterVec
	OutcomesRemoved     prometheus.Counter
	RemindersDue        prometheus.Gauge
}

// Metrics is registered once against the default registry
var Metrics = newDocketMetrics()

func newDocketMetrics() *DocketMetrics {
	return &DocketMetrics{
		HearingsScheduled: promauto.NewCounter(prometheus.CounterOpts{
			Name: "docket_hearings_scheduled_total",
			Help: "Total number of hearings scheduled",
		}),
		HearingsRescheduled: promauto.NewCounter(prometheus.CounterOpts{
			Name: "docket_hearings_rescheduled_total",
			Help: "Total number of hearing updates that moved the hearing date",
		}),
		ScheduleRejections: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "docket_schedule_rejections_total",
			Help: "Hearing writes rejected because the date falls on a weekend, by weekday",
		}, []string{"weekday"}),
		OutcomesRecorded: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "docket_outcomes_recorded_total",
			Help: "Total number of hearing outcomes recorded, by outcome type",
		}, []string{"type"}),
		OutcomesRemoved: promauto.NewCounter(prometheus.CounterOpts{
			Name: "docket_outcomes_removed_total",
			Help: "Total number of hearing outcomes removed",
		}),
		RemindersDue: promauto.NewGauge(prometheus.GaugeOpts{
			Name: "docket_enrolment_reminders_due",
			Help: "Number of enrolment reminders due at the last query",
		}),
	}
}
