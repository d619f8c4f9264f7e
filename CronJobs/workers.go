package CronJobs

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/kathanshah28/clinic-management/Models"

	"github.com/go-co-op/gocron"
)

// VisitReminder logs the patients scheduled for a visit each morning so the
// front desk has the day's list before opening.
type VisitReminder struct {
	Store Models.SheetStore
}

// NewVisitReminder creates a new visit reminder service
func NewVisitReminder(store Models.SheetStore) *VisitReminder {
	return &VisitReminder{
		Store: store,
	}
}

// StartReminderCron starts the cron job that reports today's scheduled visits
func (vr *VisitReminder) StartReminderCron() *gocron.Scheduler {
	scheduler := gocron.NewScheduler(time.Local)

	scheduler.Every(1).Day().At("07:00").Do(func() {
		log.Println("Running daily visit reminder...")
		if err := vr.LogTodayVisits(); err != nil {
			log.Printf("Error building daily visit reminder: %v", err)
		}
	})

	scheduler.StartAsync()
	log.Println("Daily visit reminder cron job started")

	return scheduler
}

// TodayVisits returns the patients whose visit days include today.
func (vr *VisitReminder) TodayVisits(now time.Time) ([]Models.Patient, error) {
	values, err := vr.Store.GetAllRows(context.Background())
	if err != nil {
		return nil, fmt.Errorf("failed to read patient sheet: %w", err)
	}

	var due []Models.Patient
	if len(values) > 1 {
		headers := values[0]
		for _, row := range values[1:] {
			patient := Models.MapRow(headers, row)
			if Models.VisitsToday(patient[Models.HeaderVisitDays], now) {
				due = append(due, patient)
			}
		}
	}
	return due, nil
}

func (vr *VisitReminder) LogTodayVisits() error {
	due, err := vr.TodayVisits(time.Now())
	if err != nil {
		return err
	}

	log.Printf("%d patient(s) scheduled for today", len(due))
	for _, patient := range due {
		log.Printf("Visit due today: %s (ID %s) at %s",
			patient["Name"],
			patient[Models.HeaderPatientID],
			patient["Time"],
		)
	}

	return nil
}
