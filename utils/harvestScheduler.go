package utils

import (
	"log"
	"time"

	"cropconnect/config"
	"cropconnect/database"
	"cropconnect/models"

	"github.com/robfig/cron/v3"
)

// logScheduler logs scheduler events with timestamp
func logScheduler(message string) {
	log.Printf("[HARVEST-SCHEDULER %s] %s", time.Now().Format(time.RFC3339), message)
}

// scanUpcomingHarvests logs a reminder for every non-rejected crop update
// whose expected harvest date falls inside the look-ahead window.
func scanUpcomingHarvests() {
	db := database.Database.Db
	now := time.Now()
	until := now.AddDate(0, 0, config.AppConfig.HarvestReminderDays)

	var updates []models.CropUpdate
	if err := db.Where("is_deleted = false AND status <> ?", models.StatusRejected).
		Where("expected_harvest_date >= ? AND expected_harvest_date <= ?", now, until).
		Find(&updates).Error; err != nil {
		logScheduler("Error fetching upcoming harvests: " + err.Error())
		return
	}

	if len(updates) == 0 {
		logScheduler("No upcoming harvests in the reminder window")
		return
	}

	for _, u := range updates {
		logScheduler(u.CropType + " harvest expected on " + u.ExpectedHarvestDate.Format("Jan 2, 2006"))
	}
}

// StartHarvestScheduler runs the daily harvest reminder scan. Call after
// the database is connected.
func StartHarvestScheduler() *cron.Cron {
	c := cron.New()

	if _, err := c.AddFunc(config.AppConfig.HarvestReminderCron, scanUpcomingHarvests); err != nil {
		log.Fatalf("Failed to schedule harvest reminders: %v", err)
	}

	c.Start()
	logScheduler("Harvest reminder scheduler started")
	return c
}
