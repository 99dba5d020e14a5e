// services/reminder_service.go
package services

import (
	"log"
	"time"

	"creativedesk-backend/models"

	cron "github.com/robfig/cron/v3"
	"gorm.io/gorm"
)

// StartReminderScheduler runs a daily sweep at 9 AM that surfaces bookings
// still waiting on payment verification so admins can follow up. Log-only;
// nothing is mutated.
func StartReminderScheduler(db *gorm.DB) *cron.Cron {
	c := cron.New()

	c.AddFunc("0 9 * * *", func() {
		sweepStaleBookings(db)
	})

	c.Start()
	return c
}

func sweepStaleBookings(db *gorm.DB) {
	stale, err := staleBookings(db, time.Now().Add(-24*time.Hour))
	if err != nil {
		log.Printf("[REMINDER] stale booking sweep failed: %v", err)
		return
	}
	if len(stale) == 0 {
		return
	}

	log.Printf("[REMINDER] %d bookings awaiting verification for over 24h", len(stale))
	for _, booking := range stale {
		log.Printf("[REMINDER] booking %s (status %s, created %s)",
			booking.ID, booking.Status, booking.CreatedAt.Format(time.RFC3339))
	}
}

// staleBookings lists bookings still unverified at the cutoff, oldest first.
func staleBookings(db *gorm.DB, cutoff time.Time) ([]models.Booking, error) {
	var stale []models.Booking
	err := db.Where("status IN ? AND created_at < ?",
		[]models.BookingStatus{models.BookingCreated, models.BookingPending}, cutoff).
		Order("created_at ASC").
		Find(&stale).Error
	return stale, err
}
