package services

import (
	"log"
	"time"

	"peels-backend/models"

	"github.com/go-co-op/gocron/v2"
)

// StartReminderScheduler polls for due reminder notifications once a minute
// and stamps them delivered. The sweep is a plain findAll over
// scheduled_for <= now; delivery here just makes the row visible in the
// inbox (push channels would hang off this point).
func (s *NotificationService) StartReminderScheduler() {
	sched, _ := gocron.NewScheduler()
	sched.Start()

	_, _ = sched.NewJob(
		gocron.DurationJob(1*time.Minute),
		gocron.NewTask(func() {
			var due []models.Notification
			now := time.Now()
			err := s.DB.Where("scheduled_for <= ? AND sent_at IS NULL", now).
				Find(&due).Error
			if err != nil {
				log.Printf("[Scheduler] DB error: %v", err)
				return
			}

			for _, n := range due {
				n.SentAt = &now
				if err := s.DB.Save(&n).Error; err != nil {
					log.Printf("[Scheduler] Failed to deliver notification %s: %v", n.ID, err)
				} else {
					log.Printf("⏰ Delivered reminder to user %s", n.UserID)
				}
			}
		}),
	)
}
