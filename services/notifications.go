package services

import (
	"fmt"
	"time"

	"peels-backend/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type NotificationService struct {
	DB *gorm.DB
}

func NewNotificationService(db *gorm.DB) *NotificationService {
	return &NotificationService{DB: db}
}

// Create delivers a notification immediately.
func (s *NotificationService) Create(tx *gorm.DB, userID, kind, message string) error {
	now := time.Now()
	return tx.Create(&models.Notification{
		ID:      uuid.NewString(),
		UserID:  userID,
		Kind:    kind,
		Message: message,
		SentAt:  &now,
	}).Error
}

// NotifyBadges creates one notification per newly granted badge.
func (s *NotificationService) NotifyBadges(tx *gorm.DB, userID string, codes []string) error {
	for _, code := range codes {
		msg := fmt.Sprintf("🎉 You earned the \"%s\" badge!", BadgeName(code))
		if err := s.Create(tx, userID, models.NotificationBadge, msg); err != nil {
			return err
		}
	}
	return nil
}

// ScheduleReminder queues a reminder for delivery by the scheduler sweep.
func (s *NotificationService) ScheduleReminder(userID, message string, at time.Time) (*models.Notification, error) {
	n := models.Notification{
		ID:           uuid.NewString(),
		UserID:       userID,
		Kind:         models.NotificationReminder,
		Message:      message,
		ScheduledFor: &at,
	}
	if err := s.DB.Create(&n).Error; err != nil {
		return nil, err
	}
	return &n, nil
}

// ListForUser returns the user's notifications, delivered first, newest on top.
func (s *NotificationService) ListForUser(userID string, unreadOnly bool) ([]models.Notification, error) {
	q := s.DB.Where("user_id = ? AND sent_at IS NOT NULL", userID)
	if unreadOnly {
		q = q.Where("read = ?", false)
	}
	var notifications []models.Notification
	err := q.Order("sent_at DESC").Find(&notifications).Error
	return notifications, err
}

// MarkRead flips a single notification; MarkAllRead sweeps the inbox.
func (s *NotificationService) MarkRead(userID, notificationID string) error {
	res := s.DB.Model(&models.Notification{}).
		Where("id = ? AND user_id = ?", notificationID, userID).
		Update("read", true)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (s *NotificationService) MarkAllRead(userID string) error {
	return s.DB.Model(&models.Notification{}).
		Where("user_id = ? AND read = ?", userID, false).
		Update("read", true).Error
}
