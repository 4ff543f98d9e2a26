package services

import (
	"log"
	"time"

	"peels-backend/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UserService struct {
	DB            *gorm.DB
	Badges        *BadgeService
	Notifications *NotificationService
}

func NewUserService(db *gorm.DB, badges *BadgeService, notifications *NotificationService) *UserService {
	return &UserService{DB: db, Badges: badges, Notifications: notifications}
}

// FindByExternalID resolves the gateway identity header to a local user.
func (s *UserService) FindByExternalID(externalUserID string) (*models.User, error) {
	var user models.User
	if err := s.DB.Where("external_user_id = ?", externalUserID).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// EnsureUser creates the local mirror record on first sight (idempotent).
// New users start with zeroed counters, level 1 and an empty badge set.
func (s *UserService) EnsureUser(externalUserID, username, email string) (*models.User, error) {
	var user models.User
	err := s.DB.Where("external_user_id = ?", externalUserID).First(&user).Error
	if err == gorm.ErrRecordNotFound {
		user = models.User{
			ID:               uuid.NewString(),
			ExternalUserID:   externalUserID,
			Username:         username,
			Email:            email,
			Level:            1,
			RegistrationDate: time.Now(),
			EarnedBadges:     "[]",
		}
		if err := s.DB.Create(&user).Error; err != nil {
			return nil, err
		}
		return &user, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// RegisterDailyLogin advances the login streak for a login at now and
// re-evaluates badges. Same-day repeat logins are no-ops for the streak but
// still run the badge pass (account-age badges can flip on any login).
func (s *UserService) RegisterDailyLogin(externalUserID string, now time.Time) (*models.User, []string, error) {
	var user *models.User
	var granted []string

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var u models.User
		if err := tx.Where("external_user_id = ?", externalUserID).First(&u).Error; err != nil {
			return err
		}

		progress := ApplyDailyLogin(SnapshotProgress(&u), now)
		progress.ApplyTo(&u)

		if err := tx.Model(&u).Updates(map[string]interface{}{
			"days_in_a_row":   u.DaysInARow,
			"last_login_date": u.LastLoginDate,
		}).Error; err != nil {
			return err
		}

		codes, err := s.Badges.UpdateBadges(tx, &u, now)
		if err != nil {
			return err
		}
		if err := s.Notifications.NotifyBadges(tx, u.ID, codes); err != nil {
			return err
		}

		user = &u
		granted = codes
		return nil
	})
	if err != nil {
		return nil, nil, err
	}

	log.Printf("🔑 [LOGIN] %s streak=%d badges=%v", user.Username, user.DaysInARow, granted)
	return user, granted, nil
}
