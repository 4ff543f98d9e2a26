package services

import (
	"log"
	"time"

	"peels-backend/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type EntryService struct {
	DB            *gorm.DB
	Progression   *ProgressionService
	Badges        *BadgeService
	Notifications *NotificationService
}

func NewEntryService(db *gorm.DB, progression *ProgressionService, badges *BadgeService, notifications *NotificationService) *EntryService {
	return &EntryService{DB: db, Progression: progression, Badges: badges, Notifications: notifications}
}

// CreateResult bundles what the frontend shows after writing an entry.
type CreateResult struct {
	Entry     *models.Entry `json:"entry"`
	XPGained  int           `json:"xp_gained"`
	Level     int           `json:"level"`
	LeveledUp bool          `json:"leveled_up"`
	NewBadges []string      `json:"new_badges"`
}

// Create writes an entry and runs the whole progression sequence in one
// transaction: streak bookkeeping, entry-time badges, XP award, then the
// badge ladder pass over the fully updated counters.
func (s *EntryService) Create(userID, journalID, title, content, mood string, entryDate time.Time) (*CreateResult, error) {
	var result CreateResult

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var user models.User
		if err := tx.Where("id = ?", userID).First(&user).Error; err != nil {
			return err
		}

		var journal models.Journal
		if err := tx.Where("id = ? AND user_id = ?", journalID, userID).First(&journal).Error; err != nil {
			return err
		}

		entry := models.Entry{
			ID:        uuid.NewString(),
			JournalID: journalID,
			UserID:    userID,
			Title:     title,
			Content:   content,
			Mood:      mood,
			EntryDate: entryDate,
		}
		if err := tx.Create(&entry).Error; err != nil {
			return err
		}

		// Streaks advance against wall-clock now; the reward formula reads
		// the level and login streak before the XP lands.
		now := time.Now()
		preLevel := user.Level
		loginStreak := user.DaysInARow

		progress := ApplyEntryCreated(SnapshotProgress(&user), now)
		progress.ApplyTo(&user)

		if err := tx.Model(&user).Updates(map[string]interface{}{
			"entry_count":           user.EntryCount,
			"entry_days_in_a_row":   user.EntryDaysInARow,
			"monthly_entry_counter": user.MonthlyEntryCounter,
			"last_entry_date":       user.LastEntryDate,
		}).Error; err != nil {
			return err
		}

		var granted []string
		for _, code := range EntryTimeBadges(entryDate) {
			isNew, err := s.Badges.Grant(tx, &user, code)
			if err != nil {
				return err
			}
			if isNew {
				granted = append(granted, code)
			}
		}

		xp := EntryXPReward(preLevel, loginStreak)
		if err := s.Progression.AddXP(tx, &user, xp); err != nil {
			return err
		}

		ladderBadges, err := s.Badges.UpdateBadges(tx, &user, now)
		if err != nil {
			return err
		}
		granted = append(granted, ladderBadges...)

		if err := s.Notifications.NotifyBadges(tx, user.ID, granted); err != nil {
			return err
		}

		result = CreateResult{
			Entry:     &entry,
			XPGained:  xp,
			Level:     user.Level,
			LeveledUp: user.Level > preLevel,
			NewBadges: granted,
		}
		log.Printf("📝 [ENTRY] %s +%d XP, streak=%d, badges=%v", user.Username, xp, user.EntryDaysInARow, granted)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// ListForJournal returns a journal's entries, newest first.
func (s *EntryService) ListForJournal(userID, journalID string) ([]models.Entry, error) {
	var entries []models.Entry
	err := s.DB.Where("journal_id = ? AND user_id = ?", journalID, userID).
		Order("entry_date DESC").
		Find(&entries).Error
	return entries, err
}

func (s *EntryService) Get(userID, entryID string) (*models.Entry, error) {
	var entry models.Entry
	if err := s.DB.Where("id = ? AND user_id = ?", entryID, userID).First(&entry).Error; err != nil {
		return nil, err
	}
	return &entry, nil
}

// Update edits title/content/mood. Streak counters and EntryCount are
// untouched; they track creations only.
func (s *EntryService) Update(userID, entryID, title, content, mood string) (*models.Entry, error) {
	entry, err := s.Get(userID, entryID)
	if err != nil {
		return nil, err
	}
	entry.Title = title
	entry.Content = content
	entry.Mood = mood
	if err := s.DB.Save(entry).Error; err != nil {
		return nil, err
	}
	return entry, nil
}

// Delete soft-deletes an entry. EntryCount is a lifetime creation counter
// and is deliberately not decremented.
func (s *EntryService) Delete(userID, entryID string) error {
	res := s.DB.Where("id = ? AND user_id = ?", entryID, userID).Delete(&models.Entry{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
