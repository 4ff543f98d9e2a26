package services

import (
	"path/filepath"
	"testing"
	"time"

	"peels-backend/models"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// testDB opens a throwaway SQLite database with the full schema.
func testDB(tb testing.TB) *gorm.DB {
	tb.Helper()
	path := filepath.Join(tb.TempDir(), "peels_test.db")
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{})
	if err != nil {
		tb.Fatalf("open test db: %v", err)
	}
	if err := db.AutoMigrate(
		&models.User{},
		&models.Journal{},
		&models.Entry{},
		&models.Friendship{},
		&models.Goal{},
		&models.Notification{},
		&models.XPLog{},
		&models.MarketItem{},
		&models.UserItem{},
	); err != nil {
		tb.Fatalf("migrate test db: %v", err)
	}
	return db
}

func seedUser(tb testing.TB, db *gorm.DB, username string) *models.User {
	tb.Helper()
	u := &models.User{
		ID:               uuid.NewString(),
		ExternalUserID:   uuid.NewString(),
		Username:         username,
		Email:            username + "@peels.test",
		Level:            1,
		RegistrationDate: time.Now(),
		EarnedBadges:     "[]",
	}
	if err := db.Create(u).Error; err != nil {
		tb.Fatalf("seed user: %v", err)
	}
	return u
}

func seedJournal(tb testing.TB, db *gorm.DB, userID string) *models.Journal {
	tb.Helper()
	j := &models.Journal{
		ID:     uuid.NewString(),
		UserID: userID,
		Title:  "Daily Thoughts",
		Slug:   "daily-thoughts",
		Color:  "yellow",
	}
	if err := db.Create(j).Error; err != nil {
		tb.Fatalf("seed journal: %v", err)
	}
	return j
}

func reloadUser(tb testing.TB, db *gorm.DB, id string) *models.User {
	tb.Helper()
	var u models.User
	if err := db.Where("id = ?", id).First(&u).Error; err != nil {
		tb.Fatalf("reload user: %v", err)
	}
	return &u
}

func timeAt(year int, month time.Month, day, hour int) time.Time {
	return time.Date(year, month, day, hour, 0, 0, 0, time.UTC)
}
