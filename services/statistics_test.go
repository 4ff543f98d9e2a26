package services

import (
	"testing"
	"time"

	"peels-backend/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

func seedEntryAt(tb testing.TB, db *gorm.DB, userID, journalID string, at time.Time) {
	tb.Helper()
	e := models.Entry{
		ID:        uuid.NewString(),
		JournalID: journalID,
		UserID:    userID,
		Content:   "seed",
		EntryDate: at,
	}
	if err := db.Create(&e).Error; err != nil {
		tb.Fatalf("seed entry: %v", err)
	}
}

func TestEntriesPerMonth(t *testing.T) {
	db := testDB(t)
	svc := NewStatisticsService(db)
	user := seedUser(t, db, "amy")
	journal := seedJournal(t, db, user.ID)

	seedEntryAt(t, db, user.ID, journal.ID, timeAt(2026, time.January, 5, 12))
	seedEntryAt(t, db, user.ID, journal.ID, timeAt(2026, time.January, 20, 12))
	seedEntryAt(t, db, user.ID, journal.ID, timeAt(2026, time.March, 2, 12))
	seedEntryAt(t, db, user.ID, journal.ID, timeAt(2025, time.March, 2, 12)) // other year

	counts, err := svc.EntriesPerMonth(user.ID, 2026)
	if err != nil {
		t.Fatalf("entries per month: %v", err)
	}
	if counts[0] != 2 {
		t.Errorf("january = %d, want 2", counts[0])
	}
	if counts[2] != 1 {
		t.Errorf("march = %d, want 1", counts[2])
	}
	if counts[1] != 0 {
		t.Errorf("february = %d, want 0", counts[1])
	}
}

func TestLongestEntryStreak_FullHistory(t *testing.T) {
	db := testDB(t)
	svc := NewStatisticsService(db)
	user := seedUser(t, db, "amy")
	journal := seedJournal(t, db, user.ID)

	// A 4-day run long ago, a 2-day run recently, duplicates in between.
	for day := 1; day <= 4; day++ {
		seedEntryAt(t, db, user.ID, journal.ID, timeAt(2026, time.February, day, 12))
	}
	seedEntryAt(t, db, user.ID, journal.ID, timeAt(2026, time.February, 2, 20)) // same-day duplicate
	seedEntryAt(t, db, user.ID, journal.ID, timeAt(2026, time.April, 10, 12))
	seedEntryAt(t, db, user.ID, journal.ID, timeAt(2026, time.April, 11, 12))

	longest, err := svc.LongestEntryStreak(user.ID)
	if err != nil {
		t.Fatalf("longest streak: %v", err)
	}
	if longest != 4 {
		t.Errorf("longest streak = %d, want 4", longest)
	}
}

func TestLongestEntryStreak_NoEntries(t *testing.T) {
	db := testDB(t)
	svc := NewStatisticsService(db)
	user := seedUser(t, db, "amy")

	longest, err := svc.LongestEntryStreak(user.ID)
	if err != nil {
		t.Fatalf("longest streak: %v", err)
	}
	if longest != 0 {
		t.Errorf("longest streak = %d, want 0", longest)
	}
}

func TestMonthlyLeaderboard_SumsLedgerForCurrentMonth(t *testing.T) {
	db := testDB(t)
	svc := NewStatisticsService(db)
	progression := NewProgressionService(db)

	amy := seedUser(t, db, "amy")
	bob := seedUser(t, db, "bob")

	if err := progression.AddXP(db, amy, 10); err != nil {
		t.Fatalf("add xp: %v", err)
	}
	if err := progression.AddXP(db, amy, 15); err != nil {
		t.Fatalf("add xp: %v", err)
	}
	if err := progression.AddXP(db, bob, 40); err != nil {
		t.Fatalf("add xp: %v", err)
	}

	rows, err := svc.MonthlyLeaderboard(time.Now(), 10)
	if err != nil {
		t.Fatalf("leaderboard: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("leaderboard rows = %d, want 2", len(rows))
	}
	if rows[0].Username != "bob" || rows[0].XPGained != 40 {
		t.Errorf("top row = %+v, want bob with 40", rows[0])
	}
	if rows[1].Username != "amy" || rows[1].XPGained != 25 {
		t.Errorf("second row = %+v, want amy with 25", rows[1])
	}
}

func TestMoodDistribution(t *testing.T) {
	db := testDB(t)
	svc := NewStatisticsService(db)
	user := seedUser(t, db, "amy")
	journal := seedJournal(t, db, user.ID)

	moods := []string{"happy", "happy", "sad", ""}
	for i, mood := range moods {
		e := models.Entry{
			ID:        uuid.NewString(),
			JournalID: journal.ID,
			UserID:    user.ID,
			Content:   "seed",
			Mood:      mood,
			EntryDate: timeAt(2026, time.May, i+1, 12),
		}
		if err := db.Create(&e).Error; err != nil {
			t.Fatalf("seed entry: %v", err)
		}
	}

	dist, err := svc.MoodDistribution(user.ID)
	if err != nil {
		t.Fatalf("mood distribution: %v", err)
	}
	if dist["happy"] != 2 || dist["sad"] != 1 {
		t.Errorf("distribution = %v, want happy:2 sad:1", dist)
	}
	if _, ok := dist[""]; ok {
		t.Error("empty mood should be excluded")
	}
}
