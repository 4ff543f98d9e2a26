package services

import (
	"testing"
	"time"

	"peels-backend/models"

	"gorm.io/gorm"
)

func entryFixture(tb testing.TB, db *gorm.DB) *EntryService {
	tb.Helper()
	notifications := NewNotificationService(db)
	progression := NewProgressionService(db)
	badges := NewBadgeService(db)
	return NewEntryService(db, progression, badges, notifications)
}

// Full first-entry walkthrough: a fresh user writes a morning entry and
// every counter, the XP reward and the badge passes land together.
func TestEntryCreate_FirstMorningEntry(t *testing.T) {
	db := testDB(t)
	svc := entryFixture(t, db)
	user := seedUser(t, db, "amy")
	journal := seedJournal(t, db, user.ID)

	entryDate := timeAt(2026, time.March, 10, 10) // 10:00, not Jan 1
	result, err := svc.Create(user.ID, journal.ID, "Morning pages", "Slept well.", "happy", entryDate)
	if err != nil {
		t.Fatalf("create entry: %v", err)
	}

	// Reward on a fresh user: 1 + round(0.2×1) + min(5, 0) = 1.
	if result.XPGained != 1 {
		t.Errorf("xp_gained = %d, want 1", result.XPGained)
	}
	if result.Level != 1 {
		t.Errorf("level = %d, want 1", result.Level)
	}

	got := reloadUser(t, db, user.ID)
	if got.EntryCount != 1 {
		t.Errorf("entry_count = %d, want 1", got.EntryCount)
	}
	if got.EntryDaysInARow != 1 {
		t.Errorf("entry_days_in_a_row = %d, want 1", got.EntryDaysInARow)
	}
	if got.MonthlyEntryCounter != 1 {
		t.Errorf("monthly_entry_counter = %d, want 1", got.MonthlyEntryCounter)
	}
	if got.XP != 1 {
		t.Errorf("xp = %d, want 1", got.XP)
	}

	badges := ParseBadges(got.EarnedBadges)
	if !hasBadge(badges, models.BadgeMorning) {
		t.Error("morning badge missing for a 10:00 entry")
	}
	if !hasBadge(badges, models.BadgeFirstEntry) {
		t.Error("firstEntry badge missing after first entry")
	}
	if hasBadge(badges, models.BadgeFirstDay) {
		t.Error("firstday badge granted for a non-Jan-1 entry")
	}
}

func TestEntryCreate_SameDaySecondEntry(t *testing.T) {
	db := testDB(t)
	svc := entryFixture(t, db)
	user := seedUser(t, db, "amy")
	journal := seedJournal(t, db, user.ID)

	now := time.Now()
	if _, err := svc.Create(user.ID, journal.ID, "One", "first", "", now); err != nil {
		t.Fatalf("first entry: %v", err)
	}
	if _, err := svc.Create(user.ID, journal.ID, "Two", "second", "", now); err != nil {
		t.Fatalf("second entry: %v", err)
	}

	got := reloadUser(t, db, user.ID)
	if got.EntryDaysInARow != 1 {
		t.Errorf("entry_days_in_a_row = %d, want unchanged 1 after same-day re-entry", got.EntryDaysInARow)
	}
	if got.EntryCount != 2 {
		t.Errorf("entry_count = %d, want 2", got.EntryCount)
	}
}

func TestEntryCreate_BadgeNotificationsCreated(t *testing.T) {
	db := testDB(t)
	svc := entryFixture(t, db)
	user := seedUser(t, db, "amy")
	journal := seedJournal(t, db, user.ID)

	if _, err := svc.Create(user.ID, journal.ID, "One", "text", "", timeAt(2026, time.March, 10, 14)); err != nil {
		t.Fatalf("create entry: %v", err)
	}

	var count int64
	db.Model(&models.Notification{}).
		Where("user_id = ? AND kind = ?", user.ID, models.NotificationBadge).
		Count(&count)
	if count == 0 {
		t.Error("expected badge notifications for the first-entry grants")
	}
}

func TestEntryCreate_RejectsForeignJournal(t *testing.T) {
	db := testDB(t)
	svc := entryFixture(t, db)
	owner := seedUser(t, db, "amy")
	intruder := seedUser(t, db, "bob")
	journal := seedJournal(t, db, owner.ID)

	if _, err := svc.Create(intruder.ID, journal.ID, "Sneaky", "text", "", time.Now()); err == nil {
		t.Fatal("expected error writing into another user's journal")
	}

	got := reloadUser(t, db, intruder.ID)
	if got.EntryCount != 0 || got.XP != 0 {
		t.Error("failed create must not advance counters (transaction rollback)")
	}
}

func TestEntryDelete_KeepsLifetimeCount(t *testing.T) {
	db := testDB(t)
	svc := entryFixture(t, db)
	user := seedUser(t, db, "amy")
	journal := seedJournal(t, db, user.ID)

	result, err := svc.Create(user.ID, journal.ID, "One", "text", "", time.Now())
	if err != nil {
		t.Fatalf("create entry: %v", err)
	}
	if err := svc.Delete(user.ID, result.Entry.ID); err != nil {
		t.Fatalf("delete entry: %v", err)
	}

	got := reloadUser(t, db, user.ID)
	if got.EntryCount != 1 {
		t.Errorf("entry_count = %d, want 1; deletion never decrements the lifetime counter", got.EntryCount)
	}

	list, err := svc.ListForJournal(user.ID, journal.ID)
	if err != nil {
		t.Fatalf("list entries: %v", err)
	}
	if len(list) != 0 {
		t.Errorf("listed %d entries after delete, want 0", len(list))
	}
}
