package services

import (
	"testing"
	"time"

	"peels-backend/models"
)

func TestNotifications_ScheduledHiddenUntilDelivered(t *testing.T) {
	db := testDB(t)
	svc := NewNotificationService(db)
	user := seedUser(t, db, "amy")

	if err := svc.Create(db, user.ID, models.NotificationFriend, "hello"); err != nil {
		t.Fatalf("create: %v", err)
	}
	scheduled, err := svc.ScheduleReminder(user.ID, "time to write!", time.Now().Add(time.Hour))
	if err != nil {
		t.Fatalf("schedule: %v", err)
	}

	list, err := svc.ListForUser(user.ID, false)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 1 {
		t.Fatalf("inbox = %d, want 1; undelivered reminders stay hidden", len(list))
	}

	// Simulate the scheduler sweep stamping delivery.
	now := time.Now()
	db.Model(&models.Notification{}).Where("id = ?", scheduled.ID).Update("sent_at", now)

	list, _ = svc.ListForUser(user.ID, false)
	if len(list) != 2 {
		t.Errorf("inbox = %d after delivery, want 2", len(list))
	}
}

func TestNotifications_MarkRead(t *testing.T) {
	db := testDB(t)
	svc := NewNotificationService(db)
	user := seedUser(t, db, "amy")
	other := seedUser(t, db, "bob")

	_ = svc.Create(db, user.ID, models.NotificationFriend, "one")
	_ = svc.Create(db, user.ID, models.NotificationFriend, "two")

	unread, _ := svc.ListForUser(user.ID, true)
	if len(unread) != 2 {
		t.Fatalf("unread = %d, want 2", len(unread))
	}

	// A user cannot touch someone else's notification.
	if err := svc.MarkRead(other.ID, unread[0].ID); err == nil {
		t.Error("expected error marking another user's notification read")
	}

	if err := svc.MarkRead(user.ID, unread[0].ID); err != nil {
		t.Fatalf("mark read: %v", err)
	}
	if err := svc.MarkAllRead(user.ID); err != nil {
		t.Fatalf("mark all read: %v", err)
	}

	unread, _ = svc.ListForUser(user.ID, true)
	if len(unread) != 0 {
		t.Errorf("unread = %d after mark-all, want 0", len(unread))
	}
}
