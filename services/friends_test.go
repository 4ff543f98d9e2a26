package services

import (
	"testing"

	"peels-backend/models"
)

func TestFriendRequestAndAccept(t *testing.T) {
	db := testDB(t)
	svc := NewFriendService(db, NewNotificationService(db))
	amy := seedUser(t, db, "amy")
	bob := seedUser(t, db, "bob")

	f, err := svc.Request(amy.ID, bob.ID)
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if f.Status != models.FriendshipPending {
		t.Errorf("status = %s, want pending", f.Status)
	}

	pending, err := svc.ListPending(bob.ID)
	if err != nil {
		t.Fatalf("list pending: %v", err)
	}
	if len(pending) != 1 {
		t.Fatalf("pending = %d, want 1", len(pending))
	}

	accepted, err := svc.Accept(bob.ID, f.ID)
	if err != nil {
		t.Fatalf("accept: %v", err)
	}
	if accepted.Status != models.FriendshipAccepted {
		t.Errorf("status = %s, want accepted", accepted.Status)
	}

	// Both sides see the friendship with the counterpart's profile.
	for _, who := range []*models.User{amy, bob} {
		friends, err := svc.ListFriends(who.ID)
		if err != nil {
			t.Fatalf("list friends for %s: %v", who.Username, err)
		}
		if len(friends) != 1 {
			t.Errorf("%s sees %d friends, want 1", who.Username, len(friends))
		}
	}
}

func TestFriendRequest_MutualPendingAutoAccepts(t *testing.T) {
	db := testDB(t)
	svc := NewFriendService(db, NewNotificationService(db))
	amy := seedUser(t, db, "amy")
	bob := seedUser(t, db, "bob")

	if _, err := svc.Request(amy.ID, bob.ID); err != nil {
		t.Fatalf("first request: %v", err)
	}
	f, err := svc.Request(bob.ID, amy.ID)
	if err != nil {
		t.Fatalf("counter request: %v", err)
	}
	if f.Status != models.FriendshipAccepted {
		t.Errorf("status = %s, want auto-accepted on mutual interest", f.Status)
	}
}

func TestFriendRequest_DuplicateRejected(t *testing.T) {
	db := testDB(t)
	svc := NewFriendService(db, NewNotificationService(db))
	amy := seedUser(t, db, "amy")
	bob := seedUser(t, db, "bob")

	if _, err := svc.Request(amy.ID, bob.ID); err != nil {
		t.Fatalf("request: %v", err)
	}
	if _, err := svc.Request(amy.ID, bob.ID); err != ErrAlreadyFriends {
		t.Errorf("duplicate request err = %v, want ErrAlreadyFriends", err)
	}
	if _, err := svc.Request(amy.ID, amy.ID); err == nil {
		t.Error("self-friendship should be rejected")
	}
}

func TestFriendDeclineAndRemove(t *testing.T) {
	db := testDB(t)
	svc := NewFriendService(db, NewNotificationService(db))
	amy := seedUser(t, db, "amy")
	bob := seedUser(t, db, "bob")

	f, _ := svc.Request(amy.ID, bob.ID)
	if err := svc.Decline(bob.ID, f.ID); err != nil {
		t.Fatalf("decline: %v", err)
	}

	f, _ = svc.Request(amy.ID, bob.ID)
	if _, err := svc.Accept(bob.ID, f.ID); err != nil {
		t.Fatalf("accept: %v", err)
	}
	if err := svc.Remove(amy.ID, f.ID); err != nil {
		t.Fatalf("remove: %v", err)
	}

	friends, _ := svc.ListFriends(amy.ID)
	if len(friends) != 0 {
		t.Errorf("friends = %d after removal, want 0", len(friends))
	}
}
