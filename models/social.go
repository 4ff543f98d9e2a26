package models

import "time"

// Friendship statuses.
const (
	FriendshipPending  = "pending"
	FriendshipAccepted = "accepted"
)

// Friendship is a directed request between two local users. Accepting flips
// Status; declining deletes the row.
type Friendship struct {
	ID          string `gorm:"primaryKey;type:uuid" json:"id"`
	RequesterID string `gorm:"index;not null" json:"requester_id"`
	AddresseeID string `gorm:"index;not null" json:"addressee_id"`
	Status      string `gorm:"type:varchar(16);default:'pending'" json:"status"`

	Timestamps
}

// Goal is a user-defined objective with an optional target date. Completing
// a goal awards XP once.
type Goal struct {
	ID          string     `gorm:"primaryKey;type:uuid" json:"id"`
	UserID      string     `gorm:"index;not null" json:"user_id"`
	Title       string     `gorm:"not null" json:"title"`
	Description string     `gorm:"type:text" json:"description,omitempty"`
	TargetDate  *time.Time `json:"target_date,omitempty"`
	Completed   bool       `gorm:"default:false" json:"completed"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`

	Timestamps
}

// Notification kinds.
const (
	NotificationFriend   = "friend"
	NotificationBadge    = "badge"
	NotificationReminder = "reminder"
	NotificationGoal     = "goal"
)

// Notification is shown in the user's inbox. Reminder notifications are
// created with ScheduledFor in the future and delivered (SentAt stamped) by
// the scheduler sweep; everything else is delivered immediately.
type Notification struct {
	ID           string     `gorm:"primaryKey;type:uuid" json:"id"`
	UserID       string     `gorm:"index;not null" json:"user_id"`
	Kind         string     `gorm:"type:varchar(16);not null" json:"kind"`
	Message      string     `gorm:"type:text;not null" json:"message"`
	Read         bool       `gorm:"default:false" json:"read"`
	ScheduledFor *time.Time `gorm:"index" json:"scheduled_for,omitempty"`
	SentAt       *time.Time `json:"sent_at,omitempty"`

	Timestamps
}
