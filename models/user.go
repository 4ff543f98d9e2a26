package models

import (
	"time"

	"gorm.io/gorm"
)

// User is the local mirror of an identity-provider account plus all
// gamification state. Identity fields are populated by the profile sync
// worker; progression fields are mutated only through the services layer.
type User struct {
	ID             string  `gorm:"primaryKey;type:uuid" json:"id"`
	ExternalUserID string  `gorm:"uniqueIndex;not null" json:"external_user_id"` // identity provider UUID
	Username       string  `gorm:"index;not null" json:"username"`
	Email          string  `json:"email,omitempty"`
	AvatarURL      *string `json:"avatar_url,omitempty"`

	// Progression
	XP    int `json:"xp" gorm:"default:0"`
	Level int `json:"level" gorm:"default:1"` // always derived from XP, persisted for quick reads

	// Streak counters. Each is advanced from the previous value plus the
	// current event's date delta; nothing here is recomputed from history.
	DaysInARow          int        `json:"days_in_a_row" gorm:"default:0"`
	EntryCount          int        `json:"entry_count" gorm:"default:0"`
	EntryDaysInARow     int        `json:"entry_days_in_a_row" gorm:"default:0"`
	MonthlyEntryCounter int        `json:"monthly_entry_counter" gorm:"default:0"`
	LastEntryDate       *time.Time `json:"last_entry_date,omitempty"`
	LastLoginDate       *time.Time `json:"last_login_date,omitempty"`
	RegistrationDate    time.Time  `json:"registration_date"`

	// EarnedBadges is a JSON-encoded array of badge codes kept in a single
	// text column. Badges are only ever added, never revoked.
	EarnedBadges string `gorm:"type:text;default:'[]'" json:"-"`

	// Marketplace currency
	Bananas int64 `json:"bananas" gorm:"default:0"`

	Timestamps
}

// Timestamps adds GORM auto-times plus soft delete.
type Timestamps struct {
	CreatedAt time.Time      `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time      `json:"updated_at" gorm:"autoUpdateTime"`
	DeletedAt gorm.DeletedAt `json:"deleted_at,omitempty" gorm:"index"`
}

// RemoteProfile matches the JSON shape the identity provider's sync endpoint
// returns. Used only by the profile sync worker.
type RemoteProfile struct {
	ExternalID string    `json:"external_id"`
	Username   string    `json:"username"`
	Email      string    `json:"email"`
	AvatarURL  *string   `json:"avatar_url,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
