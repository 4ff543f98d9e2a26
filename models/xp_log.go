package models

import "time"

// XPLog is the append-only ledger of individual XP deltas. It is written
// best-effort after every XP mutation and consumed by the statistics service
// for XP history graphs and the monthly leaderboard. Rows are never updated
// or deleted.
type XPLog struct {
	ID        string    `gorm:"primaryKey;type:uuid" json:"id"`
	UserID    string    `gorm:"index;not null" json:"user_id"`
	XPChange  int       `gorm:"not null" json:"xp_change"`
	CreatedAt time.Time `gorm:"index;autoCreateTime" json:"created_at"`
}
