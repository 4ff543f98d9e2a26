package models

import "time"

// Journal groups a user's entries. Slug is derived from the title and kept
// stable for shareable URLs until the title changes.
type Journal struct {
	ID     string `gorm:"primaryKey;type:uuid" json:"id"`
	UserID string `gorm:"index;not null" json:"user_id"`
	Title  string `gorm:"not null" json:"title"`
	Slug   string `gorm:"index" json:"slug"`
	Color  string `gorm:"type:varchar(16);default:'yellow'" json:"color"`

	Timestamps
}

// Entry is a single journal entry. EntryDate is the moment the entry was
// written and is what all streak arithmetic keys off; CreatedAt is the row
// insertion time.
type Entry struct {
	ID        string    `gorm:"primaryKey;type:uuid" json:"id"`
	JournalID string    `gorm:"index;not null" json:"journal_id"`
	UserID    string    `gorm:"index;not null" json:"user_id"`
	Title     string    `json:"title"`
	Content   string    `gorm:"type:text" json:"content"`
	Mood      string    `gorm:"type:varchar(16)" json:"mood,omitempty"`
	EntryDate time.Time `gorm:"index;not null" json:"entry_date"`

	Timestamps
}
