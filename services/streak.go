package services

import (
	"time"

	"peels-backend/models"
)

// Progress is the value-object snapshot of a user's streak counters. The
// Apply* functions below are pure: they take a snapshot plus the current
// event time and return the updated snapshot; callers persist the result.
type Progress struct {
	DaysInARow          int
	EntryCount          int
	EntryDaysInARow     int
	MonthlyEntryCounter int
	LastEntryDate       *time.Time
	LastLoginDate       *time.Time
}

// SnapshotProgress lifts the streak fields off a user record.
func SnapshotProgress(u *models.User) Progress {
	return Progress{
		DaysInARow:          u.DaysInARow,
		EntryCount:          u.EntryCount,
		EntryDaysInARow:     u.EntryDaysInARow,
		MonthlyEntryCounter: u.MonthlyEntryCounter,
		LastEntryDate:       u.LastEntryDate,
		LastLoginDate:       u.LastLoginDate,
	}
}

// ApplyTo writes the snapshot back onto the user record.
func (p Progress) ApplyTo(u *models.User) {
	u.DaysInARow = p.DaysInARow
	u.EntryCount = p.EntryCount
	u.EntryDaysInARow = p.EntryDaysInARow
	u.MonthlyEntryCounter = p.MonthlyEntryCounter
	u.LastEntryDate = p.LastEntryDate
	u.LastLoginDate = p.LastLoginDate
}

// loggedInYesterday compares day-of-month only: the login counts as
// "yesterday" when lastLogin's day-of-month plus one equals now's. This is
// NOT a calendar-day difference and yields a false negative across month
// boundaries (Jan 31 -> Feb 1 compares 32 vs 1). Stored streaks depend on
// this exact comparison; do not swap in a date diff. See DESIGN.md.
func loggedInYesterday(lastLogin, now time.Time) bool {
	return lastLogin.Day()+1 == now.Day()
}

// sameCalendarDay reports whether two times fall on the same local date.
func sameCalendarDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}

// ApplyDailyLogin advances the login streak for a login at now. A repeated
// login on the same calendar day is a no-op; a login the day after the last
// one extends the streak; anything else resets it to 0 before the +1.
func ApplyDailyLogin(p Progress, now time.Time) Progress {
	if p.LastLoginDate != nil && sameCalendarDay(*p.LastLoginDate, now) {
		return p
	}
	if p.LastLoginDate == nil || !loggedInYesterday(*p.LastLoginDate, now) {
		p.DaysInARow = 0
	}
	p.DaysInARow++
	p.LastLoginDate = &now
	return p
}

// ApplyEntryCreated advances the entry streak, the rolling monthly counter
// and the lifetime entry count for an entry written at now.
//
// Gap arithmetic: floor((now - lastEntryDate) / 24h). Gap 1 extends the
// streak, gap > 1 breaks it to 1, gap 0 (same-day re-entry) leaves it
// untouched. The monthly counter increments whenever now falls in a
// different calendar month or year than the previous entry, independent of
// the day-streak branch.
func ApplyEntryCreated(p Progress, now time.Time) Progress {
	if p.LastEntryDate == nil {
		p.EntryDaysInARow = 1
		p.MonthlyEntryCounter = 1
	} else {
		last := *p.LastEntryDate
		switch gap := int(now.Sub(last).Hours() / 24); {
		case gap == 1:
			p.EntryDaysInARow++
		case gap > 1:
			p.EntryDaysInARow = 1
		}
		if now.Month() != last.Month() || now.Year() != last.Year() {
			p.MonthlyEntryCounter++
		}
	}
	p.LastEntryDate = &now
	p.EntryCount++
	return p
}
