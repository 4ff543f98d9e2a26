package services

import (
	"encoding/json"
	"log"
	"time"

	"peels-backend/models"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"gorm.io/gorm"
)

type BadgeService struct {
	DB *gorm.DB
}

func NewBadgeService(db *gorm.DB) *BadgeService {
	return &BadgeService{DB: db}
}

// ParseBadges decodes the JSON-encoded badge array stored on the user
// record. Malformed state degrades to an empty set (logged) so a single
// corrupt column never blocks new grants.
func ParseBadges(raw string) []string {
	if raw == "" {
		return nil
	}
	var badges []string
	if err := json.Unmarshal([]byte(raw), &badges); err != nil {
		log.Printf("⚠️ [BADGE] malformed earned_badges column, treating as empty: %v", err)
		return nil
	}
	return badges
}

func hasBadge(badges []string, code string) bool {
	for _, b := range badges {
		if b == code {
			return true
		}
	}
	return false
}

// Grant appends code to the user's earned set if absent, re-serializes and
// persists. Idempotent: granting a held badge changes nothing. Returns true
// when the badge is new.
func (s *BadgeService) Grant(tx *gorm.DB, user *models.User, code string) (bool, error) {
	badges := ParseBadges(user.EarnedBadges)
	if hasBadge(badges, code) {
		return false, nil
	}
	badges = append(badges, code)

	raw, err := json.Marshal(badges)
	if err != nil {
		return false, err
	}
	user.EarnedBadges = string(raw)

	if err := tx.Model(user).Update("earned_badges", user.EarnedBadges).Error; err != nil {
		return false, err
	}
	log.Printf("🎖️ [BADGE] %s → %s", code, user.Username)
	return true, nil
}

// highestTier returns the single highest rung of a ladder that value
// reaches. Ladders are ordered highest threshold first, so the first match
// wins and lower tiers are skipped entirely.
func highestTier(ladder []models.BadgeTier, value int) (string, bool) {
	for _, tier := range ladder {
		if value >= tier.Threshold {
			return tier.Code, true
		}
	}
	return "", false
}

// UpdateBadges evaluates every threshold ladder against the user's current
// counters and grants each newly reached tier. Badges are additive and never
// revoked; each category grants only its highest reached tier per pass.
// Returns the codes granted in this pass.
func (s *BadgeService) UpdateBadges(tx *gorm.DB, user *models.User, now time.Time) ([]string, error) {
	yearsActive := now.Year() - user.RegistrationDate.Year()

	checks := []struct {
		ladder []models.BadgeTier
		value  int
	}{
		{models.LoginStreakLadder, user.DaysInARow},
		{models.EntryCountLadder, user.EntryCount},
		{models.LevelLadder, user.Level},
		{models.AccountAgeLadder, yearsActive},
		{models.EntryStreakLadder, user.EntryDaysInARow},
		{models.MonthlyStreakLadder, user.MonthlyEntryCounter},
	}

	var granted []string
	for _, check := range checks {
		code, ok := highestTier(check.ladder, check.value)
		if !ok {
			continue
		}
		isNew, err := s.Grant(tx, user, code)
		if err != nil {
			return granted, err
		}
		if isNew {
			granted = append(granted, code)
		}
	}
	return granted, nil
}

// EntryTimeBadges returns the one-shot badges earned purely from an entry's
// timestamp: 05:00–11:59 is morning, 20:00–04:59 is night, and any entry
// dated January 1st earns firstday.
func EntryTimeBadges(entryDate time.Time) []string {
	var codes []string
	switch hour := entryDate.Hour(); {
	case hour >= 5 && hour < 12:
		codes = append(codes, models.BadgeMorning)
	case hour >= 20 || hour < 5:
		codes = append(codes, models.BadgeNight)
	}
	if entryDate.Month() == time.January && entryDate.Day() == 1 {
		codes = append(codes, models.BadgeFirstDay)
	}
	return codes
}

// BadgeName returns the display name for a badge code. Unknown codes fall
// back to a title-cased rendering so notifications stay readable.
func BadgeName(code string) string {
	for _, bt := range models.BadgeCatalog {
		if bt.Code == code {
			return bt.Name
		}
	}
	return cases.Title(language.English).String(code)
}
