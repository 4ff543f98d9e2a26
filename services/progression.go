package services

import (
	"log"
	"math"

	"peels-backend/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Level curve: advancing from level 1 to 2 costs 20 XP and each further
// level costs 5 XP more than the previous one (20, 25, 30, …).
const (
	BaseLevelCost = 20
	LevelCostStep = 5
)

// BananasPerLevel is paid out for every level gained (marketplace economy).
const BananasPerLevel = 10

// CalculateLevel maps cumulative XP to a level. Deterministic, no side
// effects: repeatedly pay the cost of the next level while enough XP
// remains.
func CalculateLevel(xp int) int {
	level := 1
	cost := BaseLevelCost
	for xp >= cost {
		xp -= cost
		cost += LevelCostStep
		level++
	}
	return level
}

// EntryXPReward computes the XP granted for writing an entry:
// 1 + round(0.2 * level) + min(5, loginStreak). Note the streak input is the
// login streak, not the entry streak.
func EntryXPReward(level, loginStreak int) int {
	if loginStreak > 5 {
		loginStreak = 5
	}
	return 1 + int(math.Round(0.2*float64(level))) + loginStreak
}

// GoalXPReward is granted once when a goal is completed.
const GoalXPReward = 15

type ProgressionService struct {
	DB *gorm.DB
}

func NewProgressionService(db *gorm.DB) *ProgressionService {
	return &ProgressionService{DB: db}
}

// AddXP adds delta to the user's XP, re-derives the level, pays out bananas
// for levels gained and persists all three fields on tx. An XPLog ledger row
// is appended best-effort: a ledger write failure is logged and swallowed,
// never failing the XP update itself.
func (s *ProgressionService) AddXP(tx *gorm.DB, user *models.User, delta int) error {
	oldLevel := user.Level

	user.XP += delta
	user.Level = CalculateLevel(user.XP)
	if user.Level > oldLevel {
		user.Bananas += int64(user.Level-oldLevel) * BananasPerLevel
	}

	if err := tx.Model(user).Updates(map[string]interface{}{
		"xp":      user.XP,
		"level":   user.Level,
		"bananas": user.Bananas,
	}).Error; err != nil {
		return err
	}

	entry := models.XPLog{
		ID:       uuid.NewString(),
		UserID:   user.ID,
		XPChange: delta,
	}
	if err := tx.Create(&entry).Error; err != nil {
		log.Printf("⚠️ [XP] ledger write failed for user %s (Δ%d): %v", user.ID, delta, err)
	}

	return nil
}

// AwardXP is the standalone variant for callers outside an existing
// transaction (goal completion, admin grants).
func (s *ProgressionService) AwardXP(userID string, delta int, reason string) (*models.User, error) {
	var updated *models.User
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var user models.User
		if err := tx.Where("id = ?", userID).First(&user).Error; err != nil {
			return err
		}
		if err := s.AddXP(tx, &user, delta); err != nil {
			return err
		}
		updated = &user
		log.Printf("🍌 [XP] %s +%d XP → xp=%d lvl=%d (reason: %s)", user.Username, delta, user.XP, user.Level, reason)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}
