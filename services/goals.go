package services

import (
	"errors"
	"fmt"
	"time"

	"peels-backend/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrGoalAlreadyCompleted = errors.New("goal already completed")

type GoalService struct {
	DB            *gorm.DB
	Progression   *ProgressionService
	Notifications *NotificationService
}

func NewGoalService(db *gorm.DB, progression *ProgressionService, notifications *NotificationService) *GoalService {
	return &GoalService{DB: db, Progression: progression, Notifications: notifications}
}

func (s *GoalService) Create(userID, title, description string, targetDate *time.Time) (*models.Goal, error) {
	goal := models.Goal{
		ID:          uuid.NewString(),
		UserID:      userID,
		Title:       title,
		Description: description,
		TargetDate:  targetDate,
	}
	if err := s.DB.Create(&goal).Error; err != nil {
		return nil, err
	}
	return &goal, nil
}

func (s *GoalService) ListForUser(userID string) ([]models.Goal, error) {
	var goals []models.Goal
	err := s.DB.Where("user_id = ?", userID).
		Order("completed ASC, created_at DESC").
		Find(&goals).Error
	return goals, err
}

// Complete marks a goal done and awards its one-time XP.
func (s *GoalService) Complete(userID, goalID string) (*models.Goal, error) {
	var goal models.Goal
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("id = ? AND user_id = ?", goalID, userID).First(&goal).Error; err != nil {
			return err
		}
		if goal.Completed {
			return ErrGoalAlreadyCompleted
		}

		now := time.Now()
		goal.Completed = true
		goal.CompletedAt = &now
		if err := tx.Save(&goal).Error; err != nil {
			return err
		}

		var user models.User
		if err := tx.Where("id = ?", userID).First(&user).Error; err != nil {
			return err
		}
		if err := s.Progression.AddXP(tx, &user, GoalXPReward); err != nil {
			return err
		}

		msg := fmt.Sprintf("Goal completed: %s (+%d XP)", goal.Title, GoalXPReward)
		return s.Notifications.Create(tx, userID, models.NotificationGoal, msg)
	})
	if err != nil {
		return nil, err
	}
	return &goal, nil
}

func (s *GoalService) Update(userID, goalID, title, description string, targetDate *time.Time) (*models.Goal, error) {
	var goal models.Goal
	if err := s.DB.Where("id = ? AND user_id = ?", goalID, userID).First(&goal).Error; err != nil {
		return nil, err
	}
	if title != "" {
		goal.Title = title
	}
	if description != "" {
		goal.Description = description
	}
	if targetDate != nil {
		goal.TargetDate = targetDate
	}
	if err := s.DB.Save(&goal).Error; err != nil {
		return nil, err
	}
	return &goal, nil
}

func (s *GoalService) Delete(userID, goalID string) error {
	res := s.DB.Where("id = ? AND user_id = ?", goalID, userID).Delete(&models.Goal{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
