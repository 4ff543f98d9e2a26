package services

import (
	"peels-backend/models"

	"github.com/google/uuid"
	"github.com/gosimple/slug"
	"gorm.io/gorm"
)

type JournalService struct {
	DB *gorm.DB
}

func NewJournalService(db *gorm.DB) *JournalService {
	return &JournalService{DB: db}
}

func (s *JournalService) Create(userID, title, color string) (*models.Journal, error) {
	if color == "" {
		color = "yellow"
	}
	journal := models.Journal{
		ID:     uuid.NewString(),
		UserID: userID,
		Title:  title,
		Slug:   slug.Make(title),
		Color:  color,
	}
	if err := s.DB.Create(&journal).Error; err != nil {
		return nil, err
	}
	return &journal, nil
}

func (s *JournalService) ListForUser(userID string) ([]models.Journal, error) {
	var journals []models.Journal
	err := s.DB.Where("user_id = ?", userID).Order("created_at ASC").Find(&journals).Error
	return journals, err
}

func (s *JournalService) Get(userID, journalID string) (*models.Journal, error) {
	var journal models.Journal
	if err := s.DB.Where("id = ? AND user_id = ?", journalID, userID).First(&journal).Error; err != nil {
		return nil, err
	}
	return &journal, nil
}

// Update renames and recolors a journal; the slug follows the title.
func (s *JournalService) Update(userID, journalID, title, color string) (*models.Journal, error) {
	journal, err := s.Get(userID, journalID)
	if err != nil {
		return nil, err
	}
	if title != "" {
		journal.Title = title
		journal.Slug = slug.Make(title)
	}
	if color != "" {
		journal.Color = color
	}
	if err := s.DB.Save(journal).Error; err != nil {
		return nil, err
	}
	return journal, nil
}

// Delete soft-deletes the journal and its entries together.
func (s *JournalService) Delete(userID, journalID string) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		res := tx.Where("id = ? AND user_id = ?", journalID, userID).Delete(&models.Journal{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return tx.Where("journal_id = ?", journalID).Delete(&models.Entry{}).Error
	})
}
