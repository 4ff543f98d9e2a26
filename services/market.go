package services

import (
	"errors"
	"log"

	"peels-backend/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrInsufficientBananas = errors.New("not enough bananas")
	ErrAlreadyOwned        = errors.New("item already owned")
	ErrNotOwned            = errors.New("item not owned")
)

type MarketService struct {
	DB *gorm.DB
}

func NewMarketService(db *gorm.DB) *MarketService {
	return &MarketService{DB: db}
}

// SeedCatalog upserts the default item catalog by code. Safe to run on
// every startup.
func (s *MarketService) SeedCatalog() error {
	for _, item := range models.DefaultMarketItems {
		var existing models.MarketItem
		err := s.DB.Where("code = ?", item.Code).First(&existing).Error
		if err == gorm.ErrRecordNotFound {
			item.ID = uuid.NewString()
			if err := s.DB.Create(&item).Error; err != nil {
				return err
			}
			continue
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func (s *MarketService) ListItems() ([]models.MarketItem, error) {
	var items []models.MarketItem
	err := s.DB.Order("category ASC, price ASC").Find(&items).Error
	return items, err
}

func (s *MarketService) ListOwned(userID string) ([]models.UserItem, error) {
	var owned []models.UserItem
	err := s.DB.Where("user_id = ?", userID).Order("purchased_at DESC").Find(&owned).Error
	return owned, err
}

// Purchase deducts the price from the user's banana balance and records
// ownership, all in one transaction. Duplicate purchases are rejected.
func (s *MarketService) Purchase(userID, itemID string) (*models.UserItem, error) {
	var owned *models.UserItem
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var item models.MarketItem
		if err := tx.Where("id = ?", itemID).First(&item).Error; err != nil {
			return err
		}

		var count int64
		tx.Model(&models.UserItem{}).
			Where("user_id = ? AND item_id = ?", userID, itemID).
			Count(&count)
		if count > 0 {
			return ErrAlreadyOwned
		}

		var user models.User
		if err := tx.Where("id = ?", userID).First(&user).Error; err != nil {
			return err
		}
		if user.Bananas < item.Price {
			return ErrInsufficientBananas
		}

		user.Bananas -= item.Price
		if err := tx.Model(&user).Update("bananas", user.Bananas).Error; err != nil {
			return err
		}

		ui := models.UserItem{
			ID:     uuid.NewString(),
			UserID: userID,
			ItemID: itemID,
		}
		if err := tx.Create(&ui).Error; err != nil {
			return err
		}
		owned = &ui
		log.Printf("🛒 [MARKET] %s bought %s for %d🍌 (balance %d)", userID, item.Code, item.Price, user.Bananas)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return owned, nil
}

// Equip marks an owned item equipped and unequips the rest of its category.
func (s *MarketService) Equip(userID, itemID string) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		var item models.MarketItem
		if err := tx.Where("id = ?", itemID).First(&item).Error; err != nil {
			return err
		}

		var ui models.UserItem
		if err := tx.Where("user_id = ? AND item_id = ?", userID, itemID).First(&ui).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				return ErrNotOwned
			}
			return err
		}

		// Unequip siblings in the same category first.
		if err := tx.Model(&models.UserItem{}).
			Where("user_id = ? AND item_id IN (?)", userID,
				tx.Model(&models.MarketItem{}).Select("id").Where("category = ?", item.Category)).
			Update("equipped", false).Error; err != nil {
			return err
		}

		return tx.Model(&ui).Update("equipped", true).Error
	})
}
