package services

import (
	"errors"
	"fmt"

	"peels-backend/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrAlreadyFriends = errors.New("friendship already exists")

type FriendService struct {
	DB            *gorm.DB
	Notifications *NotificationService
}

func NewFriendService(db *gorm.DB, notifications *NotificationService) *FriendService {
	return &FriendService{DB: db, Notifications: notifications}
}

// Request creates a pending friendship. If the addressee already has a
// pending request toward the requester the two are matched up immediately.
func (s *FriendService) Request(requesterID, addresseeID string) (*models.Friendship, error) {
	if requesterID == addresseeID {
		return nil, errors.New("cannot befriend yourself")
	}

	var friendship *models.Friendship
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var existing models.Friendship
		err := tx.Where(
			"(requester_id = ? AND addressee_id = ?) OR (requester_id = ? AND addressee_id = ?)",
			requesterID, addresseeID, addresseeID, requesterID,
		).First(&existing).Error

		if err == nil {
			if existing.Status == models.FriendshipPending && existing.RequesterID == addresseeID {
				// Mutual interest: accept the counterpart request.
				existing.Status = models.FriendshipAccepted
				if err := tx.Save(&existing).Error; err != nil {
					return err
				}
				friendship = &existing
				return s.notifyAccepted(tx, &existing)
			}
			return ErrAlreadyFriends
		}
		if err != gorm.ErrRecordNotFound {
			return err
		}

		f := models.Friendship{
			ID:          uuid.NewString(),
			RequesterID: requesterID,
			AddresseeID: addresseeID,
			Status:      models.FriendshipPending,
		}
		if err := tx.Create(&f).Error; err != nil {
			return err
		}
		friendship = &f

		var requester models.User
		if err := tx.Where("id = ?", requesterID).First(&requester).Error; err != nil {
			return err
		}
		msg := fmt.Sprintf("%s wants to be your friend", requester.Username)
		return s.Notifications.Create(tx, addresseeID, models.NotificationFriend, msg)
	})
	if err != nil {
		return nil, err
	}
	return friendship, nil
}

// Accept lets the addressee confirm a pending request.
func (s *FriendService) Accept(addresseeID, friendshipID string) (*models.Friendship, error) {
	var friendship models.Friendship
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("id = ? AND addressee_id = ? AND status = ?",
			friendshipID, addresseeID, models.FriendshipPending).First(&friendship).Error; err != nil {
			return err
		}
		friendship.Status = models.FriendshipAccepted
		if err := tx.Save(&friendship).Error; err != nil {
			return err
		}
		return s.notifyAccepted(tx, &friendship)
	})
	if err != nil {
		return nil, err
	}
	return &friendship, nil
}

func (s *FriendService) notifyAccepted(tx *gorm.DB, f *models.Friendship) error {
	var addressee models.User
	if err := tx.Where("id = ?", f.AddresseeID).First(&addressee).Error; err != nil {
		return err
	}
	msg := fmt.Sprintf("%s accepted your friend request", addressee.Username)
	return s.Notifications.Create(tx, f.RequesterID, models.NotificationFriend, msg)
}

// Decline removes a pending request aimed at the addressee.
func (s *FriendService) Decline(addresseeID, friendshipID string) error {
	res := s.DB.Where("id = ? AND addressee_id = ? AND status = ?",
		friendshipID, addresseeID, models.FriendshipPending).Delete(&models.Friendship{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Remove dissolves an accepted friendship from either side.
func (s *FriendService) Remove(userID, friendshipID string) error {
	res := s.DB.Where("id = ? AND (requester_id = ? OR addressee_id = ?)",
		friendshipID, userID, userID).Delete(&models.Friendship{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// FriendInfo is what the friends list shows: the other user plus shareable
// progression stats.
type FriendInfo struct {
	FriendshipID string `json:"friendship_id"`
	UserID       string `json:"user_id"`
	Username     string `json:"username"`
	AvatarURL    *string `json:"avatar_url,omitempty"`
	Level        int    `json:"level"`
	DaysInARow   int    `json:"days_in_a_row"`
}

// ListFriends returns accepted friendships with the counterpart's profile.
func (s *FriendService) ListFriends(userID string) ([]FriendInfo, error) {
	var friendships []models.Friendship
	if err := s.DB.Where("(requester_id = ? OR addressee_id = ?) AND status = ?",
		userID, userID, models.FriendshipAccepted).Find(&friendships).Error; err != nil {
		return nil, err
	}

	infos := make([]FriendInfo, 0, len(friendships))
	for _, f := range friendships {
		otherID := f.RequesterID
		if otherID == userID {
			otherID = f.AddresseeID
		}
		var other models.User
		if err := s.DB.Where("id = ?", otherID).First(&other).Error; err != nil {
			continue // friend mirror may lag behind the sync worker
		}
		infos = append(infos, FriendInfo{
			FriendshipID: f.ID,
			UserID:       other.ID,
			Username:     other.Username,
			AvatarURL:    other.AvatarURL,
			Level:        other.Level,
			DaysInARow:   other.DaysInARow,
		})
	}
	return infos, nil
}

// ListPending returns requests awaiting the user's decision.
func (s *FriendService) ListPending(userID string) ([]models.Friendship, error) {
	var pending []models.Friendship
	err := s.DB.Where("addressee_id = ? AND status = ?", userID, models.FriendshipPending).
		Order("created_at DESC").
		Find(&pending).Error
	return pending, err
}
