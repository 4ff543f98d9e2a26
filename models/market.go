package models

import "time"

// MarketItem is a cosmetic purchasable with bananas. The catalog is seeded
// at startup and items are never hard-deleted (owned items must keep
// resolving).
type MarketItem struct {
	ID          string `gorm:"primaryKey;type:uuid" json:"id"`
	Code        string `gorm:"uniqueIndex;not null" json:"code"`
	Name        string `gorm:"not null" json:"name"`
	Description string `json:"description,omitempty"`
	Category    string `gorm:"type:varchar(16);index;not null" json:"category"` // theme, sticker, frame
	Price       int64  `gorm:"not null" json:"price"`
	IconURL     string `gorm:"type:text" json:"icon_url,omitempty"`

	Timestamps
}

// UserItem is an owned cosmetic. At most one item per category may be
// equipped at a time.
type UserItem struct {
	ID          string    `gorm:"primaryKey;type:uuid" json:"id"`
	UserID      string    `gorm:"index:idx_user_item,unique;not null" json:"user_id"`
	ItemID      string    `gorm:"index:idx_user_item,unique;not null" json:"item_id"`
	Equipped    bool      `gorm:"default:false" json:"equipped"`
	PurchasedAt time.Time `gorm:"autoCreateTime" json:"purchased_at"`
}

// DefaultMarketItems is the seed catalog, upserted at startup by code.
var DefaultMarketItems = []MarketItem{
	{Code: "theme_banana", Name: "Banana Yellow", Description: "Classic Peels theme", Category: "theme", Price: 0},
	{Code: "theme_midnight", Name: "Midnight", Description: "Dark theme for night owls", Category: "theme", Price: 50},
	{Code: "theme_forest", Name: "Forest", Description: "Calm green theme", Category: "theme", Price: 50},
	{Code: "sticker_monkey", Name: "Monkey Sticker", Description: "A cheeky companion for your entries", Category: "sticker", Price: 20},
	{Code: "sticker_peel", Name: "Peel Sticker", Description: "Mind the slip", Category: "sticker", Price: 20},
	{Code: "frame_gold", Name: "Golden Frame", Description: "Gilded avatar frame", Category: "frame", Price: 100},
	{Code: "frame_vine", Name: "Vine Frame", Description: "Leafy avatar frame", Category: "frame", Price: 75},
}
