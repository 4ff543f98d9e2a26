package services

import (
	"testing"

	"peels-backend/models"
)

func TestMarket_PurchaseFlow(t *testing.T) {
	db := testDB(t)
	svc := NewMarketService(db)
	if err := svc.SeedCatalog(); err != nil {
		t.Fatalf("seed catalog: %v", err)
	}

	user := seedUser(t, db, "amy")
	db.Model(user).Update("bananas", 60)

	items, err := svc.ListItems()
	if err != nil {
		t.Fatalf("list items: %v", err)
	}
	var theme *models.MarketItem
	for i := range items {
		if items[i].Code == "theme_midnight" {
			theme = &items[i]
			break
		}
	}
	if theme == nil {
		t.Fatal("seed catalog missing theme_midnight")
	}

	if _, err := svc.Purchase(user.ID, theme.ID); err != nil {
		t.Fatalf("purchase: %v", err)
	}

	got := reloadUser(t, db, user.ID)
	if got.Bananas != 60-theme.Price {
		t.Errorf("bananas = %d, want %d", got.Bananas, 60-theme.Price)
	}

	// Duplicate purchase is rejected and the balance stays put.
	if _, err := svc.Purchase(user.ID, theme.ID); err != ErrAlreadyOwned {
		t.Errorf("duplicate purchase err = %v, want ErrAlreadyOwned", err)
	}
	if reloadUser(t, db, user.ID).Bananas != got.Bananas {
		t.Error("duplicate purchase changed the balance")
	}
}

func TestMarket_InsufficientBananas(t *testing.T) {
	db := testDB(t)
	svc := NewMarketService(db)
	if err := svc.SeedCatalog(); err != nil {
		t.Fatalf("seed catalog: %v", err)
	}
	user := seedUser(t, db, "amy") // zero bananas

	items, _ := svc.ListItems()
	var frame *models.MarketItem
	for i := range items {
		if items[i].Code == "frame_gold" {
			frame = &items[i]
			break
		}
	}
	if frame == nil {
		t.Fatal("seed catalog missing frame_gold")
	}

	if _, err := svc.Purchase(user.ID, frame.ID); err != ErrInsufficientBananas {
		t.Errorf("purchase err = %v, want ErrInsufficientBananas", err)
	}
}

func TestMarket_EquipSwitchesWithinCategory(t *testing.T) {
	db := testDB(t)
	svc := NewMarketService(db)
	if err := svc.SeedCatalog(); err != nil {
		t.Fatalf("seed catalog: %v", err)
	}
	user := seedUser(t, db, "amy")
	db.Model(user).Update("bananas", 200)

	items, _ := svc.ListItems()
	byCode := make(map[string]models.MarketItem)
	for _, it := range items {
		byCode[it.Code] = it
	}

	for _, code := range []string{"theme_banana", "theme_midnight"} {
		if _, err := svc.Purchase(user.ID, byCode[code].ID); err != nil {
			t.Fatalf("purchase %s: %v", code, err)
		}
	}

	if err := svc.Equip(user.ID, byCode["theme_banana"].ID); err != nil {
		t.Fatalf("equip: %v", err)
	}
	if err := svc.Equip(user.ID, byCode["theme_midnight"].ID); err != nil {
		t.Fatalf("equip second theme: %v", err)
	}

	owned, err := svc.ListOwned(user.ID)
	if err != nil {
		t.Fatalf("list owned: %v", err)
	}
	equipped := 0
	for _, ui := range owned {
		if ui.Equipped {
			equipped++
			if ui.ItemID != byCode["theme_midnight"].ID {
				t.Error("wrong theme equipped")
			}
		}
	}
	if equipped != 1 {
		t.Errorf("equipped items = %d, want exactly 1 per category", equipped)
	}
}

func TestMarket_EquipRequiresOwnership(t *testing.T) {
	db := testDB(t)
	svc := NewMarketService(db)
	if err := svc.SeedCatalog(); err != nil {
		t.Fatalf("seed catalog: %v", err)
	}
	user := seedUser(t, db, "amy")

	items, _ := svc.ListItems()
	if err := svc.Equip(user.ID, items[0].ID); err != ErrNotOwned {
		t.Errorf("equip err = %v, want ErrNotOwned", err)
	}
}
