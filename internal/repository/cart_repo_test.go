package repository

import (
	"context"
	"testing"

	"ingaa_store/internal/model"
)

func TestCartRepo_AddQuantityMerges(t *testing.T) {
	db := setupStoreTestDB(t)
	store := NewStore(db)
	ctx := context.Background()

	user := createTestUser(t, store, "cart@test.com")
	product := createTestProduct(t, store, "Soft Blanket", "19.99", 5)

	if _, err := store.Cart.AddQuantity(ctx, user.ID, product.ID, 2); err != nil {
		t.Fatalf("AddQuantity() error = %v", err)
	}
	item, err := store.Cart.AddQuantity(ctx, user.ID, product.ID, 3)
	if err != nil {
		t.Fatalf("AddQuantity() error = %v", err)
	}
	if item.Quantity != 5 {
		t.Errorf("Quantity = %d, want 5", item.Quantity)
	}

	var count int64
	db.Model(&model.CartItem{}).Where("user_id = ?", user.ID).Count(&count)
	if count != 1 {
		t.Errorf("购物车行数 = %d, want 1", count)
	}
}

func TestCartRepo_AddQuantityCapped(t *testing.T) {
	db := setupStoreTestDB(t)
	store := NewStore(db)
	ctx := context.Background()

	user := createTestUser(t, store, "bulk@test.com")
	product := createTestProduct(t, store, "Diaper Pack", "29.99", 1)

	for i := 0; i < 3; i++ {
		if _, err := store.Cart.AddQuantity(ctx, user.ID, product.ID, 99); err != nil {
			t.Fatalf("AddQuantity() error = %v", err)
		}
	}
	item, err := store.Cart.GetByUserAndProduct(ctx, user.ID, product.ID)
	if err != nil {
		t.Fatalf("GetByUserAndProduct() error = %v", err)
	}
	if item.Quantity != model.MaxCartItemQuantity {
		t.Errorf("Quantity = %d, want %d", item.Quantity, model.MaxCartItemQuantity)
	}
}

func TestCartRepo_ListByUser(t *testing.T) {
	db := setupStoreTestDB(t)
	store := NewStore(db)
	ctx := context.Background()

	alice := createTestUser(t, store, "alice@test.com")
	bob := createTestUser(t, store, "bob@test.com")
	product := createTestProduct(t, store, "Rattle", "8.50", 20)

	_, _ = store.Cart.AddQuantity(ctx, alice.ID, product.ID, 1)
	_, _ = store.Cart.AddQuantity(ctx, bob.ID, product.ID, 4)

	items, err := store.Cart.ListByUser(ctx, alice.ID)
	if err != nil {
		t.Fatalf("ListByUser() error = %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("len(items) = %d, want 1", len(items))
	}
	if items[0].Product == nil || items[0].Product.Name != "Rattle" {
		t.Errorf("购物车条目应附带商品: %+v", items[0].Product)
	}

	locked, err := store.Cart.ListByUserForUpdate(ctx, bob.ID)
	if err != nil {
		t.Fatalf("ListByUserForUpdate() error = %v", err)
	}
	if len(locked) != 1 || locked[0].Quantity != 4 {
		t.Errorf("ListByUserForUpdate() = %+v", locked)
	}
}

func TestCartRepo_DeleteByUser(t *testing.T) {
	db := setupStoreTestDB(t)
	store := NewStore(db)
	ctx := context.Background()

	user := createTestUser(t, store, "clear@test.com")
	p1 := createTestProduct(t, store, "Bib", "4.00", 10)
	p2 := createTestProduct(t, store, "Sock", "3.00", 10)
	_, _ = store.Cart.AddQuantity(ctx, user.ID, p1.ID, 1)
	_, _ = store.Cart.AddQuantity(ctx, user.ID, p2.ID, 1)

	if err := store.Cart.DeleteByUser(ctx, user.ID); err != nil {
		t.Fatalf("DeleteByUser() error = %v", err)
	}

	items, _ := store.Cart.ListByUser(ctx, user.ID)
	if len(items) != 0 {
		t.Errorf("清空后仍有 %d 条", len(items))
	}
}
