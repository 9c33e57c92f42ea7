package repository

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"

	"ingaa_store/internal/model"
)

func TestStatsRepo_Totals(t *testing.T) {
	db := setupStoreTestDB(t)
	store := NewStore(db)
	ctx := context.Background()

	user := createTestUser(t, store, "stats@test.com")
	createTestUser(t, store, "other@test.com")
	createTestProduct(t, store, "In Stock", "10.00", 25)
	createTestProduct(t, store, "Low", "10.00", 3)
	createTestProduct(t, store, "Edge", "10.00", 10)
	createTestProduct(t, store, "Gone", "10.00", 0)

	for _, o := range []struct {
		total  string
		status string
	}{
		{"49.19", model.OrderStatusPending},
		{"64.80", model.OrderStatusDelivered},
	} {
		order := &model.Order{
			UserID:          user.ID,
			Status:          o.status,
			SubtotalAmount:  decimal.Zero,
			ShippingAmount:  decimal.Zero,
			TaxAmount:       decimal.Zero,
			TotalAmount:     decimal.RequireFromString(o.total),
			PaymentMethod:   model.PaymentMethodStripe,
			PaymentStatus:   model.PaymentStatusPending,
			ShippingAddress: datatypes.NewJSONType(model.ShippingAddress{FullName: "A"}),
		}
		if err := store.Orders.Create(ctx, order); err != nil {
			t.Fatalf("创建订单失败: %v", err)
		}
	}

	orders, err := store.Stats.OrderTotals(ctx)
	if err != nil {
		t.Fatalf("OrderTotals() error = %v", err)
	}
	if !orders.Revenue.Equal(decimal.RequireFromString("113.99")) {
		t.Errorf("Revenue = %s, want 113.99", orders.Revenue)
	}
	if orders.Total != 2 || orders.Pending != 1 {
		t.Errorf("OrderTotals() = %+v", orders)
	}

	stock, err := store.Stats.StockTotals(ctx)
	if err != nil {
		t.Fatalf("StockTotals() error = %v", err)
	}
	if stock.Total != 4 || stock.LowStock != 1 || stock.OutOfStock != 1 {
		t.Errorf("StockTotals() = %+v", stock)
	}

	customers, _ := store.Stats.CustomerCount(ctx)
	if customers != 2 {
		t.Errorf("CustomerCount() = %d, want 2", customers)
	}
}
