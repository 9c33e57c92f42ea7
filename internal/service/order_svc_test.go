package service

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ingaa_store/internal/api/dto"
	"ingaa_store/internal/model"
)

func testOrderReq() *dto.CreateOrderReq {
	return &dto.CreateOrderReq{
		PaymentMethod: model.PaymentMethodStripe,
		ShippingAddress: dto.ShippingAddressReq{
			FullName: "Ada Parent",
			Address:  "1 Nursery Lane",
			City:     "Portland",
			State:    "OR",
			ZipCode:  "97201",
			Country:  "US",
		},
	}
}

func TestOrderService_PlaceOrder(t *testing.T) {
	store := setupServiceTestDB(t)
	publisher := &recordingPublisher{}
	svc := NewOrderService(store, publisher)
	ctx := context.Background()

	user := createUser(t, store, "buyer@test.com", false)
	bottle := createProduct(t, store, "Bottle", "15.00", 10, nil)
	bib := createProduct(t, store, "Bib", "10.00", 10, nil)
	addToCart(t, store, user.ID, bottle.ID, 2)
	addToCart(t, store, user.ID, bib.ID, 1)

	order, err := svc.PlaceOrder(ctx, user.ID, testOrderReq())
	require.NoError(t, err)
	require.NotZero(t, order.ID)

	// 小计 40.00 → 运费 5.99，税 3.20，总额 49.19
	assert.Equal(t, "40.00", order.SubtotalAmount.StringFixed(2))
	assert.Equal(t, "5.99", order.ShippingAmount.StringFixed(2))
	assert.Equal(t, "3.20", order.TaxAmount.StringFixed(2))
	assert.Equal(t, "49.19", order.TotalAmount.StringFixed(2))
	assert.Equal(t, model.OrderStatusPending, order.Status)
	assert.Equal(t, model.PaymentStatusPending, order.PaymentStatus)

	// 下单后购物车清空
	cart, err := store.Cart.ListByUser(ctx, user.ID)
	require.NoError(t, err)
	assert.Empty(t, cart)

	assert.Equal(t, []string{EventOrderCreated}, publisher.Events())

	// 改价后订单快照不变
	bottle.Price = decimal.RequireFromString("99.00")
	require.NoError(t, store.Products.Update(ctx, bottle))

	got, err := svc.GetOrder(ctx, user, order.ID)
	require.NoError(t, err)
	require.Len(t, got.Items, 2)
	assert.Equal(t, "Bottle", got.Items[0].ProductName)
	assert.Equal(t, "15.00", got.Items[0].ProductPrice.StringFixed(2))
	assert.Equal(t, 2, got.Items[0].Quantity)
	assert.Equal(t, "30.00", got.Items[0].Subtotal.StringFixed(2))
	assert.Equal(t, "Portland", got.ShippingAddress.Data().City)
}

func TestOrderService_PlaceOrder_EmptyCart(t *testing.T) {
	store := setupServiceTestDB(t)
	publisher := &recordingPublisher{}
	svc := NewOrderService(store, publisher)

	user := createUser(t, store, "empty@test.com", false)

	_, err := svc.PlaceOrder(context.Background(), user.ID, testOrderReq())
	assert.ErrorIs(t, err, ErrCartEmpty)
	assert.ErrorIs(t, err, ErrValidation)
	assert.Empty(t, publisher.Events())

	orders, err := svc.ListUserOrders(context.Background(), user.ID)
	require.NoError(t, err)
	assert.Empty(t, orders)
}

func TestOrderService_PlaceOrder_InsufficientStock(t *testing.T) {
	store := setupServiceTestDB(t)
	publisher := &recordingPublisher{}
	svc := NewOrderService(store, publisher)
	ctx := context.Background()

	user := createUser(t, store, "bulk@test.com", false)
	crib := createProduct(t, store, "Crib", "250.00", 1, nil)
	rattle := createProduct(t, store, "Rattle", "6.00", 20, nil)
	addToCart(t, store, user.ID, rattle.ID, 2)
	addToCart(t, store, user.ID, crib.ID, 3)

	_, err := svc.PlaceOrder(ctx, user.ID, testOrderReq())
	assert.ErrorIs(t, err, ErrInsufficientStock)
	assert.ErrorIs(t, err, ErrValidation)
	assert.Contains(t, err.Error(), "Crib")
	assert.Empty(t, publisher.Events())

	// 失败时购物车保持原样
	cart, err := store.Cart.ListByUser(ctx, user.ID)
	require.NoError(t, err)
	assert.Len(t, cart, 2)

	orders, err := svc.ListUserOrders(ctx, user.ID)
	require.NoError(t, err)
	assert.Empty(t, orders)
}

func TestOrderService_PlaceOrder_InvalidPayment(t *testing.T) {
	store := setupServiceTestDB(t)
	svc := NewOrderService(store, nil)

	req := testOrderReq()
	req.PaymentMethod = "cash"
	_, err := svc.PlaceOrder(context.Background(), 1, req)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestOrderService_GetOrder_Access(t *testing.T) {
	store := setupServiceTestDB(t)
	svc := NewOrderService(store, nil)
	ctx := context.Background()

	owner := createUser(t, store, "owner@test.com", false)
	stranger := createUser(t, store, "stranger@test.com", false)
	admin := createUser(t, store, "admin@test.com", true)
	p := createProduct(t, store, "Crib", "250.00", 2, nil)
	addToCart(t, store, owner.ID, p.ID, 1)

	order, err := svc.PlaceOrder(ctx, owner.ID, testOrderReq())
	require.NoError(t, err)
	assert.Equal(t, "0.00", order.ShippingAmount.StringFixed(2))

	_, err = svc.GetOrder(ctx, stranger, order.ID)
	assert.ErrorIs(t, err, ErrForbidden)

	got, err := svc.GetOrder(ctx, admin, order.ID)
	require.NoError(t, err)
	assert.Equal(t, owner.ID, got.UserID)

	_, err = svc.GetOrder(ctx, owner, 9999)
	assert.ErrorIs(t, err, ErrOrderNotFound)

	orders, err := svc.ListUserOrders(ctx, owner.ID)
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Len(t, orders[0].Items, 1)

	orders, err = svc.ListUserOrders(ctx, stranger.ID)
	require.NoError(t, err)
	assert.Empty(t, orders)
}
