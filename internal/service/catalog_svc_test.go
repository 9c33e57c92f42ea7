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

func productNames(products []model.Product) []string {
	names := make([]string, 0, len(products))
	for _, p := range products {
		names = append(names, p.Name)
	}
	return names
}

func TestCatalogService_ListProducts_PriceBuckets(t *testing.T) {
	store := setupServiceTestDB(t)
	svc := NewCatalogService(store, nil)
	ctx := context.Background()

	createProduct(t, store, "Bib", "24.99", 5, nil)
	createProduct(t, store, "Bottle", "25.00", 5, nil)
	createProduct(t, store, "Blanket", "49.99", 5, nil)
	createProduct(t, store, "Chair", "50.00", 5, nil)
	createProduct(t, store, "Stroller", "100.00", 5, nil)

	tests := []struct {
		price string
		want  []string
	}{
		{"under25", []string{"Bib"}},
		{"25to50", []string{"Blanket", "Bottle"}},
		{"50to100", []string{"Chair"}},
		{"over100", []string{"Stroller"}},
		{"all", []string{"Bib", "Blanket", "Bottle", "Chair", "Stroller"}},
	}

	for _, tt := range tests {
		t.Run(tt.price, func(t *testing.T) {
			products, err := svc.ListProducts(ctx, &dto.ProductListQuery{Price: tt.price})
			require.NoError(t, err)
			assert.ElementsMatch(t, tt.want, productNames(products))
		})
	}
}

func TestCatalogService_ListProducts_Sort(t *testing.T) {
	store := setupServiceTestDB(t)
	svc := NewCatalogService(store, nil)
	ctx := context.Background()

	createProduct(t, store, "Mid", "30.00", 5, nil)
	createProduct(t, store, "Cheap", "10.00", 5, nil)
	createProduct(t, store, "Pricey", "90.00", 5, nil)

	products, err := svc.ListProducts(ctx, &dto.ProductListQuery{Sort: "price-low"})
	require.NoError(t, err)
	assert.Equal(t, []string{"Cheap", "Mid", "Pricey"}, productNames(products))

	products, err = svc.ListProducts(ctx, &dto.ProductListQuery{Sort: "price-high", Limit: 2})
	require.NoError(t, err)
	assert.Equal(t, []string{"Pricey", "Mid"}, productNames(products))

	// 未知排序按默认排序处理，不报错
	products, err = svc.ListProducts(ctx, &dto.ProductListQuery{Sort: "bogus"})
	require.NoError(t, err)
	assert.Len(t, products, 3)
}

func TestCatalogService_ListProducts_UnknownCategory(t *testing.T) {
	store := setupServiceTestDB(t)
	svc := NewCatalogService(store, nil)

	nursery := createCategory(t, store, "nursery", 1)
	createProduct(t, store, "Crib", "199.00", 3, &nursery.ID)

	products, err := svc.ListProducts(context.Background(), &dto.ProductListQuery{Category: "spaceships"})
	require.NoError(t, err)
	assert.NotNil(t, products)
	assert.Empty(t, products)

	products, err = svc.ListProducts(context.Background(), &dto.ProductListQuery{Category: "nursery"})
	require.NoError(t, err)
	assert.Equal(t, []string{"Crib"}, productNames(products))
}

func TestCatalogService_GetProduct(t *testing.T) {
	store := setupServiceTestDB(t)
	svc := NewCatalogService(store, nil)

	toys := createCategory(t, store, "toys", 1)
	p := createProduct(t, store, "Rings", "19.99", 10, &toys.ID)

	got, err := svc.GetProduct(context.Background(), p.ID)
	require.NoError(t, err)
	require.NotNil(t, got.Category)
	assert.Equal(t, "toys", got.Category.Slug)

	_, err = svc.GetProduct(context.Background(), 9999)
	assert.ErrorIs(t, err, ErrProductNotFound)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCatalogService_CreateUpdateProduct(t *testing.T) {
	store := setupServiceTestDB(t)
	svc := NewCatalogService(store, nil)
	ctx := context.Background()

	feeding := createCategory(t, store, "feeding", 1)

	created, err := svc.CreateProduct(ctx, &dto.CreateProductReq{
		Name:                 "High Chair",
		Price:                decimal.RequireFromString("129.005"),
		StockQuantity:        4,
		CategoryID:           &feeding.ID,
		SafetyCertifications: []string{"JPMA"},
	})
	require.NoError(t, err)
	assert.Equal(t, "129.01", created.Price.StringFixed(2))
	assert.Equal(t, "feeding", created.Category.Slug)

	newName := "Convertible High Chair"
	newStock := 0
	updated, err := svc.UpdateProduct(ctx, created.ID, &dto.UpdateProductReq{
		Name:          &newName,
		StockQuantity: &newStock,
	})
	require.NoError(t, err)
	assert.Equal(t, newName, updated.Name)
	assert.False(t, updated.InStock())
	// 未传的字段保持不变
	assert.Equal(t, []string{"JPMA"}, []string(updated.SafetyCertifications))

	_, err = svc.CreateProduct(ctx, &dto.CreateProductReq{Name: "Free", Price: decimal.Zero})
	assert.ErrorIs(t, err, ErrValidation)

	missing := int64(404)
	_, err = svc.CreateProduct(ctx, &dto.CreateProductReq{Name: "Orphan", Price: decimal.NewFromInt(1), CategoryID: &missing})
	assert.ErrorIs(t, err, ErrCategoryNotFound)
}

type recordingImageRemover struct {
	deleted []string
}

func (r *recordingImageRemover) Delete(_ context.Context, url string) error {
	r.deleted = append(r.deleted, url)
	return nil
}

func TestCatalogService_UpdateProduct_RemovesDroppedImages(t *testing.T) {
	store := setupServiceTestDB(t)
	images := &recordingImageRemover{}
	svc := NewCatalogService(store, images)
	ctx := context.Background()

	created, err := svc.CreateProduct(ctx, &dto.CreateProductReq{
		Name:      "Play Mat",
		Price:     decimal.NewFromInt(35),
		ImageURLs: []string{"/uploads/a.png", "/uploads/b.png"},
	})
	require.NoError(t, err)

	// 不修改图片时不删除
	stock := 3
	_, err = svc.UpdateProduct(ctx, created.ID, &dto.UpdateProductReq{StockQuantity: &stock})
	require.NoError(t, err)
	assert.Empty(t, images.deleted)

	updated, err := svc.UpdateProduct(ctx, created.ID, &dto.UpdateProductReq{
		ImageURLs: []string{"/uploads/b.png", "https://cdn.test/c.png"},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"/uploads/b.png", "https://cdn.test/c.png"}, []string(updated.ImageURLs))
	assert.Equal(t, []string{"/uploads/a.png"}, images.deleted)
}

func TestCatalogService_DeleteProduct(t *testing.T) {
	store := setupServiceTestDB(t)
	svc := NewCatalogService(store, nil)
	orders := NewOrderService(store, nil)
	ctx := context.Background()

	user := createUser(t, store, "parent@test.com", false)
	p := createProduct(t, store, "Rattle", "9.99", 10, nil)
	other := createProduct(t, store, "Teether", "60.00", 10, nil)

	// 先下单生成订单快照
	addToCart(t, store, user.ID, p.ID, 1)
	order, err := orders.PlaceOrder(ctx, user.ID, testOrderReq())
	require.NoError(t, err)

	addToCart(t, store, user.ID, p.ID, 2)
	addToCart(t, store, user.ID, other.ID, 1)
	require.NoError(t, store.Wishlist.Create(ctx, &model.WishlistItem{UserID: user.ID, ProductID: p.ID}))

	require.NoError(t, svc.DeleteProduct(ctx, p.ID))

	_, err = svc.GetProduct(ctx, p.ID)
	assert.ErrorIs(t, err, ErrProductNotFound)

	cart, err := store.Cart.ListByUser(ctx, user.ID)
	require.NoError(t, err)
	require.Len(t, cart, 1)
	assert.Equal(t, other.ID, cart[0].ProductID)

	wishlist, err := store.Wishlist.ListByUser(ctx, user.ID)
	require.NoError(t, err)
	assert.Empty(t, wishlist)

	// 订单明细保留快照
	got, err := orders.GetOrder(ctx, user, order.ID)
	require.NoError(t, err)
	require.Len(t, got.Items, 1)
	assert.Equal(t, "Rattle", got.Items[0].ProductName)

	assert.ErrorIs(t, svc.DeleteProduct(ctx, p.ID), ErrProductNotFound)
}

func TestCatalogService_Categories(t *testing.T) {
	store := setupServiceTestDB(t)
	svc := NewCatalogService(store, nil)
	ctx := context.Background()

	clothing, err := svc.CreateCategory(ctx, &dto.CreateCategoryReq{Slug: "clothing", Name: "Clothing", DisplayOrder: 2})
	require.NoError(t, err)
	_, err = svc.CreateCategory(ctx, &dto.CreateCategoryReq{Slug: "nursery", Name: "Nursery", DisplayOrder: 1})
	require.NoError(t, err)

	_, err = svc.CreateCategory(ctx, &dto.CreateCategoryReq{Slug: "clothing", Name: "Dup"})
	assert.ErrorIs(t, err, ErrSlugExists)

	categories, err := svc.ListCategories(ctx)
	require.NoError(t, err)
	require.Len(t, categories, 2)
	assert.Equal(t, "nursery", categories[0].Slug)

	slug := "nursery"
	_, err = svc.UpdateCategory(ctx, clothing.ID, &dto.UpdateCategoryReq{Slug: &slug})
	assert.ErrorIs(t, err, ErrSlugExists)

	name := "Baby Clothing"
	updated, err := svc.UpdateCategory(ctx, clothing.ID, &dto.UpdateCategoryReq{Name: &name})
	require.NoError(t, err)
	assert.Equal(t, "Baby Clothing", updated.Name)

	// 删除分类后商品保留，分类置空
	p := createProduct(t, store, "Onesie", "12.00", 10, &clothing.ID)
	require.NoError(t, svc.DeleteCategory(ctx, clothing.ID))

	got, err := svc.GetProduct(ctx, p.ID)
	require.NoError(t, err)
	assert.Nil(t, got.CategoryID)

	assert.ErrorIs(t, svc.DeleteCategory(ctx, clothing.ID), ErrCategoryNotFound)
}
