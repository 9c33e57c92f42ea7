package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ingaa_store/internal/api/dto"
)

func TestSeedService_Idempotent(t *testing.T) {
	store := setupServiceTestDB(t)
	svc := NewSeedService(store)
	ctx := context.Background()

	first, err := svc.Seed(ctx)
	require.NoError(t, err)
	assert.Equal(t, len(seedCategories), first.Categories)
	assert.Equal(t, len(seedProducts), first.Products)

	second, err := svc.Seed(ctx)
	require.NoError(t, err)
	assert.Zero(t, second.Categories)
	assert.Zero(t, second.Products)

	products, err := NewCatalogService(store, nil).ListProducts(ctx, &dto.ProductListQuery{Category: "feeding"})
	require.NoError(t, err)
	assert.Len(t, products, 3)
}
