package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ingaa_store/internal/api/dto"
)

func TestReviewService_CreateReview_Recomputes(t *testing.T) {
	store := setupServiceTestDB(t)
	svc := NewReviewService(store)
	catalog := NewCatalogService(store, nil)
	ctx := context.Background()

	user := createUser(t, store, "reviewer@test.com", false)
	p := createProduct(t, store, "Play Gym", "89.99", 10, nil)

	for _, rating := range []int{5, 4, 4} {
		review, err := svc.CreateReview(ctx, user, p.ID, &dto.CreateReviewReq{Rating: rating, Comment: "nice"})
		require.NoError(t, err)
		assert.Equal(t, user.ID, review.User.ID)
	}

	got, err := catalog.GetProduct(ctx, p.ID)
	require.NoError(t, err)
	// (5+4+4)/3 = 4.333...
	assert.Equal(t, "4.33", got.AverageRating.StringFixed(2))
	assert.Equal(t, 3, got.ReviewCount)

	reviews, err := svc.ListReviews(ctx, p.ID)
	require.NoError(t, err)
	require.Len(t, reviews, 3)
	require.NotNil(t, reviews[0].User)
	// 最新在前
	assert.Greater(t, reviews[0].ID, reviews[2].ID)
}

func TestReviewService_CreateReview_Errors(t *testing.T) {
	store := setupServiceTestDB(t)
	svc := NewReviewService(store)
	ctx := context.Background()

	user := createUser(t, store, "reviewer@test.com", false)
	p := createProduct(t, store, "Bib", "9.99", 10, nil)

	tests := []struct {
		name      string
		productID int64
		rating    int
		wantErr   error
	}{
		{"评分过低", p.ID, 0, ErrInvalidRating},
		{"评分过高", p.ID, 6, ErrInvalidRating},
		{"商品不存在", 9999, 3, ErrProductNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.CreateReview(ctx, user, tt.productID, &dto.CreateReviewReq{Rating: tt.rating})
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}

	// 失败的请求不会写入评论
	reviews, err := svc.ListReviews(ctx, p.ID)
	require.NoError(t, err)
	assert.Empty(t, reviews)
}
