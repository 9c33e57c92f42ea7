package repository

import (
	"context"

	"gorm.io/gorm"

	"ingaa_store/internal/model"
)

// ReviewRepository 评论仓库
type ReviewRepository interface {
	Create(ctx context.Context, review *model.Review) error
	ListByProduct(ctx context.Context, productID int64) ([]model.Review, error)
	Aggregate(ctx context.Context, productID int64) (*RatingAggregate, error)
}

// RatingAggregate 评分聚合结果
type RatingAggregate struct {
	Average float64
	Count   int64
}

type reviewRepository struct {
	db *gorm.DB
}

// NewReviewRepository 创建评论仓库
func NewReviewRepository(db *gorm.DB) ReviewRepository {
	return &reviewRepository{db: db}
}

func (r *reviewRepository) Create(ctx context.Context, review *model.Review) error {
	return r.db.WithContext(ctx).Omit("User").Create(review).Error
}

// ListByProduct 最新评论在前，附带评论人
func (r *reviewRepository) ListByProduct(ctx context.Context, productID int64) ([]model.Review, error) {
	var reviews []model.Review
	err := r.db.WithContext(ctx).
		Preload("User").
		Where("product_id = ?", productID).
		Order("created_at DESC").
		Order("id DESC").
		Find(&reviews).Error
	return reviews, err
}

// Aggregate 全量扫描该商品的评分
func (r *reviewRepository) Aggregate(ctx context.Context, productID int64) (*RatingAggregate, error) {
	var agg RatingAggregate
	err := r.db.WithContext(ctx).
		Model(&model.Review{}).
		Select("COALESCE(AVG(rating), 0) AS average, COUNT(*) AS count").
		Where("product_id = ?", productID).
		Scan(&agg).Error
	if err != nil {
		return nil, err
	}
	return &agg, nil
}
