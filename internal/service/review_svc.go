package service

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"ingaa_store/internal/api/dto"
	"ingaa_store/internal/model"
	"ingaa_store/internal/repository"
)

// ReviewService 商品评论
type ReviewService struct {
	store *repository.Store
}

// NewReviewService 创建评论服务
func NewReviewService(store *repository.Store) *ReviewService {
	return &ReviewService{store: store}
}

// ListReviews 商品评论列表，最新在前
func (s *ReviewService) ListReviews(ctx context.Context, productID int64) ([]model.Review, error) {
	return s.store.Reviews.ListByProduct(ctx, productID)
}

// CreateReview 发表评论并重算商品评分
// 平均分按全部评论重新聚合，保留两位小数
func (s *ReviewService) CreateReview(ctx context.Context, user *model.User, productID int64, req *dto.CreateReviewReq) (*model.Review, error) {
	if req.Rating < model.MinRating || req.Rating > model.MaxRating {
		return nil, ErrInvalidRating
	}

	review := &model.Review{
		ProductID: productID,
		UserID:    user.ID,
		Rating:    req.Rating,
		Comment:   req.Comment,
	}

	err := s.store.Transaction(ctx, func(tx *repository.Store) error {
		product, err := tx.Products.GetByID(ctx, productID)
		if err != nil {
			return err
		}
		if product == nil {
			return ErrProductNotFound
		}

		if err := tx.Reviews.Create(ctx, review); err != nil {
			return fmt.Errorf("保存评论失败: %w", err)
		}

		agg, err := tx.Reviews.Aggregate(ctx, productID)
		if err != nil {
			return fmt.Errorf("聚合评分失败: %w", err)
		}
		average := decimal.NewFromFloat(agg.Average).Round(2)
		return tx.Products.UpdateRating(ctx, productID, average, agg.Count)
	})
	if err != nil {
		return nil, err
	}

	review.User = user
	return review, nil
}
