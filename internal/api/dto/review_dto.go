package dto

import (
	"time"

	"ingaa_store/internal/model"
)

// CreateReviewReq 发表评论
type CreateReviewReq struct {
	Rating  int    `json:"rating" binding:"required,min=1,max=5"`
	Comment string `json:"comment" binding:"max=2000"`
}

// ReviewResp 评论
type ReviewResp struct {
	ID        int64         `json:"id"`
	ProductID int64         `json:"product_id"`
	UserID    int64         `json:"user_id"`
	Rating    int           `json:"rating"`
	Comment   string        `json:"comment"`
	CreatedAt time.Time     `json:"created_at"`
	User      *ReviewerInfo `json:"user"`
}

// NewReviewResp 转换
func NewReviewResp(r *model.Review) *ReviewResp {
	return &ReviewResp{
		ID:        r.ID,
		ProductID: r.ProductID,
		UserID:    r.UserID,
		Rating:    r.Rating,
		Comment:   r.Comment,
		CreatedAt: r.CreatedAt,
		User:      NewReviewerInfo(r.User),
	}
}

// NewReviewList 转换列表
func NewReviewList(reviews []model.Review) []*ReviewResp {
	list := make([]*ReviewResp, 0, len(reviews))
	for i := range reviews {
		list = append(list, NewReviewResp(&reviews[i]))
	}
	return list
}
