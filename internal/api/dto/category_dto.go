package dto

import "ingaa_store/internal/model"

// CreateCategoryReq 创建分类
type CreateCategoryReq struct {
	Slug         string `json:"slug" binding:"required,max=100,slug"`
	Name         string `json:"name" binding:"required,max=100"`
	Description  string `json:"description"`
	ImageURL     string `json:"image_url" binding:"max=500"`
	DisplayOrder int    `json:"display_order"`
}

// UpdateCategoryReq 部分更新
type UpdateCategoryReq struct {
	Slug         *string `json:"slug,omitempty" binding:"omitempty,max=100,slug"`
	Name         *string `json:"name,omitempty" binding:"omitempty,min=1,max=100"`
	Description  *string `json:"description,omitempty"`
	ImageURL     *string `json:"image_url,omitempty" binding:"omitempty,max=500"`
	DisplayOrder *int    `json:"display_order,omitempty"`
}

// CategoryResp 分类
type CategoryResp struct {
	ID           int64  `json:"id"`
	Slug         string `json:"slug"`
	Name         string `json:"name"`
	Description  string `json:"description"`
	ImageURL     string `json:"image_url"`
	DisplayOrder int    `json:"display_order"`
}

// NewCategoryResp 转换
func NewCategoryResp(c *model.Category) *CategoryResp {
	if c == nil {
		return nil
	}
	return &CategoryResp{
		ID:           c.ID,
		Slug:         c.Slug,
		Name:         c.Name,
		Description:  c.Description,
		ImageURL:     c.ImageURL,
		DisplayOrder: c.DisplayOrder,
	}
}

// NewCategoryList 转换列表
func NewCategoryList(categories []model.Category) []*CategoryResp {
	list := make([]*CategoryResp, 0, len(categories))
	for i := range categories {
		list = append(list, NewCategoryResp(&categories[i]))
	}
	return list
}
