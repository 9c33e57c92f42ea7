package dto

// StatsResp 后台统计
type StatsResp struct {
	TotalRevenue       string `json:"total_revenue"`
	TotalOrders        int64  `json:"total_orders"`
	PendingOrders      int64  `json:"pending_orders"`
	TotalProducts      int64  `json:"total_products"`
	LowStockProducts   int64  `json:"low_stock_products"`
	OutOfStockProducts int64  `json:"out_of_stock_products"`
	TotalCustomers     int64  `json:"total_customers"`
}

// UploadImageReq 图片上传，file 与 source_url 二选一
type UploadImageReq struct {
	SourceURL string `form:"source_url" binding:"omitempty,url"`
}

// UploadResp 上传结果
type UploadResp struct {
	URL string `json:"url"`
}
