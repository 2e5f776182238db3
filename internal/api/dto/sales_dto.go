package dto

import "peci_admin_v1_202608/internal/model"

// ==================== 营收 DTO ====================

// 金额字段收字符串：前端输入框里是带千分位的 "1.250.000"，
// 提交时在服务端统一 ParseIDR 一次

// CreateSalesRequest 新增营收
type CreateSalesRequest struct {
	Date      string         `json:"date" binding:"required"`
	Revenue   string         `json:"revenue" binding:"required"`
	ItemsSold string         `json:"items_sold" binding:"required"`
	Platform  model.Platform `json:"platform" binding:"required"`
}

// UpdateSalesRequest 修改营收（整条编辑，三个字段都必填）
type UpdateSalesRequest struct {
	Date      string `json:"date" binding:"required"`
	Revenue   string `json:"revenue" binding:"required"`
	ItemsSold string `json:"items_sold" binding:"required"`
}

// SalesStatsResponse 营收统计（仪表盘）
type SalesStatsResponse struct {
	StartDate    string              `json:"start_date"`
	EndDate      string              `json:"end_date"`
	TotalRevenue int64               `json:"total_revenue"`
	TotalItems   int64               `json:"total_items"`
	Chart        []model.SalesRecord `json:"chart"` // 按日期升序，直接喂图表
}
