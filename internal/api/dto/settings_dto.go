package dto

import "peci_admin_v1_202608/internal/model"

// ==================== 渠道配置 DTO ====================

// UpsertSettingsRequest 保存渠道配置（merge 语义，没有就建）
type UpsertSettingsRequest struct {
	StoreName string         `json:"store_name" binding:"required"`
	AdminName string         `json:"admin_name" binding:"required"`
	Platform  model.Platform `json:"platform" binding:"required"`
}

// SettingsResponse 配置响应；该渠道还没配置时两个名字都是空串
type SettingsResponse struct {
	StoreName string         `json:"store_name"`
	AdminName string         `json:"admin_name"`
	Platform  model.Platform `json:"platform"`
}
