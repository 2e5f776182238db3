package dto

import "peci_admin_v1_202608/internal/model"

// ==================== 达人 DTO ====================

// CreateCreatorRequest 新增达人
type CreateCreatorRequest struct {
	Name          string         `json:"name" binding:"required"`
	Followers     string         `json:"followers"`
	ContactSource string         `json:"contact_source" binding:"required,oneof=TikTok WhatsApp"`
	WaNumber      string         `json:"wa_number"`
	Platform      model.Platform `json:"platform" binding:"required"`
}

// DraftMessageRequest AI 草拟合作私信
type DraftMessageRequest struct {
	ProductName string `json:"product_name" binding:"required"`
}

// DraftMessageResponse 草拟结果
// Draft 永远有内容：失败时是固定兜底文案，不会返回错误
type DraftMessageResponse struct {
	CreatorName string `json:"creator_name"`
	StoreName   string `json:"store_name"`
	Draft       string `json:"draft"`
}
