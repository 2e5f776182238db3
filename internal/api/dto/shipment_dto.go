package dto

import "peci_admin_v1_202608/internal/model"

// ==================== 样品寄送 DTO ====================

// CreateShipmentRequest 新增寄送
// creator_name 不收：服务端按 creator_id 查同渠道达人后做名字快照
type CreateShipmentRequest struct {
	CreatorID      int64          `json:"creator_id" binding:"required"`
	ItemName       string         `json:"item_name" binding:"required"`
	Address        string         `json:"address" binding:"required"`
	Status         string         `json:"status"`
	TrackingNumber string         `json:"tracking_number"`
	Platform       model.Platform `json:"platform" binding:"required"`
}

// UpdateShipmentStatusRequest 改状态
type UpdateShipmentStatusRequest struct {
	Status string `json:"status" binding:"required"`
}
