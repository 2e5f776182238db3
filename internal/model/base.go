package model

import (
	"time"
)

// ==================== Platform 渠道 ====================

// Platform 销售渠道，所有业务数据按渠道隔离
// 两个渠道互斥，记录只在自己渠道的视图里可见
type Platform string

const (
	PlatformTikTok Platform = "TikTok"
	PlatformShopee Platform = "Shopee"
)

// IsValid 校验渠道值是否合法
func (p Platform) IsValid() bool {
	return p == PlatformTikTok || p == PlatformShopee
}

// AllPlatforms 全部渠道，定时任务按渠道逐个汇总时用
func AllPlatforms() []Platform {
	return []Platform{PlatformTikTok, PlatformShopee}
}

// ==================== BaseModel 基础模型 ====================

// 注意：业务上删除是硬删除（无回收站），所以这里不带 gorm.DeletedAt
type BaseModel struct {
	ID        int64     `gorm:"primary_key;AUTO_INCREMENT" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// --- 审计字段 ---
	CreatedBy int64 `gorm:"comment:创建人ID" json:"created_by"`
	UpdatedBy int64 `gorm:"comment:更新人ID" json:"updated_by"`
}
