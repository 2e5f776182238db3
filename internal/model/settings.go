package model

import (
	"strings"
	"time"
)

// StoreSettings 渠道配置，每个渠道一条
// 主键由渠道值推导（config_tiktok / config_shopee），保证幂等 upsert
type StoreSettings struct {
	DocID     string    `gorm:"primaryKey;size:32" json:"doc_id"`
	StoreName string    `gorm:"size:100" json:"store_name"`
	AdminName string    `gorm:"size:100" json:"admin_name"`
	Platform  Platform  `gorm:"size:16;index;not null" json:"platform"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (StoreSettings) TableName() string {
	return "store_settings"
}

// SettingsDocID 由渠道值推导配置主键
func SettingsDocID(p Platform) string {
	return "config_" + strings.ToLower(string(p))
}
