package model

import "time"

// SysUser 后台管理账号
type SysUser struct {
	BaseModel

	Email    string `gorm:"size:100;uniqueIndex;not null" json:"email"`
	Password string `gorm:"size:255;not null" json:"-"` // bcrypt 哈希
	Name     string `gorm:"size:100" json:"name"`

	Status      string     `gorm:"size:16;default:'active'" json:"status"`
	LastLoginAt *time.Time `json:"last_login_at"`
}

func (SysUser) TableName() string {
	return "sys_users"
}

// ==================== 状态常量 ====================

const (
	UserStatusActive   = "active"
	UserStatusDisabled = "disabled"
)
