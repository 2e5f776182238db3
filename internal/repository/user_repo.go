package repository

import (
	"context"
	"errors"
	"time"

	"peci_admin_v1_202608/internal/model"

	"gorm.io/gorm"
)

// ==================== UserRepository 用户仓库 ====================

// UserRepository 管理账号仓库接口
type UserRepository interface {
	Create(ctx context.Context, user *model.SysUser) error
	// GetByEmail 找不到时返回 (nil, nil)，由上层决定报什么错
	GetByEmail(ctx context.Context, email string) (*model.SysUser, error)
	GetByID(ctx context.Context, id int64) (*model.SysUser, error)
	UpdateLastLogin(ctx context.Context, id int64) error
}

type userRepository struct {
	db *gorm.DB
}

// NewUserRepository 创建用户仓库
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(ctx context.Context, user *model.SysUser) error {
	return r.db.WithContext(ctx).Create(user).Error
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*model.SysUser, error) {
	var user model.SysUser
	err := r.db.WithContext(ctx).Where("email = ?", email).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) GetByID(ctx context.Context, id int64) (*model.SysUser, error) {
	var user model.SysUser
	err := r.db.WithContext(ctx).First(&user, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) UpdateLastLogin(ctx context.Context, id int64) error {
	now := time.Now()
	return r.db.WithContext(ctx).Model(&model.SysUser{}).Where("id = ?", id).Update("last_login_at", &now).Error
}
