package repository

import (
	"context"
	"errors"

	"peci_admin_v1_202608/internal/model"

	"gorm.io/gorm"
)

// ==================== CreatorRepository 达人仓库 ====================

// CreatorRepository 达人仓库接口
type CreatorRepository interface {
	Create(ctx context.Context, creator *model.Creator) error
	// GetByID 找不到时返回 (nil, nil)
	GetByID(ctx context.Context, id int64) (*model.Creator, error)
	ListByPlatform(ctx context.Context, platform model.Platform) ([]model.Creator, error)
	UpdateFields(ctx context.Context, id int64, fields map[string]interface{}) error
	Delete(ctx context.Context, id int64) error
}

type creatorRepository struct {
	db *gorm.DB
}

// NewCreatorRepository 创建达人仓库
func NewCreatorRepository(db *gorm.DB) CreatorRepository {
	return &creatorRepository{db: db}
}

func (r *creatorRepository) Create(ctx context.Context, creator *model.Creator) error {
	return r.db.WithContext(ctx).Create(creator).Error
}

func (r *creatorRepository) GetByID(ctx context.Context, id int64) (*model.Creator, error) {
	var creator model.Creator
	err := r.db.WithContext(ctx).First(&creator, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &creator, nil
}

func (r *creatorRepository) ListByPlatform(ctx context.Context, platform model.Platform) ([]model.Creator, error) {
	var creators []model.Creator
	err := r.db.WithContext(ctx).
		Where("platform = ?", platform).
		Order("created_at DESC").
		Find(&creators).Error
	return creators, err
}

func (r *creatorRepository) UpdateFields(ctx context.Context, id int64, fields map[string]interface{}) error {
	return r.db.WithContext(ctx).Model(&model.Creator{}).Where("id = ?", id).Updates(fields).Error
}

// Delete 硬删除；关联的样品寄送记录保持原样（快照语义，不级联）
func (r *creatorRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&model.Creator{}, id).Error
}
