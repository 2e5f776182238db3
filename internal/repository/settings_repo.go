package repository

import (
	"context"
	"errors"

	"peci_admin_v1_202608/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ==================== SettingsRepository 渠道配置仓库 ====================

// SettingsRepository 渠道配置仓库接口
// 每个渠道一条配置，主键由渠道值推导
type SettingsRepository interface {
	// GetByPlatform 单点查询，不存在时返回 (nil, nil)
	GetByPlatform(ctx context.Context, platform model.Platform) (*model.StoreSettings, error)
	// Upsert 按推导主键合并写入，不存在则创建
	Upsert(ctx context.Context, settings *model.StoreSettings) error
}

type settingsRepository struct {
	db *gorm.DB
}

// NewSettingsRepository 创建渠道配置仓库
func NewSettingsRepository(db *gorm.DB) SettingsRepository {
	return &settingsRepository{db: db}
}

func (r *settingsRepository) GetByPlatform(ctx context.Context, platform model.Platform) (*model.StoreSettings, error) {
	var settings model.StoreSettings
	err := r.db.WithContext(ctx).
		Where("doc_id = ?", model.SettingsDocID(platform)).
		First(&settings).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &settings, nil
}

func (r *settingsRepository) Upsert(ctx context.Context, settings *model.StoreSettings) error {
	settings.DocID = model.SettingsDocID(settings.Platform)
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "doc_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"store_name", "admin_name", "platform", "updated_at"}),
		}).
		Create(settings).Error
}
