package repository

import (
	"context"

	"peci_admin_v1_202608/internal/model"

	"gorm.io/gorm"
)

// ==================== FinancialRepository 收支仓库 ====================

// FinancialRepository 收支流水仓库接口
type FinancialRepository interface {
	Create(ctx context.Context, record *model.FinancialRecord) error
	GetByID(ctx context.Context, id int64) (*model.FinancialRecord, error)
	ListByPlatform(ctx context.Context, platform model.Platform) ([]model.FinancialRecord, error)
	Delete(ctx context.Context, id int64) error
}

type financialRepository struct {
	db *gorm.DB
}

// NewFinancialRepository 创建收支仓库
func NewFinancialRepository(db *gorm.DB) FinancialRepository {
	return &financialRepository{db: db}
}

func (r *financialRepository) Create(ctx context.Context, record *model.FinancialRecord) error {
	return r.db.WithContext(ctx).Create(record).Error
}

func (r *financialRepository) GetByID(ctx context.Context, id int64) (*model.FinancialRecord, error) {
	var record model.FinancialRecord
	err := r.db.WithContext(ctx).First(&record, id).Error
	if err != nil {
		return nil, err
	}
	return &record, nil
}

func (r *financialRepository) ListByPlatform(ctx context.Context, platform model.Platform) ([]model.FinancialRecord, error) {
	var records []model.FinancialRecord
	err := r.db.WithContext(ctx).
		Where("platform = ?", platform).
		Find(&records).Error
	return records, err
}

func (r *financialRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&model.FinancialRecord{}, id).Error
}
