package repository

import (
	"context"

	"peci_admin_v1_202608/internal/model"

	"gorm.io/gorm"
)

// ==================== SalesFilter 过滤条件 ====================

// SalesFilter 营收记录过滤条件
// 日期闭区间，两端都含；日期是 ISO 字符串，字典序即时间序
type SalesFilter struct {
	Platform  model.Platform
	StartDate string
	EndDate   string
}

// ==================== SalesRepository 营收仓库 ====================

// SalesRepository 营收记录仓库接口
type SalesRepository interface {
	Create(ctx context.Context, record *model.SalesRecord) error
	GetByID(ctx context.Context, id int64) (*model.SalesRecord, error)
	ListByPlatform(ctx context.Context, platform model.Platform) ([]model.SalesRecord, error)
	ListByDateRange(ctx context.Context, filter SalesFilter) ([]model.SalesRecord, error)
	UpdateFields(ctx context.Context, id int64, fields map[string]interface{}) error
	Delete(ctx context.Context, id int64) error
}

type salesRepository struct {
	db *gorm.DB
}

// NewSalesRepository 创建营收仓库
func NewSalesRepository(db *gorm.DB) SalesRepository {
	return &salesRepository{db: db}
}

func (r *salesRepository) Create(ctx context.Context, record *model.SalesRecord) error {
	return r.db.WithContext(ctx).Create(record).Error
}

func (r *salesRepository) GetByID(ctx context.Context, id int64) (*model.SalesRecord, error) {
	var record model.SalesRecord
	err := r.db.WithContext(ctx).First(&record, id).Error
	if err != nil {
		return nil, err
	}
	return &record, nil
}

func (r *salesRepository) ListByPlatform(ctx context.Context, platform model.Platform) ([]model.SalesRecord, error) {
	var records []model.SalesRecord
	err := r.db.WithContext(ctx).
		Where("platform = ?", platform).
		Find(&records).Error
	return records, err
}

func (r *salesRepository) ListByDateRange(ctx context.Context, filter SalesFilter) ([]model.SalesRecord, error) {
	var records []model.SalesRecord
	db := r.db.WithContext(ctx).Where("platform = ?", filter.Platform)

	if filter.StartDate != "" {
		db = db.Where("date >= ?", filter.StartDate)
	}
	if filter.EndDate != "" {
		db = db.Where("date <= ?", filter.EndDate)
	}

	err := db.Find(&records).Error
	return records, err
}

// UpdateFields 部分字段更新；id 不存在时影响 0 行，不算错误
func (r *salesRepository) UpdateFields(ctx context.Context, id int64, fields map[string]interface{}) error {
	return r.db.WithContext(ctx).Model(&model.SalesRecord{}).Where("id = ?", id).Updates(fields).Error
}

func (r *salesRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&model.SalesRecord{}, id).Error
}
