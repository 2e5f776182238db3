package repository

import (
	"context"
	"time"

	"peci_admin_v1_202608/internal/model"

	"gorm.io/gorm"
)

// ==================== ShipmentRepository 样品寄送仓库 ====================

// ShipmentRepository 样品寄送仓库接口
type ShipmentRepository interface {
	Create(ctx context.Context, shipment *model.SampleShipment) error
	GetByID(ctx context.Context, id int64) (*model.SampleShipment, error)
	ListByPlatform(ctx context.Context, platform model.Platform) ([]model.SampleShipment, error)
	UpdateStatus(ctx context.Context, id int64, status string) error
	UpdateFields(ctx context.Context, id int64, fields map[string]interface{}) error
	Delete(ctx context.Context, id int64) error
}

type shipmentRepository struct {
	db *gorm.DB
}

// NewShipmentRepository 创建样品寄送仓库
func NewShipmentRepository(db *gorm.DB) ShipmentRepository {
	return &shipmentRepository{db: db}
}

func (r *shipmentRepository) Create(ctx context.Context, shipment *model.SampleShipment) error {
	return r.db.WithContext(ctx).Create(shipment).Error
}

func (r *shipmentRepository) GetByID(ctx context.Context, id int64) (*model.SampleShipment, error) {
	var shipment model.SampleShipment
	err := r.db.WithContext(ctx).First(&shipment, id).Error
	if err != nil {
		return nil, err
	}
	return &shipment, nil
}

func (r *shipmentRepository) ListByPlatform(ctx context.Context, platform model.Platform) ([]model.SampleShipment, error) {
	var shipments []model.SampleShipment
	err := r.db.WithContext(ctx).
		Where("platform = ?", platform).
		Order("created_at DESC").
		Find(&shipments).Error
	return shipments, err
}

func (r *shipmentRepository) UpdateStatus(ctx context.Context, id int64, status string) error {
	return r.db.WithContext(ctx).Model(&model.SampleShipment{}).Where("id = ?", id).Updates(map[string]interface{}{
		"status":     status,
		"updated_at": time.Now(),
	}).Error
}

func (r *shipmentRepository) UpdateFields(ctx context.Context, id int64, fields map[string]interface{}) error {
	return r.db.WithContext(ctx).Model(&model.SampleShipment{}).Where("id = ?", id).Updates(fields).Error
}

func (r *shipmentRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&model.SampleShipment{}, id).Error
}
