package service

import (
	"context"
	"time"

	"peci_admin_v1_202608/internal/api/dto"
	"peci_admin_v1_202608/internal/model"
	"peci_admin_v1_202608/internal/repository"
	"peci_admin_v1_202608/internal/watch"
)

// ==================== ShipmentService 样品寄送服务 ====================

// ShipmentService 样品寄送服务
type ShipmentService struct {
	shipmentRepo repository.ShipmentRepository
	creatorRepo  repository.CreatorRepository
	hub          *watch.Hub
}

// NewShipmentService 创建样品寄送服务
func NewShipmentService(shipmentRepo repository.ShipmentRepository, creatorRepo repository.CreatorRepository, hub *watch.Hub) *ShipmentService {
	return &ShipmentService{shipmentRepo: shipmentRepo, creatorRepo: creatorRepo, hub: hub}
}

// List 寄送列表，按录入时间倒序
func (s *ShipmentService) List(ctx context.Context, platform model.Platform) ([]model.SampleShipment, error) {
	if !platform.IsValid() {
		return nil, ErrInvalidPlatform
	}
	return s.shipmentRepo.ListByPlatform(ctx, platform)
}

// Snapshot 实时订阅用的全量快照
func (s *ShipmentService) Snapshot(ctx context.Context, platform model.Platform) (interface{}, error) {
	return s.List(ctx, platform)
}

// Create 新增寄送
// 达人名在这里做快照：按 creator_id 查同渠道达人，查不到就拒绝；
// 日期固定取服务器当天，不收前端传值
func (s *ShipmentService) Create(ctx context.Context, req *dto.CreateShipmentRequest) (*model.SampleShipment, error) {
	if !req.Platform.IsValid() {
		return nil, ErrInvalidPlatform
	}

	status := req.Status
	if status == "" {
		status = model.ShipmentStatusPending
	}
	if !model.IsValidShipmentStatus(status) {
		return nil, ErrInvalidStatus
	}

	creator, err := s.creatorRepo.GetByID(ctx, req.CreatorID)
	if err != nil {
		return nil, err
	}
	if creator == nil || creator.Platform != req.Platform {
		return nil, ErrCreatorNotFound
	}

	shipment := &model.SampleShipment{
		CreatorID:      creator.ID,
		CreatorName:    creator.Name,
		ItemName:       req.ItemName,
		Address:        req.Address,
		Status:         status,
		TrackingNumber: req.TrackingNumber,
		Date:           time.Now().Format("2006-01-02"),
		Platform:       req.Platform,
	}
	if err := s.shipmentRepo.Create(ctx, shipment); err != nil {
		return nil, err
	}

	s.hub.Publish(watch.CollectionShipment, shipment.Platform)
	return shipment, nil
}

// UpdateStatus 改寄送状态
// 只校验枚举值，状态之间随便切，没有流转限制
func (s *ShipmentService) UpdateStatus(ctx context.Context, id int64, status string) (*model.SampleShipment, error) {
	if !model.IsValidShipmentStatus(status) {
		return nil, ErrInvalidStatus
	}

	existing, err := s.shipmentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.shipmentRepo.UpdateStatus(ctx, id, status); err != nil {
		return nil, err
	}

	s.hub.Publish(watch.CollectionShipment, existing.Platform)
	return s.shipmentRepo.GetByID(ctx, id)
}

// Delete 删除寄送记录（硬删除）
func (s *ShipmentService) Delete(ctx context.Context, id int64) error {
	existing, err := s.shipmentRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.shipmentRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.hub.Publish(watch.CollectionShipment, existing.Platform)
	return nil
}
