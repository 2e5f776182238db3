package service

import (
	"context"

	"peci_admin_v1_202608/internal/api/dto"
	"peci_admin_v1_202608/internal/model"
	"peci_admin_v1_202608/internal/repository"
	"peci_admin_v1_202608/internal/watch"
	"peci_admin_v1_202608/pkg/utils"
)

// ==================== CreatorService 达人服务 ====================

// CreatorService 带货达人服务
type CreatorService struct {
	creatorRepo repository.CreatorRepository
	hub         *watch.Hub
}

// NewCreatorService 创建达人服务
func NewCreatorService(creatorRepo repository.CreatorRepository, hub *watch.Hub) *CreatorService {
	return &CreatorService{creatorRepo: creatorRepo, hub: hub}
}

// List 达人列表，按录入时间倒序
func (s *CreatorService) List(ctx context.Context, platform model.Platform) ([]model.Creator, error) {
	if !platform.IsValid() {
		return nil, ErrInvalidPlatform
	}
	return s.creatorRepo.ListByPlatform(ctx, platform)
}

// Snapshot 实时订阅用的全量快照
func (s *CreatorService) Snapshot(ctx context.Context, platform model.Platform) (interface{}, error) {
	return s.List(ctx, platform)
}

// GetByID 按 ID 查达人，不存在返回 ErrCreatorNotFound
func (s *CreatorService) GetByID(ctx context.Context, id int64) (*model.Creator, error) {
	creator, err := s.creatorRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if creator == nil {
		return nil, ErrCreatorNotFound
	}
	return creator, nil
}

// Create 新增达人
// WA 号只在联系渠道是 WhatsApp 时保留，其他渠道一律清空
func (s *CreatorService) Create(ctx context.Context, req *dto.CreateCreatorRequest) (*model.Creator, error) {
	if !req.Platform.IsValid() {
		return nil, ErrInvalidPlatform
	}

	waNumber := req.WaNumber
	if req.ContactSource != model.ContactSourceWhatsApp {
		waNumber = ""
	}

	creator := &model.Creator{
		Name:          req.Name,
		Followers:     utils.ParseIDR(req.Followers),
		ContactSource: req.ContactSource,
		WaNumber:      waNumber,
		Platform:      req.Platform,
	}
	if err := s.creatorRepo.Create(ctx, creator); err != nil {
		return nil, err
	}

	s.hub.Publish(watch.CollectionCreator, creator.Platform)
	return creator, nil
}

// Delete 删除达人（硬删除）
// 该达人的样品寄送记录保持原样，名字快照继续可读
func (s *CreatorService) Delete(ctx context.Context, id int64) error {
	existing, err := s.creatorRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if existing == nil {
		return ErrCreatorNotFound
	}

	if err := s.creatorRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.hub.Publish(watch.CollectionCreator, existing.Platform)
	return nil
}
