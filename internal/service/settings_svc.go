package service

import (
	"context"
	"time"

	"peci_admin_v1_202608/internal/api/dto"
	"peci_admin_v1_202608/internal/model"
	"peci_admin_v1_202608/internal/repository"
	"peci_admin_v1_202608/pkg/utils"
)

// ==================== SettingsService 渠道配置服务 ====================

// 配置读多写少，读路径走进程内缓存，写入时主动失效
const settingsCacheTTL = 5 * time.Minute

// SettingsService 渠道配置服务
type SettingsService struct {
	settingsRepo repository.SettingsRepository
}

// NewSettingsService 创建渠道配置服务
func NewSettingsService(settingsRepo repository.SettingsRepository) *SettingsService {
	return &SettingsService{settingsRepo: settingsRepo}
}

func settingsCacheKey(platform model.Platform) string {
	return "settings:" + model.SettingsDocID(platform)
}

// Get 查渠道配置
// 该渠道还没配置过时返回空名字，不报错
func (s *SettingsService) Get(ctx context.Context, platform model.Platform) (*dto.SettingsResponse, error) {
	if !platform.IsValid() {
		return nil, ErrInvalidPlatform
	}

	if cached, ok := utils.GetCache(settingsCacheKey(platform)); ok {
		resp := cached.(dto.SettingsResponse)
		return &resp, nil
	}

	settings, err := s.settingsRepo.GetByPlatform(ctx, platform)
	if err != nil {
		return nil, err
	}

	resp := dto.SettingsResponse{Platform: platform}
	if settings != nil {
		resp.StoreName = settings.StoreName
		resp.AdminName = settings.AdminName
	}

	utils.SetCache(settingsCacheKey(platform), resp, settingsCacheTTL)
	return &resp, nil
}

// Upsert 保存渠道配置（merge 语义）
func (s *SettingsService) Upsert(ctx context.Context, req *dto.UpsertSettingsRequest) (*dto.SettingsResponse, error) {
	if !req.Platform.IsValid() {
		return nil, ErrInvalidPlatform
	}

	err := s.settingsRepo.Upsert(ctx, &model.StoreSettings{
		StoreName: req.StoreName,
		AdminName: req.AdminName,
		Platform:  req.Platform,
		UpdatedAt: time.Now(),
	})
	if err != nil {
		return nil, err
	}

	utils.DeleteCache(settingsCacheKey(req.Platform))
	return &dto.SettingsResponse{
		StoreName: req.StoreName,
		AdminName: req.AdminName,
		Platform:  req.Platform,
	}, nil
}
