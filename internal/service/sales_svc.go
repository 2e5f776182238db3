package service

import (
	"context"
	"sort"
	"time"

	"peci_admin_v1_202608/internal/api/dto"
	"peci_admin_v1_202608/internal/model"
	"peci_admin_v1_202608/internal/repository"
	"peci_admin_v1_202608/internal/watch"
	"peci_admin_v1_202608/pkg/utils"
)

// ==================== SalesService 营收服务 ====================

// SalesService 每日营收记录服务
type SalesService struct {
	salesRepo repository.SalesRepository
	hub       *watch.Hub
}

// NewSalesService 创建营收服务
func NewSalesService(salesRepo repository.SalesRepository, hub *watch.Hub) *SalesService {
	return &SalesService{salesRepo: salesRepo, hub: hub}
}

// ==================== 查询 ====================

// List 营收台账，按日期倒序（新的在前）
func (s *SalesService) List(ctx context.Context, platform model.Platform) ([]model.SalesRecord, error) {
	if !platform.IsValid() {
		return nil, ErrInvalidPlatform
	}

	records, err := s.salesRepo.ListByPlatform(ctx, platform)
	if err != nil {
		return nil, err
	}

	sort.Slice(records, func(i, j int) bool {
		if records[i].Date != records[j].Date {
			return records[i].Date > records[j].Date
		}
		return records[i].ID > records[j].ID
	})
	return records, nil
}

// Snapshot 实时订阅用的全量快照，内容和台账一致
func (s *SalesService) Snapshot(ctx context.Context, platform model.Platform) (interface{}, error) {
	return s.List(ctx, platform)
}

// Stats 区间统计（仪表盘）
// 不传区间时默认"今天往前 30 天"；图表按日期升序返回
func (s *SalesService) Stats(ctx context.Context, platform model.Platform, startDate, endDate string) (*dto.SalesStatsResponse, error) {
	if !platform.IsValid() {
		return nil, ErrInvalidPlatform
	}

	if startDate == "" && endDate == "" {
		now := time.Now()
		endDate = now.Format("2006-01-02")
		startDate = now.AddDate(0, 0, -30).Format("2006-01-02")
	}

	records, err := s.salesRepo.ListByDateRange(ctx, repository.SalesFilter{
		Platform:  platform,
		StartDate: startDate,
		EndDate:   endDate,
	})
	if err != nil {
		return nil, err
	}

	sort.Slice(records, func(i, j int) bool {
		if records[i].Date != records[j].Date {
			return records[i].Date < records[j].Date
		}
		return records[i].ID < records[j].ID
	})

	resp := &dto.SalesStatsResponse{
		StartDate: startDate,
		EndDate:   endDate,
		Chart:     records,
	}
	for _, r := range records {
		resp.TotalRevenue += r.Revenue
		resp.TotalItems += r.ItemsSold
	}
	return resp, nil
}

// ==================== 写入 ====================

// Create 新增营收记录
// 金额和件数收的是带千分位的字符串，这里解析一次
func (s *SalesService) Create(ctx context.Context, req *dto.CreateSalesRequest) (*model.SalesRecord, error) {
	if !req.Platform.IsValid() {
		return nil, ErrInvalidPlatform
	}

	record := &model.SalesRecord{
		Date:      req.Date,
		Revenue:   utils.ParseIDR(req.Revenue),
		ItemsSold: utils.ParseIDR(req.ItemsSold),
		Platform:  req.Platform,
	}
	if err := s.salesRepo.Create(ctx, record); err != nil {
		return nil, err
	}

	s.hub.Publish(watch.CollectionSales, record.Platform)
	return record, nil
}

// Update 整条编辑（日期、金额、件数一起提交）
func (s *SalesService) Update(ctx context.Context, id int64, req *dto.UpdateSalesRequest) (*model.SalesRecord, error) {
	existing, err := s.salesRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	err = s.salesRepo.UpdateFields(ctx, id, map[string]interface{}{
		"date":       req.Date,
		"revenue":    utils.ParseIDR(req.Revenue),
		"items_sold": utils.ParseIDR(req.ItemsSold),
	})
	if err != nil {
		return nil, err
	}

	s.hub.Publish(watch.CollectionSales, existing.Platform)
	return s.salesRepo.GetByID(ctx, id)
}

// Delete 删除营收记录（硬删除）
func (s *SalesService) Delete(ctx context.Context, id int64) error {
	existing, err := s.salesRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.salesRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.hub.Publish(watch.CollectionSales, existing.Platform)
	return nil
}
