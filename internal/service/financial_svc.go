package service

import (
	"context"
	"math"
	"sort"
	"strings"

	"peci_admin_v1_202608/internal/api/dto"
	"peci_admin_v1_202608/internal/model"
	"peci_admin_v1_202608/internal/repository"
	"peci_admin_v1_202608/internal/watch"
	"peci_admin_v1_202608/pkg/utils"
)

// ==================== FinancialService 收支服务 ====================

// FinancialService 收支流水服务
type FinancialService struct {
	financialRepo repository.FinancialRepository
	hub           *watch.Hub
}

// NewFinancialService 创建收支服务
func NewFinancialService(financialRepo repository.FinancialRepository, hub *watch.Hub) *FinancialService {
	return &FinancialService{financialRepo: financialRepo, hub: hub}
}

// ==================== 查询 ====================

// List 流水列表，按日期倒序
func (s *FinancialService) List(ctx context.Context, platform model.Platform) ([]model.FinancialRecord, error) {
	if !platform.IsValid() {
		return nil, ErrInvalidPlatform
	}

	records, err := s.financialRepo.ListByPlatform(ctx, platform)
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

// Snapshot 实时订阅用的全量快照
func (s *FinancialService) Snapshot(ctx context.Context, platform model.Platform) (interface{}, error) {
	return s.List(ctx, platform)
}

// Summary 收支汇总
// 广告占比 = 分类为"Iklan"的支出 / 总支出 × 100（分类比较不区分大小写）；
// 总支出为 0 时占比恒为 0，避免除零
func (s *FinancialService) Summary(ctx context.Context, platform model.Platform) (*dto.FinancialSummary, error) {
	records, err := s.List(ctx, platform)
	if err != nil {
		return nil, err
	}
	summary := summarize(records)
	return &summary, nil
}

// ListWithSummary 列表和汇总一次算完，页面只发一个请求
func (s *FinancialService) ListWithSummary(ctx context.Context, platform model.Platform) (*dto.FinancialListResponse, error) {
	records, err := s.List(ctx, platform)
	if err != nil {
		return nil, err
	}
	return &dto.FinancialListResponse{
		Records: records,
		Summary: summarize(records),
	}, nil
}

func summarize(records []model.FinancialRecord) dto.FinancialSummary {
	var summary dto.FinancialSummary
	for _, r := range records {
		switch r.Type {
		case model.FinancialTypeIncome:
			summary.TotalIncome += r.Amount
		case model.FinancialTypeExpense:
			summary.TotalExpense += r.Amount
			if strings.EqualFold(r.Category, model.CategoryAds) {
				summary.AdsExpense += r.Amount
			}
		}
	}
	if summary.TotalExpense > 0 {
		ratio := float64(summary.AdsExpense) / float64(summary.TotalExpense) * 100
		summary.AdsRatio = math.Round(ratio*10) / 10
	}
	return summary
}

// ==================== 写入 ====================

// Create 新增收支流水
// 收入的分类强制为固定值；支出不填分类时默认记广告费
func (s *FinancialService) Create(ctx context.Context, req *dto.CreateFinancialRequest) (*model.FinancialRecord, error) {
	if !req.Platform.IsValid() {
		return nil, ErrInvalidPlatform
	}

	category := strings.TrimSpace(req.Category)
	switch req.Type {
	case model.FinancialTypeIncome:
		category = model.CategoryIncome
	case model.FinancialTypeExpense:
		if category == "" {
			category = model.CategoryAds
		}
	}

	record := &model.FinancialRecord{
		Type:        req.Type,
		Category:    category,
		Amount:      utils.ParseIDR(req.Amount),
		Description: req.Description,
		Date:        req.Date,
		Platform:    req.Platform,
	}
	if err := s.financialRepo.Create(ctx, record); err != nil {
		return nil, err
	}

	s.hub.Publish(watch.CollectionFinancial, record.Platform)
	return record, nil
}

// Delete 删除流水（硬删除）
func (s *FinancialService) Delete(ctx context.Context, id int64) error {
	existing, err := s.financialRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.financialRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.hub.Publish(watch.CollectionFinancial, existing.Platform)
	return nil
}
