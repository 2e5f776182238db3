package service

import (
	"context"
	"testing"
	"time"

	"peci_admin_v1_202608/internal/api/dto"
	"peci_admin_v1_202608/internal/model"
	"peci_admin_v1_202608/internal/repository"
	"peci_admin_v1_202608/internal/watch"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// ==================== 测试辅助 ====================

func setupSalesTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("连接测试数据库失败: %v", err)
	}

	db.AutoMigrate(&model.SalesRecord{})
	return db
}

func newSalesTestService(t *testing.T) *SalesService {
	db := setupSalesTestDB(t)
	return NewSalesService(repository.NewSalesRepository(db), watch.NewHub())
}

// ==================== 单元测试 ====================

func TestSalesService_CreateParsesFormattedAmounts(t *testing.T) {
	svc := newSalesTestService(t)
	ctx := context.Background()

	record, err := svc.Create(ctx, &dto.CreateSalesRequest{
		Date:      "2026-08-01",
		Revenue:   "1.250.000",
		ItemsSold: "12",
		Platform:  model.PlatformTikTok,
	})
	if err != nil {
		t.Fatalf("创建营收记录失败: %v", err)
	}

	if record.Revenue != 1250000 {
		t.Errorf("金额解析错误: 期望 1250000, 实际 %d", record.Revenue)
	}
	if record.ItemsSold != 12 {
		t.Errorf("件数解析错误: 期望 12, 实际 %d", record.ItemsSold)
	}
}

func TestSalesService_CreateRejectsInvalidPlatform(t *testing.T) {
	svc := newSalesTestService(t)

	_, err := svc.Create(context.Background(), &dto.CreateSalesRequest{
		Date: "2026-08-01", Revenue: "100", ItemsSold: "1", Platform: "Lazada",
	})
	if err != ErrInvalidPlatform {
		t.Errorf("非法渠道应该被拒绝, 实际错误: %v", err)
	}
}

func TestSalesService_ListOrderedNewestFirst(t *testing.T) {
	svc := newSalesTestService(t)
	ctx := context.Background()

	for _, date := range []string{"2026-08-02", "2026-08-05", "2026-08-01"} {
		if _, err := svc.Create(ctx, &dto.CreateSalesRequest{
			Date: date, Revenue: "100", ItemsSold: "1", Platform: model.PlatformTikTok,
		}); err != nil {
			t.Fatalf("创建营收记录失败: %v", err)
		}
	}

	records, err := svc.List(ctx, model.PlatformTikTok)
	if err != nil {
		t.Fatalf("查询台账失败: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("记录数错误: 期望 3, 实际 %d", len(records))
	}
	if records[0].Date != "2026-08-05" || records[2].Date != "2026-08-01" {
		t.Errorf("台账应该按日期倒序: %s, %s, %s", records[0].Date, records[1].Date, records[2].Date)
	}
}

func TestSalesService_ListIsolatedByPlatform(t *testing.T) {
	svc := newSalesTestService(t)
	ctx := context.Background()

	svc.Create(ctx, &dto.CreateSalesRequest{Date: "2026-08-01", Revenue: "100", ItemsSold: "1", Platform: model.PlatformTikTok})
	svc.Create(ctx, &dto.CreateSalesRequest{Date: "2026-08-01", Revenue: "200", ItemsSold: "2", Platform: model.PlatformShopee})

	records, _ := svc.List(ctx, model.PlatformShopee)
	if len(records) != 1 || records[0].Revenue != 200 {
		t.Errorf("渠道隔离失败: %+v", records)
	}
}

// 单日区间：起止同一天时两端都含
func TestSalesService_StatsSingleDayInclusive(t *testing.T) {
	svc := newSalesTestService(t)
	ctx := context.Background()

	svc.Create(ctx, &dto.CreateSalesRequest{Date: "2026-08-10", Revenue: "1.000.000", ItemsSold: "12", Platform: model.PlatformTikTok})
	svc.Create(ctx, &dto.CreateSalesRequest{Date: "2026-08-11", Revenue: "500.000", ItemsSold: "3", Platform: model.PlatformTikTok})

	stats, err := svc.Stats(ctx, model.PlatformTikTok, "2026-08-10", "2026-08-10")
	if err != nil {
		t.Fatalf("统计失败: %v", err)
	}

	if stats.TotalRevenue != 1000000 {
		t.Errorf("单日营收错误: 期望 1000000, 实际 %d", stats.TotalRevenue)
	}
	if stats.TotalItems != 12 {
		t.Errorf("单日件数错误: 期望 12, 实际 %d", stats.TotalItems)
	}
	if len(stats.Chart) != 1 {
		t.Errorf("图表点数错误: 期望 1, 实际 %d", len(stats.Chart))
	}
}

func TestSalesService_StatsChartAscending(t *testing.T) {
	svc := newSalesTestService(t)
	ctx := context.Background()

	for _, date := range []string{"2026-08-03", "2026-08-01", "2026-08-02"} {
		svc.Create(ctx, &dto.CreateSalesRequest{Date: date, Revenue: "100", ItemsSold: "1", Platform: model.PlatformTikTok})
	}

	stats, err := svc.Stats(ctx, model.PlatformTikTok, "2026-08-01", "2026-08-03")
	if err != nil {
		t.Fatalf("统计失败: %v", err)
	}
	if stats.Chart[0].Date != "2026-08-01" || stats.Chart[2].Date != "2026-08-03" {
		t.Errorf("图表应该按日期升序: %s, %s, %s", stats.Chart[0].Date, stats.Chart[1].Date, stats.Chart[2].Date)
	}
}

// 不传区间时默认最近 30 天，今天的记录要能落在区间内
func TestSalesService_StatsDefaultRange(t *testing.T) {
	svc := newSalesTestService(t)
	ctx := context.Background()

	today := time.Now().Format("2006-01-02")
	old := time.Now().AddDate(0, 0, -60).Format("2006-01-02")
	svc.Create(ctx, &dto.CreateSalesRequest{Date: today, Revenue: "300", ItemsSold: "1", Platform: model.PlatformTikTok})
	svc.Create(ctx, &dto.CreateSalesRequest{Date: old, Revenue: "999", ItemsSold: "9", Platform: model.PlatformTikTok})

	stats, err := svc.Stats(ctx, model.PlatformTikTok, "", "")
	if err != nil {
		t.Fatalf("统计失败: %v", err)
	}
	if stats.TotalRevenue != 300 {
		t.Errorf("默认区间应该只含最近 30 天: 期望 300, 实际 %d", stats.TotalRevenue)
	}
}

// 同一天多条记录不合并，汇总时相加
func TestSalesService_StatsMultipleRecordsSameDay(t *testing.T) {
	svc := newSalesTestService(t)
	ctx := context.Background()

	svc.Create(ctx, &dto.CreateSalesRequest{Date: "2026-08-10", Revenue: "100", ItemsSold: "1", Platform: model.PlatformTikTok})
	svc.Create(ctx, &dto.CreateSalesRequest{Date: "2026-08-10", Revenue: "200", ItemsSold: "2", Platform: model.PlatformTikTok})

	stats, _ := svc.Stats(ctx, model.PlatformTikTok, "2026-08-10", "2026-08-10")
	if stats.TotalRevenue != 300 || len(stats.Chart) != 2 {
		t.Errorf("同日多条记录应该各自保留并求和: 营收 %d, 点数 %d", stats.TotalRevenue, len(stats.Chart))
	}
}

func TestSalesService_UpdateAndDelete(t *testing.T) {
	svc := newSalesTestService(t)
	ctx := context.Background()

	record, _ := svc.Create(ctx, &dto.CreateSalesRequest{
		Date: "2026-08-01", Revenue: "100", ItemsSold: "1", Platform: model.PlatformTikTok,
	})

	updated, err := svc.Update(ctx, record.ID, &dto.UpdateSalesRequest{
		Date: "2026-08-02", Revenue: "2.500", ItemsSold: "5",
	})
	if err != nil {
		t.Fatalf("修改失败: %v", err)
	}
	if updated.Date != "2026-08-02" || updated.Revenue != 2500 || updated.ItemsSold != 5 {
		t.Errorf("修改结果错误: %+v", updated)
	}

	if err := svc.Delete(ctx, record.ID); err != nil {
		t.Fatalf("删除失败: %v", err)
	}
	records, _ := svc.List(ctx, model.PlatformTikTok)
	if len(records) != 0 {
		t.Errorf("删除后应该为空, 实际 %d 条", len(records))
	}
}

func TestSalesService_DeleteMissingReturnsError(t *testing.T) {
	svc := newSalesTestService(t)

	if err := svc.Delete(context.Background(), 9999); err == nil {
		t.Error("删除不存在的记录应该报错")
	}
}
