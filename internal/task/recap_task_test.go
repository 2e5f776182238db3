package task

import (
	"context"
	"testing"
	"time"

	"peci_admin_v1_202608/internal/api/dto"
	"peci_admin_v1_202608/internal/model"
	"peci_admin_v1_202608/internal/repository"
	"peci_admin_v1_202608/internal/service"
	"peci_admin_v1_202608/internal/watch"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupRecapTestTask(t *testing.T) (*RecapTask, *service.SalesService) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("连接测试数据库失败: %v", err)
	}
	db.AutoMigrate(&model.SalesRecord{}, &model.FinancialRecord{})

	hub := watch.NewHub()
	salesSvc := service.NewSalesService(repository.NewSalesRepository(db), hub)
	financialSvc := service.NewFinancialService(repository.NewFinancialRepository(db), hub)
	return NewRecapTask(salesSvc, financialSvc), salesSvc
}

// RunOnce 跑全渠道日报，不该 panic 也不该卡住
func TestRecapTask_RunOnce(t *testing.T) {
	recap, salesSvc := setupRecapTestTask(t)

	yesterday := time.Now().AddDate(0, 0, -1).Format("2006-01-02")
	if _, err := salesSvc.Create(context.Background(), &dto.CreateSalesRequest{
		Date: yesterday, Revenue: "1.000.000", ItemsSold: "10", Platform: model.PlatformTikTok,
	}); err != nil {
		t.Fatalf("准备数据失败: %v", err)
	}

	done := make(chan struct{})
	go func() {
		recap.RunOnce()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("日报任务超时")
	}
}

func TestRecapTask_StartStop(t *testing.T) {
	recap, _ := setupRecapTestTask(t)
	recap.Start()
	recap.Stop()
}
