package task

import (
	"context"
	"time"

	"peci_admin_v1_202608/internal/model"
	"peci_admin_v1_202608/internal/service"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
)

// ==================== RecapTask 日报任务 ====================

// RecapTask 每天凌晨跑一遍昨天的经营日报
// 每个渠道各出一份：昨日营收汇总 + 收支/广告占比，写进日志给运营看
type RecapTask struct {
	salesService     *service.SalesService
	financialService *service.FinancialService
	cron             *cron.Cron

	timeout time.Duration
}

// NewRecapTask 创建日报任务
func NewRecapTask(salesService *service.SalesService, financialService *service.FinancialService) *RecapTask {
	return &RecapTask{
		salesService:     salesService,
		financialService: financialService,
		cron:             cron.New(cron.WithSeconds()),
		timeout:          30 * time.Second,
	}
}

// Start 启动定时任务
// 每天 00:05 跑，错开零点整的高峰
func (t *RecapTask) Start() {
	_, err := t.cron.AddFunc("0 5 0 * * *", func() {
		t.RunOnce()
	})
	if err != nil {
		logrus.Errorf("[RecapTask] 注册定时任务失败: %v", err)
		return
	}
	t.cron.Start()
	logrus.Info("[RecapTask] 日报任务已启动 (每天 00:05)")
}

// Stop 停止定时任务
func (t *RecapTask) Stop() {
	t.cron.Stop()
}

// RunOnce 立即跑一次全渠道日报（手动触发/测试用）
func (t *RecapTask) RunOnce() {
	yesterday := time.Now().AddDate(0, 0, -1).Format("2006-01-02")
	for _, platform := range model.AllPlatforms() {
		t.recapPlatform(platform, yesterday)
	}
}

func (t *RecapTask) recapPlatform(platform model.Platform, date string) {
	ctx, cancel := context.WithTimeout(context.Background(), t.timeout)
	defer cancel()

	stats, err := t.salesService.Stats(ctx, platform, date, date)
	if err != nil {
		logrus.Errorf("[RecapTask] %s 营收统计失败: %v", platform, err)
		return
	}

	summary, err := t.financialService.Summary(ctx, platform)
	if err != nil {
		logrus.Errorf("[RecapTask] %s 收支汇总失败: %v", platform, err)
		return
	}

	logrus.WithFields(logrus.Fields{
		"platform":      platform,
		"date":          date,
		"revenue":       stats.TotalRevenue,
		"items_sold":    stats.TotalItems,
		"total_income":  summary.TotalIncome,
		"total_expense": summary.TotalExpense,
		"ads_ratio":     summary.AdsRatio,
	}).Info("[RecapTask] 经营日报")
}
