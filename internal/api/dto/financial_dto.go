package dto

import "peci_admin_v1_202608/internal/model"

// ==================== 收支 DTO ====================

// CreateFinancialRequest 新增收支
// Category 只对支出生效：留空记成固定的"Iklan"，填了就是自定义分类；
// 收入的分类服务端强制为固定值，传什么都不认
type CreateFinancialRequest struct {
	Type        string         `json:"type" binding:"required,oneof=Income Expense"`
	Category    string         `json:"category"`
	Amount      string         `json:"amount" binding:"required"`
	Description string         `json:"description"`
	Date        string         `json:"date" binding:"required"`
	Platform    model.Platform `json:"platform" binding:"required"`
}

// FinancialSummary 收支汇总
type FinancialSummary struct {
	TotalIncome  int64   `json:"total_income"`
	TotalExpense int64   `json:"total_expense"`
	AdsExpense   int64   `json:"ads_expense"`
	AdsRatio     float64 `json:"ads_ratio"` // 百分比；总支出为 0 时恒为 0
}

// FinancialListResponse 列表 + 汇总一次返回
type FinancialListResponse struct {
	Records []model.FinancialRecord `json:"records"`
	Summary FinancialSummary        `json:"summary"`
}
