package model

// FinancialRecord 收支流水（原 Firestore 集合 KEUANGAN PECI）
type FinancialRecord struct {
	BaseModel

	Type        string   `gorm:"size:16;index;not null;comment:Income/Expense" json:"type"`
	Category    string   `gorm:"size:100;not null" json:"category"`
	Amount      int64    `gorm:"not null;default:0;comment:金额(整数盾)" json:"amount"`
	Description string   `gorm:"size:255" json:"description"`
	Date        string   `gorm:"size:10;index;not null" json:"date"`
	Platform    Platform `gorm:"size:16;index;not null" json:"platform"`
}

func (FinancialRecord) TableName() string {
	return "financial_records"
}

// ==================== 类型常量 ====================

const (
	FinancialTypeIncome  = "Income"
	FinancialTypeExpense = "Expense"
)

// ==================== 分类常量 ====================

// 收入分类固定为"Uang Cair"（到账资金）；
// 支出默认"Iklan"（广告费），也可以自定义分类
const (
	CategoryIncome = "Uang Cair"
	CategoryAds    = "Iklan"
)
