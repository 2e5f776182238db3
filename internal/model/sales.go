package model

// SalesRecord 每日营收记录（原 Firestore 集合 OMSET PECI）
// 同一天允许多条记录，汇总时相加，不做合并
type SalesRecord struct {
	BaseModel

	Date      string   `gorm:"size:10;index;not null;comment:ISO日期 YYYY-MM-DD" json:"date"`
	Revenue   int64    `gorm:"not null;default:0;comment:营收(整数盾)" json:"revenue"`
	ItemsSold int64    `gorm:"not null;default:0;comment:售出件数" json:"items_sold"`
	Platform  Platform `gorm:"size:16;index;not null" json:"platform"`
}

func (SalesRecord) TableName() string {
	return "sales_records"
}
