package model

// SampleShipment 样品寄送记录（原 Firestore 集合 ALAMAT PECI）
//
// CreatorName 是创建时从 Creator 拷贝的快照，之后达人改名也不回写。
// 删除达人不会级联删除寄送记录。
type SampleShipment struct {
	BaseModel

	CreatorID      int64    `gorm:"index;not null" json:"creator_id"`
	CreatorName    string   `gorm:"size:100;not null;comment:创建时的达人名快照" json:"creator_name"`
	ItemName       string   `gorm:"size:100;not null" json:"item_name"`
	Address        string   `gorm:"size:500;not null" json:"address"`
	Status         string   `gorm:"size:16;index;not null;default:Pending" json:"status"`
	TrackingNumber string   `gorm:"size:64" json:"tracking_number"`
	Date           string   `gorm:"size:10;not null;comment:创建日期" json:"date"`
	Platform       Platform `gorm:"size:16;index;not null" json:"platform"`
}

func (SampleShipment) TableName() string {
	return "sample_shipments"
}

// ==================== 状态常量 ====================

// 状态之间没有流转约束，任何状态可以直接改成任何状态
const (
	ShipmentStatusPending   = "Pending"
	ShipmentStatusShipped   = "Shipped"
	ShipmentStatusDelivered = "Delivered"
	ShipmentStatusReturned  = "Returned"
)

// IsValidShipmentStatus 仅校验枚举值本身，不校验流转
func IsValidShipmentStatus(s string) bool {
	switch s {
	case ShipmentStatusPending, ShipmentStatusShipped, ShipmentStatusDelivered, ShipmentStatusReturned:
		return true
	}
	return false
}
