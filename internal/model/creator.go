package model

// Creator 带货达人/博主（原 Firestore 集合 KREATOR PECI）
type Creator struct {
	BaseModel

	Name          string   `gorm:"size:100;not null;comment:达人昵称/账号" json:"name"`
	Followers     int64    `gorm:"not null;default:0" json:"followers"`
	ContactSource string   `gorm:"size:16;not null;comment:TikTok/WhatsApp" json:"contact_source"`
	WaNumber      string   `gorm:"size:32;comment:仅 WhatsApp 渠道填写" json:"wa_number"`
	Platform      Platform `gorm:"size:16;index;not null" json:"platform"`
}

func (Creator) TableName() string {
	return "creators"
}

// ==================== 联系方式常量 ====================

const (
	ContactSourceTikTok   = "TikTok"
	ContactSourceWhatsApp = "WhatsApp"
)
