package models

type Payment struct {
	BaseModel
	Amount       float64 `gorm:"not null" json:"amount"`
	PhotoShootID string  `gorm:"column:photo_shoot_id;type:varchar(36);not null;index" json:"photoShootId"`
}

func (Payment) TableName() string {
	return "payment"
}
