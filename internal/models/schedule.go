package models

// Schedule keeps the dates exactly as the client sent them.
type Schedule struct {
	BaseModel
	StartDate    string `gorm:"column:start_date;type:varchar(64);not null" json:"startDate"`
	EndDate      string `gorm:"column:end_date;type:varchar(64);not null" json:"endDate"`
	PhotoShootID string `gorm:"column:photo_shoot_id;type:varchar(36);not null;index" json:"photoShootId"`
}

func (Schedule) TableName() string {
	return "schedule"
}
