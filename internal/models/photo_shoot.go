package models

// PhotoShoot is the root booking record.
type PhotoShoot struct {
	BaseModel
	Title       string `gorm:"type:varchar(255);not null" json:"title"`
	Description string `gorm:"type:text;not null;default:''" json:"description"`
}

func (PhotoShoot) TableName() string {
	return "photo_shoot"
}
