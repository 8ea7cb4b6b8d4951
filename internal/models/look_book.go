package models

// LookBook is an image gallery attached to a photo shoot.
type LookBook struct {
	BaseModel
	Author1      string `gorm:"column:author1;type:varchar(255);not null" json:"author1"`
	Author2      string `gorm:"column:author2;type:varchar(255);not null;default:''" json:"author2"`
	PhotoShootID string `gorm:"column:photo_shoot_id;type:varchar(36);not null;index" json:"photoShootId"`
}

func (LookBook) TableName() string {
	return "look_book"
}
