package models

// Upload describes a picture written to storage for a look book.
// FileName is the generated storage name, URL where it can be read back.
type Upload struct {
	BaseModel
	LookBookID string `gorm:"column:look_book_id;type:varchar(36);not null;index" json:"lookBookId"`
	FileName   string `gorm:"column:file_name;type:varchar(255);not null" json:"fileName"`
	MimeType   string `gorm:"column:mime_type;type:varchar(255);not null" json:"mimeType"`
	URL        string `gorm:"column:url;type:text;not null" json:"url"`
}

func (Upload) TableName() string {
	return "upload"
}
