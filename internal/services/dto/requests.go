package dto

import "io"

type PhotoShootRequest struct {
	Title       string `json:"title" validate:"required,not-blank,max=255"`
	Description string `json:"description"`
}

type LookBookRequest struct {
	Author1      string `json:"author1" validate:"required,not-blank,max=255"`
	Author2      string `json:"author2" validate:"max=255"`
	PhotoShootID string `json:"photoShootId" validate:"required,not-blank"`
}

type ScheduleRequest struct {
	StartDate    string `json:"startDate" validate:"required,not-blank,max=64"`
	EndDate      string `json:"endDate" validate:"required,not-blank,max=64"`
	PhotoShootID string `json:"photoShootId" validate:"required,not-blank"`
}

type PaymentRequest struct {
	Amount       *float64 `json:"amount" validate:"required"`
	PhotoShootID string   `json:"photoShootId" validate:"required,not-blank"`
}

// UploadFile is the incoming picture as the handler hands it to the service.
type UploadFile struct {
	Filename    string
	ContentType string // as declared by the client
	Size        int64
	Content     io.Reader
}
