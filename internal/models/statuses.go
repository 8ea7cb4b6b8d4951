package models

// Status is the lifecycle flag carried by every record.
// Lookups only see ACTIVE rows; nothing currently sets INACTIVE.
type Status string

const (
	StatusActive   Status = "ACTIVE"
	StatusInactive Status = "INACTIVE"
)

// Kind names used in messages, logs and metrics.
const (
	KindPhotoShoot = "Photo Shoot"
	KindLookBook   = "Look Book"
	KindSchedule   = "Schedule"
	KindPayment    = "Payment"
	KindUpload     = "Upload"
)
