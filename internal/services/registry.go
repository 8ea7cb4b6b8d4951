package services

import (
	"time"

	"photoshoot_backend/internal/metrics"
	"photoshoot_backend/internal/repositories"
	"photoshoot_backend/internal/storage"
)

// ServiceContainer holds every service of the application.
type ServiceContainer struct {
	PhotoShootService PhotoShootService
	LookBookService   LookBookService
	ScheduleService   ScheduleService
	PaymentService    PaymentService
	UploadService     UploadService
}

// NewServiceContainer builds the services over one shared set of repositories.
// m may be nil.
func NewServiceContainer(store storage.Storage, m *metrics.Metrics, now func() time.Time) *ServiceContainer {
	photoShoots := repositories.NewPhotoShootRepository()
	lookBooks := repositories.NewLookBookRepository()

	return &ServiceContainer{
		PhotoShootService: NewPhotoShootService(photoShoots, m),
		LookBookService:   NewLookBookService(lookBooks, photoShoots, m),
		ScheduleService:   NewScheduleService(repositories.NewScheduleRepository(), photoShoots, m),
		PaymentService:    NewPaymentService(repositories.NewPaymentRepository(), photoShoots, m),
		UploadService:     NewUploadService(repositories.NewUploadRepository(), lookBooks, store, m, now),
	}
}
