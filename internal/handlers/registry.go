package handlers

import (
	"photoshoot_backend/internal/services"
	"photoshoot_backend/internal/validator"

	"github.com/gin-gonic/gin"
)

// AppHandlers holds every handler of the application.
type AppHandlers struct {
	PhotoShootHandler *PhotoShootHandler
	LookBookHandler   *LookBookHandler
	ScheduleHandler   *ScheduleHandler
	PaymentHandler    *PaymentHandler
	UploadHandler     *UploadHandler
	HealthHandler     *HealthHandler
}

func NewAppHandlers(svc *services.ServiceContainer, v *validator.Validator, maxUploadSize int64) *AppHandlers {
	base := NewBaseHandler(v)
	return &AppHandlers{
		PhotoShootHandler: NewPhotoShootHandler(base, svc.PhotoShootService),
		LookBookHandler:   NewLookBookHandler(base, svc.LookBookService),
		ScheduleHandler:   NewScheduleHandler(base, svc.ScheduleService),
		PaymentHandler:    NewPaymentHandler(base, svc.PaymentService),
		UploadHandler:     NewUploadHandler(base, svc.UploadService, maxUploadSize),
		HealthHandler:     NewHealthHandler(base),
	}
}

type routeRegistrar interface {
	RegisterRoutes(r *gin.RouterGroup)
}

// All lists the handlers in registration order.
func (h *AppHandlers) All() []routeRegistrar {
	return []routeRegistrar{
		h.HealthHandler,
		h.PhotoShootHandler,
		h.LookBookHandler,
		h.ScheduleHandler,
		h.PaymentHandler,
		h.UploadHandler,
	}
}
