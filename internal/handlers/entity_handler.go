package handlers

import (
	"photoshoot_backend/internal/models"
	"photoshoot_backend/internal/services"
	"photoshoot_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

// EntityHandler serves the JSON CRUD routes of one record kind.
type EntityHandler[T any, R any] struct {
	*BaseHandler
	service  services.CrudService[T, R]
	children services.ChildService[T, R] // nil for root kinds
	path     string
	idParam  string
}

type (
	PhotoShootHandler = EntityHandler[models.PhotoShoot, dto.PhotoShootRequest]
	LookBookHandler   = EntityHandler[models.LookBook, dto.LookBookRequest]
	ScheduleHandler   = EntityHandler[models.Schedule, dto.ScheduleRequest]
	PaymentHandler    = EntityHandler[models.Payment, dto.PaymentRequest]
)

const photoShootIDParam = "photo_shoot_id"

func NewPhotoShootHandler(base *BaseHandler, service services.PhotoShootService) *PhotoShootHandler {
	return &PhotoShootHandler{BaseHandler: base, service: service, path: "/photo_shoot", idParam: photoShootIDParam}
}

func NewLookBookHandler(base *BaseHandler, service services.LookBookService) *LookBookHandler {
	return &LookBookHandler{BaseHandler: base, service: service, children: service, path: "/look_book", idParam: "look_book_id"}
}

func NewScheduleHandler(base *BaseHandler, service services.ScheduleService) *ScheduleHandler {
	return &ScheduleHandler{BaseHandler: base, service: service, children: service, path: "/schedule", idParam: "schedule_id"}
}

func NewPaymentHandler(base *BaseHandler, service services.PaymentService) *PaymentHandler {
	return &PaymentHandler{BaseHandler: base, service: service, children: service, path: "/payment", idParam: "payment_id"}
}

func (h *EntityHandler[T, R]) RegisterRoutes(r *gin.RouterGroup) {
	g := r.Group(h.path)
	{
		g.POST("", h.Create)
		g.PUT("", h.Update)
		g.GET("", h.Get)
		g.DELETE("", h.Delete)
		g.GET("/all", h.GetAll)

		if h.children != nil {
			g.GET("/id", h.ListByParent)
		}
	}
}

func (h *EntityHandler[T, R]) Create(c *gin.Context) {
	var req R
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	result, err := h.service.Create(c.Request.Context(), h.GetDB(c), &req)
	h.Respond(c, result, err)
}

func (h *EntityHandler[T, R]) Update(c *gin.Context) {
	id, ok := h.RequiredParam(c, h.idParam)
	if !ok {
		return
	}

	var req R
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	result, err := h.service.Update(c.Request.Context(), h.GetDB(c), id, &req)
	h.Respond(c, result, err)
}

func (h *EntityHandler[T, R]) Get(c *gin.Context) {
	id, ok := h.RequiredParam(c, h.idParam)
	if !ok {
		return
	}

	result, err := h.service.Get(c.Request.Context(), h.GetDB(c), id)
	h.Respond(c, result, err)
}

func (h *EntityHandler[T, R]) GetAll(c *gin.Context) {
	result, err := h.service.GetAll(c.Request.Context(), h.GetDB(c))
	h.Respond(c, result, err)
}

// ListByParent answers GET {path}/id?photo_shoot_id=...
func (h *EntityHandler[T, R]) ListByParent(c *gin.Context) {
	parentID, ok := h.RequiredParam(c, photoShootIDParam)
	if !ok {
		return
	}

	result, err := h.children.ListByParent(c.Request.Context(), h.GetDB(c), parentID)
	h.Respond(c, result, err)
}

func (h *EntityHandler[T, R]) Delete(c *gin.Context) {
	id, ok := h.RequiredParam(c, h.idParam)
	if !ok {
		return
	}

	result, err := h.service.Delete(c.Request.Context(), h.GetDB(c), id)
	h.Respond(c, result, err)
}
