package services

import (
	"context"
	"fmt"

	"photoshoot_backend/internal/logger"
	"photoshoot_backend/internal/metrics"
	"photoshoot_backend/internal/models"
	"photoshoot_backend/internal/repositories"
	"photoshoot_backend/internal/services/dto"

	"gorm.io/gorm"
)

// CrudService is the operation set of a record kind created from a JSON payload.
type CrudService[T any, R any] interface {
	Create(ctx context.Context, db *gorm.DB, req *R) (*dto.Envelope[T], error)
	// Update overwrites the mutable fields; id, status and createdOn are kept.
	Update(ctx context.Context, db *gorm.DB, id string, req *R) (*dto.Envelope[T], error)
	Get(ctx context.Context, db *gorm.DB, id string) (*dto.Envelope[T], error)
	GetAll(ctx context.Context, db *gorm.DB) (*dto.Envelope[T], error)
	Delete(ctx context.Context, db *gorm.DB, id string) (*dto.Envelope[T], error)
}

// ChildService adds the listing of ACTIVE children under a verified parent.
type ChildService[T any, R any] interface {
	CrudService[T, R]
	ListByParent(ctx context.Context, db *gorm.DB, parentID string) (*dto.Envelope[T], error)
}

type (
	PhotoShootService = CrudService[models.PhotoShoot, dto.PhotoShootRequest]
	LookBookService   = ChildService[models.LookBook, dto.LookBookRequest]
	ScheduleService   = ChildService[models.Schedule, dto.ScheduleRequest]
	PaymentService    = ChildService[models.Payment, dto.PaymentRequest]
)

// entityMapping tells the generic service how a request becomes a record.
type entityMapping[T any, R any] struct {
	// apply copies the request's mutable fields onto entity.
	apply func(entity *T, req *R)
	// parentID returns the parent reference carried by the request; nil for root kinds.
	parentID func(req *R) string
	base     func(entity *T) *models.BaseModel
}

type entityService[T any, R any] struct {
	*entityCore[T]
	mapping entityMapping[T, R]
}

func (s *entityService[T, R]) Create(ctx context.Context, db *gorm.DB, req *R) (*dto.Envelope[T], error) {
	entity, err := s.create(ctx, db, req)
	s.record("create", err)
	if err != nil {
		return nil, err
	}
	logger.CtxInfo(ctx, "Record created", "kind", s.kind, "id", s.mapping.base(entity).ID)
	return dto.Created(fmt.Sprintf("%s created successfully", s.kind), *entity), nil
}

func (s *entityService[T, R]) create(ctx context.Context, db *gorm.DB, req *R) (*T, error) {
	if s.mapping.parentID != nil {
		if err := s.verifyParent(ctx, db, s.mapping.parentID(req)); err != nil {
			return nil, err
		}
	}

	entity := new(T)
	s.mapping.apply(entity, req)
	s.mapping.base(entity).Status = models.StatusActive

	if err := s.save(ctx, db, entity, "create"); err != nil {
		return nil, err
	}
	return entity, nil
}

func (s *entityService[T, R]) Update(ctx context.Context, db *gorm.DB, id string, req *R) (*dto.Envelope[T], error) {
	entity, err := s.update(ctx, db, id, req)
	s.record("update", err)
	if err != nil {
		return nil, err
	}
	logger.CtxInfo(ctx, "Record updated", "kind", s.kind, "id", id)
	return dto.Updated(fmt.Sprintf("%s updated successfully", s.kind), *entity), nil
}

// update verifies the record, then the parent named by the new payload, so a
// child may move to a different ACTIVE parent.
func (s *entityService[T, R]) update(ctx context.Context, db *gorm.DB, id string, req *R) (*T, error) {
	entity, err := s.findActive(ctx, db, id)
	if err != nil {
		return nil, err
	}

	if s.mapping.parentID != nil {
		if err := s.verifyParent(ctx, db, s.mapping.parentID(req)); err != nil {
			return nil, err
		}
	}

	s.mapping.apply(entity, req)

	if err := s.save(ctx, db, entity, "update"); err != nil {
		return nil, err
	}
	return entity, nil
}

func NewPhotoShootService(repo repositories.EntityRepository[models.PhotoShoot], m *metrics.Metrics) PhotoShootService {
	return &entityService[models.PhotoShoot, dto.PhotoShootRequest]{
		entityCore: newEntityCore(models.KindPhotoShoot, repo, nil, m),
		mapping: entityMapping[models.PhotoShoot, dto.PhotoShootRequest]{
			apply: func(e *models.PhotoShoot, r *dto.PhotoShootRequest) {
				e.Title = r.Title
				e.Description = r.Description
			},
			base: func(e *models.PhotoShoot) *models.BaseModel { return &e.BaseModel },
		},
	}
}

func NewLookBookService(
	repo repositories.EntityRepository[models.LookBook],
	photoShoots repositories.EntityRepository[models.PhotoShoot],
	m *metrics.Metrics,
) LookBookService {
	return &entityService[models.LookBook, dto.LookBookRequest]{
		entityCore: newEntityCore(models.KindLookBook, repo, activeParent(models.KindPhotoShoot, photoShoots), m),
		mapping: entityMapping[models.LookBook, dto.LookBookRequest]{
			apply: func(e *models.LookBook, r *dto.LookBookRequest) {
				e.Author1 = r.Author1
				e.Author2 = r.Author2
				e.PhotoShootID = r.PhotoShootID
			},
			parentID: func(r *dto.LookBookRequest) string { return r.PhotoShootID },
			base:     func(e *models.LookBook) *models.BaseModel { return &e.BaseModel },
		},
	}
}

func NewScheduleService(
	repo repositories.EntityRepository[models.Schedule],
	photoShoots repositories.EntityRepository[models.PhotoShoot],
	m *metrics.Metrics,
) ScheduleService {
	return &entityService[models.Schedule, dto.ScheduleRequest]{
		entityCore: newEntityCore(models.KindSchedule, repo, activeParent(models.KindPhotoShoot, photoShoots), m),
		mapping: entityMapping[models.Schedule, dto.ScheduleRequest]{
			apply: func(e *models.Schedule, r *dto.ScheduleRequest) {
				e.StartDate = r.StartDate
				e.EndDate = r.EndDate
				e.PhotoShootID = r.PhotoShootID
			},
			parentID: func(r *dto.ScheduleRequest) string { return r.PhotoShootID },
			base:     func(e *models.Schedule) *models.BaseModel { return &e.BaseModel },
		},
	}
}

func NewPaymentService(
	repo repositories.EntityRepository[models.Payment],
	photoShoots repositories.EntityRepository[models.PhotoShoot],
	m *metrics.Metrics,
) PaymentService {
	return &entityService[models.Payment, dto.PaymentRequest]{
		entityCore: newEntityCore(models.KindPayment, repo, activeParent(models.KindPhotoShoot, photoShoots), m),
		mapping: entityMapping[models.Payment, dto.PaymentRequest]{
			apply: func(e *models.Payment, r *dto.PaymentRequest) {
				if r.Amount != nil {
					e.Amount = *r.Amount
				}
				e.PhotoShootID = r.PhotoShootID
			},
			parentID: func(r *dto.PaymentRequest) string { return r.PhotoShootID },
			base:     func(e *models.Payment) *models.BaseModel { return &e.BaseModel },
		},
	}
}
