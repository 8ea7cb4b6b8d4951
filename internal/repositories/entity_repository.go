package repositories

import (
	"errors"

	"photoshoot_backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrRecordNotFound   = errors.New("record not found")
	ErrNoParentRelation = errors.New("record kind has no parent relation")
)

// EntityRepository is the data access contract shared by every booking record kind.
// The *gorm.DB is passed per call so handlers can hand in a transaction or a
// context-bound session.
type EntityRepository[T any] interface {
	// Save inserts when the id is empty and overwrites the row otherwise.
	Save(db *gorm.DB, entity *T) error
	// FindByID ignores status.
	FindByID(db *gorm.DB, id string) (*T, error)
	FindByIDActive(db *gorm.DB, id string) (*T, error)
	FindAllByParentActive(db *gorm.DB, parentID string) ([]T, error)
	// FindAll does not filter on status.
	FindAll(db *gorm.DB) ([]T, error)
	// DeleteByID is a hard delete and succeeds when nothing matches.
	DeleteByID(db *gorm.DB, id string) error
}

type EntityRepositoryImpl[T any] struct {
	parentColumn string
}

// NewEntityRepository builds a repository for T. parentColumn is the foreign
// key column used by FindAllByParentActive, empty for root kinds.
func NewEntityRepository[T any](parentColumn string) EntityRepository[T] {
	return &EntityRepositoryImpl[T]{parentColumn: parentColumn}
}

func NewPhotoShootRepository() EntityRepository[models.PhotoShoot] {
	return NewEntityRepository[models.PhotoShoot]("")
}

func NewLookBookRepository() EntityRepository[models.LookBook] {
	return NewEntityRepository[models.LookBook]("photo_shoot_id")
}

func NewScheduleRepository() EntityRepository[models.Schedule] {
	return NewEntityRepository[models.Schedule]("photo_shoot_id")
}

func NewPaymentRepository() EntityRepository[models.Payment] {
	return NewEntityRepository[models.Payment]("photo_shoot_id")
}

func NewUploadRepository() EntityRepository[models.Upload] {
	return NewEntityRepository[models.Upload]("look_book_id")
}

func (r *EntityRepositoryImpl[T]) Save(db *gorm.DB, entity *T) error {
	return db.Save(entity).Error
}

func (r *EntityRepositoryImpl[T]) FindByID(db *gorm.DB, id string) (*T, error) {
	var entity T
	if err := db.Where("id = ?", id).First(&entity).Error; err != nil {
		return nil, translateNotFound(err)
	}
	return &entity, nil
}

func (r *EntityRepositoryImpl[T]) FindByIDActive(db *gorm.DB, id string) (*T, error) {
	var entity T
	err := db.Where("id = ? AND status = ?", id, models.StatusActive).First(&entity).Error
	if err != nil {
		return nil, translateNotFound(err)
	}
	return &entity, nil
}

func (r *EntityRepositoryImpl[T]) FindAllByParentActive(db *gorm.DB, parentID string) ([]T, error) {
	if r.parentColumn == "" {
		return nil, ErrNoParentRelation
	}

	entities := make([]T, 0)
	err := db.Where(r.parentColumn+" = ? AND status = ?", parentID, models.StatusActive).
		Order("created_on").
		Find(&entities).Error
	if err != nil {
		return nil, err
	}
	return entities, nil
}

func (r *EntityRepositoryImpl[T]) FindAll(db *gorm.DB) ([]T, error) {
	entities := make([]T, 0)
	if err := db.Order("created_on").Find(&entities).Error; err != nil {
		return nil, err
	}
	return entities, nil
}

func (r *EntityRepositoryImpl[T]) DeleteByID(db *gorm.DB, id string) error {
	return db.Where("id = ?", id).Delete(new(T)).Error
}

func translateNotFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrRecordNotFound
	}
	return err
}
