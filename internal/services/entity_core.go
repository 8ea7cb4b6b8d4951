package services

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"photoshoot_backend/internal/logger"
	"photoshoot_backend/internal/metrics"
	"photoshoot_backend/internal/repositories"
	"photoshoot_backend/internal/services/dto"
	"photoshoot_backend/pkg/apperrors"

	"gorm.io/gorm"
)

// parentVerifier fails with NotFound unless an ACTIVE parent with the given id exists.
type parentVerifier func(ctx context.Context, db *gorm.DB, parentID string) error

type parentLink struct {
	kind   string
	verify parentVerifier
}

// entityCore holds the lifecycle rules every record kind shares: ACTIVE-only
// lookups, hard delete, envelope construction.
type entityCore[T any] struct {
	kind    string
	repo    repositories.EntityRepository[T]
	parent  *parentLink
	metrics *metrics.Metrics
}

func newEntityCore[T any](kind string, repo repositories.EntityRepository[T], parent *parentLink, m *metrics.Metrics) *entityCore[T] {
	return &entityCore[T]{kind: kind, repo: repo, parent: parent, metrics: m}
}

// findActive looks up an ACTIVE record of kind, mapping a miss to NotFound(kind, id).
func findActive[T any](ctx context.Context, db *gorm.DB, repo repositories.EntityRepository[T], kind, id string) (*T, error) {
	entity, err := repo.FindByIDActive(db.WithContext(ctx), id)
	if err != nil {
		if errors.Is(err, repositories.ErrRecordNotFound) {
			return nil, apperrors.NotFound(kind, id)
		}
		return nil, apperrors.InternalError(err)
	}
	return entity, nil
}

// verifyParentActive checks the referenced parent before a child is written.
func verifyParentActive[P any](ctx context.Context, db *gorm.DB, parents repositories.EntityRepository[P], kind, parentID string) error {
	if _, err := findActive(ctx, db, parents, kind, parentID); err != nil {
		logger.CtxWarn(ctx, "Parent verification failed", "parent_kind", kind, "parent_id", parentID)
		return err
	}
	return nil
}

func activeParent[P any](kind string, parents repositories.EntityRepository[P]) *parentLink {
	return &parentLink{
		kind: kind,
		verify: func(ctx context.Context, db *gorm.DB, parentID string) error {
			return verifyParentActive(ctx, db, parents, kind, parentID)
		},
	}
}

func (c *entityCore[T]) findActive(ctx context.Context, db *gorm.DB, id string) (*T, error) {
	return findActive(ctx, db, c.repo, c.kind, id)
}

func (c *entityCore[T]) verifyParent(ctx context.Context, db *gorm.DB, parentID string) error {
	if c.parent == nil {
		return nil
	}
	return c.parent.verify(ctx, db, parentID)
}

// save persists entity; the store's refusal becomes a 400 naming the action.
func (c *entityCore[T]) save(ctx context.Context, db *gorm.DB, entity *T, action string) error {
	if err := c.repo.Save(db.WithContext(ctx), entity); err != nil {
		logger.CtxWithError(ctx, "Failed to persist record", err, "kind", c.kind, "action", action)
		return apperrors.PersistenceRejected(err, action, c.kind)
	}
	return nil
}

func (c *entityCore[T]) Get(ctx context.Context, db *gorm.DB, id string) (*dto.Envelope[T], error) {
	entity, err := c.findActive(ctx, db, id)
	c.record("get", err)
	if err != nil {
		return nil, err
	}
	return dto.Fetched(fmt.Sprintf("%s fetched successfully", c.kind), *entity), nil
}

// GetAll returns every record regardless of status.
func (c *entityCore[T]) GetAll(ctx context.Context, db *gorm.DB) (*dto.Envelope[T], error) {
	entities, err := c.repo.FindAll(db.WithContext(ctx))
	if err != nil {
		err = apperrors.InternalError(err)
	}
	c.record("get_all", err)
	if err != nil {
		return nil, err
	}
	return dto.Fetched(fmt.Sprintf("All %s records fetched successfully", c.kind), entities...), nil
}

// ListByParent verifies the parent first, then returns its ACTIVE children.
func (c *entityCore[T]) ListByParent(ctx context.Context, db *gorm.DB, parentID string) (*dto.Envelope[T], error) {
	if c.parent == nil {
		return nil, apperrors.InternalError(repositories.ErrNoParentRelation)
	}

	if err := c.verifyParent(ctx, db, parentID); err != nil {
		c.record("list_by_parent", err)
		return nil, err
	}

	entities, err := c.repo.FindAllByParentActive(db.WithContext(ctx), parentID)
	if err != nil {
		err = apperrors.InternalError(err)
	}
	c.record("list_by_parent", err)
	if err != nil {
		return nil, err
	}

	msg := fmt.Sprintf("%s list fetched by %s id successfully", c.kind, c.parent.kind)
	return dto.Fetched(msg, entities...), nil
}

// Delete hard-deletes an ACTIVE record. Every failure, including a store
// error, is reported as NotFound.
func (c *entityCore[T]) Delete(ctx context.Context, db *gorm.DB, id string) (*dto.Envelope[T], error) {
	err := c.delete(ctx, db, id)
	c.record("delete", err)
	if err != nil {
		return nil, err
	}
	logger.CtxInfo(ctx, "Record deleted", "kind", c.kind, "id", id)
	return dto.Deleted[T](fmt.Sprintf("%s successfully deleted", c.kind)), nil
}

func (c *entityCore[T]) delete(ctx context.Context, db *gorm.DB, id string) error {
	if _, err := c.findActive(ctx, db, id); err != nil {
		return apperrors.NotFoundWrap(err, c.kind)
	}
	if err := c.repo.DeleteByID(db.WithContext(ctx), id); err != nil {
		return apperrors.NotFoundWrap(err, c.kind)
	}
	return nil
}

func (c *entityCore[T]) record(operation string, err error) {
	c.metrics.RecordOperation(c.kind, operation, outcomeOf(err))
}

func outcomeOf(err error) string {
	if err == nil {
		return "success"
	}
	appErr, ok := apperrors.AsAppError(err)
	if !ok {
		return "error"
	}
	switch appErr.HTTPCode {
	case http.StatusNotFound:
		return "not_found"
	case http.StatusBadRequest:
		return "rejected"
	default:
		return "error"
	}
}
