package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"photoshoot_backend/internal/logger"
	"photoshoot_backend/internal/validator"
	"photoshoot_backend/pkg/apperrors"
	"photoshoot_backend/pkg/contextkeys"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// ============================================================================
// Base handler
// ============================================================================

type BaseHandler struct {
	validator *validator.Validator
}

func NewBaseHandler(v *validator.Validator) *BaseHandler {
	return &BaseHandler{
		validator: v,
	}
}

// GetDB returns the *gorm.DB (pool or transaction) that DBMiddleware put into
// the gin context. A missing key means the router is misconfigured.
func (h *BaseHandler) GetDB(c *gin.Context) *gorm.DB {
	dbKey := string(contextkeys.DBContextKey)

	val, ok := c.Get(dbKey)
	if !ok {
		logger.CtxError(c.Request.Context(), "critical error: db key not found in context", "key", dbKey)
		panic("critical error: DBMiddleware did not set the db key")
	}

	db, ok := val.(*gorm.DB)
	if !ok {
		logger.CtxError(c.Request.Context(), "critical error: db in context is not *gorm.DB", "key", dbKey, "type", fmt.Sprintf("%T", val))
		panic("critical error: db in context has incorrect type")
	}

	return db
}

// ============================================================================
// Binding and validation
// ============================================================================

func (h *BaseHandler) BindAndValidate_JSON(c *gin.Context, obj interface{}) bool {
	ctx := c.Request.Context()

	if err := c.ShouldBindJSON(obj); err != nil {
		logger.CtxWithError(ctx, "Failed to bind JSON body", err, "path", c.Request.URL.Path)
		apperrors.HandleError(c, apperrors.NewBadRequestError("Invalid request body: "+err.Error()))
		return false
	}

	if err := h.validator.Validate(obj); err != nil {
		h.HandleValidationError(c, err)
		return false
	}
	return true
}

func (h *BaseHandler) HandleValidationError(c *gin.Context, err error) {
	ctx := c.Request.Context()

	var vErr *validator.ValidationError
	if errors.As(err, &vErr) {
		logger.CtxWarn(ctx, "Validation failed", "errors", vErr.Errors, "path", c.Request.URL.Path)
		apperrors.HandleError(c, apperrors.ValidationError(vErr.Error(), vErr.Errors))
		return
	}

	logger.CtxWithError(ctx, "Internal validator error", err, "path", c.Request.URL.Path)
	apperrors.HandleError(c, apperrors.InternalError(err))
}

// RequiredParam reads key from the query string, then from the form body.
// A missing or blank value is answered with 400 and ok=false.
func (h *BaseHandler) RequiredParam(c *gin.Context, key string) (string, bool) {
	value, found := c.GetQuery(key)
	if !found {
		value, found = c.GetPostForm(key)
	}
	value = strings.TrimSpace(value)

	if !found || value == "" {
		logger.CtxWarn(c.Request.Context(), "Missing request parameter", "param", key, "path", c.Request.URL.Path)
		apperrors.HandleError(c, apperrors.NewBadRequestError("Missing required parameter: "+key))
		return "", false
	}
	return value, true
}

// ============================================================================
// Responses
// ============================================================================

func (h *BaseHandler) HandleServiceError(c *gin.Context, err error) {
	ctx := c.Request.Context()

	var appErr *apperrors.AppError
	if apperrors.As(err, &appErr) {
		if appErr.HTTPCode >= http.StatusInternalServerError {
			logger.CtxWithError(ctx, "Service failure", err, "path", c.Request.URL.Path)
		} else {
			logger.CtxWarn(ctx, "Service error",
				"error", appErr.Message,
				"details", appErr.Details,
				"path", c.Request.URL.Path,
			)
		}
		apperrors.HandleError(c, appErr)
		return
	}

	logger.CtxWithError(ctx, "Internal server error", err, "path", c.Request.URL.Path)
	apperrors.HandleError(c, apperrors.InternalError(err))
}

// envelope is anything carrying its own HTTP status, i.e. *dto.Envelope[T].
type envelope interface {
	StatusCode() int
}

// Respond writes a service result: the error body on failure, otherwise the
// envelope with its own code as the HTTP status.
func (h *BaseHandler) Respond(c *gin.Context, result envelope, err error) {
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(result.StatusCode(), result)
}
