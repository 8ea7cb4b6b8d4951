package handlers

import (
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"

	"photoshoot_backend/internal/logger"
	"photoshoot_backend/internal/middleware"
	"photoshoot_backend/internal/models"
	"photoshoot_backend/internal/services"
	"photoshoot_backend/internal/services/dto"
	"photoshoot_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

const (
	// multipartMemory is how much of a form is buffered in memory before spilling to temp files.
	multipartMemory = 8 << 20
	// multipartOverhead is the body allowance on top of maxSize for boundaries and form fields.
	multipartOverhead = 64 << 10
)

// ============================================
// UPLOAD HANDLER
// ============================================

type uploadEnvelope = dto.Envelope[models.Upload]

type UploadHandler struct {
	*BaseHandler
	uploadService services.UploadService
	maxSize       int64
}

func NewUploadHandler(base *BaseHandler, uploadService services.UploadService, maxSize int64) *UploadHandler {
	return &UploadHandler{
		BaseHandler:   base,
		uploadService: uploadService,
		maxSize:       maxSize,
	}
}

func (h *UploadHandler) RegisterRoutes(r *gin.RouterGroup) {
	uploads := r.Group("/upload")
	{
		writes := uploads.Group("")
		if h.maxSize > 0 {
			writes.Use(middleware.BodySizeLimit(h.maxSize + multipartOverhead))
		}
		{
			writes.PUT("", h.UploadPicture)
			writes.PUT("/id", h.UpdatePicture)
		}

		uploads.GET("", h.GetUpload)
		uploads.GET("/all", h.GetAllUploads)
		uploads.GET("/look_book", h.GetLookBookUploads)
		uploads.DELETE("", h.DeleteUpload)
	}
}

// UploadPicture godoc
// @Summary Upload a picture
// @Description Stores the file as {lookBookId}_{timestamp}.{ext} and records it against the look book.
// @Tags Uploads
// @Accept multipart/form-data
// @Produce json
// @Param look_book_id query string true "Look book ID"
// @Param file formData file true "Picture"
// @Success 201 {object} dto.Envelope[models.Upload]
// @Failure 400 {object} apperrors.ErrorResponse
// @Failure 404 {object} apperrors.ErrorResponse "Look book not found"
// @Failure 500 {object} apperrors.ErrorResponse
// @Router /upload [put]
func (h *UploadHandler) UploadPicture(c *gin.Context) {
	file, src, ok := h.readPicture(c)
	if !ok {
		return
	}
	defer src.Close()

	lookBookID, ok := h.RequiredParam(c, "look_book_id")
	if !ok {
		return
	}

	result, err := h.uploadService.UploadPicture(c.Request.Context(), h.GetDB(c), lookBookID, file)
	h.Respond(c, result, err)
}

// UpdatePicture godoc
// @Summary Replace a picture
// @Tags Uploads
// @Accept multipart/form-data
// @Produce json
// @Param upload_id query string true "Upload ID"
// @Param file formData file true "Picture"
// @Success 201 {object} dto.Envelope[models.Upload]
// @Failure 400 {object} apperrors.ErrorResponse
// @Failure 404 {object} apperrors.ErrorResponse
// @Failure 500 {object} apperrors.ErrorResponse
// @Router /upload/id [put]
func (h *UploadHandler) UpdatePicture(c *gin.Context) {
	file, src, ok := h.readPicture(c)
	if !ok {
		return
	}
	defer src.Close()

	uploadID, ok := h.RequiredParam(c, "upload_id")
	if !ok {
		return
	}

	result, err := h.uploadService.UpdatePicture(c.Request.Context(), h.GetDB(c), uploadID, file)
	h.Respond(c, result, err)
}

// GetUpload godoc
// @Summary Get an active upload
// @Tags Uploads
// @Produce json
// @Param upload_id query string true "Upload ID"
// @Success 200 {object} dto.Envelope[models.Upload]
// @Failure 400 {object} apperrors.ErrorResponse
// @Failure 404 {object} apperrors.ErrorResponse
// @Router /upload [get]
func (h *UploadHandler) GetUpload(c *gin.Context) {
	uploadID, ok := h.RequiredParam(c, "upload_id")
	if !ok {
		return
	}

	result, err := h.uploadService.Get(c.Request.Context(), h.GetDB(c), uploadID)
	h.Respond(c, result, err)
}

// GetAllUploads godoc
// @Summary List every upload
// @Tags Uploads
// @Produce json
// @Success 200 {object} dto.Envelope[models.Upload]
// @Failure 500 {object} apperrors.ErrorResponse
// @Router /upload/all [get]
func (h *UploadHandler) GetAllUploads(c *gin.Context) {
	result, err := h.uploadService.GetAll(c.Request.Context(), h.GetDB(c))
	h.Respond(c, result, err)
}

// GetLookBookUploads godoc
// @Summary List active uploads of a look book
// @Tags Uploads
// @Produce json
// @Param look_book_id query string true "Look book ID"
// @Success 200 {object} dto.Envelope[models.Upload]
// @Failure 400 {object} apperrors.ErrorResponse
// @Failure 404 {object} apperrors.ErrorResponse
// @Router /upload/look_book [get]
func (h *UploadHandler) GetLookBookUploads(c *gin.Context) {
	lookBookID, ok := h.RequiredParam(c, "look_book_id")
	if !ok {
		return
	}

	result, err := h.uploadService.ListByParent(c.Request.Context(), h.GetDB(c), lookBookID)
	h.Respond(c, result, err)
}

// DeleteUpload godoc
// @Summary Delete an upload
// @Tags Uploads
// @Produce json
// @Param upload_id query string true "Upload ID"
// @Success 200 {object} dto.Envelope[models.Upload]
// @Failure 400 {object} apperrors.ErrorResponse
// @Failure 404 {object} apperrors.ErrorResponse
// @Router /upload [delete]
func (h *UploadHandler) DeleteUpload(c *gin.Context) {
	uploadID, ok := h.RequiredParam(c, "upload_id")
	if !ok {
		return
	}

	result, err := h.uploadService.Delete(c.Request.Context(), h.GetDB(c), uploadID)
	h.Respond(c, result, err)
}

// readPicture parses the multipart form and opens its "file" part. The caller
// closes the returned file.
func (h *UploadHandler) readPicture(c *gin.Context) (*dto.UploadFile, multipart.File, bool) {
	ctx := c.Request.Context()

	if err := c.Request.ParseMultipartForm(multipartMemory); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			logger.CtxWarn(ctx, "Upload rejected: body too large", "limit", tooLarge.Limit)
			apperrors.HandleError(c, apperrors.NewBadRequestError(
				fmt.Sprintf("file exceeds maximum upload size of %d bytes", tooLarge.Limit)))
			return nil, nil, false
		}
		apperrors.HandleError(c, apperrors.NewBadRequestError("failed to parse form: "+err.Error()))
		return nil, nil, false
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		apperrors.HandleError(c, apperrors.NewBadRequestError("Missing required parameter: file"))
		return nil, nil, false
	}
	if h.maxSize > 0 && fileHeader.Size > h.maxSize {
		apperrors.HandleError(c, apperrors.NewBadRequestError(
			fmt.Sprintf("file exceeds maximum upload size of %d bytes", h.maxSize)))
		return nil, nil, false
	}

	content, err := fileHeader.Open()
	if err != nil {
		logger.CtxWithError(ctx, "Failed to open uploaded file", err, "file_name", fileHeader.Filename)
		apperrors.HandleError(c, apperrors.StorageWriteFailed(err))
		return nil, nil, false
	}

	return &dto.UploadFile{
		Filename:    fileHeader.Filename,
		ContentType: fileHeader.Header.Get("Content-Type"),
		Size:        fileHeader.Size,
		Content:     content,
	}, content, true
}
