package services

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"mime"
	"path"
	"strings"
	"time"

	"photoshoot_backend/internal/logger"
	"photoshoot_backend/internal/metrics"
	"photoshoot_backend/internal/models"
	"photoshoot_backend/internal/repositories"
	"photoshoot_backend/internal/services/dto"
	"photoshoot_backend/internal/storage"
	"photoshoot_backend/pkg/apperrors"

	"github.com/gabriel-vasile/mimetype"
	"gorm.io/gorm"
)

// PictureTimestampLayout is yyyyMMddHHmmss.
const PictureTimestampLayout = "20060102150405"

const sniffLen = 3072

type UploadService interface {
	// UploadPicture stores file for an ACTIVE look book and records it.
	UploadPicture(ctx context.Context, db *gorm.DB, lookBookID string, file *dto.UploadFile) (*dto.Envelope[models.Upload], error)
	// UpdatePicture replaces the file of an existing upload, keeping its look book.
	UpdatePicture(ctx context.Context, db *gorm.DB, uploadID string, file *dto.UploadFile) (*dto.Envelope[models.Upload], error)
	Get(ctx context.Context, db *gorm.DB, id string) (*dto.Envelope[models.Upload], error)
	GetAll(ctx context.Context, db *gorm.DB) (*dto.Envelope[models.Upload], error)
	ListByParent(ctx context.Context, db *gorm.DB, lookBookID string) (*dto.Envelope[models.Upload], error)
	Delete(ctx context.Context, db *gorm.DB, id string) (*dto.Envelope[models.Upload], error)
}

type uploadService struct {
	*entityCore[models.Upload]
	storage storage.Storage
	now     func() time.Time
}

// NewUploadService wires the picture store. now may be nil, in which case the wall clock is used.
func NewUploadService(
	repo repositories.EntityRepository[models.Upload],
	lookBooks repositories.EntityRepository[models.LookBook],
	store storage.Storage,
	m *metrics.Metrics,
	now func() time.Time,
) UploadService {
	if now == nil {
		now = time.Now
	}
	return &uploadService{
		entityCore: newEntityCore(models.KindUpload, repo, activeParent(models.KindLookBook, lookBooks), m),
		storage:    store,
		now:        now,
	}
}

// PictureFileName builds {lookBookId}_{yyyyMMddHHmmss}{.ext}. The extension is
// taken from the client's file name; none is appended when it has none.
func PictureFileName(lookBookID, originalName string, at time.Time) string {
	base := path.Base(strings.ReplaceAll(originalName, "\\", "/"))
	return fmt.Sprintf("%s_%s%s", lookBookID, at.Format(PictureTimestampLayout), path.Ext(base))
}

func (s *uploadService) UploadPicture(ctx context.Context, db *gorm.DB, lookBookID string, file *dto.UploadFile) (*dto.Envelope[models.Upload], error) {
	upload, err := s.uploadPicture(ctx, db, lookBookID, file)
	s.record("create", err)
	if err != nil {
		return nil, err
	}
	logger.CtxInfo(ctx, "Picture uploaded", "id", upload.ID, "look_book_id", lookBookID, "file_name", upload.FileName)
	return dto.Created("Picture Upload created successfully", *upload), nil
}

func (s *uploadService) uploadPicture(ctx context.Context, db *gorm.DB, lookBookID string, file *dto.UploadFile) (*models.Upload, error) {
	if err := s.verifyParent(ctx, db, lookBookID); err != nil {
		return nil, err
	}

	upload := &models.Upload{LookBookID: lookBookID}
	upload.Status = models.StatusActive

	if err := s.storeFile(ctx, upload, file); err != nil {
		return nil, err
	}
	if err := s.save(ctx, db, upload, "create"); err != nil {
		return nil, err
	}
	return upload, nil
}

func (s *uploadService) UpdatePicture(ctx context.Context, db *gorm.DB, uploadID string, file *dto.UploadFile) (*dto.Envelope[models.Upload], error) {
	upload, err := s.updatePicture(ctx, db, uploadID, file)
	s.record("update", err)
	if err != nil {
		return nil, err
	}
	logger.CtxInfo(ctx, "Picture replaced", "id", uploadID, "file_name", upload.FileName)
	return dto.Updated("Picture Upload updated successfully", *upload), nil
}

func (s *uploadService) updatePicture(ctx context.Context, db *gorm.DB, uploadID string, file *dto.UploadFile) (*models.Upload, error) {
	upload, err := s.findActive(ctx, db, uploadID)
	if err != nil {
		return nil, err
	}
	if err := s.verifyParent(ctx, db, upload.LookBookID); err != nil {
		return nil, err
	}

	if err := s.storeFile(ctx, upload, file); err != nil {
		return nil, err
	}
	if err := s.save(ctx, db, upload, "update"); err != nil {
		return nil, err
	}
	return upload, nil
}

// storeFile writes the picture under its generated name and fills in the
// derived record fields. Any write failure is a 400.
func (s *uploadService) storeFile(ctx context.Context, upload *models.Upload, file *dto.UploadFile) error {
	if file == nil || file.Content == nil {
		return apperrors.NewBadRequestError("file is required")
	}

	fileName := PictureFileName(upload.LookBookID, file.Filename, s.now())
	content, mimeType, err := detectMimeType(fileName, file)
	if err != nil {
		return apperrors.StorageWriteFailed(err)
	}

	if err := s.storage.Save(ctx, fileName, content, mimeType); err != nil {
		logger.CtxWithError(ctx, "Failed to write picture", err, "file_name", fileName)
		return apperrors.StorageWriteFailed(err)
	}

	url, err := s.storage.GetURL(ctx, fileName)
	if err != nil {
		return apperrors.StorageWriteFailed(err)
	}

	upload.FileName = fileName
	upload.MimeType = mimeType
	upload.URL = url
	return nil
}

// detectMimeType prefers the extension, then the file's leading bytes, then the
// client's declared type. The returned reader replays the sniffed bytes.
func detectMimeType(fileName string, file *dto.UploadFile) (io.Reader, string, error) {
	if byExt := mime.TypeByExtension(strings.ToLower(path.Ext(fileName))); byExt != "" {
		return file.Content, byExt, nil
	}

	br := bufio.NewReaderSize(file.Content, sniffLen)
	head, err := br.Peek(sniffLen)
	if err != nil && err != io.EOF && err != bufio.ErrBufferFull {
		return nil, "", err
	}

	detected := mimetype.Detect(head)
	if !detected.Is("application/octet-stream") {
		return br, detected.String(), nil
	}
	if file.ContentType != "" {
		return br, file.ContentType, nil
	}
	return br, "application/octet-stream", nil
}
