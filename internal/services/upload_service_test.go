package services_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"
	"time"

		"photoshoot_backend/internal/models"
	"photoshoot_backend/internal/repositories"
	"photoshoot_backend/internal/services"
	"photoshoot_backend/internal/services/dto"
	"photoshoot_backend/internal/storage"
	"photoshoot_backend/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

var pngHeader = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR\x00\x00\x00\x01\x00\x00\x00\x01\x08\x02\x00\x00\x00")

func newLocalStorage(t *testing.T) *storage.LocalStorage {
	t.Helper()
	store, err := storage.NewLocalStorage(storage.Config{Type: "local", BasePath: t.TempDir()})
	require.NoError(t, err)
	return store
}

type fixedClock struct{ at time.Time }

func (c *fixedClock) now() time.Time { return c.at }

type failingStorage struct{ storage.Storage }

func (failingStorage) Save(context.Context, string, io.Reader, string) error {
	return errors.New("disk full")
}

func uploadFixture(t *testing.T, store storage.Storage, clock func() time.Time) (services.UploadService, *gorm.DB, string) {
	t.Helper()
	db := testutil.OpenTestDB(t)
	ctx := context.Background()

	shoots := services.NewPhotoShootService(repositories.NewPhotoShootRepository(), nil)
	shoot, err := shoots.Create(ctx, db, &dto.PhotoShootRequest{Title: "Fall Shoot"})
	require.NoError(t, err)

	lookBooks := services.NewLookBookService(repositories.NewLookBookRepository(), repositories.NewPhotoShootRepository(), nil)
	lookBook, err := lookBooks.Create(ctx, db, &dto.LookBookRequest{Author1: "Ann", PhotoShootID: shoot.Data[0].ID})
	require.NoError(t, err)

	svc := services.NewUploadService(repositories.NewUploadRepository(), repositories.NewLookBookRepository(), store, nil, clock)
	return svc, db, lookBook.Data[0].ID
}

func picture(name string, content []byte) *dto.UploadFile {
	return &dto.UploadFile{Filename: name, Size: int64(len(content)), Content: bytes.NewReader(content)}
}

func TestPictureFileName(t *testing.T) {
	at := time.Date(2024, 3, 9, 14, 5, 7, 0, time.UTC)

	tests := []struct {
		name     string
		original string
		want     string
	}{
		{"keeps extension", "photo.jpg", "LB1_20240309140507.jpg"},
		{"only last extension", "archive.tar.gz", "LB1_20240309140507.gz"},
		{"no extension", "README", "LB1_20240309140507"},
		{"client directories dropped", "C:\\Users\\me\\shot.png", "LB1_20240309140507.png"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, services.PictureFileName("LB1", tt.original, at))
		})
	}
}

func TestUploadService_UploadPicture(t *testing.T) {
	store := newLocalStorage(t)
	svc, db, lookBookID := uploadFixture(t, store, nil)
	ctx := context.Background()

	env, err := svc.UploadPicture(ctx, db, lookBookID, picture("photo.jpg", []byte("jpeg bytes")))
	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, env.Code)
	assert.Equal(t, "Picture Upload created successfully", env.Message)
	require.Len(t, env.Data, 1)

	upload := env.Data[0]
	pattern := regexp.MustCompile("^" + regexp.QuoteMeta(lookBookID) + `_\d{14}\.jpg$`)
	assert.Regexp(t, pattern, upload.FileName)
	assert.Equal(t, "image/jpeg", upload.MimeType)
	assert.Equal(t, filepath.Join(store.BasePath(), upload.FileName), upload.URL)
	assert.Equal(t, models.StatusActive, upload.Status)

	written, err := os.ReadFile(upload.URL)
	require.NoError(t, err)
	assert.Equal(t, "jpeg bytes", string(written))

	listed, err := svc.ListByParent(ctx, db, lookBookID)
	require.NoError(t, err)
	assert.Len(t, listed.Data, 1)
}

func TestUploadService_MimeDetection(t *testing.T) {
	store := newLocalStorage(t)
	svc, db, lookBookID := uploadFixture(t, store, nil)
	ctx := context.Background()

	t.Run("sniffed when the name has no extension", func(t *testing.T) {
		env, err := svc.UploadPicture(ctx, db, lookBookID, picture("scan", pngHeader))
		require.NoError(t, err)
		upload := env.Data[0]
		assert.Equal(t, "image/png", upload.MimeType)
		assert.False(t, strings.Contains(upload.FileName, "."))

		written, err := os.ReadFile(upload.URL)
		require.NoError(t, err)
		assert.Equal(t, pngHeader, written, "sniffed bytes must still be written")
	})

	t.Run("falls back to the declared type", func(t *testing.T) {
		file := picture("blob", []byte{0x00, 0x01, 0x02})
		file.ContentType = "image/x-custom"
		env, err := svc.UploadPicture(ctx, db, lookBookID, file)
		require.NoError(t, err)
		assert.Equal(t, "image/x-custom", env.Data[0].MimeType)
	})
}

func TestUploadService_UpdatePictureKeepsLookBook(t *testing.T) {
	clock := &fixedClock{at: time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)}
	store := newLocalStorage(t)
	svc, db, lookBookID := uploadFixture(t, store, clock.now)
	ctx := context.Background()

	created, err := svc.UploadPicture(ctx, db, lookBookID, picture("first.jpg", []byte("one")))
	require.NoError(t, err)
	original := created.Data[0]
	assert.Equal(t, lookBookID+"_20240101100000.jpg", original.FileName)

	clock.at = clock.at.Add(90 * time.Second)
	updated, err := svc.UpdatePicture(ctx, db, original.ID, picture("second.png", pngHeader))
	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, updated.Code)
	assert.Equal(t, "Picture Upload updated successfully", updated.Message)

	replaced := updated.Data[0]
	assert.Equal(t, original.ID, replaced.ID)
	assert.Equal(t, lookBookID, replaced.LookBookID)
	assert.Equal(t, lookBookID+"_20240101100130.png", replaced.FileName)
	assert.Equal(t, "image/png", replaced.MimeType)

	all, err := svc.GetAll(ctx, db)
	require.NoError(t, err)
	assert.Len(t, all.Data, 1)

	_, err = svc.UpdatePicture(ctx, db, "missing", picture("x.jpg", []byte("x")))
	requireAppError(t, err, http.StatusNotFound)
}

func TestUploadService_SameSecondOverwrites(t *testing.T) {
	clock := &fixedClock{at: time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)}
	store := newLocalStorage(t)
	svc, db, lookBookID := uploadFixture(t, store, clock.now)
	ctx := context.Background()

	first, err := svc.UploadPicture(ctx, db, lookBookID, picture("a.jpg", []byte("first")))
	require.NoError(t, err)
	second, err := svc.UploadPicture(ctx, db, lookBookID, picture("b.jpg", []byte("second")))
	require.NoError(t, err)

	assert.Equal(t, first.Data[0].FileName, second.Data[0].FileName)
	assert.NotEqual(t, first.Data[0].ID, second.Data[0].ID)

	written, err := os.ReadFile(second.Data[0].URL)
	require.NoError(t, err)
	assert.Equal(t, "second", string(written))
}

func TestUploadService_Failures(t *testing.T) {
	ctx := context.Background()

	t.Run("unknown look book writes nothing", func(t *testing.T) {
		store := newLocalStorage(t)
		svc, db, _ := uploadFixture(t, store, nil)

		_, err := svc.UploadPicture(ctx, db, "missing", picture("photo.jpg", []byte("x")))
		appErr := requireAppError(t, err, http.StatusNotFound)
		assert.Contains(t, appErr.Message, "missing")

		entries, err := os.ReadDir(store.BasePath())
		require.NoError(t, err)
		assert.Empty(t, entries)
	})

	t.Run("write failure is a validation error", func(t *testing.T) {
		svc, db, lookBookID := uploadFixture(t, failingStorage{newLocalStorage(t)}, nil)

		_, err := svc.UploadPicture(ctx, db, lookBookID, picture("photo.jpg", []byte("x")))
		appErr := requireAppError(t, err, http.StatusBadRequest)
		assert.Equal(t, "Error: disk full", appErr.Message)

		all, err := svc.GetAll(ctx, db)
		require.NoError(t, err)
		assert.Empty(t, all.Data)
	})

	t.Run("missing file", func(t *testing.T) {
		svc, db, lookBookID := uploadFixture(t, newLocalStorage(t), nil)

		_, err := svc.UploadPicture(ctx, db, lookBookID, nil)
		requireAppError(t, err, http.StatusBadRequest)
	})

	t.Run("delete keeps the file", func(t *testing.T) {
		store := newLocalStorage(t)
		svc, db, lookBookID := uploadFixture(t, store, nil)

		env, err := svc.UploadPicture(ctx, db, lookBookID, picture("photo.jpg", []byte("x")))
		require.NoError(t, err)

		deleted, err := svc.Delete(ctx, db, env.Data[0].ID)
		require.NoError(t, err)
		assert.Equal(t, "Upload successfully deleted", deleted.Message)

		_, err = os.Stat(env.Data[0].URL)
		assert.NoError(t, err)

		_, err = svc.Delete(ctx, db, env.Data[0].ID)
		requireAppError(t, err, http.StatusNotFound)
	})
}
