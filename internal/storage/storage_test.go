package storage

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalStorage_SaveOverwrites(t *testing.T) {
	root := t.TempDir()
	s, err := NewLocalStorage(Config{BasePath: root})
	require.NoError(t, err)
	ctx := context.Background()

	require.NoError(t, s.Save(ctx, "LB1_20240101120000.jpg", strings.NewReader("first version"), "image/jpeg"))
	require.NoError(t, s.Save(ctx, "LB1_20240101120000.jpg", strings.NewReader("second"), "image/jpeg"))

	data, err := os.ReadFile(filepath.Join(root, "LB1_20240101120000.jpg"))
	require.NoError(t, err)
	assert.Equal(t, "second", string(data))
}

func TestLocalStorage_GetURL(t *testing.T) {
	root := t.TempDir()
	ctx := context.Background()

	t.Run("absolute path by default", func(t *testing.T) {
		s, err := NewLocalStorage(Config{BasePath: root})
		require.NoError(t, err)

		url, err := s.GetURL(ctx, "a.png")
		require.NoError(t, err)
		assert.True(t, filepath.IsAbs(url))
		assert.Equal(t, filepath.Join(root, "a.png"), url)
	})

	t.Run("public prefix", func(t *testing.T) {
		s, err := NewLocalStorage(Config{BasePath: root, BaseURL: "https://cdn.example.com/pictures/"})
		require.NoError(t, err)

		url, err := s.GetURL(ctx, "a.png")
		require.NoError(t, err)
		assert.Equal(t, "https://cdn.example.com/pictures/a.png", url)
	})
}

func TestLocalStorage_RejectsEscapingPaths(t *testing.T) {
	s, err := NewLocalStorage(Config{BasePath: t.TempDir()})
	require.NoError(t, err)

	err = s.Save(context.Background(), "../outside.jpg", strings.NewReader("x"), "image/jpeg")
	assert.ErrorIs(t, err, ErrInvalidPath)
}

func TestNewStorage(t *testing.T) {
	t.Run("local", func(t *testing.T) {
		s, err := NewStorage(Config{Type: "local", BasePath: t.TempDir()})
		require.NoError(t, err)
		assert.IsType(t, &LocalStorage{}, s)
	})

	t.Run("s3 url layout", func(t *testing.T) {
		s, err := NewStorage(Config{Type: "s3", Endpoint: "minio:9000", Bucket: "pictures"})
		require.NoError(t, err)
		url, err := s.GetURL(context.Background(), "LB1_20240101120000.jpg")
		require.NoError(t, err)
		assert.Equal(t, "http://minio:9000/pictures/LB1_20240101120000.jpg", url)
	})

	t.Run("unknown", func(t *testing.T) {
		_, err := NewStorage(Config{Type: "ftp"})
		assert.Error(t, err)
	})
}
