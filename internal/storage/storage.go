package storage

import (
	"context"
	"fmt"
	"io"
)

// Storage is the blob store uploaded pictures are written to.
type Storage interface {
	// Save writes reader to path, replacing whatever was there.
	Save(ctx context.Context, path string, reader io.Reader, contentType string) error

	// GetURL returns where a saved file can be read back.
	GetURL(ctx context.Context, path string) (string, error)
}

type Config struct {
	Type      string // local, s3
	BasePath  string // root directory for local storage
	BaseURL   string // public URL prefix, optional
	Bucket    string
	Region    string
	AccessKey string
	SecretKey string
	Endpoint  string
	UseSSL    bool
}

func NewStorage(cfg Config) (Storage, error) {
	switch cfg.Type {
	case "local", "":
		return NewLocalStorage(cfg)
	case "s3":
		return NewS3Storage(cfg)
	default:
		return nil, fmt.Errorf("unsupported storage type: %s", cfg.Type)
	}
}
