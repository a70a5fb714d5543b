package app

import (
	"context"
	"io/fs"
	"time"

	"imginfo/internal/domain"
)

type FileSystem interface {
	Stat(path string) (fs.FileInfo, error)
	BirthTime(path string) (time.Time, bool, error)
}

type ImageDecoder interface {
	Config(ctx context.Context, path string) (domain.ImageConfig, error)
}

type ExifReader interface {
	CameraModel(ctx context.Context, path string) (string, error)
}
