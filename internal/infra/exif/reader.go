package exif

import (
	"context"
	"errors"
	"os"
	"strings"

	goexif "github.com/rwcarlsen/goexif/exif"
)

type Reader struct{}

// CameraModel returns the EXIF Model tag of the image at path. Files
// without EXIF data, or without the tag, yield an error the caller is
// expected to treat as "no camera model".
func (Reader) CameraModel(ctx context.Context, path string) (string, error) {
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	default:
	}

	file, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer file.Close()

	x, err := goexif.Decode(file)
	if err != nil {
		return "", err
	}

	tag, err := x.Get(goexif.Model)
	if err != nil {
		return "", err
	}

	model, err := tag.StringVal()
	if err != nil {
		return "", err
	}

	model = strings.TrimSpace(model)
	if model == "" {
		return "", errors.New("exif model tag is empty")
	}
	return model, nil
}
