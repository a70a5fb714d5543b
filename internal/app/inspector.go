package app

import (
	"context"
	"errors"
	"path/filepath"

	"imginfo/internal/domain"
	appErrors "imginfo/internal/errors"
	"imginfo/internal/logging"
)

type Inspector struct {
	FS      FileSystem
	Decoder ImageDecoder
	Exif    ExifReader
	Logger  logging.Logger
}

// Inspect extracts the metadata record for a single image file. The record
// is returned fully populated or not at all.
func (i *Inspector) Inspect(ctx context.Context, path string) (domain.Metadata, error) {
	if i.FS == nil || i.Decoder == nil || i.Exif == nil {
		return domain.Metadata{}, appErrors.Wrap(appErrors.Internal, "inspect", path,
			errors.New("inspector requires FS, Decoder and Exif"))
	}

	stop := i.Logger.Measure("Inspecting " + filepath.Base(path))
	defer stop()

	info, err := i.FS.Stat(path)
	if err != nil {
		return domain.Metadata{}, appErrors.Wrap(appErrors.NotFound, "stat", path, err)
	}

	cfg, err := i.Decoder.Config(ctx, path)
	if err != nil {
		return domain.Metadata{}, appErrors.Wrap(appErrors.DecodeFailure, "decode", path, err)
	}

	meta := domain.Metadata{
		SizeBytes: info.Size(),
		Width:     cfg.Width,
		Height:    cfg.Height,
		ColorType: cfg.ColorType,
	}

	// Creation time is absent, not an error, on filesystems that do not
	// report it. Lookup errors degrade the same way.
	created, ok, err := i.FS.BirthTime(path)
	if err != nil {
		i.Logger.Verbosef("Creation time unavailable for %s: %v", filepath.Base(path), err)
	} else if ok {
		meta.Created = &created
	}

	model, err := i.Exif.CameraModel(ctx, path)
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return domain.Metadata{}, appErrors.Wrap(appErrors.ExifFailure, "exif", path, err)
		}
		i.Logger.Verbosef("No EXIF camera model in %s: %v", filepath.Base(path), err)
	} else {
		meta.CameraModel = model
	}

	i.Logger.Verbosef("Inspected %s: %d bytes, %dx%d, %s", filepath.Base(path),
		meta.SizeBytes, meta.Width, meta.Height, meta.ColorType)

	return meta, nil
}
