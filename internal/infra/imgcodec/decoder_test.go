package imgcodec

import (
	"context"
	"image"
	"image/color"
	"image/gif"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"imginfo/internal/domain"
)

func writePNG(t *testing.T, path string, img image.Image) {
	t.Helper()
	file, err := os.Create(path)
	if err != nil {
		t.Fatalf("create %s: %v", path, err)
	}
	defer file.Close()
	if err := png.Encode(file, img); err != nil {
		t.Fatalf("encode png: %v", err)
	}
}

func TestConfigReadsDimensionsAndColorType(t *testing.T) {
	path := filepath.Join(t.TempDir(), "small.png")
	writePNG(t, path, image.NewNRGBA(image.Rect(0, 0, 12, 7)))

	cfg, err := Decoder{}.Config(context.Background(), path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Width != 12 || cfg.Height != 7 {
		t.Fatalf("unexpected dimensions: %dx%d", cfg.Width, cfg.Height)
	}
	if cfg.ColorType != domain.ColorRGBA {
		t.Fatalf("expected %s, got %s", domain.ColorRGBA, cfg.ColorType)
	}
}

func TestConfigClassifiesGrayscale(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gray.png")
	writePNG(t, path, image.NewGray(image.Rect(0, 0, 3, 3)))

	cfg, err := Decoder{}.Config(context.Background(), path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.ColorType != domain.ColorGray {
		t.Fatalf("expected %s, got %s", domain.ColorGray, cfg.ColorType)
	}
}

func TestConfigClassifiesIndexedGIF(t *testing.T) {
	path := filepath.Join(t.TempDir(), "indexed.gif")
	file, err := os.Create(path)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	img := image.NewPaletted(image.Rect(0, 0, 4, 4), color.Palette{color.Black, color.White})
	if err := gif.Encode(file, img, nil); err != nil {
		t.Fatalf("encode gif: %v", err)
	}
	file.Close()

	cfg, err := Decoder{}.Config(context.Background(), path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.ColorType != domain.ColorIndexed {
		t.Fatalf("expected %s, got %s", domain.ColorIndexed, cfg.ColorType)
	}
}

func TestConfigFailsOnNonImageContent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fake.jpg")
	if err := os.WriteFile(path, []byte("definitely not an image"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	if _, err := (Decoder{}).Config(context.Background(), path); err == nil {
		t.Fatalf("expected error for non-image content")
	}
}

func TestConfigFailsOnMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.png")
	if _, err := (Decoder{}).Config(context.Background(), path); err == nil {
		t.Fatalf("expected error for missing file")
	}
}

func TestConfigHonorsCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := (Decoder{}).Config(ctx, "irrelevant.png"); err != context.Canceled {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestColorTypeClassification(t *testing.T) {
	cases := []struct {
		model color.Model
		want  string
	}{
		{color.GrayModel, domain.ColorGray},
		{color.Gray16Model, domain.ColorGray},
		{color.RGBAModel, domain.ColorRGB},
		{color.NRGBAModel, domain.ColorRGBA},
		{color.CMYKModel, domain.ColorCMYK},
		{color.YCbCrModel, domain.ColorYCbCr},
		{color.NYCbCrAModel, domain.ColorYCbCrAlpha},
		{color.Palette{color.Black}, domain.ColorIndexed},
	}
	for _, tc := range cases {
		if got := colorType(tc.model); got != tc.want {
			t.Fatalf("expected %s, got %s", tc.want, got)
		}
	}
}
