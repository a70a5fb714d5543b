package imgcodec

import (
	"context"
	"image"
	"image/color"
	"os"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"

	"imginfo/internal/domain"
)

type Decoder struct{}

// Config decodes only the image header, enough for dimensions and the
// color-type classification.
func (Decoder) Config(ctx context.Context, path string) (domain.ImageConfig, error) {
	select {
	case <-ctx.Done():
		return domain.ImageConfig{}, ctx.Err()
	default:
	}

	file, err := os.Open(path)
	if err != nil {
		return domain.ImageConfig{}, err
	}
	defer file.Close()

	cfg, _, err := image.DecodeConfig(file)
	if err != nil {
		return domain.ImageConfig{}, err
	}

	return domain.ImageConfig{
		Width:     cfg.Width,
		Height:    cfg.Height,
		ColorType: colorType(cfg.ColorModel),
	}, nil
}

func colorType(model color.Model) string {
	if _, ok := model.(color.Palette); ok {
		return domain.ColorIndexed
	}

	switch model {
	case color.GrayModel, color.Gray16Model:
		return domain.ColorGray
	case color.AlphaModel, color.Alpha16Model:
		return domain.ColorGrayAlpha
	// Opaque truecolor decodes to the RGBA models, alpha-carrying images
	// to the NRGBA models.
	case color.RGBAModel, color.RGBA64Model:
		return domain.ColorRGB
	case color.NRGBAModel, color.NRGBA64Model:
		return domain.ColorRGBA
	case color.CMYKModel:
		return domain.ColorCMYK
	case color.YCbCrModel:
		return domain.ColorYCbCr
	case color.NYCbCrAModel:
		return domain.ColorYCbCrAlpha
	default:
		return domain.ColorUnknown
	}
}
