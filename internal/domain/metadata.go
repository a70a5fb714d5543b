package domain

import (
	"strings"
	"time"
)

// Metadata is the result of inspecting a single image file. It is created
// fully populated or not at all; callers never see a partial record.
type Metadata struct {
	SizeBytes   int64      `json:"size_bytes"`
	Created     *time.Time `json:"created,omitempty"`
	Width       int        `json:"width"`
	Height      int        `json:"height"`
	ColorType   string     `json:"color_type"`
	CameraModel string     `json:"camera_model,omitempty"`
}

// ImageConfig holds the facts obtained from decoding an image header.
type ImageConfig struct {
	Width     int
	Height    int
	ColorType string
}

// Color type labels assigned during header decoding.
const (
	ColorGray       = "Grayscale"
	ColorGrayAlpha  = "Grayscale+Alpha"
	ColorRGB        = "RGB"
	ColorRGBA       = "RGBA"
	ColorCMYK       = "CMYK"
	ColorYCbCr      = "YCbCr"
	ColorYCbCrAlpha = "YCbCrA"
	ColorIndexed    = "Indexed"
	ColorUnknown    = "Unknown"
)

// SupportedExtensions lists the file extensions accepted for inspection.
var SupportedExtensions = []string{".jpg", ".jpeg", ".png", ".gif", ".bmp"}

func IsSupportedExtension(ext string) bool {
	switch strings.ToLower(ext) {
	case ".jpg", ".jpeg", ".png", ".gif", ".bmp":
		return true
	default:
		return false
	}
}
