package presentation

import (
	"encoding/json"
	"fmt"
	"io"

	"imginfo/internal/domain"
)

type Printer struct {
	Writer io.Writer
}

// PrintReport writes the human-readable report in a fixed order: file size,
// creation date when known, dimensions, color type, camera model.
func (p Printer) PrintReport(meta domain.Metadata) {
	fmt.Fprintf(p.Writer, "File size:    %d bytes\n", meta.SizeBytes)
	if meta.Created != nil {
		fmt.Fprintf(p.Writer, "Created:      %s\n", meta.Created.Format("2006-01-02 15:04:05"))
	}
	fmt.Fprintf(p.Writer, "Dimensions:   %d x %d\n", meta.Width, meta.Height)
	fmt.Fprintf(p.Writer, "Color type:   %s\n", meta.ColorType)
	if meta.CameraModel != "" {
		fmt.Fprintf(p.Writer, "Camera model: %s\n", meta.CameraModel)
	} else {
		fmt.Fprintln(p.Writer, "Camera model: not available")
	}
}

func (p Printer) PrintJSON(meta domain.Metadata) error {
	encoder := json.NewEncoder(p.Writer)
	encoder.SetIndent("", "  ")
	return encoder.Encode(meta)
}
