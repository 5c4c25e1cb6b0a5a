package render

import (
	"fmt"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"shapeedit/internal/shape"
)

// Format is an export file format.
type Format int

const (
	PNG Format = iota
	SVGFormat
)

func (f Format) String() string {
	if f == SVGFormat {
		return "svg"
	}
	return "png"
}

// FormatFor picks the export format from a file extension.
func FormatFor(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		return PNG, nil
	case ".svg":
		return SVGFormat, nil
	}
	return 0, fmt.Errorf("unsupported output format %q (want .png or .svg)", filepath.Ext(path))
}

// ExportOptions sizes and styles an export.
type ExportOptions struct {
	Width, Height int
	StrokeWidth   float64
}

// Export draws shapes onto a fresh surface of the given format and encodes it
// to w.
func Export(w io.Writer, f Format, shapes []shape.Shape, opts ExportOptions) error {
	if opts.Width <= 0 || opts.Height <= 0 {
		return fmt.Errorf("invalid export size %dx%d", opts.Width, opts.Height)
	}
	if opts.StrokeWidth <= 0 {
		opts.StrokeWidth = DefaultStrokeWidth
	}

	switch f {
	case SVGFormat:
		s := NewSVG(opts.Width, opts.Height)
		s.StrokeWidth = opts.StrokeWidth
		Draw(s, shapes)
		if _, err := s.WriteTo(w); err != nil {
			return fmt.Errorf("failed to write svg: %w", err)
		}
	default:
		r := NewRaster(opts.Width, opts.Height)
		r.StrokeWidth = opts.StrokeWidth
		Draw(r, shapes)
		if err := png.Encode(w, r.Image()); err != nil {
			return fmt.Errorf("failed to encode png: %w", err)
		}
	}
	return nil
}

// ExportFile writes shapes to path in the format its extension names.
func ExportFile(path string, shapes []shape.Shape, opts ExportOptions) (err error) {
	f, err := FormatFor(path)
	if err != nil {
		return err
	}
	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer func() {
		if cerr := out.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close %s: %w", path, cerr)
		}
	}()
	return Export(out, f, shapes, opts)
}
