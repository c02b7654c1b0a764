package imaging

import (
	"bytes"
	"fmt"
	"image"
	"image/draw"
	_ "image/jpeg" // register JPEG decoder
	"image/png"
	"io"

	usecaseErrors "github.com/hackinsight-team/hackinsight/internal/usecase/errors"
)

// Service runs the image playground pipeline: enhancements, one preset
// filter, optional text overlay. Each run is synchronous and produces a
// new image; the input is never written to.
type Service struct{}

// NewService creates a new imaging service
func NewService() *Service {
	return &Service{}
}

// Options parameterizes one processing run. Enhancement factors default to
// 1.0 (identity) when zero-valued inputs are normalized by the handler.
type Options struct {
	Brightness float64
	Contrast   float64
	Saturation float64
	Filter     FilterType
	Overlay    *TextOverlay
}

// Decode reads a PNG or JPEG upload
func (s *Service) Decode(r io.Reader) (image.Image, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", usecaseErrors.ErrDecodeImage, err)
	}
	return img, nil
}

// Process applies opts in the fixed order brightness, contrast, saturation,
// filter, overlay.
func (s *Service) Process(src image.Image, opts Options) (*image.RGBA, error) {
	out := toRGBA(src)

	out = adjustBrightness(out, opts.Brightness)
	out = adjustContrast(out, opts.Contrast)
	out = adjustSaturation(out, opts.Saturation)

	if opts.Filter != "" && opts.Filter != FilterNone {
		out = applyFilter(out, opts.Filter)
	}

	if opts.Overlay != nil && opts.Overlay.Content != "" {
		if err := drawOverlay(out, *opts.Overlay); err != nil {
			return nil, err
		}
	}

	return out, nil
}

// EncodePNG renders the processed image as a lossless download
func (s *Service) EncodePNG(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("encode png: %w", err)
	}
	return buf.Bytes(), nil
}

func toRGBA(src image.Image) *image.RGBA {
	if rgba, ok := src.(*image.RGBA); ok {
		return cloneRGBA(rgba)
	}
	bounds := src.Bounds()
	dst := image.NewRGBA(bounds)
	draw.Draw(dst, bounds, src, bounds.Min, draw.Src)
	return dst
}

func cloneRGBA(src *image.RGBA) *image.RGBA {
	dst := image.NewRGBA(src.Bounds())
	draw.Draw(dst, dst.Bounds(), src, src.Bounds().Min, draw.Src)
	return dst
}
