package imaging

import (
	"fmt"
	"image"

	usecaseErrors "github.com/hackinsight-team/hackinsight/internal/usecase/errors"
)

// FilterType is the closed set of preset filters. Names arriving from the
// API resolve through ParseFilter so an unknown value fails validation
// instead of silently applying nothing.
type FilterType string

const (
	FilterNone        FilterType = "none"
	FilterBlur        FilterType = "blur"
	FilterSharpen     FilterType = "sharpen"
	FilterContour     FilterType = "contour"
	FilterDetail      FilterType = "detail"
	FilterEdgeEnhance FilterType = "edge_enhance"
	FilterEmboss      FilterType = "emboss"
	FilterGrayscale   FilterType = "grayscale"
	FilterSepia       FilterType = "sepia"
)

// kernel is a square convolution filter. Output channel values are
// sum(coeffs*window)/scale + offset, clamped to [0, 255].
type kernel struct {
	size   int
	scale  float64
	offset float64
	coeffs []float64
}

// Convolution presets matching the classic raster-editor filter set.
var filterKernels = map[FilterType]kernel{
	FilterBlur: {size: 5, scale: 16, coeffs: []float64{
		1, 1, 1, 1, 1,
		1, 0, 0, 0, 1,
		1, 0, 0, 0, 1,
		1, 0, 0, 0, 1,
		1, 1, 1, 1, 1,
	}},
	FilterSharpen: {size: 3, scale: 16, coeffs: []float64{
		-2, -2, -2,
		-2, 32, -2,
		-2, -2, -2,
	}},
	FilterContour: {size: 3, scale: 1, offset: 255, coeffs: []float64{
		-1, -1, -1,
		-1, 8, -1,
		-1, -1, -1,
	}},
	FilterDetail: {size: 3, scale: 6, coeffs: []float64{
		0, -1, 0,
		-1, 10, -1,
		0, -1, 0,
	}},
	FilterEdgeEnhance: {size: 3, scale: 2, coeffs: []float64{
		-1, -1, -1,
		-1, 10, -1,
		-1, -1, -1,
	}},
	FilterEmboss: {size: 3, scale: 1, offset: 128, coeffs: []float64{
		-1, 0, 0,
		0, 1, 0,
		0, 0, 0,
	}},
}

// ParseFilter resolves a filter name from the API
func ParseFilter(name string) (FilterType, error) {
	switch ft := FilterType(name); ft {
	case FilterNone, FilterBlur, FilterSharpen, FilterContour, FilterDetail,
		FilterEdgeEnhance, FilterEmboss, FilterGrayscale, FilterSepia:
		return ft, nil
	}
	return "", fmt.Errorf("%w: %q", usecaseErrors.ErrUnknownFilter, name)
}

// applyFilter dispatches a filter over a fresh copy of src
func applyFilter(src *image.RGBA, ft FilterType) *image.RGBA {
	switch ft {
	case FilterGrayscale:
		return grayscale(src)
	case FilterSepia:
		return sepia(src)
	case FilterNone:
		return src
	default:
		return convolve(src, filterKernels[ft])
	}
}

// convolve applies k per channel with edge coordinates clamped to the
// image bounds. Alpha passes through untouched.
func convolve(src *image.RGBA, k kernel) *image.RGBA {
	bounds := src.Bounds()
	dst := image.NewRGBA(bounds)
	half := k.size / 2

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			var sumR, sumG, sumB float64
			for ky := 0; ky < k.size; ky++ {
				for kx := 0; kx < k.size; kx++ {
					sx := clampInt(x+kx-half, bounds.Min.X, bounds.Max.X-1)
					sy := clampInt(y+ky-half, bounds.Min.Y, bounds.Max.Y-1)
					i := src.PixOffset(sx, sy)
					c := k.coeffs[ky*k.size+kx]
					sumR += c * float64(src.Pix[i])
					sumG += c * float64(src.Pix[i+1])
					sumB += c * float64(src.Pix[i+2])
				}
			}
			o := dst.PixOffset(x, y)
			dst.Pix[o] = clampByte(sumR/k.scale + k.offset)
			dst.Pix[o+1] = clampByte(sumG/k.scale + k.offset)
			dst.Pix[o+2] = clampByte(sumB/k.scale + k.offset)
			dst.Pix[o+3] = src.Pix[src.PixOffset(x, y)+3]
		}
	}
	return dst
}

// grayscale replaces each pixel with its ITU-R 601 luma
func grayscale(src *image.RGBA) *image.RGBA {
	bounds := src.Bounds()
	dst := image.NewRGBA(bounds)
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			i := src.PixOffset(x, y)
			l := luma(src.Pix[i], src.Pix[i+1], src.Pix[i+2])
			o := dst.PixOffset(x, y)
			dst.Pix[o], dst.Pix[o+1], dst.Pix[o+2] = l, l, l
			dst.Pix[o+3] = src.Pix[i+3]
		}
	}
	return dst
}

// sepia applies the fixed linear color matrix per pixel with clamping
func sepia(src *image.RGBA) *image.RGBA {
	bounds := src.Bounds()
	dst := image.NewRGBA(bounds)
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			i := src.PixOffset(x, y)
			r := float64(src.Pix[i])
			g := float64(src.Pix[i+1])
			b := float64(src.Pix[i+2])
			o := dst.PixOffset(x, y)
			dst.Pix[o] = clampByte(0.393*r + 0.769*g + 0.189*b)
			dst.Pix[o+1] = clampByte(0.349*r + 0.686*g + 0.168*b)
			dst.Pix[o+2] = clampByte(0.272*r + 0.534*g + 0.131*b)
			dst.Pix[o+3] = src.Pix[i+3]
		}
	}
	return dst
}

func luma(r, g, b uint8) uint8 {
	return clampByte(0.299*float64(r) + 0.587*float64(g) + 0.114*float64(b))
}

func clampByte(v float64) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v + 0.5)
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
