package imaging

import "image"

// Enhancement factors interpolate between a degenerate image and the
// original: out = degenerate + factor*(original - degenerate). Factor 1.0
// is the identity, 0.0 is the fully degenerate image.

// adjustBrightness interpolates against a black image
func adjustBrightness(src *image.RGBA, factor float64) *image.RGBA {
	if factor == 1.0 {
		return src
	}
	return mapPixels(src, func(r, g, b float64) (float64, float64, float64) {
		return r * factor, g * factor, b * factor
	})
}

// adjustContrast interpolates against a uniform gray at the image's mean
// luminance
func adjustContrast(src *image.RGBA, factor float64) *image.RGBA {
	if factor == 1.0 {
		return src
	}
	mean := meanLuma(src)
	return mapPixels(src, func(r, g, b float64) (float64, float64, float64) {
		return mean + factor*(r-mean), mean + factor*(g-mean), mean + factor*(b-mean)
	})
}

// adjustSaturation interpolates against the per-pixel grayscale image
func adjustSaturation(src *image.RGBA, factor float64) *image.RGBA {
	if factor == 1.0 {
		return src
	}
	return mapPixels(src, func(r, g, b float64) (float64, float64, float64) {
		l := 0.299*r + 0.587*g + 0.114*b
		return l + factor*(r-l), l + factor*(g-l), l + factor*(b-l)
	})
}

func mapPixels(src *image.RGBA, f func(r, g, b float64) (float64, float64, float64)) *image.RGBA {
	bounds := src.Bounds()
	dst := image.NewRGBA(bounds)
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			i := src.PixOffset(x, y)
			r, g, b := f(float64(src.Pix[i]), float64(src.Pix[i+1]), float64(src.Pix[i+2]))
			o := dst.PixOffset(x, y)
			dst.Pix[o] = clampByte(r)
			dst.Pix[o+1] = clampByte(g)
			dst.Pix[o+2] = clampByte(b)
			dst.Pix[o+3] = src.Pix[i+3]
		}
	}
	return dst
}

func meanLuma(src *image.RGBA) float64 {
	bounds := src.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	if w == 0 || h == 0 {
		return 0
	}
	var sum float64
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			i := src.PixOffset(x, y)
			sum += 0.299*float64(src.Pix[i]) + 0.587*float64(src.Pix[i+1]) + 0.114*float64(src.Pix[i+2])
		}
	}
	return sum / float64(w*h)
}
