package imaging

import (
	"errors"
	"image"
	"testing"

	usecaseErrors "github.com/hackinsight-team/hackinsight/internal/usecase/errors"
)

func uniformImage(w, h int, r, g, b uint8) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			i := img.PixOffset(x, y)
			img.Pix[i], img.Pix[i+1], img.Pix[i+2], img.Pix[i+3] = r, g, b, 255
		}
	}
	return img
}

func TestParseFilter(t *testing.T) {
	for _, name := range []string{"none", "blur", "sharpen", "contour", "detail", "edge_enhance", "emboss", "grayscale", "sepia"} {
		if _, err := ParseFilter(name); err != nil {
			t.Fatalf("%q rejected: %v", name, err)
		}
	}

	if _, err := ParseFilter("solarize"); !errors.Is(err, usecaseErrors.ErrUnknownFilter) {
		t.Fatalf("got %v, want ErrUnknownFilter", err)
	}
}

func TestGrayscale_KnownPixel(t *testing.T) {
	src := uniformImage(2, 2, 100, 150, 200)
	out := grayscale(src)

	// 0.299*100 + 0.587*150 + 0.114*200 = 140.75, rounds to 141
	i := out.PixOffset(0, 0)
	if out.Pix[i] != 141 || out.Pix[i+1] != 141 || out.Pix[i+2] != 141 {
		t.Fatalf("got (%d, %d, %d), want (141, 141, 141)", out.Pix[i], out.Pix[i+1], out.Pix[i+2])
	}
	if out.Pix[i+3] != 255 {
		t.Fatalf("alpha changed to %d", out.Pix[i+3])
	}
}

func TestSepia_KnownPixel(t *testing.T) {
	src := uniformImage(1, 1, 100, 150, 200)
	out := sepia(src)

	i := out.PixOffset(0, 0)
	if out.Pix[i] != 192 || out.Pix[i+1] != 171 || out.Pix[i+2] != 134 {
		t.Fatalf("got (%d, %d, %d), want (192, 171, 134)", out.Pix[i], out.Pix[i+1], out.Pix[i+2])
	}
}

func TestSepia_ClampsAtWhite(t *testing.T) {
	src := uniformImage(1, 1, 255, 255, 255)
	out := sepia(src)

	// The red and green rows of the matrix sum above 1.0
	i := out.PixOffset(0, 0)
	if out.Pix[i] != 255 || out.Pix[i+1] != 255 {
		t.Fatalf("got (%d, %d), want clamped 255", out.Pix[i], out.Pix[i+1])
	}
}

func TestConvolve_UniformImageStaysUniform(t *testing.T) {
	// Every normalized kernel maps a constant image onto itself plus offset
	src := uniformImage(8, 8, 120, 60, 30)

	for _, ft := range []FilterType{FilterBlur, FilterSharpen, FilterDetail, FilterEdgeEnhance} {
		out := applyFilter(src, ft)
		i := out.PixOffset(4, 4)
		if out.Pix[i] != 120 || out.Pix[i+1] != 60 || out.Pix[i+2] != 30 {
			t.Fatalf("%s changed interior of uniform image to (%d, %d, %d)",
				ft, out.Pix[i], out.Pix[i+1], out.Pix[i+2])
		}
	}
}

func TestEmboss_UniformImageGoesMidGray(t *testing.T) {
	src := uniformImage(4, 4, 200, 10, 90)
	out := applyFilter(src, FilterEmboss)

	// Neighbor differences cancel, leaving only the 128 offset
	i := out.PixOffset(2, 2)
	if out.Pix[i] != 128 || out.Pix[i+1] != 128 || out.Pix[i+2] != 128 {
		t.Fatalf("got (%d, %d, %d), want (128, 128, 128)", out.Pix[i], out.Pix[i+1], out.Pix[i+2])
	}
}

func TestApplyFilter_NoneIsIdentity(t *testing.T) {
	src := uniformImage(2, 2, 10, 20, 30)
	if out := applyFilter(src, FilterNone); out != src {
		t.Fatal("none filter copied the image")
	}
}
