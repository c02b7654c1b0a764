package imaging

import (
	"fmt"
	"image"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font/gofont/goregular"

	usecaseErrors "github.com/hackinsight-team/hackinsight/internal/usecase/errors"
)

// TextPosition anchors the overlay vertically; text is always centered
// horizontally.
type TextPosition string

const (
	PositionTop    TextPosition = "top"
	PositionCenter TextPosition = "center"
	PositionBottom TextPosition = "bottom"
)

// ParsePosition resolves a position name from the API
func ParsePosition(name string) (TextPosition, error) {
	switch pos := TextPosition(name); pos {
	case PositionTop, PositionCenter, PositionBottom:
		return pos, nil
	}
	return "", fmt.Errorf("%w: %q", usecaseErrors.ErrUnknownPosition, name)
}

// TextOverlay describes the caption stamped onto the processed image
type TextOverlay struct {
	Content  string
	Size     float64
	Position TextPosition
}

const edgeMargin = 20

// drawOverlay stamps the caption with a drop shadow for visibility on
// light and dark backgrounds alike.
func drawOverlay(dst *image.RGBA, overlay TextOverlay) error {
	fnt, err := truetype.Parse(goregular.TTF)
	if err != nil {
		return fmt.Errorf("parse overlay font: %w", err)
	}
	face := truetype.NewFace(fnt, &truetype.Options{Size: overlay.Size})

	dc := gg.NewContextForRGBA(dst)
	dc.SetFontFace(face)

	w := float64(dst.Bounds().Dx())
	h := float64(dst.Bounds().Dy())
	tw, th := dc.MeasureString(overlay.Content)

	x := (w - tw) / 2
	var y float64
	switch overlay.Position {
	case PositionTop:
		y = edgeMargin + th
	case PositionCenter:
		y = (h + th) / 2
	default: // bottom
		y = h - edgeMargin
	}

	shadow := overlay.Size / 15
	if shadow < 1 {
		shadow = 1
	}

	dc.SetRGBA255(0, 0, 0, 180)
	dc.DrawString(overlay.Content, x+shadow, y+shadow)

	dc.SetRGBA255(255, 255, 255, 255)
	dc.DrawString(overlay.Content, x, y)

	return nil
}
