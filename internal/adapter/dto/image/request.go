package image

// ProcessForm mirrors the multipart form fields of the image playground.
// Enhancement factors are PIL-style: 1.0 is identity, range [0, 2].
type ProcessForm struct {
	Brightness   float64 `form:"brightness" validate:"min=0,max=2"`
	Contrast     float64 `form:"contrast" validate:"min=0,max=2"`
	Saturation   float64 `form:"saturation" validate:"min=0,max=2"`
	Filter       string  `form:"filter"`
	Text         string  `form:"text" validate:"omitempty,notblank"`
	TextSize     float64 `form:"text_size" validate:"min=0,max=100"`
	TextPosition string  `form:"text_position"`
}
