package dataset

// GenerateRequest represents input for dataset generation
type GenerateRequest struct {
	Count   int      `json:"count" validate:"required,min=1"`
	Domains []string `json:"domains" validate:"required,min=1,dive,required"`
	Regions []string `json:"regions" validate:"required,min=1,dive,required"`
	Seed    int64    `json:"seed"`
}
