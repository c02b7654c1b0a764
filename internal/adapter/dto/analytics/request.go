package analytics

// ReportRequest narrows the dataset before computing the stats bundle.
// Empty slices keep every row of that dimension.
type ReportRequest struct {
	Domains  []string `json:"domains"`
	Regions  []string `json:"regions"`
	Colleges []string `json:"colleges"`
	Days     []int    `json:"days" validate:"dive,min=1,max=3"`
}
