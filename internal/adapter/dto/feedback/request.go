package feedback

// AnalyzeRequest selects the domains to report on. TopK defaults to 15
// when omitted.
type AnalyzeRequest struct {
	Domains []string `json:"domains" validate:"required,min=1,dive,required"`
	TopK    int      `json:"top_k" validate:"min=0,max=100"`
}
