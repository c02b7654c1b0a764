package analytics

import "github.com/hackinsight-team/hackinsight/internal/domain/entities"

// ReportResponse wraps the stats bundle with the filter outcome
type ReportResponse struct {
	FilteredCount int                       `json:"filtered_count"`
	Report        *entities.AnalyticsReport `json:"report"`
}
