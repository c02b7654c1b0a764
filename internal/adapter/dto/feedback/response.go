package feedback

import "github.com/hackinsight-team/hackinsight/internal/domain/entities"

// AnalyzeResponse holds one report per selected domain plus the ranking
// across all of them when more than one was selected.
type AnalyzeResponse struct {
	Reports          []entities.DomainFeedbackReport `json:"reports"`
	CombinedTopWords []entities.WordCount            `json:"combined_top_words,omitempty"`
}
