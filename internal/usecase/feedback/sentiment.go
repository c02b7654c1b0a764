package feedback

import (
	"strings"

	"github.com/hackinsight-team/hackinsight/internal/domain/entities"
)

// Fixed keyword lists used for the sentiment gauge. Matching is
// case-insensitive substring containment; this is deliberately not NLP.
var positiveKeywords = []string{
	"loved", "great", "amazing", "excellent", "insightful",
	"enjoyed", "beneficial", "helpful", "rewarding", "best",
}

var negativeKeywords = []string{
	"disappointing", "poor", "issues", "frustrating", "unclear",
	"exhausting", "minimal", "bad", "lost", "overcrowded",
}

// Score counts, per polarity, the rows containing each tracked keyword and
// derives the positive fraction. A feedback set matching no keyword at all
// scores 0, never an error.
func Score(feedbacks []string) entities.SentimentScore {
	lowered := make([]string, len(feedbacks))
	for i, f := range feedbacks {
		lowered[i] = strings.ToLower(f)
	}

	pos := keywordRowHits(lowered, positiveKeywords)
	neg := keywordRowHits(lowered, negativeKeywords)

	score := entities.SentimentScore{PositiveCount: pos, NegativeCount: neg}
	if total := pos + neg; total > 0 {
		score.PositiveFraction = float64(pos) / float64(total)
	}
	return score
}

// keywordRowHits sums, over keywords, the number of rows containing that
// keyword. A row mentioning two keywords counts once per keyword.
func keywordRowHits(lowered []string, keywords []string) int {
	hits := 0
	for _, kw := range keywords {
		for _, text := range lowered {
			if strings.Contains(text, kw) {
				hits++
			}
		}
	}
	return hits
}
