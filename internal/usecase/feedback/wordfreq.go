package feedback

import (
	"regexp"
	"sort"
	"strings"

	"github.com/hackinsight-team/hackinsight/internal/domain/entities"
)

// tokenPattern accepts case-folded alphabetic tokens of length 3-15
var tokenPattern = regexp.MustCompile(`\b[a-zA-Z]{3,15}\b`)

var stopwords = buildStopwordSet([]string{
	"i", "me", "my", "myself", "we", "our", "ours", "ourselves", "you",
	"you're", "you've", "you'll", "you'd", "your", "yours", "yourself",
	"yourselves", "he", "him", "his", "himself", "she", "she's", "her",
	"hers", "herself", "it", "it's", "its", "itself", "they", "them",
	"their", "theirs", "themselves", "what", "which", "who", "whom",
	"this", "that", "that'll", "these", "those", "am", "is", "are",
	"was", "were", "be", "been", "being", "have", "has", "had", "having",
	"do", "does", "did", "doing", "a", "an", "the", "and", "but", "if",
	"or", "because", "as", "until", "while", "of", "at", "by", "for",
	"with", "about", "against", "between", "into", "through", "during",
	"before", "after", "above", "below", "to", "from", "up", "down",
	"in", "out", "on", "off", "over", "under", "again", "further",
	"then", "once", "here", "there", "when", "where", "why", "how",
	"all", "any", "both", "each", "few", "more", "most", "other",
	"some", "such", "no", "nor", "not", "only", "own", "same", "so",
	"than", "too", "very", "s", "t", "can", "will", "just", "don",
	"don't", "should", "should've", "now", "d", "ll", "m", "o", "re",
	"ve", "y", "ain", "aren", "aren't", "couldn", "couldn't", "didn",
	"didn't", "doesn", "doesn't", "hadn", "hadn't", "hasn", "hasn't",
	"haven", "haven't", "isn", "isn't", "ma", "mightn", "mightn't",
	"mustn", "mustn't", "needn", "needn't", "shan", "shan't", "shouldn",
	"shouldn't", "wasn", "wasn't", "weren", "weren't", "won", "won't",
	"wouldn", "wouldn't", "would",
})

func buildStopwordSet(words []string) map[string]struct{} {
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[w] = struct{}{}
	}
	return set
}

// TopWords tokenizes the concatenated feedback text, drops stop words and
// returns the k most frequent tokens. Ties are broken by first occurrence
// in the source text, which also makes the ranking deterministic.
func TopWords(feedbacks []string, k int) []entities.WordCount {
	if k <= 0 {
		return nil
	}

	text := strings.ToLower(strings.Join(feedbacks, " "))

	counts := make(map[string]int)
	firstSeen := make(map[string]int)
	for i, token := range tokenPattern.FindAllString(text, -1) {
		if _, stop := stopwords[token]; stop {
			continue
		}
		if _, seen := counts[token]; !seen {
			firstSeen[token] = i
		}
		counts[token]++
	}

	ranked := make([]entities.WordCount, 0, len(counts))
	for word, n := range counts {
		ranked = append(ranked, entities.WordCount{Word: word, Count: n})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Count != ranked[j].Count {
			return ranked[i].Count > ranked[j].Count
		}
		return firstSeen[ranked[i].Word] < firstSeen[ranked[j].Word]
	})

	if len(ranked) > k {
		ranked = ranked[:k]
	}
	return ranked
}
