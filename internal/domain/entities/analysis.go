package entities

// SentimentScore is the output of the keyword sentiment scorer
type SentimentScore struct {
	PositiveCount    int     `json:"positive_count"`
	NegativeCount    int     `json:"negative_count"`
	PositiveFraction float64 `json:"positive_fraction"`
}

// WordCount is one entry of a word-frequency ranking
type WordCount struct {
	Word  string `json:"word"`
	Count int    `json:"count"`
}

// LabelCount pairs a categorical label with its row count
type LabelCount struct {
	Label string `json:"label"`
	Count int    `json:"count"`
}

// DomainCompletion is the mean project completion for one domain
type DomainCompletion struct {
	Domain        string  `json:"domain"`
	MeanPct       float64 `json:"mean_completion_pct"`
	Participants  int     `json:"participants"`
}

// HistogramBin is one bin of the age histogram
type HistogramBin struct {
	Low   int `json:"low"`
	High  int `json:"high"`
	Count int `json:"count"`
}

// CorrelationMatrix holds Pearson coefficients over the numeric columns,
// indexed by Metrics order.
type CorrelationMatrix struct {
	Metrics []string    `json:"metrics"`
	Values  [][]float64 `json:"values"`
}

// KeyInsights summarizes the headline numbers shown on the dashboard
type KeyInsights struct {
	MostPopularDomain   string  `json:"most_popular_domain"`
	MostPopularCount    int     `json:"most_popular_count"`
	MostPopularShare    float64 `json:"most_popular_share_pct"`
	AvgHoursSpent       float64 `json:"avg_hours_spent"`
	MaxHoursSpent       float64 `json:"max_hours_spent"`
	AvgCompletionPct    float64 `json:"avg_completion_pct"`
	HighCompletionCount int     `json:"high_completion_count"`
	HighCompletionShare float64 `json:"high_completion_share_pct"`
}

// AnalyticsReport is the full stats bundle computed over a filtered dataset
type AnalyticsReport struct {
	TotalParticipants   int                `json:"total_participants"`
	DomainCounts        []LabelCount       `json:"domain_counts"`
	DayCounts           []LabelCount       `json:"day_counts"`
	TopRegions          []LabelCount       `json:"top_regions"`
	TopColleges         []LabelCount       `json:"top_colleges"`
	GenderCounts        []LabelCount       `json:"gender_counts"`
	AgeHistogram        []HistogramBin     `json:"age_histogram"`
	CompletionByDomain  []DomainCompletion `json:"completion_by_domain"`
	Correlation         CorrelationMatrix  `json:"correlation"`
	Insights            KeyInsights        `json:"insights"`
}

// FeedbackSample is one quoted feedback row in a domain report
type FeedbackSample struct {
	ParticipantID string `json:"participant_id"`
	CompletionPct int    `json:"completion_pct"`
	Feedback      string `json:"feedback"`
}

// DomainFeedbackReport analyzes the free-text feedback of one domain
type DomainFeedbackReport struct {
	Domain            string           `json:"domain"`
	Participants      int              `json:"participants"`
	AvgFeedbackLength float64          `json:"avg_feedback_length"`
	Sentiment         SentimentScore   `json:"sentiment"`
	TopWords          []WordCount      `json:"top_words"`
	Samples           []FeedbackSample `json:"samples"`
}
