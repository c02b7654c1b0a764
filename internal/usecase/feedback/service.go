package feedback

import (
	"github.com/hackinsight-team/hackinsight/internal/domain/entities"
	usecaseErrors "github.com/hackinsight-team/hackinsight/internal/usecase/errors"
)

// Service builds per-domain feedback reports from a dataset
type Service struct{}

// NewService creates a new feedback service
func NewService() *Service {
	return &Service{}
}

const sampleSize = 5

// DomainReport analyzes the feedback of one domain: sentiment gauge, top
// words, headline stats and a handful of quoted rows.
func (s *Service) DomainReport(ds *entities.Dataset, domain string, topK int) (*entities.DomainFeedbackReport, error) {
	if ds == nil || ds.Empty() {
		return nil, usecaseErrors.ErrDatasetNotFound
	}

	var rows []entities.Participant
	for _, p := range ds.Participants {
		if p.Domain == domain {
			rows = append(rows, p)
		}
	}
	if len(rows) == 0 {
		return nil, usecaseErrors.ErrEmptyFilterMatch
	}

	texts := make([]string, len(rows))
	var lengthSum int
	for i, p := range rows {
		texts[i] = p.Feedback
		lengthSum += len(p.Feedback)
	}

	return &entities.DomainFeedbackReport{
		Domain:            domain,
		Participants:      len(rows),
		AvgFeedbackLength: float64(lengthSum) / float64(len(rows)),
		Sentiment:         Score(texts),
		TopWords:          TopWords(texts, topK),
		Samples:           sampleRows(rows),
	}, nil
}

// CombinedTopWords ranks words across several domains' feedback at once
func (s *Service) CombinedTopWords(ds *entities.Dataset, domains []string, topK int) ([]entities.WordCount, error) {
	if ds == nil || ds.Empty() {
		return nil, usecaseErrors.ErrDatasetNotFound
	}

	selected := make(map[string]struct{}, len(domains))
	for _, d := range domains {
		selected[d] = struct{}{}
	}

	var texts []string
	for _, p := range ds.Participants {
		if _, ok := selected[p.Domain]; ok {
			texts = append(texts, p.Feedback)
		}
	}
	if len(texts) == 0 {
		return nil, usecaseErrors.ErrEmptyFilterMatch
	}
	return TopWords(texts, topK), nil
}

// sampleRows picks up to sampleSize rows evenly spaced through the slice so
// repeated calls over the same dataset quote the same participants.
func sampleRows(rows []entities.Participant) []entities.FeedbackSample {
	n := len(rows)
	take := sampleSize
	if n < take {
		take = n
	}

	samples := make([]entities.FeedbackSample, 0, take)
	step := n / take
	for i := 0; i < take; i++ {
		p := rows[i*step]
		samples = append(samples, entities.FeedbackSample{
			ParticipantID: p.ID,
			CompletionPct: p.CompletionPct,
			Feedback:      p.Feedback,
		})
	}
	return samples
}
