package dataset

import (
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/hackinsight-team/hackinsight/internal/domain/entities"
	usecaseErrors "github.com/hackinsight-team/hackinsight/internal/usecase/errors"
)

// Service generates and filters synthetic participant datasets
type Service struct {
	maxParticipants int
}

// NewService creates a new dataset service. maxParticipants caps Count;
// zero or negative means unbounded.
func NewService(maxParticipants int) *Service {
	return &Service{maxParticipants: maxParticipants}
}

// GenerateInput represents input for dataset generation
type GenerateInput struct {
	Count   int
	Domains []string
	Regions []string
	Seed    int64
}

// Validate rejects empty selections and out-of-pool labels before any row is
// produced. A failed validation never yields a partial dataset.
func (in GenerateInput) Validate() error {
	if in.Count < 1 {
		return usecaseErrors.ErrInvalidCount
	}
	if len(in.Domains) == 0 {
		return usecaseErrors.ErrEmptyDomains
	}
	if len(in.Regions) == 0 {
		return usecaseErrors.ErrEmptyRegions
	}
	for _, d := range in.Domains {
		if !knownLabel(KnownDomains, d) {
			return fmt.Errorf("%w: %q", usecaseErrors.ErrUnknownDomain, d)
		}
	}
	for _, r := range in.Regions {
		if !knownLabel(KnownRegions, r) {
			return fmt.Errorf("%w: %q", usecaseErrors.ErrUnknownRegion, r)
		}
	}
	return nil
}

// Generate produces exactly in.Count participant rows, fully determined by
// in.Seed: the same input always yields a field-identical dataset.
func (s *Service) Generate(in GenerateInput) (*entities.Dataset, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	if s.maxParticipants > 0 && in.Count > s.maxParticipants {
		return nil, fmt.Errorf("%w: count %d exceeds limit %d",
			usecaseErrors.ErrInvalidInput, in.Count, s.maxParticipants)
	}

	rng := rand.New(rand.NewSource(in.Seed))

	rows := make([]entities.Participant, 0, in.Count)
	for i := 1; i <= in.Count; i++ {
		rows = append(rows, synthesizeParticipant(rng, i, in.Domains, in.Regions))
	}

	return &entities.Dataset{
		Participants: rows,
		Seed:         in.Seed,
		Domains:      append([]string(nil), in.Domains...),
		Regions:      append([]string(nil), in.Regions...),
	}, nil
}

func synthesizeParticipant(rng *rand.Rand, i int, domains, regions []string) entities.Participant {
	name := pick(rng, firstNames) + " " + pick(rng, lastNames)
	age := 18 + rng.Intn(18) // uniform [18, 35]
	gender := pick(rng, []entities.Gender{entities.GenderMale, entities.GenderFemale, entities.GenderOther})
	college := pick(rng, colleges)
	region := pick(rng, regions)
	domain := pick(rng, domains)
	day := 1 + rng.Intn(entities.EventDays)

	registration := randomTimeInDay(rng, day)
	hours := math.Round((4+rng.Float64()*6)*10) / 10

	sentiment := drawSentiment(rng)
	feedback := renderFeedback(rng, sentiment, domain)

	completion := 60 + rng.Intn(41) // [60, 100]
	if sentiment == entities.SentimentNegative {
		completion = 30 + rng.Intn(56) // [30, 85]
	}

	return entities.Participant{
		ID:               entities.ParticipantID(i),
		Name:             name,
		Age:              age,
		Gender:           gender,
		College:          college,
		Region:           region,
		Domain:           domain,
		Day:              day,
		RegistrationTime: registration,
		HoursSpent:       hours,
		CompletionPct:    completion,
		Feedback:         feedback,
	}
}

// randomTimeInDay draws a uniform instant within the drawn day's window,
// continuous down to nanoseconds rather than whole seconds.
func randomTimeInDay(rng *rand.Rand, day int) time.Time {
	start, end := entities.DayWindow(day)
	span := end.Sub(start)
	return start.Add(time.Duration(rng.Float64() * float64(span)))
}

// drawSentiment applies the fixed 0.6/0.3/0.1 weights
func drawSentiment(rng *rand.Rand) entities.Sentiment {
	r := rng.Float64()
	switch {
	case r < 0.6:
		return entities.SentimentPositive
	case r < 0.9:
		return entities.SentimentNeutral
	default:
		return entities.SentimentNegative
	}
}

func renderFeedback(rng *rand.Rand, sentiment entities.Sentiment, domain string) string {
	var pool []string
	switch sentiment {
	case entities.SentimentPositive:
		pool = positiveFeedback
	case entities.SentimentNeutral:
		pool = neutralFeedback
	default:
		pool = negativeFeedback
	}

	feedback := fmt.Sprintf(pick(rng, pool), domain)
	if keywords, ok := domainKeywords[domain]; ok {
		feedback += fmt.Sprintf(" The %s component was particularly interesting.", pick(rng, keywords))
	}
	return feedback
}

func pick[T any](rng *rand.Rand, pool []T) T {
	return pool[rng.Intn(len(pool))]
}
