package analytics

import (
	"sort"
	"strconv"

	"github.com/hackinsight-team/hackinsight/internal/domain/entities"
	usecaseErrors "github.com/hackinsight-team/hackinsight/internal/usecase/errors"
)

// Service computes descriptive statistics over an in-memory dataset.
// Every report is a single full pass; nothing is cached between calls.
type Service struct{}

// NewService creates a new analytics service
func NewService() *Service {
	return &Service{}
}

const (
	topRegionLimit  = 10
	topCollegeLimit = 10
)

// Report computes the full stats bundle over ds. ds must be non-empty;
// callers filter first and surface the empty-result case themselves.
func (s *Service) Report(ds *entities.Dataset) (*entities.AnalyticsReport, error) {
	if ds == nil || ds.Empty() {
		return nil, usecaseErrors.ErrEmptyFilterMatch
	}

	rows := ds.Participants

	report := &entities.AnalyticsReport{
		TotalParticipants:  len(rows),
		DomainCounts:       countBy(rows, func(p entities.Participant) string { return p.Domain }, 0),
		DayCounts:          dayCounts(rows),
		TopRegions:         countBy(rows, func(p entities.Participant) string { return p.Region }, topRegionLimit),
		TopColleges:        countBy(rows, func(p entities.Participant) string { return p.College }, topCollegeLimit),
		GenderCounts:       countBy(rows, func(p entities.Participant) string { return string(p.Gender) }, 0),
		AgeHistogram:       ageHistogram(rows),
		CompletionByDomain: completionByDomain(rows),
		Correlation:        correlationMatrix(rows),
	}
	report.Insights = insights(rows, report.DomainCounts)

	return report, nil
}

// countBy tallies rows per label, ordered by descending count with ties
// broken by first appearance; limit > 0 keeps only the top entries.
func countBy(rows []entities.Participant, key func(entities.Participant) string, limit int) []entities.LabelCount {
	counts := make(map[string]int)
	order := make(map[string]int)
	for i, p := range rows {
		k := key(p)
		if _, seen := counts[k]; !seen {
			order[k] = i
		}
		counts[k]++
	}

	out := make([]entities.LabelCount, 0, len(counts))
	for label, n := range counts {
		out = append(out, entities.LabelCount{Label: label, Count: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return order[out[i].Label] < order[out[j].Label]
	})

	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}

// dayCounts tallies per event day in ascending day order
func dayCounts(rows []entities.Participant) []entities.LabelCount {
	counts := make(map[int]int)
	for _, p := range rows {
		counts[p.Day]++
	}
	out := make([]entities.LabelCount, 0, entities.EventDays)
	for day := 1; day <= entities.EventDays; day++ {
		if n, ok := counts[day]; ok {
			out = append(out, entities.LabelCount{Label: "Day " + strconv.Itoa(day), Count: n})
		}
	}
	return out
}

// ageHistogram bins the generator's full age range into unit-width bins
func ageHistogram(rows []entities.Participant) []entities.HistogramBin {
	const lo, hi = 18, 35
	bins := make([]entities.HistogramBin, 0, hi-lo+1)
	counts := make(map[int]int)
	for _, p := range rows {
		counts[p.Age]++
	}
	for age := lo; age <= hi; age++ {
		bins = append(bins, entities.HistogramBin{Low: age, High: age + 1, Count: counts[age]})
	}
	return bins
}

func completionByDomain(rows []entities.Participant) []entities.DomainCompletion {
	sums := make(map[string]int)
	counts := make(map[string]int)
	order := make(map[string]int)
	for i, p := range rows {
		if _, seen := counts[p.Domain]; !seen {
			order[p.Domain] = i
		}
		sums[p.Domain] += p.CompletionPct
		counts[p.Domain]++
	}

	out := make([]entities.DomainCompletion, 0, len(counts))
	for domain, n := range counts {
		out = append(out, entities.DomainCompletion{
			Domain:       domain,
			MeanPct:      float64(sums[domain]) / float64(n),
			Participants: n,
		})
	}
	sort.Slice(out, func(i, j int) bool {
		return order[out[i].Domain] < order[out[j].Domain]
	})
	return out
}

func insights(rows []entities.Participant, domainCounts []entities.LabelCount) entities.KeyInsights {
	total := len(rows)

	var hoursSum, hoursMax float64
	var completionSum, highCompletion int
	for _, p := range rows {
		hoursSum += p.HoursSpent
		if p.HoursSpent > hoursMax {
			hoursMax = p.HoursSpent
		}
		completionSum += p.CompletionPct
		if p.CompletionPct > 90 {
			highCompletion++
		}
	}

	ins := entities.KeyInsights{
		AvgHoursSpent:       hoursSum / float64(total),
		MaxHoursSpent:       hoursMax,
		AvgCompletionPct:    float64(completionSum) / float64(total),
		HighCompletionCount: highCompletion,
		HighCompletionShare: float64(highCompletion) / float64(total) * 100,
	}
	if len(domainCounts) > 0 {
		ins.MostPopularDomain = domainCounts[0].Label
		ins.MostPopularCount = domainCounts[0].Count
		ins.MostPopularShare = float64(domainCounts[0].Count) / float64(total) * 100
	}
	return ins
}
