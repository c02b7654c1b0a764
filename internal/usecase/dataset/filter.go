package dataset

import (
	"github.com/hackinsight-team/hackinsight/internal/domain/entities"
	usecaseErrors "github.com/hackinsight-team/hackinsight/internal/usecase/errors"
)

// FilterInput narrows a dataset for analytics. Empty slices mean "keep all"
// for that dimension.
type FilterInput struct {
	Domains  []string
	Regions  []string
	Colleges []string
	Days     []int
}

// Filter returns a new dataset holding the rows matching every selected
// dimension. The source dataset is never mutated. Zero matching rows is an
// error so downstream visualizations are skipped instead of rendered empty.
func (s *Service) Filter(ds *entities.Dataset, in FilterInput) (*entities.Dataset, error) {
	if ds == nil || ds.Empty() {
		return nil, usecaseErrors.ErrDatasetNotFound
	}

	domains := toSet(in.Domains)
	regions := toSet(in.Regions)
	colleges := toSet(in.Colleges)
	days := make(map[int]struct{}, len(in.Days))
	for _, d := range in.Days {
		days[d] = struct{}{}
	}

	out := make([]entities.Participant, 0, ds.Len())
	for _, p := range ds.Participants {
		if !matches(domains, p.Domain) || !matches(regions, p.Region) || !matches(colleges, p.College) {
			continue
		}
		if len(days) > 0 {
			if _, ok := days[p.Day]; !ok {
				continue
			}
		}
		out = append(out, p)
	}

	if len(out) == 0 {
		return nil, usecaseErrors.ErrEmptyFilterMatch
	}

	return &entities.Dataset{
		Participants: out,
		Seed:         ds.Seed,
		Domains:      ds.Domains,
		Regions:      ds.Regions,
	}, nil
}

func toSet(labels []string) map[string]struct{} {
	if len(labels) == 0 {
		return nil
	}
	set := make(map[string]struct{}, len(labels))
	for _, l := range labels {
		set[l] = struct{}{}
	}
	return set
}

// matches treats a nil set as "all"
func matches(set map[string]struct{}, label string) bool {
	if set == nil {
		return true
	}
	_, ok := set[label]
	return ok
}
