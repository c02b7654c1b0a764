package dataset

import (
	"errors"
	"testing"

	"github.com/hackinsight-team/hackinsight/internal/domain/entities"
	usecaseErrors "github.com/hackinsight-team/hackinsight/internal/usecase/errors"
)

func filterFixture() *entities.Dataset {
	return &entities.Dataset{
		Participants: []entities.Participant{
			{ID: "P001", Domain: "AI/ML", Region: "Delhi", College: "IIT Delhi", Day: 1},
			{ID: "P002", Domain: "AI/ML", Region: "Karnataka", College: "IIT Bombay", Day: 2},
			{ID: "P003", Domain: "Blockchain", Region: "Delhi", College: "IIT Delhi", Day: 2},
			{ID: "P004", Domain: "IoT", Region: "Maharashtra", College: "VIT Vellore", Day: 3},
		},
	}
}

func TestFilter_EmptyInputKeepsAll(t *testing.T) {
	svc := NewService(0)
	ds := filterFixture()

	out, err := svc.Filter(ds, FilterInput{})
	if err != nil {
		t.Fatalf("filter failed: %v", err)
	}
	if out.Len() != ds.Len() {
		t.Fatalf("got %d rows, want %d", out.Len(), ds.Len())
	}
}

func TestFilter_NarrowsByEveryDimension(t *testing.T) {
	svc := NewService(0)
	ds := filterFixture()

	out, err := svc.Filter(ds, FilterInput{
		Domains: []string{"AI/ML", "Blockchain"},
		Regions: []string{"Delhi"},
		Days:    []int{2},
	})
	if err != nil {
		t.Fatalf("filter failed: %v", err)
	}
	if out.Len() != 1 || out.Participants[0].ID != "P003" {
		t.Fatalf("got %+v, want only P003", out.Participants)
	}
}

func TestFilter_DoesNotMutateSource(t *testing.T) {
	svc := NewService(0)
	ds := filterFixture()

	if _, err := svc.Filter(ds, FilterInput{Domains: []string{"IoT"}}); err != nil {
		t.Fatalf("filter failed: %v", err)
	}
	if ds.Len() != 4 {
		t.Fatalf("source dataset mutated: %d rows left", ds.Len())
	}
}

func TestFilter_ZeroMatchesIsAnError(t *testing.T) {
	svc := NewService(0)
	ds := filterFixture()

	out, err := svc.Filter(ds, FilterInput{Domains: []string{"IoT"}, Days: []int{1}})
	if out != nil {
		t.Fatalf("expected nil result, got %+v", out)
	}
	if !errors.Is(err, usecaseErrors.ErrEmptyFilterMatch) {
		t.Fatalf("got %v, want ErrEmptyFilterMatch", err)
	}
}

func TestFilter_NilDataset(t *testing.T) {
	svc := NewService(0)

	if _, err := svc.Filter(nil, FilterInput{}); !errors.Is(err, usecaseErrors.ErrDatasetNotFound) {
		t.Fatalf("got %v, want ErrDatasetNotFound", err)
	}
}
