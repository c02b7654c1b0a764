package dataset

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hackinsight-team/hackinsight/internal/domain/entities"
	usecaseErrors "github.com/hackinsight-team/hackinsight/internal/usecase/errors"
)

func TestGenerate_Deterministic(t *testing.T) {
	svc := NewService(0)
	in := GenerateInput{
		Count:   200,
		Domains: DefaultDomains,
		Regions: DefaultRegions,
		Seed:    42,
	}

	first, err := svc.Generate(in)
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}
	second, err := svc.Generate(in)
	if err != nil {
		t.Fatalf("regenerate failed: %v", err)
	}

	if !reflect.DeepEqual(first.Participants, second.Participants) {
		t.Fatal("same seed produced different datasets")
	}

	other, err := svc.Generate(GenerateInput{Count: 200, Domains: DefaultDomains, Regions: DefaultRegions, Seed: 43})
	if err != nil {
		t.Fatalf("generate with other seed failed: %v", err)
	}
	if reflect.DeepEqual(first.Participants, other.Participants) {
		t.Fatal("different seeds produced identical datasets")
	}
}

func TestGenerate_RowShape(t *testing.T) {
	svc := NewService(0)
	domains := []string{"AI/ML", "Blockchain"}
	regions := []string{"Maharashtra", "Karnataka", "Delhi"}

	ds, err := svc.Generate(GenerateInput{Count: 300, Domains: domains, Regions: regions, Seed: 7})
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}
	if ds.Len() != 300 {
		t.Fatalf("got %d rows, want 300", ds.Len())
	}

	domainSet := map[string]bool{"AI/ML": true, "Blockchain": true}
	regionSet := map[string]bool{"Maharashtra": true, "Karnataka": true, "Delhi": true}
	seen := make(map[string]bool)

	for i, p := range ds.Participants {
		wantID := fmt.Sprintf("P%03d", i+1)
		if p.ID != wantID {
			t.Fatalf("row %d has id %q, want %q", i, p.ID, wantID)
		}
		if seen[p.ID] {
			t.Fatalf("duplicate participant id %q", p.ID)
		}
		seen[p.ID] = true

		if p.Age < 18 || p.Age > 35 {
			t.Fatalf("%s: age %d outside [18, 35]", p.ID, p.Age)
		}
		if !domainSet[p.Domain] {
			t.Fatalf("%s: domain %q not in requested selection", p.ID, p.Domain)
		}
		if !regionSet[p.Region] {
			t.Fatalf("%s: region %q not in requested selection", p.ID, p.Region)
		}
		if p.Day < 1 || p.Day > entities.EventDays {
			t.Fatalf("%s: day %d outside event", p.ID, p.Day)
		}
		start, end := entities.DayWindow(p.Day)
		if p.RegistrationTime.Before(start) || p.RegistrationTime.After(end) {
			t.Fatalf("%s: registration %v outside day %d window", p.ID, p.RegistrationTime, p.Day)
		}
		if p.HoursSpent < 4.0 || p.HoursSpent > 10.0 {
			t.Fatalf("%s: hours %v outside [4, 10]", p.ID, p.HoursSpent)
		}
		if p.CompletionPct < 30 || p.CompletionPct > 100 {
			t.Fatalf("%s: completion %d outside [30, 100]", p.ID, p.CompletionPct)
		}
		if strings.TrimSpace(p.Feedback) == "" {
			t.Fatalf("%s: empty feedback", p.ID)
		}
	}
}

// Negative-sentiment rows draw completion from [30, 85] while everything else
// draws from [60, 100], so negatives must average visibly lower. At n=1000 the
// gap is far larger than the noise.
func TestGenerate_NegativeSentimentLowersCompletion(t *testing.T) {
	svc := NewService(0)
	ds, err := svc.Generate(GenerateInput{Count: 1000, Domains: DefaultDomains, Regions: DefaultRegions, Seed: 99})
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}

	var negSum, negN, restSum, restN int
	for _, p := range ds.Participants {
		if isNegativeFeedback(p) {
			negSum += p.CompletionPct
			negN++
		} else {
			restSum += p.CompletionPct
			restN++
			if p.CompletionPct < 60 {
				t.Fatalf("%s: non-negative row has completion %d below 60", p.ID, p.CompletionPct)
			}
		}
	}

	// Weighting draws negatives at 0.1; allow a generous band
	negShare := float64(negN) / float64(ds.Len())
	if negShare < 0.05 || negShare > 0.17 {
		t.Fatalf("negative share %.3f outside expected band around 0.1", negShare)
	}

	negMean := float64(negSum) / float64(negN)
	restMean := float64(restSum) / float64(restN)
	if negMean >= restMean-5 {
		t.Fatalf("negative mean completion %.1f not clearly below rest %.1f", negMean, restMean)
	}
}

// isNegativeFeedback re-renders the negative templates for the row's domain
// and checks for a prefix match.
func isNegativeFeedback(p entities.Participant) bool {
	for _, tmpl := range negativeFeedback {
		if strings.HasPrefix(p.Feedback, fmt.Sprintf(tmpl, p.Domain)) {
			return true
		}
	}
	return false
}

func TestGenerate_RejectsInvalidInput(t *testing.T) {
	svc := NewService(500)

	tests := []struct {
		name    string
		in      GenerateInput
		wantErr error
	}{
		{
			name:    "zero count",
			in:      GenerateInput{Count: 0, Domains: DefaultDomains, Regions: DefaultRegions},
			wantErr: usecaseErrors.ErrInvalidCount,
		},
		{
			name:    "negative count",
			in:      GenerateInput{Count: -10, Domains: DefaultDomains, Regions: DefaultRegions},
			wantErr: usecaseErrors.ErrInvalidCount,
		},
		{
			name:    "no domains",
			in:      GenerateInput{Count: 10, Regions: DefaultRegions},
			wantErr: usecaseErrors.ErrEmptyDomains,
		},
		{
			name:    "no regions",
			in:      GenerateInput{Count: 10, Domains: DefaultDomains},
			wantErr: usecaseErrors.ErrEmptyRegions,
		},
		{
			name:    "unknown domain",
			in:      GenerateInput{Count: 10, Domains: []string{"Quantum Basket Weaving"}, Regions: DefaultRegions},
			wantErr: usecaseErrors.ErrUnknownDomain,
		},
		{
			name:    "unknown region",
			in:      GenerateInput{Count: 10, Domains: DefaultDomains, Regions: []string{"Atlantis"}},
			wantErr: usecaseErrors.ErrUnknownRegion,
		},
		{
			name:    "over the limit",
			in:      GenerateInput{Count: 501, Domains: DefaultDomains, Regions: DefaultRegions},
			wantErr: usecaseErrors.ErrInvalidInput,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ds, err := svc.Generate(tt.in)
			assert.Nil(t, ds)
			assert.True(t, errors.Is(err, tt.wantErr), "got %v, want %v", err, tt.wantErr)
		})
	}
}
