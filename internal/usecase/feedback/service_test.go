package feedback

import (
	"errors"
	"fmt"
	"testing"

	"github.com/hackinsight-team/hackinsight/internal/domain/entities"
	usecaseErrors "github.com/hackinsight-team/hackinsight/internal/usecase/errors"
)

func feedbackFixture(aiRows int) *entities.Dataset {
	rows := make([]entities.Participant, 0, aiRows+1)
	for i := 1; i <= aiRows; i++ {
		rows = append(rows, entities.Participant{
			ID:            entities.ParticipantID(i),
			Domain:        "AI/ML",
			CompletionPct: 50 + i,
			Feedback:      fmt.Sprintf("Loved the machine learning track, session %d was great.", i),
		})
	}
	rows = append(rows, entities.Participant{
		ID:            entities.ParticipantID(aiRows + 1),
		Domain:        "IoT",
		CompletionPct: 70,
		Feedback:      "The sensors workshop had issues with the hardware kits.",
	})
	return &entities.Dataset{Participants: rows}
}

func TestDomainReport(t *testing.T) {
	svc := NewService()
	report, err := svc.DomainReport(feedbackFixture(12), "AI/ML", 5)
	if err != nil {
		t.Fatalf("domain report failed: %v", err)
	}

	if report.Domain != "AI/ML" || report.Participants != 12 {
		t.Fatalf("header %+v", report)
	}
	if report.AvgFeedbackLength <= 0 {
		t.Fatalf("avg feedback length %v", report.AvgFeedbackLength)
	}
	// Every row contains "loved" and "great", none a negative keyword
	if report.Sentiment.PositiveCount != 24 || report.Sentiment.NegativeCount != 0 {
		t.Fatalf("sentiment %+v", report.Sentiment)
	}
	if len(report.TopWords) != 5 {
		t.Fatalf("top words %+v", report.TopWords)
	}
	if len(report.Samples) != 5 {
		t.Fatalf("got %d samples, want 5", len(report.Samples))
	}
	for _, s := range report.Samples {
		if s.ParticipantID == "" || s.Feedback == "" {
			t.Fatalf("incomplete sample %+v", s)
		}
	}
}

func TestDomainReport_SamplesAreDeterministic(t *testing.T) {
	svc := NewService()
	ds := feedbackFixture(17)

	first, err := svc.DomainReport(ds, "AI/ML", 5)
	if err != nil {
		t.Fatalf("domain report failed: %v", err)
	}
	second, err := svc.DomainReport(ds, "AI/ML", 5)
	if err != nil {
		t.Fatalf("repeat report failed: %v", err)
	}
	for i := range first.Samples {
		if first.Samples[i] != second.Samples[i] {
			t.Fatalf("sample %d differs between runs", i)
		}
	}
}

func TestDomainReport_FewerRowsThanSampleSize(t *testing.T) {
	svc := NewService()
	report, err := svc.DomainReport(feedbackFixture(2), "AI/ML", 5)
	if err != nil {
		t.Fatalf("domain report failed: %v", err)
	}
	if len(report.Samples) != 2 {
		t.Fatalf("got %d samples, want 2", len(report.Samples))
	}
}

func TestDomainReport_UnknownDomain(t *testing.T) {
	svc := NewService()
	if _, err := svc.DomainReport(feedbackFixture(3), "Blockchain", 5); !errors.Is(err, usecaseErrors.ErrEmptyFilterMatch) {
		t.Fatalf("got %v, want ErrEmptyFilterMatch", err)
	}
}

func TestDomainReport_EmptyDataset(t *testing.T) {
	svc := NewService()
	if _, err := svc.DomainReport(&entities.Dataset{}, "AI/ML", 5); !errors.Is(err, usecaseErrors.ErrDatasetNotFound) {
		t.Fatalf("got %v, want ErrDatasetNotFound", err)
	}
}

func TestCombinedTopWords(t *testing.T) {
	svc := NewService()
	words, err := svc.CombinedTopWords(feedbackFixture(3), []string{"AI/ML", "IoT"}, 10)
	if err != nil {
		t.Fatalf("combined top words failed: %v", err)
	}

	seen := make(map[string]bool, len(words))
	for _, w := range words {
		seen[w.Word] = true
	}
	// Words from both domains must contribute
	if !seen["machine"] || !seen["sensors"] {
		t.Fatalf("combined ranking missing cross-domain words: %+v", words)
	}
}
