package export

import (
	"bytes"
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/hackinsight-team/hackinsight/internal/usecase/dataset"
	usecaseErrors "github.com/hackinsight-team/hackinsight/internal/usecase/errors"
)

func TestCSVRoundTrip(t *testing.T) {
	svc := dataset.NewService(0)
	ds, err := svc.Generate(dataset.GenerateInput{
		Count:   50,
		Domains: dataset.DefaultDomains,
		Regions: dataset.DefaultRegions,
		Seed:    7,
	})
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}

	codec := NewCSVCodec(t.TempDir())
	data, err := codec.Marshal(ds)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}

	back, err := codec.Unmarshal(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if back.Len() != ds.Len() {
		t.Fatalf("round trip lost rows: %d != %d", back.Len(), ds.Len())
	}

	for i, want := range ds.Participants {
		got := back.Participants[i]
		if got.ID != want.ID || got.Name != want.Name || got.Age != want.Age ||
			got.Gender != want.Gender || got.College != want.College ||
			got.Region != want.Region || got.Domain != want.Domain ||
			got.Day != want.Day || got.CompletionPct != want.CompletionPct ||
			got.Feedback != want.Feedback {
			t.Fatalf("row %d differs:\n got %+v\nwant %+v", i, got, want)
		}
		if !got.RegistrationTime.Equal(want.RegistrationTime) {
			t.Fatalf("row %d registration time %v != %v", i, got.RegistrationTime, want.RegistrationTime)
		}
		if math.Abs(got.HoursSpent-want.HoursSpent) > 1e-6 {
			t.Fatalf("row %d hours %v != %v", i, got.HoursSpent, want.HoursSpent)
		}
	}
}

func TestMarshal_HeaderShape(t *testing.T) {
	svc := dataset.NewService(0)
	ds, err := svc.Generate(dataset.GenerateInput{
		Count:   1,
		Domains: dataset.DefaultDomains,
		Regions: dataset.DefaultRegions,
		Seed:    1,
	})
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}

	codec := NewCSVCodec(t.TempDir())
	data, err := codec.Marshal(ds)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}

	firstLine := strings.SplitN(string(data), "\n", 2)[0]
	want := "participant_id,name,age,gender,college,region,domain,day,registration_time,hours_spent,completion_pct,feedback"
	if firstLine != want {
		t.Fatalf("header %q, want %q", firstLine, want)
	}
}

func TestUnmarshal_RejectsBadHeader(t *testing.T) {
	codec := NewCSVCodec(t.TempDir())
	input := "id,name\n1,Alice\n"

	_, err := codec.Unmarshal(strings.NewReader(input))
	if !errors.Is(err, usecaseErrors.ErrBadHeader) {
		t.Fatalf("got %v, want ErrBadHeader", err)
	}
}

func TestUnmarshal_RejectsMalformedRow(t *testing.T) {
	codec := NewCSVCodec(t.TempDir())
	input := "participant_id,name,age,gender,college,region,domain,day,registration_time,hours_spent,completion_pct,feedback\n" +
		"P001,Alice,not-a-number,Female,IIT Delhi,Delhi,AI/ML,1,2023-03-15T10:00:00Z,5.5,80,Great event\n"

	_, err := codec.Unmarshal(strings.NewReader(input))
	if !errors.Is(err, usecaseErrors.ErrBadRow) {
		t.Fatalf("got %v, want ErrBadRow", err)
	}
}

func TestUnmarshal_RejectsHeaderOnlyUpload(t *testing.T) {
	codec := NewCSVCodec(t.TempDir())
	input := "participant_id,name,age,gender,college,region,domain,day,registration_time,hours_spent,completion_pct,feedback\n"

	_, err := codec.Unmarshal(strings.NewReader(input))
	if !errors.Is(err, usecaseErrors.ErrEmptyUpload) {
		t.Fatalf("got %v, want ErrEmptyUpload", err)
	}
}

func TestUnmarshal_DerivesPools(t *testing.T) {
	codec := NewCSVCodec(t.TempDir())
	input := "participant_id,name,age,gender,college,region,domain,day,registration_time,hours_spent,completion_pct,feedback\n" +
		"P001,Alice,22,Female,IIT Delhi,Delhi,AI/ML,1,2023-03-15T10:00:00Z,5.5,80,Great event\n" +
		"P002,Bob,25,Male,IIT Bombay,Karnataka,IoT,2,2023-03-16T11:00:00Z,6.0,70,Solid workshop\n"

	ds, err := codec.Unmarshal(strings.NewReader(input))
	if err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if len(ds.Domains) != 2 || len(ds.Regions) != 2 {
		t.Fatalf("derived pools domains=%v regions=%v", ds.Domains, ds.Regions)
	}
}

func TestSnapshot_WritesFile(t *testing.T) {
	dir := t.TempDir()
	codec := NewCSVCodec(dir)

	path, err := codec.Snapshot([]byte("a,b\n1,2\n"), "out.csv")
	if err != nil {
		t.Fatalf("snapshot failed: %v", err)
	}
	if !strings.HasPrefix(path, dir) {
		t.Fatalf("snapshot path %q outside %q", path, dir)
	}
}
