package export

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/hackinsight-team/hackinsight/internal/domain/entities"
	usecaseErrors "github.com/hackinsight-team/hackinsight/internal/usecase/errors"
)

// header is the exact column order of the exported table
var header = []string{
	"participant_id", "name", "age", "gender", "college", "region",
	"domain", "day", "registration_time", "hours_spent",
	"completion_pct", "feedback",
}

// timeLayout is sortable and keeps fractional seconds through a round trip
const timeLayout = time.RFC3339Nano

// CSVCodec serializes datasets to the flat export format and back.
// Export then Import reproduces every row field-for-field.
type CSVCodec struct {
	snapshotPath string
}

// NewCSVCodec creates a codec; snapshotPath is where Snapshot writes the
// local copy of the last export.
func NewCSVCodec(snapshotPath string) *CSVCodec {
	return &CSVCodec{snapshotPath: snapshotPath}
}

// Marshal renders the dataset as CSV bytes with a header row
func (c *CSVCodec) Marshal(ds *entities.Dataset) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(header); err != nil {
		return nil, fmt.Errorf("write header: %w", err)
	}
	for _, p := range ds.Participants {
		record := []string{
			p.ID,
			p.Name,
			strconv.Itoa(p.Age),
			string(p.Gender),
			p.College,
			p.Region,
			p.Domain,
			strconv.Itoa(p.Day),
			p.RegistrationTime.UTC().Format(timeLayout),
			strconv.FormatFloat(p.HoursSpent, 'f', 1, 64),
			strconv.Itoa(p.CompletionPct),
			p.Feedback,
		}
		if err := w.Write(record); err != nil {
			return nil, fmt.Errorf("write row %s: %w", p.ID, err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Unmarshal parses an uploaded table of the export's column shape. Any
// malformed header or row fails the whole upload; the caller keeps its
// previous dataset.
func (c *CSVCodec) Unmarshal(r io.Reader) (*entities.Dataset, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = len(header)

	head, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", usecaseErrors.ErrBadHeader, err)
	}
	for i, col := range header {
		if head[i] != col {
			return nil, fmt.Errorf("%w: column %d is %q, want %q",
				usecaseErrors.ErrBadHeader, i, head[i], col)
		}
	}

	var rows []entities.Participant
	for line := 2; ; line++ {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %v", usecaseErrors.ErrBadRow, line, err)
		}
		p, err := parseRow(record)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %v", usecaseErrors.ErrBadRow, line, err)
		}
		rows = append(rows, p)
	}

	if len(rows) == 0 {
		return nil, usecaseErrors.ErrEmptyUpload
	}

	ds := &entities.Dataset{Participants: rows}
	ds.Domains = ds.DistinctDomains()
	ds.Regions = ds.DistinctRegions()
	return ds, nil
}

// Snapshot writes the exported bytes to the configured local filename
func (c *CSVCodec) Snapshot(data []byte, filename string) (string, error) {
	path := filepath.Join(c.snapshotPath, filename)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("%w: %v", usecaseErrors.ErrSnapshotPath, err)
	}
	return path, nil
}

func parseRow(record []string) (entities.Participant, error) {
	var p entities.Participant

	age, err := strconv.Atoi(record[2])
	if err != nil {
		return p, fmt.Errorf("age: %v", err)
	}
	day, err := strconv.Atoi(record[7])
	if err != nil {
		return p, fmt.Errorf("day: %v", err)
	}
	registration, err := time.Parse(timeLayout, record[8])
	if err != nil {
		return p, fmt.Errorf("registration_time: %v", err)
	}
	hours, err := strconv.ParseFloat(record[9], 64)
	if err != nil {
		return p, fmt.Errorf("hours_spent: %v", err)
	}
	completion, err := strconv.Atoi(record[10])
	if err != nil {
		return p, fmt.Errorf("completion_pct: %v", err)
	}

	return entities.Participant{
		ID:               record[0],
		Name:             record[1],
		Age:              age,
		Gender:           entities.Gender(record[3]),
		College:          record[4],
		Region:           record[5],
		Domain:           record[6],
		Day:              day,
		RegistrationTime: registration,
		HoursSpent:       hours,
		CompletionPct:    completion,
		Feedback:         record[11],
	}, nil
}
