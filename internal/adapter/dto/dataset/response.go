package dataset

import "github.com/hackinsight-team/hackinsight/internal/domain/entities"

// GenerateResponse returns the new session and a preview of the table
type GenerateResponse struct {
	SessionID string                 `json:"session_id"`
	Count     int                    `json:"count"`
	Seed      int64                  `json:"seed"`
	Preview   []entities.Participant `json:"preview"`
}

// UploadResponse returns the replacement session created from an upload
type UploadResponse struct {
	SessionID string                 `json:"session_id"`
	Count     int                    `json:"count"`
	Preview   []entities.Participant `json:"preview"`
}

// PreviewResponse describes a stored dataset
type PreviewResponse struct {
	SessionID string                 `json:"session_id"`
	Count     int                    `json:"count"`
	Domains   []string               `json:"domains"`
	Regions   []string               `json:"regions"`
	Colleges  []string               `json:"colleges"`
	Preview   []entities.Participant `json:"preview"`
}

// ExportInlineResponse carries the CSV as a base64 attachment
type ExportInlineResponse struct {
	Filename      string `json:"filename"`
	ContentType   string `json:"content_type"`
	ContentBase64 string `json:"content_base64"`
	SnapshotPath  string `json:"snapshot_path,omitempty"`
}
