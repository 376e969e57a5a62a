package domain

import (
	"time"

	"github.com/google/uuid"
)

// ImportKind identifies what an uploaded CSV contains.
type ImportKind string

const (
	ImportProductBaselines ImportKind = "product_baselines"
	ImportPageBaselines    ImportKind = "page_baselines"
	ImportStationPrices    ImportKind = "station_prices"
)

// ParseImportKind validates a kind received from a client.
func ParseImportKind(s string) (ImportKind, bool) {
	switch k := ImportKind(s); k {
	case ImportProductBaselines, ImportPageBaselines, ImportStationPrices:
		return k, true
	}
	return "", false
}

// BaselineKind returns the baseline family a baseline import writes to.
func (k ImportKind) BaselineKind() (BaselineKind, bool) {
	switch k {
	case ImportProductBaselines:
		return ProductBaselines, true
	case ImportPageBaselines:
		return PageBaselines, true
	}
	return BaselineKind{}, false
}

// ImportState is the lifecycle position of an upload.
type ImportState string

const (
	ImportValidated ImportState = "validated"
	ImportFailed    ImportState = "failed"
	ImportCompleted ImportState = "completed"
)

// ImportIssue is a problem found in one cell, row or the whole file (Row 0).
type ImportIssue struct {
	Row     int    `json:"row"`
	Column  string `json:"column,omitempty"`
	Code    string `json:"code"`
	Message string `json:"message"`
	Value   string `json:"value,omitempty"`
}

// ImportSession is the short-lived record an upload lives in between
// validation and insertion. It is addressed by Token and discarded once
// committed or after ExpiresAt.
type ImportSession struct {
	Token       uuid.UUID           `json:"token"`
	Kind        ImportKind          `json:"kind"`
	State       ImportState         `json:"state"`
	FileName    string              `json:"file_name"`
	FileSize    int64               `json:"file_size"`
	TotalRows   int                 `json:"total_rows"`
	ValidRows   int                 `json:"valid_rows"`
	ErrorRows   int                 `json:"error_rows"`
	TotalIssues int                 `json:"total_errors"`
	Issues      []ImportIssue       `json:"errors"`
	Preview     []map[string]string `json:"preview"`
	Inserted    int64               `json:"inserted,omitempty"`
	CreatedAt   time.Time           `json:"created_at"`
	ExpiresAt   time.Time           `json:"expires_at"`

	// ErrorsTruncated is set when Issues holds fewer than TotalIssues.
	ErrorsTruncated bool `json:"errors_truncated"`

	// Validated payload, one of which is set depending on Kind. It is kept
	// for the store and never shown to clients.
	Baselines []Baseline     `json:"baselines,omitempty"`
	Prices    []StationPrice `json:"prices,omitempty"`
}

// NewImportSession starts a session for an upload received at now.
func NewImportSession(kind ImportKind, fileName string, fileSize int64, now time.Time, ttl time.Duration) *ImportSession {
	return &ImportSession{
		Token:     uuid.New(),
		Kind:      kind,
		FileName:  fileName,
		FileSize:  fileSize,
		CreatedAt: now,
		ExpiresAt: now.Add(ttl),
		Issues:    make([]ImportIssue, 0),
		Preview:   make([]map[string]string, 0),
	}
}

// Expired reports whether the session outlived its TTL at now.
func (s *ImportSession) Expired(now time.Time) bool {
	return !now.Before(s.ExpiresAt)
}

// PayloadSize is the number of rows waiting to be inserted.
func (s *ImportSession) PayloadSize() int {
	return len(s.Baselines) + len(s.Prices)
}
