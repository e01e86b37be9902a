package ops

import (
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/hpungsan/flux/internal/errors"
	"github.com/hpungsan/flux/internal/journal"
)

// ExportInput contains parameters for the Export operation.
type ExportInput struct {
	// Dir is the directory exports land in (normally baseDir/exports)
	Dir string

	Now time.Time // zero: current wall clock
}

// ExportOutput contains the result of the Export operation.
type ExportOutput struct {
	Path        string `json:"path"`
	Records     int    `json:"records"`
	Medications int    `json:"medications"`
	ExportedAt  int64  `json:"exported_at"`
}

// ExportHeader is the first line of a JSONL export file.
type ExportHeader struct {
	FluxExport    bool   `json:"_flux_export"`
	SchemaVersion string `json:"schema_version"`
	ExportedAt    int64  `json:"exported_at"`
}

// exportLine wraps each exported entry with its kind so records and
// medication logs share one file a clinician-facing tool can split.
type exportLine struct {
	Kind       string                 `json:"kind"` // "record" | "medication"
	Record     *journal.DailyRecord   `json:"record,omitempty"`
	Medication *journal.MedicationLog `json:"medication,omitempty"`
}

// Export writes the full journal (records + medication logs) to a JSONL
// file for sharing with a clinician. Writes go to a temp file first, then
// an atomic rename, so a failed export never leaves a partial file behind.
func Export(s *Session, input ExportInput) (*ExportOutput, error) {
	if input.Dir == "" {
		return nil, errors.NewInvalidRequest("export directory is required")
	}

	now := orNow(input.Now)
	exportedAt := now.Unix()
	exportPath := filepath.Join(input.Dir, fmt.Sprintf("flux-%s.jsonl", now.Format("20060102-150405")))

	if err := os.MkdirAll(input.Dir, 0700); err != nil {
		return nil, errors.NewInternal(fmt.Errorf("failed to create export directory: %w", err))
	}

	// Write to temp file first, then atomic rename to preserve existing file on failure
	randBytes := make([]byte, 8)
	if _, err := rand.Read(randBytes); err != nil {
		return nil, errors.NewInternal(fmt.Errorf("failed to generate temp file name: %w", err))
	}
	tempPath := exportPath + "." + hex.EncodeToString(randBytes) + ".tmp"
	file, err := os.OpenFile(tempPath, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600)
	if err != nil {
		return nil, errors.NewInternal(fmt.Errorf("failed to create export file: %w", err))
	}

	// Clean up temp file on failure
	success := false
	defer func() {
		if file != nil {
			file.Close()
		}
		if !success {
			os.Remove(tempPath)
		}
	}()

	enc := json.NewEncoder(file)

	header := ExportHeader{
		FluxExport:    true,
		SchemaVersion: "1.0",
		ExportedAt:    exportedAt,
	}
	if err := enc.Encode(header); err != nil {
		return nil, errors.NewInternal(err)
	}

	records := s.Records()
	for i := range records {
		line := exportLine{Kind: "record", Record: &records[i]}
		if err := enc.Encode(line); err != nil {
			return nil, errors.NewInternal(err)
		}
	}

	medications := s.Medications()
	for i := range medications {
		line := exportLine{Kind: "medication", Medication: &medications[i]}
		if err := enc.Encode(line); err != nil {
			return nil, errors.NewInternal(err)
		}
	}

	if err := file.Close(); err != nil {
		file = nil
		return nil, errors.NewInternal(err)
	}
	file = nil

	if err := os.Rename(tempPath, exportPath); err != nil {
		return nil, errors.NewInternal(fmt.Errorf("failed to finalize export file: %w", err))
	}
	success = true

	return &ExportOutput{
		Path:        exportPath,
		Records:     len(records),
		Medications: len(medications),
		ExportedAt:  exportedAt,
	}, nil
}
