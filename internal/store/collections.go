package store

import (
	"database/sql"
	"encoding/json"
	"time"

	"github.com/hpungsan/flux/internal/errors"
	"github.com/hpungsan/flux/internal/journal"
)

// loadPayload reads a collection's raw JSON payload.
// A missing row is not an error: found=false lets the caller default.
func loadPayload(db *sql.DB, name string) (payload []byte, found bool, err error) {
	var raw string
	row := db.QueryRow(`SELECT payload FROM collections WHERE name = ?`, name)
	if scanErr := row.Scan(&raw); scanErr != nil {
		if scanErr == sql.ErrNoRows {
			return nil, false, nil
		}
		return nil, false, errors.NewInternal(scanErr)
	}
	return []byte(raw), true, nil
}

// savePayload overwrites a collection's payload with the full intended
// state. No partial writes: the journal's commit step always produces the
// complete collection.
func savePayload(db *sql.DB, name string, payload []byte) error {
	query := `
		INSERT INTO collections (name, payload, updated_at)
		VALUES (?, ?, ?)
		ON CONFLICT(name) DO UPDATE SET
			payload = excluded.payload,
			updated_at = excluded.updated_at
	`
	if _, err := db.Exec(query, name, string(payload), time.Now().Unix()); err != nil {
		return errors.NewStorageFailure(name, err)
	}
	return nil
}

// LoadRecords loads the daily-record collection.
// Absent → empty collection. Corrupt payload → CORRUPT_DATA, never silently
// treated as absent.
func LoadRecords(db *sql.DB) ([]journal.DailyRecord, error) {
	payload, found, err := loadPayload(db, CollectionRecords)
	if err != nil {
		return nil, err
	}
	if !found {
		return []journal.DailyRecord{}, nil
	}

	var records []journal.DailyRecord
	if err := json.Unmarshal(payload, &records); err != nil {
		return nil, errors.NewCorruptData(CollectionRecords, err)
	}
	if records == nil {
		records = []journal.DailyRecord{}
	}
	return records, nil
}

// SaveRecords overwrites the daily-record collection.
func SaveRecords(db *sql.DB, records []journal.DailyRecord) error {
	if records == nil {
		records = []journal.DailyRecord{}
	}
	payload, err := json.Marshal(records)
	if err != nil {
		return errors.NewInternal(err)
	}
	return savePayload(db, CollectionRecords, payload)
}

// LoadMedications loads the medication-log collection.
func LoadMedications(db *sql.DB) ([]journal.MedicationLog, error) {
	payload, found, err := loadPayload(db, CollectionMedications)
	if err != nil {
		return nil, err
	}
	if !found {
		return []journal.MedicationLog{}, nil
	}

	var logs []journal.MedicationLog
	if err := json.Unmarshal(payload, &logs); err != nil {
		return nil, errors.NewCorruptData(CollectionMedications, err)
	}
	if logs == nil {
		logs = []journal.MedicationLog{}
	}
	return logs, nil
}

// SaveMedications overwrites the medication-log collection.
func SaveMedications(db *sql.DB, logs []journal.MedicationLog) error {
	if logs == nil {
		logs = []journal.MedicationLog{}
	}
	payload, err := json.Marshal(logs)
	if err != nil {
		return errors.NewInternal(err)
	}
	return savePayload(db, CollectionMedications, payload)
}

// LoadPlan loads the safety-plan singleton, defaulting to the built-in
// template when none has been saved.
func LoadPlan(db *sql.DB) (journal.SafetyPlan, error) {
	payload, found, err := loadPayload(db, CollectionSafetyPlan)
	if err != nil {
		return journal.SafetyPlan{}, err
	}
	if !found {
		return journal.DefaultSafetyPlan(), nil
	}

	var plan journal.SafetyPlan
	if err := json.Unmarshal(payload, &plan); err != nil {
		return journal.SafetyPlan{}, errors.NewCorruptData(CollectionSafetyPlan, err)
	}
	return plan, nil
}

// SavePlan overwrites the safety-plan singleton.
func SavePlan(db *sql.DB, plan journal.SafetyPlan) error {
	payload, err := json.Marshal(plan)
	if err != nil {
		return errors.NewInternal(err)
	}
	return savePayload(db, CollectionSafetyPlan, payload)
}
