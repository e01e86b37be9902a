package ops

import (
	"crypto/rand"
	"regexp"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/hpungsan/flux/internal/errors"
)

// Pagination limits
const (
	DefaultHistoryLimit = 20
	MaxHistoryLimit     = 100
)

// Pagination contains pagination metadata for list operations.
type Pagination struct {
	Limit   int  `json:"limit"`
	Offset  int  `json:"offset"`
	HasMore bool `json:"has_more"`
	Total   int  `json:"total"`
}

// dateKeyRegex matches the YYYY-MM-DD reconciliation key format.
var dateKeyRegex = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// ValidateDate checks an explicit date argument. An empty date is fine
// (callers default to today); a malformed one is rejected before it can
// pollute the collection's uniqueness key.
func ValidateDate(date string) error {
	if date == "" {
		return nil
	}
	if !dateKeyRegex.MatchString(date) {
		return errors.NewInvalidRequest("date must be YYYY-MM-DD")
	}
	if _, err := time.Parse("2006-01-02", date); err != nil {
		return errors.NewInvalidRequest("date must be a valid calendar date")
	}
	return nil
}

// generateULID generates a new ULID.
func generateULID() (string, error) {
	entropy := ulid.Monotonic(rand.Reader, 0)
	id, err := ulid.New(ulid.Timestamp(time.Now()), entropy)
	if err != nil {
		return "", err
	}
	return id.String(), nil
}

// orNow defaults a zero time to the current wall clock. Ops take an explicit
// clock so tests can pin the calendar day.
func orNow(t time.Time) time.Time {
	if t.IsZero() {
		return time.Now()
	}
	return t
}
