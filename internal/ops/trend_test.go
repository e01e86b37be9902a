package ops

import (
	"fmt"
	"testing"

	"github.com/hpungsan/flux/internal/config"
	"github.com/hpungsan/flux/internal/journal"
)

func seedDays(t *testing.T, s *Session, days int) {
	t.Helper()
	for i := 1; i <= days; i++ {
		date := fmt.Sprintf("2024-03-%02d", i)
		mood := (i % 11) - 5
		if _, err := Record(s, RecordInput{
			Date:    date,
			Partial: journal.Partial{MoodValue: &mood},
			Now:     timeAt(date + "T20:00:00Z"),
		}); err != nil {
			t.Fatalf("seeding %s failed: %v", date, err)
		}
	}
}

func TestTrend_DateAscendingWindow(t *testing.T) {
	s, _ := testSession(t)
	cfg := config.DefaultConfig()
	seedDays(t, s, 20)

	out, err := Trend(s, cfg, TrendInput{})
	if err != nil {
		t.Fatalf("Trend failed: %v", err)
	}

	if out.Window != 14 {
		t.Errorf("Window = %d, want 14 (default)", out.Window)
	}
	if len(out.Points) != 14 {
		t.Fatalf("points = %d, want 14", len(out.Points))
	}
	// Window keeps the most recent entries, date ascending
	if out.Points[0].Date != "2024-03-07" || out.Points[13].Date != "2024-03-20" {
		t.Errorf("window = %s..%s, want 2024-03-07..2024-03-20",
			out.Points[0].Date, out.Points[13].Date)
	}
	for i := 1; i < len(out.Points); i++ {
		if out.Points[i-1].Date >= out.Points[i].Date {
			t.Fatalf("points not date-ascending at %d: %s >= %s",
				i, out.Points[i-1].Date, out.Points[i].Date)
		}
	}
}

func TestTrend_SortsUnorderedCollection(t *testing.T) {
	s, _ := testSession(t)
	cfg := config.DefaultConfig()

	// Insertion order differs from chronological order
	for _, date := range []string{"2024-03-03", "2024-03-01", "2024-03-02"} {
		mood := 1
		if _, err := Record(s, RecordInput{
			Date:    date,
			Partial: journal.Partial{MoodValue: &mood},
			Now:     timeAt(date + "T20:00:00Z"),
		}); err != nil {
			t.Fatalf("seeding failed: %v", err)
		}
	}

	out, err := Trend(s, cfg, TrendInput{})
	if err != nil {
		t.Fatalf("Trend failed: %v", err)
	}

	want := []string{"2024-03-01", "2024-03-02", "2024-03-03"}
	for i, p := range out.Points {
		if p.Date != want[i] {
			t.Errorf("point %d = %s, want %s", i, p.Date, want[i])
		}
	}
}

func TestTrend_EnergyScores(t *testing.T) {
	s, _ := testSession(t)
	cfg := config.DefaultConfig()

	levels := map[string]journal.EnergyLevel{
		"2024-03-01": journal.EnergyLow,
		"2024-03-02": journal.EnergyMedium,
		"2024-03-03": journal.EnergyHigh,
	}
	for date, level := range levels {
		l := level
		if _, err := Record(s, RecordInput{
			Date:    date,
			Partial: journal.Partial{EnergyLevel: &l},
			Now:     timeAt(date + "T20:00:00Z"),
		}); err != nil {
			t.Fatalf("seeding failed: %v", err)
		}
	}

	out, err := Trend(s, cfg, TrendInput{})
	if err != nil {
		t.Fatalf("Trend failed: %v", err)
	}

	wantScores := []int{1, 3, 5}
	for i, p := range out.Points {
		if p.Energy != wantScores[i] {
			t.Errorf("point %s energy = %d, want %d", p.Date, p.Energy, wantScores[i])
		}
	}
}

func TestTrend_ExplicitDaysOverridesConfig(t *testing.T) {
	s, _ := testSession(t)
	cfg := config.DefaultConfig()
	seedDays(t, s, 10)

	out, err := Trend(s, cfg, TrendInput{Days: 5})
	if err != nil {
		t.Fatalf("Trend failed: %v", err)
	}
	if len(out.Points) != 5 || out.Window != 5 {
		t.Errorf("points = %d, window = %d; want 5, 5", len(out.Points), out.Window)
	}
}

func TestTrend_EmptyCollection(t *testing.T) {
	s, _ := testSession(t)

	out, err := Trend(s, config.DefaultConfig(), TrendInput{})
	if err != nil {
		t.Fatalf("Trend failed: %v", err)
	}
	if len(out.Points) != 0 {
		t.Errorf("points = %d, want 0", len(out.Points))
	}
}
