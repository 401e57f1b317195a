package feed

import (
	"math"
	"testing"
	"time"

	"github.com/m3tering/explorer-backend-go/internal/models"
)

func fixedNow() time.Time {
	return time.Date(2025, 7, 10, 23, 0, 0, 0, time.UTC)
}

func record(date, clock, signature string) models.ActivityRecord {
	return models.ActivityRecord{
		Time:      clock,
		Date:      date,
		Energy:    150,
		Signature: signature,
		Value:     0.5,
		Validity:  models.ValidityValid,
	}
}

func TestLoadSortsNewestFirst(t *testing.T) {
	t.Parallel()

	records := []models.ActivityRecord{
		record("2025-07-08", "12:00 AM", "c"),
		record("2025-07-10", "10:00 PM", "a"),
		record("2025-07-09", "09:15 AM", "b"),
		record("2025-07-05", "05:20 PM", "d"),
	}

	f := Load(records, fixedNow())
	got := f.Activities()

	wantOrder := []string{"a", "b", "c", "d"}
	if len(got) != len(wantOrder) {
		t.Fatalf("got %d activities, want %d", len(got), len(wantOrder))
	}
	for i, sig := range wantOrder {
		if got[i].Signature != sig {
			t.Errorf("position %d: got %q, want %q", i, got[i].Signature, sig)
		}
	}
}

func TestLoadStableOnTies(t *testing.T) {
	t.Parallel()

	records := []models.ActivityRecord{
		record("2025-07-10", "10:00 PM", "first"),
		record("2025-07-10", "10:00 PM", "second"),
		record("2025-07-10", "10:00 PM", "third"),
	}

	got := Load(records, fixedNow()).Activities()
	for i, sig := range []string{"first", "second", "third"} {
		if got[i].Signature != sig {
			t.Errorf("position %d: got %q, want %q (stable sort broken)", i, got[i].Signature, sig)
		}
	}
}

func TestLoadEnriches(t *testing.T) {
	t.Parallel()

	got := Load([]models.ActivityRecord{record("2025-07-10", "09:00 PM", "a")}, fixedNow()).Activities()
	if got[0].HoursAgo != 2 {
		t.Errorf("HoursAgo = %v, want 2", got[0].HoursAgo)
	}
	if got[0].DisplayTime != "2 hours ago" {
		t.Errorf("DisplayTime = %q, want %q", got[0].DisplayTime, "2 hours ago")
	}
}

func TestLoadUnparseableSortsLast(t *testing.T) {
	t.Parallel()

	records := []models.ActivityRecord{
		record("garbage", "10:00 PM", "broken"),
		record("2025-07-01", "10:00 PM", "old"),
	}

	got := Load(records, fixedNow()).Activities()
	if got[len(got)-1].Signature != "broken" {
		t.Errorf("unparseable record should sort last, got order %q then %q", got[0].Signature, got[1].Signature)
	}
	if !math.IsInf(got[1].HoursAgo, 1) {
		t.Errorf("unparseable record HoursAgo = %v, want +Inf", got[1].HoursAgo)
	}
}

func TestThreshold(t *testing.T) {
	t.Parallel()

	tests := []struct {
		selector string
		want     float64
	}{
		{Filter8Hours, 8},
		{Filter24Hours, 24},
		{Filter3Days, 72},
		{Filter7Days, 168},
		{FilterAll, math.Inf(1)},
		{"bogus", math.Inf(1)},
		{"", math.Inf(1)},
	}

	for _, tt := range tests {
		if got := Threshold(tt.selector); got != tt.want {
			t.Errorf("Threshold(%q) = %v, want %v", tt.selector, got, tt.want)
		}
	}
}

func TestVisibleFiltering(t *testing.T) {
	t.Parallel()

	// ages: 2h, 12h, 48h, 100h, and one unparseable sentinel
	records := []models.ActivityRecord{
		record("2025-07-10", "09:00 PM", "2h"),
		record("2025-07-10", "11:00 AM", "12h"),
		record("2025-07-08", "11:00 PM", "48h"),
		record("2025-07-06", "07:00 PM", "100h"),
		record("2025-07-10", "broken", "sentinel"),
	}

	tests := []struct {
		selector string
		want     []string
	}{
		{Filter8Hours, []string{"2h"}},
		{Filter24Hours, []string{"2h", "12h"}},
		{Filter3Days, []string{"2h", "12h", "48h"}},
		{Filter7Days, []string{"2h", "12h", "48h", "100h"}},
		// the sentinel's instant falls back to midnight of its date, so it
		// sorts between the same-day and older entries
		{FilterAll, []string{"2h", "12h", "sentinel", "48h", "100h"}},
		{"bogus", []string{"2h", "12h", "sentinel", "48h", "100h"}},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.selector, func(t *testing.T) {
			t.Parallel()

			f := Load(records, fixedNow())
			f.SetFilter(tt.selector)

			got := f.Visible()
			if len(got) != len(tt.want) {
				t.Fatalf("got %d visible, want %d", len(got), len(tt.want))
			}
			for i, sig := range tt.want {
				if got[i].Signature != sig {
					t.Errorf("position %d: got %q, want %q", i, got[i].Signature, sig)
				}
			}
		})
	}
}

func TestVisibleBoundaryInclusive(t *testing.T) {
	t.Parallel()

	// exactly 8 hours old: included by the 8hrs window
	f := Load([]models.ActivityRecord{record("2025-07-10", "03:00 PM", "edge")}, fixedNow())
	f.SetFilter(Filter8Hours)
	if len(f.Visible()) != 1 {
		t.Error("entry aged exactly 8 hours should be visible under 8hrs")
	}
}

func TestSetFilterIdempotent(t *testing.T) {
	t.Parallel()

	records := []models.ActivityRecord{
		record("2025-07-10", "09:00 PM", "a"),
		record("2025-07-06", "07:00 PM", "b"),
	}

	f := Load(records, fixedNow())
	f.SetFilter(Filter8Hours)
	first := f.Visible()
	f.SetFilter(Filter8Hours)
	second := f.Visible()

	if len(first) != len(second) {
		t.Fatalf("idempotence broken: %d then %d visible", len(first), len(second))
	}
	for i := range first {
		if first[i].Signature != second[i].Signature {
			t.Errorf("position %d differs after repeated SetFilter", i)
		}
	}
}

func TestFilteringDoesNotMutateSnapshot(t *testing.T) {
	t.Parallel()

	records := []models.ActivityRecord{
		record("2025-07-10", "09:00 PM", "a"),
		record("2025-07-06", "07:00 PM", "b"),
	}

	f := Load(records, fixedNow())
	f.SetFilter(Filter8Hours)
	f.Visible()
	f.SetFilter(FilterAll)

	if got := len(f.Visible()); got != 2 {
		t.Errorf("snapshot mutated by filtering: %d entries left, want 2", got)
	}
}
