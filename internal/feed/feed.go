// Package feed maintains an immutable, newest-first snapshot of metering
// activity with age-window filtering.
package feed

import (
	"math"
	"sort"
	"time"

	"github.com/m3tering/explorer-backend-go/internal/models"
	"github.com/m3tering/explorer-backend-go/internal/timeparse"
)

// Filter selectors accepted by SetFilter.
const (
	Filter8Hours  = "8hrs"
	Filter24Hours = "24hrs"
	Filter3Days   = "3days"
	Filter7Days   = "7days"
	FilterAll     = "All"
)

// Feed is a point-in-time snapshot of enriched activities plus the current
// filter selection. The stored sequence is sorted newest first and never
// mutated after Load.
type Feed struct {
	activities []models.EnrichedActivity
	filter     string
}

// Load enriches every record via timeparse and sorts the result descending by
// absolute instant. The sort is stable: records with identical instants keep
// their input order. Records whose date cannot be parsed sort last.
func Load(records []models.ActivityRecord, now time.Time) *Feed {
	type keyed struct {
		activity models.EnrichedActivity
		instant  time.Time
	}

	items := make([]keyed, 0, len(records))
	for _, r := range records {
		age := timeparse.AgeFrom(r.Date, r.Time, now)
		instant, err := timeparse.ToInstant(r.Date, r.Time, now.Location())
		if err != nil {
			instant = time.Time{}
		}
		items = append(items, keyed{
			activity: models.EnrichedActivity{
				ActivityRecord: r,
				HoursAgo:       age.HoursAgo,
				DisplayTime:    age.DisplayTime,
			},
			instant: instant,
		})
	}

	sort.SliceStable(items, func(i, j int) bool {
		return items[i].instant.After(items[j].instant)
	})

	activities := make([]models.EnrichedActivity, len(items))
	for i, item := range items {
		activities[i] = item.activity
	}

	return &Feed{activities: activities, filter: FilterAll}
}

// SetFilter selects the age window. Unknown selectors are accepted and
// resolve to no upper bound.
func (f *Feed) SetFilter(selector string) {
	f.filter = selector
}

// Filter returns the current selector.
func (f *Feed) Filter() string {
	return f.filter
}

// Threshold returns the age window in hours for a selector. Unknown
// selectors place no upper bound.
func Threshold(selector string) float64 {
	switch selector {
	case Filter8Hours:
		return 8
	case Filter24Hours:
		return 24
	case Filter3Days:
		return 72
	case Filter7Days:
		return 168
	default:
		return math.Inf(1)
	}
}

// Visible returns the entries whose age is within the current window,
// preserving the stored newest-first order. Entries carrying the unbounded
// sentinel pass only the unbounded filters.
func (f *Feed) Visible() []models.EnrichedActivity {
	limit := Threshold(f.filter)
	visible := make([]models.EnrichedActivity, 0, len(f.activities))
	for _, a := range f.activities {
		if a.HoursAgo <= limit {
			visible = append(visible, a)
		}
	}
	return visible
}

// Activities returns a copy of the full snapshot regardless of filter.
func (f *Feed) Activities() []models.EnrichedActivity {
	out := make([]models.EnrichedActivity, len(f.activities))
	copy(out, f.activities)
	return out
}
