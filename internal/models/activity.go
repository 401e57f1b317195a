package models

import (
	"encoding/json"
	"math"
)

// Validity values reported by the protocol for an activity record
const (
	ValidityValid   = "Valid"
	ValidityInvalid = "Invalid"
)

// ActivityRecord is a raw metering activity as supplied by the store.
// It is the source of truth and is never mutated after creation.
type ActivityRecord struct {
	ID        int64   `json:"id,omitempty" db:"id"`
	Time      string  `json:"time" db:"time"`         // 12-hour clock, e.g. "10:00 PM"
	Date      string  `json:"date" db:"date"`         // ISO day, e.g. "2025-07-10"
	Energy    float64 `json:"energy" db:"energy"`     // kWh reported for the interval
	Signature string  `json:"signature" db:"signature"`
	Value     float64 `json:"value" db:"value"`
	Validity  string  `json:"validity" db:"validity"` // Valid, Invalid
	MeterID   string  `json:"meterId,omitempty" db:"meter_id"`
}

// EnrichedActivity is an ActivityRecord plus two fields derived once at load
// time. The feed is a point-in-time snapshot: derived fields are never
// recomputed after enrichment.
type EnrichedActivity struct {
	ActivityRecord
	HoursAgo    float64 `json:"hoursAgo"`    // +Inf when the timestamp could not be parsed
	DisplayTime string  `json:"displayTime"` // "5 mins ago", "2 hours ago", ...
}

// MarshalJSON renders the unbounded-age sentinel as null, since encoding/json
// rejects +Inf.
func (e EnrichedActivity) MarshalJSON() ([]byte, error) {
	type enriched struct {
		ActivityRecord
		HoursAgo    *float64 `json:"hoursAgo"`
		DisplayTime string   `json:"displayTime"`
	}
	out := enriched{ActivityRecord: e.ActivityRecord, DisplayTime: e.DisplayTime}
	if !math.IsInf(e.HoursAgo, 1) {
		out.HoursAgo = &e.HoursAgo
	}
	return json.Marshal(out)
}
