package models

// DayBucket is one aggregated activity intensity value for a single calendar
// day and, in multi-meter views, a single meter.
type DayBucket struct {
	Date      string `json:"date"`    // ISO calendar day
	Month     int    `json:"month"`   // 1-12
	Day       int    `json:"day"`     // day of month
	Weekday   int    `json:"weekday"` // 0 = Sunday
	Week      int    `json:"week"`    // 1-based week of month, resets each month
	MeterID   string `json:"meterId"` // empty for aggregate rows
	Value     int    `json:"value"`   // intensity, 0-100 in year mode
	Synthetic bool   `json:"synthetic"`
}

// HeatmapResponse wraps a generated batch of buckets with summary metadata.
type HeatmapResponse struct {
	Days      []DayBucket `json:"days"`
	Count     int         `json:"count"`
	MaxValue  int         `json:"max_value"`
	MinValue  int         `json:"min_value"`
	MeanValue float64     `json:"mean_value"`
	P95Value  float64     `json:"p95_value"`
	Mode      string      `json:"mode"` // "rolling", "year"
}
