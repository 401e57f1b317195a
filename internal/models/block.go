package models

// SourceBlock is a day-granularity block record handed over by the store.
// Date uses the upstream DD/MM/YYYY format; the heatmap aggregator reverses
// it into ISO form for comparison.
type SourceBlock struct {
	ID      int64  `json:"id,omitempty" db:"id"`
	MeterID string `json:"meterId" db:"meter_id"`
	Date    string `json:"date" db:"date"` // DD/MM/YYYY
}
