package models

// HeatmapFilter represents query parameters for the heatmap endpoint
type HeatmapFilter struct {
	Mode    string `form:"mode"`    // "rolling" (default), "year"
	Days    int    `form:"days"`    // rolling window length, default 90
	Year    int    `form:"year"`    // year mode target year
	MeterID string `form:"meterId"` // empty = all meters
}

// NearbyFilter represents query parameters for the meters-nearby endpoint
type NearbyFilter struct {
	Lat    float64 `form:"lat"`
	Lng    float64 `form:"lng"`
	Radius float64 `form:"radius"` // meters, default 5000
}
