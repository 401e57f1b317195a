package models

// HourlyEnergyUsage is a generated per-hour usage sample for one meter.
type HourlyEnergyUsage struct {
	MeterID    string  `json:"meterId"`
	Hour       string  `json:"hour"` // "00:00" .. "23:00"
	EnergyUsed float64 `json:"energyUsed"`
	Timestamp  string  `json:"timestamp"` // "<block date> <hour>"
}

// Stablecoin identifies a supported settlement token.
type Stablecoin struct {
	Symbol  string `json:"symbol"`
	Network string `json:"network"`
}

// StablecoinBalance is a generated token balance held by a meter.
type StablecoinBalance struct {
	Symbol  string  `json:"symbol"`
	Network string  `json:"network"`
	Value   float64 `json:"value"` // USD
}
