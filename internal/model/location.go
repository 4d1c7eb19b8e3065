package model

// Location is the resolved place for a ZIP code. Derived on every lookup,
// never persisted.
type Location struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	City      string  `json:"city"`
	State     string  `json:"state"`
}
