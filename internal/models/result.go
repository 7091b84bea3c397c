package models

// Component is one priced sub-part (CPU, GPU, RAM, ...) of a valuated system.
type Component struct {
	Name      string  `json:"name"`
	Model     string  `json:"model,omitempty"`
	PriceNew  float64 `json:"price_new"`
	PriceUsed float64 `json:"price_used"`
}

// Result is the in-memory view of one valuation, either fresh from the
// valuation engine or reconstructed from a stored Scan. Reconstruction is
// lossy: battery health, the new-parts total and the tactic do not survive a
// round trip through storage.
type Result struct {
	Category            string      `json:"category"`
	CPU                 string      `json:"cpu,omitempty"`
	GPU                 string      `json:"gpu,omitempty"`
	RAM                 string      `json:"ram,omitempty"`
	Storage             string      `json:"storage,omitempty"`
	Condition           string      `json:"condition,omitempty"`
	YearEstimation      int         `json:"year_estimation,omitempty"`
	CalculatedFairPrice float64     `json:"calculated_fair_price"`
	ListingPriceFound   *float64    `json:"listing_price_found"`
	Verdict             string      `json:"verdict"`
	VerdictColor        string      `json:"verdict_color"`
	Components          []Component `json:"components"`
	NegotiationTactic   string      `json:"negotiation_tactic"`
	BatteryHealth       *float64    `json:"battery_health"`
	BatteryVerdict      string      `json:"battery_verdict,omitempty"`
	TotalPartsValueNew  float64     `json:"total_parts_value_new"`
	TotalPartsValueUsed float64     `json:"total_parts_value_used"`
	RawText             string      `json:"raw_text,omitempty"`
}
