package domain

// DamageReport documents damage found during the return inspection. The
// estimated cost is folded into the booking's fee ledger so settlement
// accounts for it.
type DamageReport struct {
	ID                 int32    `json:"id"`
	BookingID          int32    `json:"booking_id"`
	Description        string   `json:"description"`
	EstimatedCostCents int64    `json:"estimated_cost_cents"`
	PhotoURLs          []string `json:"photo_urls,omitempty"`
	ReportedBy         int32    `json:"reported_by"`
	CreatedOn          string   `json:"created_on"`
}
