package domain

type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusReserved  BookingStatus = "reserved"
	BookingStatusActive    BookingStatus = "active"
	BookingStatusReturning BookingStatus = "returning"
	BookingStatusCompleted BookingStatus = "completed"
	BookingStatusCancelled BookingStatus = "cancelled"
)

// Deposit is the amount a renter puts down when the booking is reserved.
// Provider metadata is recorded for reconciliation but never interpreted
// by the settlement logic.
type Deposit struct {
	AmountCents int64  `json:"amount_cents"`
	Currency    string `json:"currency"`
	Provider    string `json:"provider"`
	ProviderRef string `json:"provider_ref,omitempty"`
}

type Booking struct {
	ID          int32         `json:"id"`
	Code        string        `json:"code"`
	RenterID    int32         `json:"renter_id"`
	VehicleID   int32         `json:"vehicle_id"`
	StationID   int32         `json:"station_id"`
	StartDate   string        `json:"start_date"`
	EndDate     string        `json:"end_date"`
	Status      BookingStatus `json:"status"`
	Deposit     Deposit       `json:"deposit"`
	ContractURL string        `json:"contract_url,omitempty"`
	Notes       string        `json:"notes"`
	CreatedOn   string        `json:"created_on"`
	UpdatedOn   string        `json:"updated_on"`
}

// HasContract reports whether a rental contract has been uploaded.
// Steps 3 and 4 of the workflow are gated on this.
func (b *Booking) HasContract() bool {
	return b.ContractURL != ""
}
