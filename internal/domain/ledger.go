package domain

type FeeType string

const (
	FeeTypeLate          FeeType = "LATE_FEE"
	FeeTypeDamage        FeeType = "DAMAGE_FEE"
	FeeTypeDepositRefund FeeType = "DEPOSIT_REFUND"
	FeeTypeSurcharge     FeeType = "SURCHARGE_PAYMENT"
)

// FeeEntry is one line in a booking's fee ledger. Charges (late fees,
// damage) are positive; refund and surcharge entries record the settlement
// money movement itself.
type FeeEntry struct {
	ID          int32   `json:"id"`
	BookingID   int32   `json:"booking_id"`
	Type        FeeType `json:"type"`
	AmountCents int64   `json:"amount_cents"`
	Description string  `json:"description"`
	ProofURL    string  `json:"proof_url,omitempty"`
	CreatedOn   string  `json:"created_on"`
}
