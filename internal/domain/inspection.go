package domain

type InspectionKind string

const (
	InspectionPreRental  InspectionKind = "PRE_RENTAL"
	InspectionPostRental InspectionKind = "POST_RENTAL"
)

// Inspection is one vehicle condition record, logged at handover and again
// at return. Photos are storage URLs.
type Inspection struct {
	ID           int32          `json:"id"`
	BookingID    int32          `json:"booking_id"`
	Kind         InspectionKind `json:"kind"`
	BatteryLevel int32          `json:"battery_level"`
	Mileage      int32          `json:"mileage"`
	PhotoURLs    []string       `json:"photo_urls,omitempty"`
	InspectedBy  int32          `json:"inspected_by"`
	CreatedOn    string         `json:"created_on"`
}
