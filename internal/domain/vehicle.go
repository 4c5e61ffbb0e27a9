package domain

type VehicleStatus string

const (
	VehicleStatusAvailable   VehicleStatus = "AVAILABLE"
	VehicleStatusRented      VehicleStatus = "RENTED"
	VehicleStatusMaintenance VehicleStatus = "MAINTENANCE"
)

type Vehicle struct {
	ID                int32         `json:"id"`
	StationID         int32         `json:"station_id"`
	Model             string        `json:"model"`
	LicensePlate      string        `json:"license_plate"`
	BatteryCapacity   int32         `json:"battery_capacity"`
	PricePerDayCents  int64         `json:"price_per_day_cents"`
	DepositCents      int64         `json:"deposit_cents"`
	LateFeePerDayCents int64        `json:"late_fee_per_day_cents"`
	Status            VehicleStatus `json:"status"`
	CreatedOn         string        `json:"created_on"`
	UpdatedOn         string        `json:"updated_on"`
}
