package domain

type StationStatus string

const (
	StationStatusOpen   StationStatus = "OPEN"
	StationStatusClosed StationStatus = "CLOSED"
)

type Station struct {
	ID        int32         `json:"id"`
	Name      string        `json:"name"`
	Address   string        `json:"address"`
	Latitude  float64       `json:"latitude"`
	Longitude float64       `json:"longitude"`
	Status    StationStatus `json:"status"`
	CreatedOn string        `json:"created_on"`
	UpdatedOn string        `json:"updated_on"`
}
