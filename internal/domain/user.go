package domain

type UserRole string

const (
	RoleAdmin  UserRole = "ADMIN"
	RoleStaff  UserRole = "STAFF"
	RoleRenter UserRole = "RENTER"
)

type KYCStatus string

const (
	KYCPending  KYCStatus = "PENDING"
	KYCVerified KYCStatus = "VERIFIED"
	KYCRejected KYCStatus = "REJECTED"
)

type User struct {
	ID           int32     `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Phone        string    `json:"phone"`
	PasswordHash string    `json:"-"`
	Role         UserRole  `json:"role"`
	KYC          KYCStatus `json:"kyc_status"`
	StationID    *int32    `json:"station_id,omitempty"`
	IsBlocked    bool      `json:"is_blocked"`
	CreatedOn    string    `json:"created_on"`
	UpdatedOn    string    `json:"updated_on"`
}
