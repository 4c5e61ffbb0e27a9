package service

import (
	"context"
	"io"

	"evrental-backend/internal/domain"

	"github.com/stretchr/testify/mock"
)

// MockBookingRepo
type MockBookingRepo struct {
	mock.Mock
}

func (m *MockBookingRepo) Create(ctx context.Context, b *domain.Booking) error {
	return m.Called(ctx, b).Error(0)
}

func (m *MockBookingRepo) GetByID(ctx context.Context, id int32) (*domain.Booking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

func (m *MockBookingRepo) Update(ctx context.Context, b *domain.Booking) error {
	return m.Called(ctx, b).Error(0)
}

func (m *MockBookingRepo) UpdateStatus(ctx context.Context, id int32, status domain.BookingStatus) error {
	return m.Called(ctx, id, status).Error(0)
}

func (m *MockBookingRepo) SetContractURL(ctx context.Context, id int32, url string) error {
	return m.Called(ctx, id, url).Error(0)
}

func (m *MockBookingRepo) ListByStation(ctx context.Context, stationID int32, status string, page, pageSize int32) ([]domain.Booking, int32, error) {
	args := m.Called(ctx, stationID, status, page, pageSize)
	return args.Get(0).([]domain.Booking), args.Get(1).(int32), args.Error(2)
}

func (m *MockBookingRepo) ListByRenter(ctx context.Context, renterID int32, status string, page, pageSize int32) ([]domain.Booking, int32, error) {
	args := m.Called(ctx, renterID, status, page, pageSize)
	return args.Get(0).([]domain.Booking), args.Get(1).(int32), args.Error(2)
}

// MockVehicleRepo
type MockVehicleRepo struct {
	mock.Mock
}

func (m *MockVehicleRepo) Create(ctx context.Context, v *domain.Vehicle) error {
	return m.Called(ctx, v).Error(0)
}

func (m *MockVehicleRepo) GetByID(ctx context.Context, id int32) (*domain.Vehicle, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Vehicle), args.Error(1)
}

func (m *MockVehicleRepo) Update(ctx context.Context, v *domain.Vehicle) error {
	return m.Called(ctx, v).Error(0)
}

func (m *MockVehicleRepo) Delete(ctx context.Context, id int32) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockVehicleRepo) ListByStation(ctx context.Context, stationID int32, status string, page, pageSize int32) ([]domain.Vehicle, int32, error) {
	args := m.Called(ctx, stationID, status, page, pageSize)
	return args.Get(0).([]domain.Vehicle), args.Get(1).(int32), args.Error(2)
}

// MockUserRepo
type MockUserRepo struct {
	mock.Mock
}

func (m *MockUserRepo) Create(ctx context.Context, u *domain.User) error {
	return m.Called(ctx, u).Error(0)
}

func (m *MockUserRepo) GetByID(ctx context.Context, id int32) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepo) Update(ctx context.Context, u *domain.User) error {
	return m.Called(ctx, u).Error(0)
}

func (m *MockUserRepo) UpdateKYC(ctx context.Context, id int32, status domain.KYCStatus) error {
	return m.Called(ctx, id, status).Error(0)
}

func (m *MockUserRepo) List(ctx context.Context, role string, page, pageSize int32) ([]domain.User, int32, error) {
	args := m.Called(ctx, role, page, pageSize)
	return args.Get(0).([]domain.User), args.Get(1).(int32), args.Error(2)
}

// MockNotificationRepo
type MockNotificationRepo struct {
	mock.Mock
}

func (m *MockNotificationRepo) Create(ctx context.Context, n *domain.Notification) error {
	return m.Called(ctx, n).Error(0)
}

func (m *MockNotificationRepo) List(ctx context.Context, userID int32, limit, offset int32) ([]domain.Notification, int32, error) {
	args := m.Called(ctx, userID, limit, offset)
	return args.Get(0).([]domain.Notification), args.Get(1).(int32), args.Error(2)
}

func (m *MockNotificationRepo) MarkAsRead(ctx context.Context, id, userID int32) error {
	return m.Called(ctx, id, userID).Error(0)
}

// MockInspectionRepo
type MockInspectionRepo struct {
	mock.Mock
}

func (m *MockInspectionRepo) Create(ctx context.Context, ins *domain.Inspection) error {
	return m.Called(ctx, ins).Error(0)
}

func (m *MockInspectionRepo) GetByBooking(ctx context.Context, bookingID int32, kind domain.InspectionKind) (*domain.Inspection, error) {
	args := m.Called(ctx, bookingID, kind)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Inspection), args.Error(1)
}

func (m *MockInspectionRepo) ListByBooking(ctx context.Context, bookingID int32) ([]domain.Inspection, error) {
	args := m.Called(ctx, bookingID)
	return args.Get(0).([]domain.Inspection), args.Error(1)
}

// MockDamageRepo
type MockDamageRepo struct {
	mock.Mock
}

func (m *MockDamageRepo) Create(ctx context.Context, r *domain.DamageReport) error {
	return m.Called(ctx, r).Error(0)
}

func (m *MockDamageRepo) ListByBooking(ctx context.Context, bookingID int32) ([]domain.DamageReport, error) {
	args := m.Called(ctx, bookingID)
	return args.Get(0).([]domain.DamageReport), args.Error(1)
}

// MockFeeLedgerRepo
type MockFeeLedgerRepo struct {
	mock.Mock
}

func (m *MockFeeLedgerRepo) Create(ctx context.Context, e *domain.FeeEntry) error {
	return m.Called(ctx, e).Error(0)
}

func (m *MockFeeLedgerRepo) SumCharges(ctx context.Context, bookingID int32) (int64, error) {
	args := m.Called(ctx, bookingID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockFeeLedgerRepo) ListByBooking(ctx context.Context, bookingID int32) ([]domain.FeeEntry, error) {
	args := m.Called(ctx, bookingID)
	return args.Get(0).([]domain.FeeEntry), args.Error(1)
}

// MockEmailService
type MockEmailService struct {
	mock.Mock
}

func (m *MockEmailService) SendBookingConfirmation(ctx context.Context, email, name, bookingCode string) error {
	return m.Called(ctx, email, name, bookingCode).Error(0)
}

func (m *MockEmailService) SendRefundProcessed(ctx context.Context, email, name, bookingCode string, amountCents int64) error {
	return m.Called(ctx, email, name, bookingCode, amountCents).Error(0)
}

func (m *MockEmailService) SendPaymentRequest(ctx context.Context, email, name, bookingCode string, amountCents int64) error {
	return m.Called(ctx, email, name, bookingCode, amountCents).Error(0)
}

func (m *MockEmailService) SendReturnReminder(ctx context.Context, email, name, bookingCode, endDate string) error {
	return m.Called(ctx, email, name, bookingCode, endDate).Error(0)
}

// MockFileStore
type MockFileStore struct {
	mock.Mock
}

func (m *MockFileStore) Save(ctx context.Context, keyPrefix, filename, contentType string, r io.Reader) (string, error) {
	args := m.Called(ctx, keyPrefix, filename, contentType, r)
	return args.String(0), args.Error(1)
}

func (m *MockFileStore) Delete(ctx context.Context, url string) error {
	return m.Called(ctx, url).Error(0)
}

func (m *MockFileStore) Open(key string) (io.ReadCloser, error) {
	args := m.Called(key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(io.ReadCloser), args.Error(1)
}
