package workflow

import (
	"context"

	"evrental-backend/internal/domain"
	"evrental-backend/internal/service"
	"evrental-backend/internal/storage"

	"github.com/stretchr/testify/mock"
)

// MockBookingGetter
type MockBookingGetter struct {
	mock.Mock
}

func (m *MockBookingGetter) GetByID(ctx context.Context, id int32) (*domain.Booking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

// MockContractService
type MockContractService struct {
	mock.Mock
}

func (m *MockContractService) Upload(ctx context.Context, bookingID int32, file storage.FileUpload) (string, error) {
	args := m.Called(ctx, bookingID, file)
	return args.String(0), args.Error(1)
}

func (m *MockContractService) Delete(ctx context.Context, bookingID int32) (string, error) {
	args := m.Called(ctx, bookingID)
	return args.String(0), args.Error(1)
}

// MockInspectionService
type MockInspectionService struct {
	mock.Mock
}

func (m *MockInspectionService) LogPreRental(ctx context.Context, bookingID int32, in service.PreRentalInput) (string, error) {
	args := m.Called(ctx, bookingID, in)
	return args.String(0), args.Error(1)
}

func (m *MockInspectionService) LogPostRental(ctx context.Context, bookingID int32, in service.PostRentalInput) (string, error) {
	args := m.Called(ctx, bookingID, in)
	return args.String(0), args.Error(1)
}

// MockDamageService
type MockDamageService struct {
	mock.Mock
}

func (m *MockDamageService) Submit(ctx context.Context, bookingID int32, in service.DamageReportInput) (string, error) {
	args := m.Called(ctx, bookingID, in)
	return args.String(0), args.Error(1)
}

// MockRefundService
type MockRefundService struct {
	mock.Mock
}

func (m *MockRefundService) GetSummary(ctx context.Context, bookingID int32) (domain.RefundSummary, error) {
	args := m.Called(ctx, bookingID)
	return args.Get(0).(domain.RefundSummary), args.Error(1)
}

func (m *MockRefundService) Refund(ctx context.Context, bookingID int32, in service.RefundInput) (string, error) {
	args := m.Called(ctx, bookingID, in)
	return args.String(0), args.Error(1)
}

func (m *MockRefundService) PayAdditional(ctx context.Context, bookingID int32, in service.AdditionalPaymentInput) (string, error) {
	args := m.Called(ctx, bookingID, in)
	return args.String(0), args.Error(1)
}
