package http

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"evrental-backend/internal/domain"
	"evrental-backend/internal/service"
	"evrental-backend/internal/workflow"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
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

type settlementFixture struct {
	handler  *BookingHandler
	sessions *workflow.Manager
	bookings *MockBookingGetter
	refunds  *MockRefundService
}

func newSettlementFixture() *settlementFixture {
	bookings := new(MockBookingGetter)
	refunds := new(MockRefundService)
	sessions := workflow.NewManager(bookings, nil, nil, nil, refunds, 20*time.Millisecond)
	return &settlementFixture{
		handler:  NewBookingHandler(nil, sessions),
		sessions: sessions,
		bookings: bookings,
		refunds:  refunds,
	}
}

func settlementRequest(t *testing.T, id string, fields map[string]string) *http.Request {
	t.Helper()
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	for k, v := range fields {
		require.NoError(t, mw.WriteField(k, v))
	}
	require.NoError(t, mw.Close())

	r := httptest.NewRequest(http.MethodPost, "/bookings/"+id+"/settle", &body)
	r.Header.Set("Content-Type", mw.FormDataContentType())
	return mux.SetURLVars(r, map[string]string{"id": id})
}

func decodeState(t *testing.T, rec *httptest.ResponseRecorder) workflow.State {
	t.Helper()
	var st workflow.State
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&st))
	return st
}

func TestBookingHandler_Refund_ReturnsServiceMessage(t *testing.T) {
	f := newSettlementFixture()
	f.bookings.On("GetByID", mock.Anything, int32(7)).
		Return(&domain.Booking{ID: 7, Status: domain.BookingStatusReturning}, nil)
	f.refunds.On("Refund", mock.Anything, int32(7), mock.Anything).
		Return("Booking completed, deposit fully consumed by fees", nil)

	rec := httptest.NewRecorder()
	f.handler.Refund(rec, settlementRequest(t, "7", map[string]string{"notes": "no damage"}))

	require.Equal(t, http.StatusOK, rec.Code)
	st := decodeState(t, rec)
	assert.Equal(t, "Booking completed, deposit fully consumed by fees", st.Success)
	assert.False(t, st.ShowRefundSummary)
}

func TestBookingHandler_PayAdditional_ReturnsServiceMessage(t *testing.T) {
	f := newSettlementFixture()
	f.bookings.On("GetByID", mock.Anything, int32(9)).
		Return(&domain.Booking{ID: 9, Status: domain.BookingStatusReturning}, nil)
	f.refunds.On("PayAdditional", mock.Anything, int32(9), mock.MatchedBy(func(in service.AdditionalPaymentInput) bool {
		return in.AmountCents == 250000 && in.ProofImage != nil
	})).Return("Payment of 250,000 VND recorded and booking completed", nil)

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	require.NoError(t, mw.WriteField("amount_cents", "250000"))
	fw, err := mw.CreateFormFile("proof", "receipt.jpg")
	require.NoError(t, err)
	_, err = fw.Write([]byte("jpeg"))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	r := httptest.NewRequest(http.MethodPost, "/bookings/9/pay-additional", &body)
	r.Header.Set("Content-Type", mw.FormDataContentType())
	r = mux.SetURLVars(r, map[string]string{"id": "9"})

	rec := httptest.NewRecorder()
	f.handler.PayAdditional(rec, r)

	require.Equal(t, http.StatusOK, rec.Code)
	st := decodeState(t, rec)
	assert.Equal(t, "Payment of 250,000 VND recorded and booking completed", st.Success)
}

func TestBookingHandler_Refund_WorkflowErrorMapped(t *testing.T) {
	f := newSettlementFixture()
	f.bookings.On("GetByID", mock.Anything, int32(7)).
		Return(&domain.Booking{ID: 7, Status: domain.BookingStatusActive}, nil)

	rec := httptest.NewRecorder()
	f.handler.Refund(rec, settlementRequest(t, "7", nil))

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	f.refunds.AssertNotCalled(t, "Refund", mock.Anything, mock.Anything, mock.Anything)
}
