// Package workflow drives the staff-facing rental workflow for one booking:
// contract handling, pre- and post-rental inspections, damage reporting and
// deposit settlement. A Session serializes the operator actions, tracks the
// shared submission state the dashboard renders, and emits a refresh event
// after every successful mutation so the host re-fetches the booking.
package workflow

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"evrental-backend/internal/domain"
	"evrental-backend/internal/logger"
	"evrental-backend/internal/service"
	"evrental-backend/internal/storage"
)

// ErrOperationInFlight is returned when an action is invoked while another
// one is still submitting. Operations are never queued or interleaved.
var ErrOperationInFlight = errors.New("another action is already in progress")

// ValidationError is a client-fixable problem caught before any collaborator
// call is made.
type ValidationError struct {
	Message string
}

func (e ValidationError) Error() string { return e.Message }

// PreconditionError is returned when a booking's status does not allow the
// requested operation.
type PreconditionError struct {
	Op   Op
	Want domain.BookingStatus
	Got  domain.BookingStatus
}

func (e PreconditionError) Error() string {
	return fmt.Sprintf("%s requires a %s booking, but the booking is %s", e.Op, e.Want, e.Got)
}

// Op identifies one workflow operation.
type Op string

const (
	OpUploadContract     Op = "upload_contract"
	OpDeleteContract     Op = "delete_contract"
	OpPreRentalCondition Op = "pre_rental_condition"
	OpMarkReturned       Op = "mark_returned"
	OpRefundSummary      Op = "refund_summary"
	OpRefundDeposit      Op = "refund_deposit"
	OpPayAdditional      Op = "pay_additional"
	OpDamageReport       Op = "damage_report"
)

// fallbackMessages are surfaced when a collaborator fails without a message.
var fallbackMessages = map[Op]string{
	OpUploadContract:     "Failed to upload contract",
	OpDeleteContract:     "Failed to delete contract",
	OpPreRentalCondition: "Failed to log pre-rental condition",
	OpMarkReturned:       "Failed to log vehicle return",
	OpRefundSummary:      "Failed to load settlement summary",
	OpRefundDeposit:      "Failed to process refund",
	OpPayAdditional:      "Failed to record additional payment",
	OpDamageReport:       "Failed to submit damage report",
}

// Event signals that an operation completed its success display window.
// The host decides when and whether to re-fetch the booking.
type Event struct {
	BookingID int32
	Op        Op
}

// State is the submission state shared across all operations of one
// session. Snapshot semantics: State() returns a copy.
type State struct {
	Loading               bool                  `json:"loading"`
	Error                 string                `json:"error,omitempty"`
	Success               string                `json:"success,omitempty"`
	DamageReportSubmitted bool                  `json:"damage_report_submitted"`
	PostRentalSubmitted   bool                  `json:"post_rental_submitted"`
	RefundSummary         *domain.RefundSummary `json:"refund_summary,omitempty"`
	ShowRefundSummary     bool                  `json:"show_refund_summary"`
}

// BookingGetter is the slice of the booking store the session needs for
// status precondition checks.
type BookingGetter interface {
	GetByID(ctx context.Context, id int32) (*domain.Booking, error)
}

// Session coordinates the workflow for exactly one booking. It is not
// reusable across bookings; the Manager hands out one per booking and
// drops it when the booking leaves the workflow.
type Session struct {
	bookingID   int32
	bookings    BookingGetter
	contracts   service.ContractService
	inspections service.InspectionService
	damages     service.DamageService
	refunds     service.RefundService
	delay       time.Duration
	events      chan Event

	mu      sync.Mutex
	state   State
	timer   *time.Timer
	pending Op
	chain   *time.Timer
}

// NewSession creates a workflow session for one booking. delay is how long
// success messages stay visible before the session clears them and emits
// the refresh event.
func NewSession(
	bookingID int32,
	bookings BookingGetter,
	contracts service.ContractService,
	inspections service.InspectionService,
	damages service.DamageService,
	refunds service.RefundService,
	delay time.Duration,
) *Session {
	return &Session{
		bookingID:   bookingID,
		bookings:    bookings,
		contracts:   contracts,
		inspections: inspections,
		damages:     damages,
		refunds:     refunds,
		delay:       delay,
		events:      make(chan Event, 8),
	}
}

// Events is the stream of completion signals. The host should drain it for
// as long as the session lives.
func (s *Session) Events() <-chan Event {
	return s.events
}

// State returns a snapshot of the current submission state.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Close stops any pending success timer and resets the session. The events
// channel stays open; pending events may still be drained.
func (s *Session) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	if s.chain != nil {
		s.chain.Stop()
		s.chain = nil
	}
	s.state = State{}
}

// UploadContract sends the signed rental contract to the contract service.
// Valid while the booking is reserved and has no contract yet.
func (s *Session) UploadContract(ctx context.Context, file storage.FileUpload) error {
	if err := s.begin(OpUploadContract); err != nil {
		return err
	}
	if err := s.requireStatus(ctx, OpUploadContract, domain.BookingStatusReserved); err != nil {
		return s.fail(OpUploadContract, err)
	}

	msg, err := s.contracts.Upload(ctx, s.bookingID, file)
	if err != nil {
		return s.fail(OpUploadContract, err)
	}
	s.succeed(OpUploadContract, msg, nil)
	return nil
}

// DeleteContract removes the uploaded contract so a corrected one can be
// attached. Valid while the booking is reserved.
func (s *Session) DeleteContract(ctx context.Context) error {
	if err := s.begin(OpDeleteContract); err != nil {
		return err
	}
	if err := s.requireStatus(ctx, OpDeleteContract, domain.BookingStatusReserved); err != nil {
		return s.fail(OpDeleteContract, err)
	}

	msg, err := s.contracts.Delete(ctx, s.bookingID)
	if err != nil {
		return s.fail(OpDeleteContract, err)
	}
	s.succeed(OpDeleteContract, msg, nil)
	return nil
}

// LogPreRentalCondition records the handover inspection. The inspection
// service advances the booking to active on success.
func (s *Session) LogPreRentalCondition(ctx context.Context, in service.PreRentalInput) error {
	if err := s.begin(OpPreRentalCondition); err != nil {
		return err
	}
	if err := s.requireStatus(ctx, OpPreRentalCondition, domain.BookingStatusReserved); err != nil {
		return s.fail(OpPreRentalCondition, err)
	}

	msg, err := s.inspections.LogPreRental(ctx, s.bookingID, in)
	if err != nil {
		return s.fail(OpPreRentalCondition, err)
	}
	s.succeed(OpPreRentalCondition, msg, nil)
	return nil
}

// MarkReturned records the return inspection and flags the session so the
// settlement steps unlock.
func (s *Session) MarkReturned(ctx context.Context, in service.PostRentalInput) error {
	if err := s.begin(OpMarkReturned); err != nil {
		return err
	}
	if err := s.requireStatus(ctx, OpMarkReturned, domain.BookingStatusActive); err != nil {
		return s.fail(OpMarkReturned, err)
	}

	msg, err := s.inspections.LogPostRental(ctx, s.bookingID, in)
	if err != nil {
		return s.fail(OpMarkReturned, err)
	}
	s.succeed(OpMarkReturned, msg, func(st *State) {
		st.PostRentalSubmitted = true
	})
	return nil
}

// FetchRefundSummary loads the settlement summary. This is a read: it
// caches the summary and makes it visible, but sets no success message
// and emits no refresh event.
func (s *Session) FetchRefundSummary(ctx context.Context) error {
	if err := s.begin(OpRefundSummary); err != nil {
		return err
	}
	if err := s.requireStatus(ctx, OpRefundSummary, domain.BookingStatusReturning); err != nil {
		return s.fail(OpRefundSummary, err)
	}

	summary, err := s.refunds.GetSummary(ctx, s.bookingID)
	if err != nil {
		return s.fail(OpRefundSummary, err)
	}

	s.mu.Lock()
	s.state.Loading = false
	s.state.RefundSummary = &summary
	s.state.ShowRefundSummary = true
	s.mu.Unlock()
	logger.WorkflowResult(string(OpRefundSummary), s.bookingID, nil)
	return nil
}

// RefundDeposit settles the booking by refunding the deposit balance.
// Proof image and notes are optional.
func (s *Session) RefundDeposit(ctx context.Context, in service.RefundInput) error {
	if err := s.begin(OpRefundDeposit); err != nil {
		return err
	}
	if err := s.requireStatus(ctx, OpRefundDeposit, domain.BookingStatusReturning); err != nil {
		return s.fail(OpRefundDeposit, err)
	}

	msg, err := s.refunds.Refund(ctx, s.bookingID, in)
	if err != nil {
		return s.fail(OpRefundDeposit, err)
	}
	s.settle(OpRefundDeposit, msg)
	return nil
}

// PayAdditional settles the booking by collecting the amount the renter
// owes beyond the deposit. Amount and proof image are mandatory and
// validated before any collaborator call.
func (s *Session) PayAdditional(ctx context.Context, in service.AdditionalPaymentInput) error {
	if err := s.begin(OpPayAdditional); err != nil {
		return err
	}
	if in.AmountCents <= 0 {
		return s.fail(OpPayAdditional, ValidationError{Message: "payment amount is required"})
	}
	if in.ProofImage == nil {
		return s.fail(OpPayAdditional, ValidationError{Message: "proof of payment image is required"})
	}
	if err := s.requireStatus(ctx, OpPayAdditional, domain.BookingStatusReturning); err != nil {
		return s.fail(OpPayAdditional, err)
	}

	msg, err := s.refunds.PayAdditional(ctx, s.bookingID, in)
	if err != nil {
		return s.fail(OpPayAdditional, err)
	}
	s.settle(OpPayAdditional, msg)
	return nil
}

// SubmitDamageReport files a damage report against the booking. On success
// the session marks the report submitted immediately, then chains an
// automatic FetchRefundSummary after the display delay: damage cost must be
// folded into the fee total before settlement, so re-fetching the summary
// is mandatory once a report lands.
func (s *Session) SubmitDamageReport(ctx context.Context, in service.DamageReportInput) error {
	if err := s.begin(OpDamageReport); err != nil {
		return err
	}
	if err := s.requireStatus(ctx, OpDamageReport, domain.BookingStatusReturning); err != nil {
		return s.fail(OpDamageReport, err)
	}

	msg, err := s.damages.Submit(ctx, s.bookingID, in)
	if err != nil {
		return s.fail(OpDamageReport, err)
	}

	s.mu.Lock()
	s.state.Loading = false
	s.state.Success = msg
	s.state.DamageReportSubmitted = true
	s.scheduleLocked(OpDamageReport)
	s.scheduleSummaryChainLocked()
	s.mu.Unlock()
	logger.WorkflowResult(string(OpDamageReport), s.bookingID, nil)
	return nil
}

// begin moves the session from idle to submitting. Starting a new action
// inside a previous action's display window cuts the window short: the
// pending completion event is emitted immediately rather than dropped.
func (s *Session) begin(op Op) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state.Loading {
		return ErrOperationInFlight
	}
	if s.timer != nil {
		if s.timer.Stop() {
			s.notify(s.pending)
		}
		s.timer = nil
	}
	s.state.Loading = true
	s.state.Error = ""
	s.state.Success = ""
	logger.WorkflowAction(string(op), s.bookingID)
	return nil
}

// requireStatus enforces the operation's booking-status precondition
// server-side instead of trusting the caller to hide disallowed actions.
func (s *Session) requireStatus(ctx context.Context, op Op, want domain.BookingStatus) error {
	b, err := s.bookings.GetByID(ctx, s.bookingID)
	if err != nil {
		return err
	}
	if b.Status != want {
		return PreconditionError{Op: op, Want: want, Got: b.Status}
	}
	return nil
}

// fail surfaces the collaborator's message verbatim, or the per-operation
// fallback when there is none. Only Error and Loading change; everything
// else keeps its pre-call value.
func (s *Session) fail(op Op, err error) error {
	msg := fallbackMessages[op]
	if err != nil && err.Error() != "" {
		msg = err.Error()
	}
	s.mu.Lock()
	s.state.Loading = false
	s.state.Error = msg
	s.mu.Unlock()
	logger.WorkflowResult(string(op), s.bookingID, err)
	return err
}

// succeed records the success message, applies any op-specific state
// mutation, and schedules the display-delay expiry that clears the message
// and emits the refresh event.
func (s *Session) succeed(op Op, msg string, mutate func(*State)) {
	s.mu.Lock()
	s.state.Loading = false
	s.state.Success = msg
	if mutate != nil {
		mutate(&s.state)
	}
	s.scheduleLocked(op)
	s.mu.Unlock()
	logger.WorkflowResult(string(op), s.bookingID, nil)
}

// settle records a successful settlement: the summary panel closes and any
// pending auto summary fetch is cancelled, since the booking is no longer
// settling.
func (s *Session) settle(op Op, msg string) {
	s.mu.Lock()
	s.state.Loading = false
	s.state.Success = msg
	s.state.ShowRefundSummary = false
	if s.chain != nil {
		s.chain.Stop()
		s.chain = nil
	}
	s.scheduleLocked(op)
	s.mu.Unlock()
	logger.WorkflowResult(string(op), s.bookingID, nil)
}

// scheduleLocked arms the success timer. On expiry the success message is
// cleared and the completion event emitted. Callers must hold s.mu.
func (s *Session) scheduleLocked(op Op) {
	if s.timer != nil {
		s.timer.Stop()
	}
	s.pending = op
	s.timer = time.AfterFunc(s.delay, func() {
		s.mu.Lock()
		s.state.Success = ""
		s.timer = nil
		s.mu.Unlock()
		s.notify(op)
	})
}

// notify emits a completion event without ever blocking an operation on a
// slow host.
func (s *Session) notify(op Op) {
	select {
	case s.events <- Event{BookingID: s.bookingID, Op: op}:
	default:
		logger.Warn("Workflow event dropped, host not draining", "booking_id", s.bookingID, "op", op)
	}
}

// scheduleSummaryChainLocked arms the follow-up settlement summary fetch on
// its own timer. The fetch is mandatory once a damage report lands, so
// starting another action never cancels it. Callers must hold s.mu.
func (s *Session) scheduleSummaryChainLocked() {
	if s.chain != nil {
		s.chain.Stop()
	}
	s.chain = time.AfterFunc(s.delay, s.runSummaryChain)
}

func (s *Session) runSummaryChain() {
	err := s.FetchRefundSummary(context.Background())
	if errors.Is(err, ErrOperationInFlight) {
		// Another action holds the session; try again after the delay.
		s.mu.Lock()
		s.chain = time.AfterFunc(s.delay, s.runSummaryChain)
		s.mu.Unlock()
		return
	}
	if err != nil {
		logger.Warn("Auto refund summary fetch failed", "booking_id", s.bookingID, "error", err)
	}
	s.mu.Lock()
	s.chain = nil
	s.mu.Unlock()
}
