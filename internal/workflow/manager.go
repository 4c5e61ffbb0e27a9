package workflow

import (
	"sync"
	"time"

	"evrental-backend/internal/service"
)

// Manager hands out one Session per booking. Submission state is scoped to
// a booking and never shared: requesting a session for a booking that
// already has one returns the existing session.
type Manager struct {
	bookings    BookingGetter
	contracts   service.ContractService
	inspections service.InspectionService
	damages     service.DamageService
	refunds     service.RefundService
	delay       time.Duration

	mu       sync.Mutex
	sessions map[int32]*Session
}

func NewManager(
	bookings BookingGetter,
	contracts service.ContractService,
	inspections service.InspectionService,
	damages service.DamageService,
	refunds service.RefundService,
	delay time.Duration,
) *Manager {
	return &Manager{
		bookings:    bookings,
		contracts:   contracts,
		inspections: inspections,
		damages:     damages,
		refunds:     refunds,
		delay:       delay,
		sessions:    make(map[int32]*Session),
	}
}

// Session returns the workflow session for the booking, creating it on
// first use.
func (m *Manager) Session(bookingID int32) *Session {
	m.mu.Lock()
	defer m.mu.Unlock()
	if s, ok := m.sessions[bookingID]; ok {
		return s
	}
	s := NewSession(bookingID, m.bookings, m.contracts, m.inspections, m.damages, m.refunds, m.delay)
	m.sessions[bookingID] = s
	return s
}

// Release drops the booking's session and resets its state. Called when a
// booking completes or is cancelled.
func (m *Manager) Release(bookingID int32) {
	m.mu.Lock()
	s, ok := m.sessions[bookingID]
	delete(m.sessions, bookingID)
	m.mu.Unlock()
	if ok {
		s.Close()
	}
}
