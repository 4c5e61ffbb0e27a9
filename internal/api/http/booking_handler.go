package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"evrental-backend/internal/domain"
	"evrental-backend/internal/service"
	"evrental-backend/internal/workflow"

	"github.com/gorilla/mux"
)

// BookingHandler serves booking CRUD and the staff workflow operations.
// Workflow endpoints go through the per-booking session so submission
// state and gating behave the same for every caller.
type BookingHandler struct {
	bookingSvc service.BookingService
	sessions   *workflow.Manager
}

func NewBookingHandler(bookingSvc service.BookingService, sessions *workflow.Manager) *BookingHandler {
	return &BookingHandler{bookingSvc: bookingSvc, sessions: sessions}
}

func bookingID(r *http.Request) (int32, error) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 32)
	return int32(id), err
}

func (h *BookingHandler) Create(w http.ResponseWriter, r *http.Request) {
	var b domain.Booking
	if err := json.NewDecoder(r.Body).Decode(&b); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := h.bookingSvc.CreateBooking(r.Context(), &b); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, http.StatusCreated, b)
}

func (h *BookingHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := bookingID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid booking id")
		return
	}
	b, err := h.bookingSvc.GetBooking(r.Context(), id)
	if err != nil {
		writeError(w, http.StatusNotFound, "booking not found")
		return
	}
	writeJSON(w, http.StatusOK, b)
}

// Steps returns the booking together with the evaluated workflow ladder
// and the session's submission state.
func (h *BookingHandler) Steps(w http.ResponseWriter, r *http.Request) {
	id, err := bookingID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid booking id")
		return
	}
	b, steps, err := h.bookingSvc.EvaluateSteps(r.Context(), id)
	if err != nil {
		writeError(w, http.StatusNotFound, "booking not found")
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"booking": b,
		"steps":   steps,
		"state":   h.sessions.Session(id).State(),
	})
}

func (h *BookingHandler) Confirm(w http.ResponseWriter, r *http.Request) {
	id, err := bookingID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid booking id")
		return
	}
	b, err := h.bookingSvc.ConfirmBooking(r.Context(), id)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, b)
}

func (h *BookingHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	id, err := bookingID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid booking id")
		return
	}
	var body struct {
		Reason string `json:"reason"`
	}
	_ = json.NewDecoder(r.Body).Decode(&body)

	b, err := h.bookingSvc.CancelBooking(r.Context(), id, body.Reason)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	h.sessions.Release(id)
	writeJSON(w, http.StatusOK, b)
}

func (h *BookingHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	page, pageSize := pagination(q.Get("page"), q.Get("page_size"))
	status := q.Get("status")

	var (
		bookings []domain.Booking
		count    int32
		err      error
	)
	if sid := q.Get("station_id"); sid != "" {
		stationID, _ := strconv.ParseInt(sid, 10, 32)
		bookings, count, err = h.bookingSvc.ListByStation(r.Context(), int32(stationID), status, page, pageSize)
	} else if rid := q.Get("renter_id"); rid != "" {
		renterID, _ := strconv.ParseInt(rid, 10, 32)
		bookings, count, err = h.bookingSvc.ListByRenter(r.Context(), int32(renterID), status, page, pageSize)
	} else {
		writeError(w, http.StatusBadRequest, "station_id or renter_id is required")
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"bookings":    bookings,
		"total_count": count,
	})
}

// --- workflow operations ---

// UploadContract handles the multipart contract upload (field "contract").
func (h *BookingHandler) UploadContract(w http.ResponseWriter, r *http.Request) {
	id, err := bookingID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid booking id")
		return
	}
	file, err := formFile(r, "contract")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	session := h.sessions.Session(id)
	if err := session.UploadContract(r.Context(), *file); err != nil {
		writeWorkflowError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, session.State())
}

func (h *BookingHandler) DeleteContract(w http.ResponseWriter, r *http.Request) {
	id, err := bookingID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid booking id")
		return
	}
	session := h.sessions.Session(id)
	if err := session.DeleteContract(r.Context()); err != nil {
		writeWorkflowError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, session.State())
}

// PreRental logs the handover inspection. Battery level and mileage are
// form fields; damage photos ride along as "photos".
func (h *BookingHandler) PreRental(w http.ResponseWriter, r *http.Request) {
	id, err := bookingID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid booking id")
		return
	}
	in := service.PreRentalInput{InspectedBy: staffID(r)}
	if err := parseInspectionForm(r, &in.BatteryLevel, &in.Mileage, &in.DamagePhotos); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	session := h.sessions.Session(id)
	if err := session.LogPreRentalCondition(r.Context(), in); err != nil {
		writeWorkflowError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, session.State())
}

func (h *BookingHandler) Return(w http.ResponseWriter, r *http.Request) {
	id, err := bookingID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid booking id")
		return
	}
	in := service.PostRentalInput{InspectedBy: staffID(r)}
	if err := parseInspectionForm(r, &in.BatteryLevel, &in.Mileage, &in.DashboardPhotos); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	session := h.sessions.Session(id)
	if err := session.MarkReturned(r.Context(), in); err != nil {
		writeWorkflowError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, session.State())
}

func (h *BookingHandler) RefundSummary(w http.ResponseWriter, r *http.Request) {
	id, err := bookingID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid booking id")
		return
	}
	session := h.sessions.Session(id)
	if err := session.FetchRefundSummary(r.Context()); err != nil {
		writeWorkflowError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, session.State())
}

func (h *BookingHandler) Refund(w http.ResponseWriter, r *http.Request) {
	id, err := bookingID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid booking id")
		return
	}
	if err := r.ParseMultipartForm(32 << 20); err != nil {
		writeError(w, http.StatusBadRequest, "invalid multipart form")
		return
	}

	in := service.RefundInput{Notes: r.FormValue("notes")}
	if proof, err := formFile(r, "proof"); err == nil {
		in.ProofImage = proof
	}

	session := h.sessions.Session(id)
	if err := session.RefundDeposit(r.Context(), in); err != nil {
		writeWorkflowError(w, err)
		return
	}
	// Snapshot before releasing so the response carries the refund service's
	// message, including the zero-balance variant. Releasing here drops the
	// session's success window and its final completion event on purpose: the
	// booking has left the workflow and there is nothing left to refresh.
	st := session.State()
	h.sessions.Release(id)
	writeJSON(w, http.StatusOK, st)
}

func (h *BookingHandler) PayAdditional(w http.ResponseWriter, r *http.Request) {
	id, err := bookingID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid booking id")
		return
	}
	if err := r.ParseMultipartForm(32 << 20); err != nil {
		writeError(w, http.StatusBadRequest, "invalid multipart form")
		return
	}

	amount, _ := strconv.ParseInt(r.FormValue("amount_cents"), 10, 64)
	in := service.AdditionalPaymentInput{AmountCents: amount}
	if proof, err := formFile(r, "proof"); err == nil {
		in.ProofImage = proof
	}

	session := h.sessions.Session(id)
	if err := session.PayAdditional(r.Context(), in); err != nil {
		writeWorkflowError(w, err)
		return
	}
	// Same as Refund: answer with the payment service's message, then release.
	// The release deliberately suppresses the session's success window and
	// final completion event; the booking is settled and leaves the workflow.
	st := session.State()
	h.sessions.Release(id)
	writeJSON(w, http.StatusOK, st)
}

func (h *BookingHandler) DamageReport(w http.ResponseWriter, r *http.Request) {
	id, err := bookingID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid booking id")
		return
	}
	if err := r.ParseMultipartForm(32 << 20); err != nil {
		writeError(w, http.StatusBadRequest, "invalid multipart form")
		return
	}

	cost, _ := strconv.ParseInt(r.FormValue("estimated_cost_cents"), 10, 64)
	in := service.DamageReportInput{
		Description:        r.FormValue("description"),
		EstimatedCostCents: cost,
		Photos:             formFiles(r, "photos"),
		ReportedBy:         staffID(r),
	}

	session := h.sessions.Session(id)
	if err := session.SubmitDamageReport(r.Context(), in); err != nil {
		writeWorkflowError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, session.State())
}

// writeWorkflowError maps workflow errors onto HTTP statuses: validation
// and precondition problems are the client's to fix, a busy session is a
// conflict, anything else is the collaborator failing.
func writeWorkflowError(w http.ResponseWriter, err error) {
	var ve workflow.ValidationError
	var pe workflow.PreconditionError
	switch {
	case errors.Is(err, workflow.ErrOperationInFlight):
		writeError(w, http.StatusConflict, err.Error())
	case errors.As(err, &ve), errors.As(err, &pe):
		writeError(w, http.StatusUnprocessableEntity, err.Error())
	default:
		writeError(w, http.StatusBadGateway, err.Error())
	}
}

func staffID(r *http.Request) int32 {
	if claims := claimsFrom(r); claims != nil {
		return claims.UserID
	}
	return 0
}

func pagination(pageStr, sizeStr string) (int32, int32) {
	page, _ := strconv.ParseInt(pageStr, 10, 32)
	size, _ := strconv.ParseInt(sizeStr, 10, 32)
	if page < 1 {
		page = 1
	}
	if size < 1 || size > 100 {
		size = 20
	}
	return int32(page), int32(size)
}
