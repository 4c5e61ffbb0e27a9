package domain

// StepStatus classifies one workflow step relative to a booking's current
// lifecycle status. Derived on every evaluation, never persisted.
type StepStatus string

const (
	StepCompleted StepStatus = "completed"
	StepCurrent   StepStatus = "current"
	StepUpcoming  StepStatus = "upcoming"
)

// ladderPosition maps each booking status to an ordinal on the workflow
// ladder. The gaps (2, 4, 7, 8) are intentional slack: several workflow
// steps share the same booking status (steps 3 and 4 both happen while
// the booking is reserved). Cancelled sits at 0 so no step ever reads as
// completed or current for a cancelled booking.
var ladderPosition = map[BookingStatus]int{
	BookingStatusPending:   1,
	BookingStatusReserved:  3,
	BookingStatusActive:    5,
	BookingStatusReturning: 6,
	BookingStatusCompleted: 9,
	BookingStatusCancelled: 0,
}

// StepStatusOf classifies step stepNumber (1..8) against the current
// booking status. A step is completed once the ladder has reached it,
// current when it is the very next step, and upcoming otherwise.
// Pure function; safe to call from anywhere, any number of times.
func StepStatusOf(current BookingStatus, stepNumber int) StepStatus {
	cur := ladderPosition[current]
	switch {
	case cur >= stepNumber:
		return StepCompleted
	case cur == stepNumber-1:
		return StepCurrent
	default:
		return StepUpcoming
	}
}

// WorkflowStep is one of the eight fixed operator actions in the rental
// lifecycle. Definitions are immutable and replayed identically for every
// booking.
type WorkflowStep struct {
	Number      int           `json:"number"`
	Label       string        `json:"label"`
	Status      BookingStatus `json:"status"`
	Description string        `json:"description"`
}

// WorkflowSteps is the fixed, ordered step table for the rental workflow.
var WorkflowSteps = []WorkflowStep{
	{1, "Booking received", BookingStatusPending, "Renter submitted a booking request"},
	{2, "Reservation confirmed", BookingStatusReserved, "Deposit collected and vehicle reserved"},
	{3, "Contract signed", BookingStatusReserved, "Rental contract uploaded and attached to the booking"},
	{4, "Pre-rental inspection", BookingStatusReserved, "Battery, mileage and condition logged at handover"},
	{5, "Rental in progress", BookingStatusActive, "Vehicle is out with the renter"},
	{6, "Vehicle returned", BookingStatusActive, "Return inspection logged at the station"},
	{7, "Deposit settlement", BookingStatusReturning, "Damage review, refund or additional payment"},
	{8, "Booking completed", BookingStatusCompleted, "Deposit settled and booking closed"},
}

// StepView is the per-booking evaluation of one workflow step.
type StepView struct {
	WorkflowStep
	StepStatus     StepStatus `json:"step_status"`
	ActionRequired bool       `json:"action_required"`
}

// EvaluateSteps classifies every workflow step against the booking and
// flags the steps that need operator input right now.
func EvaluateSteps(b *Booking) []StepView {
	views := make([]StepView, 0, len(WorkflowSteps))
	for _, step := range WorkflowSteps {
		v := StepView{
			WorkflowStep: step,
			StepStatus:   StepStatusOf(b.Status, step.Number),
		}
		v.ActionRequired = actionRequired(b, step.Number, v.StepStatus)
		views = append(views, v)
	}
	return views
}

// actionRequired marks steps whose operator action is actually pending,
// beyond being merely "current" on the ladder. Contract upload stays
// flagged while the booking is reserved with no contract attached, and
// the pre-rental inspection only unlocks once the contract exists.
func actionRequired(b *Booking, stepNumber int, st StepStatus) bool {
	switch stepNumber {
	case 3:
		return b.Status == BookingStatusReserved && !b.HasContract()
	case 4:
		return b.Status == BookingStatusReserved && b.HasContract()
	default:
		return st == StepCurrent
	}
}
