package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStepStatusOf(t *testing.T) {
	tests := []struct {
		name     string
		status   BookingStatus
		step     int
		expected StepStatus
	}{
		{"pending step 1 done", BookingStatusPending, 1, StepCompleted},
		{"pending step 2 current", BookingStatusPending, 2, StepCurrent},
		{"pending step 3 upcoming", BookingStatusPending, 3, StepUpcoming},
		{"reserved step 3 done", BookingStatusReserved, 3, StepCompleted},
		{"reserved step 4 current", BookingStatusReserved, 4, StepCurrent},
		{"reserved step 5 upcoming", BookingStatusReserved, 5, StepUpcoming},
		{"active step 5 done", BookingStatusActive, 5, StepCompleted},
		{"active step 6 current", BookingStatusActive, 6, StepCurrent},
		{"returning step 6 done", BookingStatusReturning, 6, StepCompleted},
		{"returning step 7 current", BookingStatusReturning, 7, StepCurrent},
		{"returning step 8 upcoming", BookingStatusReturning, 8, StepUpcoming},
		{"completed step 8 done", BookingStatusCompleted, 8, StepCompleted},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, StepStatusOf(tt.status, tt.step))
		})
	}
}

func TestStepStatusOf_Cancelled(t *testing.T) {
	// A cancelled booking sits at ladder position 0: every step reads
	// as upcoming regardless of how far the booking got.
	for step := 1; step <= len(WorkflowSteps); step++ {
		assert.Equal(t, StepUpcoming, StepStatusOf(BookingStatusCancelled, step), "step %d", step)
	}
}

func TestStepStatusOf_Monotonicity(t *testing.T) {
	order := []BookingStatus{
		BookingStatusPending,
		BookingStatusReserved,
		BookingStatusActive,
		BookingStatusReturning,
		BookingStatusCompleted,
	}

	for _, status := range order {
		pos := ladderPosition[status]
		currents := 0
		for step := 1; step <= len(WorkflowSteps); step++ {
			got := StepStatusOf(status, step)
			if got == StepCompleted {
				assert.LessOrEqual(t, step, pos, "status %s marked step %d completed beyond ladder position", status, step)
			}
			if got == StepCurrent {
				currents++
			}
		}
		assert.LessOrEqual(t, currents, 1, "status %s has more than one current step", status)
	}
}

func TestStepStatusOf_Idempotent(t *testing.T) {
	for step := 1; step <= len(WorkflowSteps); step++ {
		first := StepStatusOf(BookingStatusReturning, step)
		second := StepStatusOf(BookingStatusReturning, step)
		assert.Equal(t, first, second)
	}
}

func TestEvaluateSteps_ContractGating(t *testing.T) {
	b := &Booking{Status: BookingStatusReserved}

	t.Run("No contract yet", func(t *testing.T) {
		views := EvaluateSteps(b)
		assert.Len(t, views, 8)
		assert.True(t, views[2].ActionRequired, "contract upload should be pending")
		assert.False(t, views[3].ActionRequired, "inspection locked until contract exists")
	})

	t.Run("Contract uploaded", func(t *testing.T) {
		b.ContractURL = "http://localhost:8080/api/v1/download/contracts/1.pdf"
		views := EvaluateSteps(b)
		assert.False(t, views[2].ActionRequired)
		assert.True(t, views[3].ActionRequired, "inspection unlocked once contract exists")
	})

	t.Run("Active booking waits on return", func(t *testing.T) {
		active := &Booking{Status: BookingStatusActive, ContractURL: "x"}
		views := EvaluateSteps(active)
		assert.True(t, views[5].ActionRequired)
		assert.False(t, views[6].ActionRequired)
	})
}
