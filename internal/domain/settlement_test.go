package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputeSettlement(t *testing.T) {
	t.Run("Refund owed", func(t *testing.T) {
		s := ComputeSettlement(500000, 150000)
		assert.Equal(t, int64(350000), s.RefundAmountCents)
		assert.Equal(t, OutcomeRefund, s.Outcome)
		assert.Equal(t, int64(0), s.AmountDueCents())
	})

	t.Run("Renter owes additional payment", func(t *testing.T) {
		s := ComputeSettlement(200000, 450000)
		assert.Equal(t, int64(-250000), s.RefundAmountCents)
		assert.Equal(t, OutcomeAdditionalPayment, s.Outcome)
		assert.Equal(t, int64(250000), s.AmountDueCents())
	})

	t.Run("Exactly settled", func(t *testing.T) {
		s := ComputeSettlement(300000, 300000)
		assert.Equal(t, int64(0), s.RefundAmountCents)
		assert.Equal(t, OutcomeSettled, s.Outcome)
	})

	t.Run("Zero deposit zero fees", func(t *testing.T) {
		s := ComputeSettlement(0, 0)
		assert.Equal(t, OutcomeSettled, s.Outcome)
	})
}

func TestComputeSettlement_SignMatchesOutcome(t *testing.T) {
	tests := []struct {
		deposit int64
		fee     int64
	}{
		{0, 0},
		{1, 0},
		{0, 1},
		{100000, 99999},
		{99999, 100000},
		{500000, 500000},
		{1250000, 375000},
	}

	for _, tt := range tests {
		s := ComputeSettlement(tt.deposit, tt.fee)
		assert.Equal(t, tt.deposit-tt.fee, s.RefundAmountCents)
		switch {
		case s.RefundAmountCents > 0:
			assert.Equal(t, OutcomeRefund, s.Outcome)
		case s.RefundAmountCents < 0:
			assert.Equal(t, OutcomeAdditionalPayment, s.Outcome)
		default:
			assert.Equal(t, OutcomeSettled, s.Outcome)
		}
	}
}
