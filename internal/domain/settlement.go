package domain

// SettlementOutcome is the direction money moves when a booking settles.
type SettlementOutcome string

const (
	// OutcomeRefund means the renter is owed part or all of the deposit back.
	OutcomeRefund SettlementOutcome = "refund"
	// OutcomeAdditionalPayment means fees exceeded the deposit and the renter
	// owes the difference.
	OutcomeAdditionalPayment SettlementOutcome = "additional_payment"
	// OutcomeSettled means deposit and fees cancel out exactly.
	OutcomeSettled SettlementOutcome = "settled"
)

// RefundSummary is the computed settlement for one booking at return time.
// RefundAmountCents is signed: positive means a refund is owed to the
// renter, negative means the renter owes abs(amount) on top of the deposit.
// Ephemeral; recomputed from raw totals whenever requested.
type RefundSummary struct {
	TotalDepositCents int64             `json:"total_deposit_cents"`
	LateFeeCents      int64             `json:"late_fee_cents"`
	RefundAmountCents int64             `json:"refund_amount_cents"`
	Outcome           SettlementOutcome `json:"outcome"`
}

// ComputeSettlement derives the refund-or-charge decision from the deposit
// and the accumulated fee total. Both inputs are non-negative amounts in the
// same currency unit. No rounding happens here; amounts are integer cents
// end to end.
func ComputeSettlement(totalDepositCents, lateFeeCents int64) RefundSummary {
	refund := totalDepositCents - lateFeeCents

	var outcome SettlementOutcome
	switch {
	case refund > 0:
		outcome = OutcomeRefund
	case refund < 0:
		outcome = OutcomeAdditionalPayment
	default:
		outcome = OutcomeSettled
	}

	return RefundSummary{
		TotalDepositCents: totalDepositCents,
		LateFeeCents:      lateFeeCents,
		RefundAmountCents: refund,
		Outcome:           outcome,
	}
}

// AmountDueCents is the pre-filled additional payment amount for the
// operator form. Zero unless the outcome is an additional payment.
func (s RefundSummary) AmountDueCents() int64 {
	if s.RefundAmountCents < 0 {
		return -s.RefundAmountCents
	}
	return 0
}
