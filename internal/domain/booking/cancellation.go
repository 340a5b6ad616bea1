package booking

import (
	"fmt"
	"time"
)

// RefundClassification is what happens to money already collected when a
// booking is cancelled.
type RefundClassification string

const (
	RefundNone       RefundClassification = "none"
	RefundFullCredit RefundClassification = "full_credit"
	RefundForfeit    RefundClassification = "forfeit"
)

// CancellationPolicy decides whether a booking may be cancelled and how paid
// money is treated. Pure: it consumes the calculator's output and never
// mutates the aggregate.
type CancellationPolicy struct {
	// Minimum days before check-in for the cancellation to earn a credit
	// voucher for the amount already paid.
	RefundThresholdDays int
}

// CancellationAssessment is the computed decision. The presentation layer
// renders it and asks the operator to confirm an already-computed consequence.
type CancellationAssessment struct {
	CanCancel       bool
	Reason          string
	Refund          RefundClassification
	AppliedRule     string
	EstimatedCredit Money
}

func (p CancellationPolicy) Assess(b *Booking, summary FinancialSummary, now time.Time) CancellationAssessment {
	if b == nil {
		return CancellationAssessment{Reason: "Reserva no encontrada", Refund: RefundNone}
	}

	switch b.Status() {
	case StatusCancelled:
		return denied("La reserva ya fue cancelada")
	case StatusCheckedIn, StatusCompleted:
		return denied("Ya registrada entrada/salida")
	}

	daysUntil := b.Stay().DaysUntilCheckIn(now)
	if daysUntil < 0 {
		return denied("La fecha de entrada ya paso")
	}

	// A fully paid booking must go through checkout so the money collected
	// keeps its audit trail.
	if summary.IsFullyPaid && summary.TotalPaid.IsPositive() {
		return denied("Reserva pagada en su totalidad, debe realizar checkout")
	}

	assessment := CancellationAssessment{
		CanCancel: true,
		Refund:    RefundNone,
	}

	if !summary.TotalPaid.IsPositive() {
		assessment.AppliedRule = "Cancelacion sin pagos registrados"
		return assessment
	}

	if daysUntil >= p.RefundThresholdDays {
		assessment.Refund = RefundFullCredit
		assessment.EstimatedCredit = summary.TotalPaid
		assessment.AppliedRule = fmt.Sprintf(
			"Credito total: cancelacion con %d dias de anticipacion (minimo %d)",
			daysUntil, p.RefundThresholdDays,
		)
		return assessment
	}

	assessment.Refund = RefundForfeit
	assessment.AppliedRule = fmt.Sprintf(
		"No reembolsable: cancelacion con menos de %d dias de anticipacion",
		p.RefundThresholdDays,
	)
	return assessment
}

func denied(reason string) CancellationAssessment {
	return CancellationAssessment{CanCancel: false, Reason: reason, Refund: RefundNone}
}
