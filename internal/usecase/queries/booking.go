package queries

import (
	"context"
	"time"

	"hotel-frontdesk/internal/domain/booking"
	"hotel-frontdesk/internal/infra"
	"hotel-frontdesk/internal/pkg/errs"

	"github.com/google/uuid"
)

// Read models (DTO for read side)
type BookingView struct {
	ID                uuid.UUID            `json:"id"`
	RoomNumber        string               `json:"room_number"`
	GuestName         string               `json:"guest_name"`
	GuestCount        int                  `json:"guest_count"`
	Status            string               `json:"status"`
	CheckIn           time.Time            `json:"check_in"`
	CheckOut          time.Time            `json:"check_out"`
	ActualCheckOut    *time.Time           `json:"actual_check_out,omitempty"`
	OriginalAmount    int64                `json:"original_amount_cents"`
	DiscountAmount    int64                `json:"discount_amount_cents"`
	DiscountReason    *string              `json:"discount_reason,omitempty"`
	DiscountAppliedAt *time.Time           `json:"discount_applied_at,omitempty"`
	DiscountAppliedBy *string              `json:"discount_applied_by,omitempty"`
	TaxAmount         int64                `json:"tax_amount_cents"`
	TotalAmount       int64                `json:"total_amount_cents"`
	Version           int64                `json:"version"`
	Summary           FinancialSummaryView `json:"summary"`
	Payments          []PaymentView        `json:"payments"`
	ExtraCharges      []ExtraChargeView    `json:"extra_charges"`
	CreatedAt         time.Time            `json:"created_at"`
	UpdatedAt         time.Time            `json:"updated_at"`
}

type PaymentView struct {
	ID        uuid.UUID `json:"id"`
	Amount    int64     `json:"amount_cents"`
	Method    string    `json:"method"`
	Status    string    `json:"status"`
	Reference *string   `json:"reference,omitempty"`
	PaidAt    time.Time `json:"paid_at"`
}

type ExtraChargeView struct {
	ID          uuid.UUID `json:"id"`
	Description string    `json:"description"`
	Amount      int64     `json:"amount_cents"`
	Quantity    int       `json:"quantity"`
	LineTotal   int64     `json:"line_total_cents"`
	ChargedAt   time.Time `json:"charged_at"`
}

type FinancialSummaryView struct {
	TotalPaid         int64         `json:"total_paid_cents"`
	TotalExtras       int64         `json:"total_extras_cents"`
	TotalFinal        int64         `json:"total_final_cents"`
	TotalPending      int64         `json:"total_pending_cents"`
	IsFullyPaid       bool          `json:"is_fully_paid"`
	PaymentPercentage int           `json:"payment_percentage"`
	PaymentState      string        `json:"payment_state"`
	Breakdown         BreakdownView `json:"breakdown"`
}

type BreakdownView struct {
	RoomCharge int64               `json:"room_charge_cents"`
	Tax        int64               `json:"tax_cents"`
	Discounts  []DiscountLineView  `json:"discounts"`
	Extras     []ExtraLineView     `json:"extras"`
	Payments   []PaymentLineView   `json:"payments"`
}

type DiscountLineView struct {
	Amount int64  `json:"amount_cents"`
	Reason string `json:"reason"`
}

type ExtraLineView struct {
	Description string `json:"description"`
	UnitAmount  int64  `json:"unit_amount_cents"`
	Quantity    int    `json:"quantity"`
	LineTotal   int64  `json:"line_total_cents"`
}

type PaymentLineView struct {
	Amount    int64  `json:"amount_cents"`
	Method    string `json:"method"`
	Status    string `json:"status"`
	Reference string `json:"reference,omitempty"`
	Counted   bool   `json:"counted"`
}

// NewBookingView projects a booking aggregate, including its reconciled
// financial summary, into the read model.
func NewBookingView(b *booking.Booking) *BookingView {
	if b == nil {
		return nil
	}

	payments := make([]PaymentView, 0, len(b.Payments()))
	for _, p := range b.Payments() {
		var ref *string
		if p.Reference != "" {
			r := p.Reference
			ref = &r
		}
		payments = append(payments, PaymentView{
			ID:        p.ID,
			Amount:    p.Amount.Cents(),
			Method:    string(p.Method),
			Status:    string(p.Status),
			Reference: ref,
			PaidAt:    p.PaidAt,
		})
	}

	extras := make([]ExtraChargeView, 0, len(b.ExtraCharges()))
	for _, e := range b.ExtraCharges() {
		extras = append(extras, ExtraChargeView{
			ID:          e.ID,
			Description: e.Description,
			Amount:      e.Amount.Cents(),
			Quantity:    e.Quantity,
			LineTotal:   e.LineTotal().Cents(),
			ChargedAt:   e.ChargedAt,
		})
	}

	var discountReason, discountAppliedBy *string
	if b.DiscountReason() != "" {
		r := b.DiscountReason()
		discountReason = &r
	}
	if b.DiscountAppliedBy() != "" {
		ab := b.DiscountAppliedBy()
		discountAppliedBy = &ab
	}

	return &BookingView{
		ID:                b.ID(),
		RoomNumber:        b.RoomNumber(),
		GuestName:         b.GuestName(),
		GuestCount:        b.GuestCount(),
		Status:            b.Status().String(),
		CheckIn:           b.Stay().CheckIn(),
		CheckOut:          b.Stay().CheckOut(),
		ActualCheckOut:    b.ActualCheckOut(),
		OriginalAmount:    b.OriginalAmount().Cents(),
		DiscountAmount:    b.DiscountAmount().Cents(),
		DiscountReason:    discountReason,
		DiscountAppliedAt: b.DiscountAppliedAt(),
		DiscountAppliedBy: discountAppliedBy,
		TaxAmount:         b.TaxAmount().Cents(),
		TotalAmount:       b.TotalAmount().Cents(),
		Version:           b.Version(),
		Summary:           NewFinancialSummaryView(booking.Summarize(b)),
		Payments:          payments,
		ExtraCharges:      extras,
		CreatedAt:         b.CreatedAt(),
		UpdatedAt:         b.UpdatedAt(),
	}
}

func NewFinancialSummaryView(s booking.FinancialSummary) FinancialSummaryView {
	discounts := make([]DiscountLineView, 0, len(s.Breakdown.Discounts))
	for _, d := range s.Breakdown.Discounts {
		discounts = append(discounts, DiscountLineView{Amount: d.Amount.Cents(), Reason: d.Reason})
	}
	extras := make([]ExtraLineView, 0, len(s.Breakdown.Extras))
	for _, e := range s.Breakdown.Extras {
		extras = append(extras, ExtraLineView{
			Description: e.Description,
			UnitAmount:  e.UnitAmount.Cents(),
			Quantity:    e.Quantity,
			LineTotal:   e.LineTotal.Cents(),
		})
	}
	payments := make([]PaymentLineView, 0, len(s.Breakdown.Payments))
	for _, p := range s.Breakdown.Payments {
		payments = append(payments, PaymentLineView{
			Amount:    p.Amount.Cents(),
			Method:    string(p.Method),
			Status:    string(p.Status),
			Reference: p.Reference,
			Counted:   p.Counted,
		})
	}

	return FinancialSummaryView{
		TotalPaid:         s.TotalPaid.Cents(),
		TotalExtras:       s.TotalExtras.Cents(),
		TotalFinal:        s.TotalFinal.Cents(),
		TotalPending:      s.TotalPending.Cents(),
		IsFullyPaid:       s.IsFullyPaid,
		PaymentPercentage: s.PaymentPercentage,
		PaymentState:      string(s.PaymentState),
		Breakdown: BreakdownView{
			RoomCharge: s.Breakdown.RoomCharge.Cents(),
			Tax:        s.Breakdown.Tax.Cents(),
			Discounts:  discounts,
			Extras:     extras,
			Payments:   payments,
		},
	}
}

type BookingQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*BookingView, error)
}

// BookingReadStore loads full aggregates from the read side.
type BookingReadStore interface {
	FindAggregateByID(ctx context.Context, id uuid.UUID) (*booking.Booking, error)
}

type bookingQueriesImpl struct {
	store BookingReadStore
}

func NewBookingQueries(store BookingReadStore) BookingQueries {
	return &bookingQueriesImpl{store: store}
}

func (q *bookingQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*BookingView, error) {
	b, err := q.store.FindAggregateByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrBookingNotFound)
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return NewBookingView(b), nil
}
