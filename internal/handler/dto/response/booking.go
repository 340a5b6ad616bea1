package response

import (
	"time"

	"hotel-frontdesk/internal/domain/booking"
	"hotel-frontdesk/internal/usecase/commands"
	"hotel-frontdesk/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type BookingResponse struct {
	ID                uuid.UUID       `json:"id"`
	RoomNumber        string          `json:"roomNumber"`
	GuestName         string          `json:"guestName"`
	GuestCount        int             `json:"guestCount"`
	Status            string          `json:"status"`
	CheckIn           time.Time       `json:"checkIn"`
	CheckOut          time.Time       `json:"checkOut"`
	ActualCheckOut    *time.Time      `json:"actualCheckOut,omitempty"`
	OriginalAmount    int64           `json:"originalAmountCents"`
	DiscountAmount    int64           `json:"discountAmountCents"`
	DiscountReason    *string         `json:"discountReason,omitempty"`
	DiscountAppliedAt *time.Time      `json:"discountAppliedAt,omitempty"`
	DiscountAppliedBy *string         `json:"discountAppliedBy,omitempty"`
	TaxAmount         int64           `json:"taxAmountCents"`
	TotalAmount       int64           `json:"totalAmountCents"`
	Version           int64           `json:"version"`
	Summary           SummaryResponse `json:"summary"`
	Payments          []PaymentItem   `json:"payments"`
	ExtraCharges      []ExtraItem     `json:"extraCharges"`
	CreatedAt         time.Time       `json:"createdAt"`
	UpdatedAt         time.Time       `json:"updatedAt"`
}

type PaymentItem struct {
	ID        uuid.UUID `json:"id"`
	Amount    int64     `json:"amountCents"`
	Method    string    `json:"method"`
	Status    string    `json:"status"`
	Reference *string   `json:"reference,omitempty"`
	PaidAt    time.Time `json:"paidAt"`
}

type ExtraItem struct {
	ID          uuid.UUID `json:"id"`
	Description string    `json:"description"`
	Amount      int64     `json:"amountCents"`
	Quantity    int       `json:"quantity"`
	LineTotal   int64     `json:"lineTotalCents"`
	ChargedAt   time.Time `json:"chargedAt"`
}

type SummaryResponse struct {
	TotalPaid         int64             `json:"totalPaidCents"`
	TotalExtras       int64             `json:"totalExtrasCents"`
	TotalFinal        int64             `json:"totalFinalCents"`
	TotalPending      int64             `json:"totalPendingCents"`
	IsFullyPaid       bool              `json:"isFullyPaid"`
	PaymentPercentage int               `json:"paymentPercentage"`
	PaymentState      string            `json:"paymentState"`
	Breakdown         BreakdownResponse `json:"breakdown"`
}

type BreakdownResponse struct {
	RoomCharge int64          `json:"roomChargeCents"`
	Tax        int64          `json:"taxCents"`
	Discounts  []DiscountItem `json:"discounts"`
	Extras     []ExtraLine    `json:"extras"`
	Payments   []PaymentLine  `json:"payments"`
}

type DiscountItem struct {
	Amount int64  `json:"amountCents"`
	Reason string `json:"reason"`
}

type ExtraLine struct {
	Description string `json:"description"`
	UnitAmount  int64  `json:"unitAmountCents"`
	Quantity    int    `json:"quantity"`
	LineTotal   int64  `json:"lineTotalCents"`
}

type PaymentLine struct {
	Amount    int64  `json:"amountCents"`
	Method    string `json:"method"`
	Status    string `json:"status"`
	Reference string `json:"reference,omitempty"`
	Counted   bool   `json:"counted"`
}

type CheckoutResponse struct {
	Booking  *BookingResponse `json:"booking"`
	Warnings []string         `json:"warnings,omitempty"`
}

type CancelResponse struct {
	Booking     *BookingResponse `json:"booking"`
	Voucher     *VoucherResponse `json:"voucher,omitempty"`
	AppliedRule string           `json:"appliedRule"`
	Warning     string           `json:"warning,omitempty"`
}

type CancellationAssessmentResponse struct {
	CanCancel       bool   `json:"canCancel"`
	Reason          string `json:"reason,omitempty"`
	Refund          string `json:"refund"`
	AppliedRule     string `json:"appliedRule,omitempty"`
	EstimatedCredit int64  `json:"estimatedCreditCents"`
}

// FromBookingView maps the read model field-for-field; the structures are
// parallel so copier does the walk.
func FromBookingView(view *queries.BookingView) *BookingResponse {
	if view == nil {
		return nil
	}
	var resp BookingResponse
	if err := copier.Copy(&resp, view); err != nil {
		return nil
	}
	return &resp
}

func FromCheckoutResult(result *commands.CheckoutResult) *CheckoutResponse {
	return &CheckoutResponse{
		Booking:  FromBookingView(result.Booking),
		Warnings: result.Warnings,
	}
}

func FromCancelResult(result *commands.CancelResult) *CancelResponse {
	return &CancelResponse{
		Booking:     FromBookingView(result.Booking),
		Voucher:     FromVoucherView(result.Voucher),
		AppliedRule: result.AppliedRule,
		Warning:     result.Warning,
	}
}

func FromCancellationAssessment(a *booking.CancellationAssessment) *CancellationAssessmentResponse {
	return &CancellationAssessmentResponse{
		CanCancel:       a.CanCancel,
		Reason:          a.Reason,
		Refund:          string(a.Refund),
		AppliedRule:     a.AppliedRule,
		EstimatedCredit: a.EstimatedCredit.Cents(),
	}
}
