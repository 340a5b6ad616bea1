package request

import (
	"time"
)

type CreateBookingRequest struct {
	RoomNumber      string    `json:"room_number" binding:"required"`
	GuestName       string    `json:"guest_name" binding:"required"`
	GuestCount      int       `json:"guest_count" binding:"required,min=1"`
	CheckIn         time.Time `json:"check_in" binding:"required"`
	CheckOut        time.Time `json:"check_out" binding:"required"`
	RoomChargeCents int64     `json:"room_charge_cents" binding:"required,min=1"`
	TaxAmountCents  int64     `json:"tax_amount_cents" binding:"min=0"`
}

type SubmitPaymentRequest struct {
	AmountCents int64  `json:"amount_cents" binding:"required,min=1"`
	Method      string `json:"method" binding:"required,oneof=cash card transfer"`
	Reference   string `json:"reference,omitempty"`
}

type ExtraChargeRequest struct {
	Description string `json:"description" binding:"required"`
	AmountCents int64  `json:"amount_cents" binding:"required,min=1"`
	Quantity    int    `json:"quantity" binding:"required,min=1"`
}

type DiscountRequest struct {
	AmountCents int64  `json:"amount_cents" binding:"required,min=1"`
	Reason      string `json:"reason" binding:"required"`
}

type CheckoutRequest struct {
	// ActualCheckOut overrides the departure timestamp for early checkouts.
	ActualCheckOut      *time.Time `json:"actual_check_out,omitempty"`
	ForceCheckout       bool       `json:"force_checkout,omitempty"`
	EarlyCheckoutReason string     `json:"early_checkout_reason,omitempty"`
	DiscountCents       *int64     `json:"discount_cents,omitempty"`
	DiscountReason      string     `json:"discount_reason,omitempty"`
}

type CancelBookingRequest struct {
	Reason string `json:"reason,omitempty"`
}
