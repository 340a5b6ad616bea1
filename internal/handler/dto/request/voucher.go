package request

import (
	"time"

	"github.com/google/uuid"
)

type IssueVoucherRequest struct {
	AmountCents       int64      `json:"amount_cents" binding:"required,min=1"`
	OriginalBookingID uuid.UUID  `json:"original_booking_id" binding:"required"`
	ExpiresAt         *time.Time `json:"expires_at,omitempty"`
}

type RedeemVoucherRequest struct {
	BookingID uuid.UUID `json:"booking_id" binding:"required"`
}
