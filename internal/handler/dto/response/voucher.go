package response

import (
	"time"

	"hotel-frontdesk/internal/usecase/commands"
	"hotel-frontdesk/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type VoucherResponse struct {
	ID                uuid.UUID  `json:"id"`
	Code              string     `json:"code"`
	Amount            int64      `json:"amountCents"`
	Status            string     `json:"status"`
	OriginalBookingID uuid.UUID  `json:"originalBookingId"`
	UsedBookingID     *uuid.UUID `json:"usedBookingId,omitempty"`
	CreatedAt         time.Time  `json:"createdAt"`
	ExpiresAt         time.Time  `json:"expiresAt"`
	UsedAt            *time.Time `json:"usedAt,omitempty"`
}

type RedeemResponse struct {
	Voucher *VoucherResponse `json:"voucher"`
	Booking *BookingResponse `json:"booking"`
}

func FromVoucherView(view *queries.VoucherView) *VoucherResponse {
	if view == nil {
		return nil
	}
	var resp VoucherResponse
	if err := copier.Copy(&resp, view); err != nil {
		return nil
	}
	return &resp
}

func FromRedeemResult(result *commands.RedeemResult) *RedeemResponse {
	return &RedeemResponse{
		Voucher: FromVoucherView(result.Voucher),
		Booking: FromBookingView(result.Booking),
	}
}
