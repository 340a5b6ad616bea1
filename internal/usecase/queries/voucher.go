package queries

import (
	"context"
	"time"

	"hotel-frontdesk/internal/domain/voucher"
	"hotel-frontdesk/internal/infra"
	"hotel-frontdesk/internal/pkg/errs"

	"github.com/google/uuid"
)

type VoucherView struct {
	ID                uuid.UUID  `json:"id"`
	Code              string     `json:"code"`
	Amount            int64      `json:"amount_cents"`
	Status            string     `json:"status"`
	OriginalBookingID uuid.UUID  `json:"original_booking_id"`
	UsedBookingID     *uuid.UUID `json:"used_booking_id,omitempty"`
	CreatedAt         time.Time  `json:"created_at"`
	ExpiresAt         time.Time  `json:"expires_at"`
	UsedAt            *time.Time `json:"used_at,omitempty"`
}

func NewVoucherView(v *voucher.Voucher) *VoucherView {
	if v == nil {
		return nil
	}
	return &VoucherView{
		ID:                v.ID(),
		Code:              v.Code(),
		Amount:            v.AmountCents(),
		Status:            string(v.Status()),
		OriginalBookingID: v.OriginalBookingID(),
		UsedBookingID:     v.UsedBookingID(),
		CreatedAt:         v.CreatedAt(),
		ExpiresAt:         v.ExpiresAt(),
		UsedAt:            v.UsedAt(),
	}
}

type VoucherReadStore interface {
	FindByCode(ctx context.Context, code string) (*voucher.Voucher, error)
	FindByID(ctx context.Context, id uuid.UUID) (*voucher.Voucher, error)
}

type VoucherQueries interface {
	GetByCode(ctx context.Context, code string) (*VoucherView, error)
}

type voucherQueriesImpl struct {
	store VoucherReadStore
}

func NewVoucherQueries(store VoucherReadStore) VoucherQueries {
	return &voucherQueriesImpl{store: store}
}

func (q *voucherQueriesImpl) GetByCode(ctx context.Context, code string) (*VoucherView, error) {
	v, err := q.store.FindByCode(ctx, code)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrVoucherNotFound)
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return NewVoucherView(v), nil
}
