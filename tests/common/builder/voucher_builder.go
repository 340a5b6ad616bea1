//go:build unit || e2e

package builder

import (
	"time"

	"hotel-frontdesk/internal/domain/voucher"
	"hotel-frontdesk/internal/usecase/queries"

	"github.com/google/uuid"
)

type VoucherBuilder struct {
	ID                uuid.UUID
	Code              string
	AmountCents       int64
	Status            voucher.Status
	OriginalBookingID uuid.UUID
	UsedBookingID     *uuid.UUID
	CreatedAt         time.Time
	ExpiresAt         time.Time
	UsedAt            *time.Time
}

func NewVoucherBuilder() *VoucherBuilder {
	createdAt := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	return &VoucherBuilder{
		ID:                uuid.New(),
		Code:              voucher.NewCode(),
		AmountCents:       150_000,
		Status:            voucher.StatusActive,
		OriginalBookingID: uuid.New(),
		CreatedAt:         createdAt,
		ExpiresAt:         createdAt.AddDate(0, 0, 90),
	}
}

func (v *VoucherBuilder) WithStatus(s voucher.Status) *VoucherBuilder {
	v.Status = s
	return v
}

func (v *VoucherBuilder) WithAmount(cents int64) *VoucherBuilder {
	v.AmountCents = cents
	return v
}

func (v *VoucherBuilder) WithExpiresAt(t time.Time) *VoucherBuilder {
	v.ExpiresAt = t
	return v
}

func (v *VoucherBuilder) BuildView() *queries.VoucherView {
	return queries.NewVoucherView(v.BuildDomain())
}

func (v *VoucherBuilder) BuildDomain() *voucher.Voucher {
	return voucher.ReconstructVoucher(
		v.ID, v.Code, v.AmountCents, v.Status, v.OriginalBookingID,
		v.UsedBookingID, v.CreatedAt, v.ExpiresAt, v.UsedAt,
	)
}
