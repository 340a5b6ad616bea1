package repository

import (
	"context"

	"hotel-frontdesk/internal/domain/booking"
	"hotel-frontdesk/internal/infra"
	"hotel-frontdesk/internal/infra/db"
	"hotel-frontdesk/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type BookingRepository struct {
	db db.DBTX
}

func NewBookingRepository(dbtx db.DBTX) *BookingRepository {
	return &BookingRepository{db: dbtx}
}

const insertBookingSQL = `
INSERT INTO bookings (
    id, room_number, guest_name, guest_count, status,
    check_in, check_out, original_amount_cents, discount_amount_cents,
    tax_amount_cents, version, created_at, updated_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, 1, now(), now())
`

func (r *BookingRepository) Create(ctx context.Context, b *booking.Booking) (uuid.UUID, error) {
	_, err := r.db.Exec(ctx, insertBookingSQL,
		b.ID(), b.RoomNumber(), b.GuestName(), b.GuestCount(), b.Status().String(),
		b.Stay().CheckIn(), b.Stay().CheckOut(),
		b.OriginalAmount().Cents(), b.DiscountAmount().Cents(), b.TaxAmount().Cents(),
	)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create booking", err)
	}
	return b.ID(), nil
}

const insertPaymentSQL = `
INSERT INTO payments (id, booking_id, amount_cents, method, status, reference, paid_at, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, now())
`

func (r *BookingRepository) AddPayment(ctx context.Context, bookingID uuid.UUID, p booking.Payment, expectedVersion int64) error {
	var reference pgtype.Text
	if p.Reference != "" {
		reference = pgconv.StringToPgtype(p.Reference)
	}

	_, err := r.db.Exec(ctx, insertPaymentSQL,
		p.ID, bookingID, p.Amount.Cents(), string(p.Method), string(p.Status), reference, p.PaidAt,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to insert payment", err)
	}
	return r.bumpVersion(ctx, bookingID, expectedVersion)
}

const insertExtraChargeSQL = `
INSERT INTO extra_charges (id, booking_id, description, amount_cents, quantity, charged_at, created_at)
VALUES ($1, $2, $3, $4, $5, $6, now())
`

func (r *BookingRepository) AddExtraCharge(ctx context.Context, bookingID uuid.UUID, e booking.ExtraCharge, expectedVersion int64) error {
	_, err := r.db.Exec(ctx, insertExtraChargeSQL,
		e.ID, bookingID, e.Description, e.Amount.Cents(), e.Quantity, e.ChargedAt,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to insert extra charge", err)
	}
	return r.bumpVersion(ctx, bookingID, expectedVersion)
}

const saveDiscountSQL = `
UPDATE bookings SET
    discount_amount_cents = $3,
    discount_reason = $4,
    discount_applied_at = $5,
    discount_applied_by = $6,
    version = version + 1,
    updated_at = now()
WHERE id = $1 AND version = $2
`

func (r *BookingRepository) SaveDiscount(ctx context.Context, b *booking.Booking) error {
	tag, err := r.db.Exec(ctx, saveDiscountSQL,
		b.ID(), b.Version(),
		b.DiscountAmount().Cents(),
		nullableString(b.DiscountReason()),
		pgconv.TimePtrToPgtype(b.DiscountAppliedAt()),
		nullableString(b.DiscountAppliedBy()),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to save discount", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("booking version changed", nil, infra.KindConflict)
	}
	return nil
}

const saveCheckoutSQL = `
UPDATE bookings SET
    status = $3,
    actual_check_out = $4,
    discount_amount_cents = $5,
    discount_reason = $6,
    discount_applied_at = $7,
    discount_applied_by = $8,
    version = version + 1,
    updated_at = now()
WHERE id = $1 AND version = $2
`

// SaveCheckout writes the completed transition plus any discount the checkout
// decision granted, all under one version check.
func (r *BookingRepository) SaveCheckout(ctx context.Context, b *booking.Booking) error {
	tag, err := r.db.Exec(ctx, saveCheckoutSQL,
		b.ID(), b.Version(),
		b.Status().String(),
		pgconv.TimePtrToPgtype(b.ActualCheckOut()),
		b.DiscountAmount().Cents(),
		nullableString(b.DiscountReason()),
		pgconv.TimePtrToPgtype(b.DiscountAppliedAt()),
		nullableString(b.DiscountAppliedBy()),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to save checkout", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("booking version changed", nil, infra.KindConflict)
	}
	return nil
}

const saveCancellationSQL = `
UPDATE bookings SET
    status = $3,
    version = version + 1,
    updated_at = now()
WHERE id = $1 AND version = $2
`

func (r *BookingRepository) SaveCancellation(ctx context.Context, b *booking.Booking) error {
	tag, err := r.db.Exec(ctx, saveCancellationSQL, b.ID(), b.Version(), b.Status().String())
	if err != nil {
		return infra.WrapRepoErr("failed to save cancellation", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("booking version changed", nil, infra.KindConflict)
	}
	return nil
}

const bumpVersionSQL = `
UPDATE bookings SET version = version + 1, updated_at = now()
WHERE id = $1 AND version = $2
`

// bumpVersion is the optimistic-concurrency gate for child-row inserts: the
// insert and the version bump commit or fail together inside the transaction.
func (r *BookingRepository) bumpVersion(ctx context.Context, bookingID uuid.UUID, expectedVersion int64) error {
	tag, err := r.db.Exec(ctx, bumpVersionSQL, bookingID, expectedVersion)
	if err != nil {
		return infra.WrapRepoErr("failed to bump booking version", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("booking version changed", nil, infra.KindConflict)
	}
	return nil
}

func nullableString(s string) pgtype.Text {
	if s == "" {
		return pgtype.Text{}
	}
	return pgconv.StringToPgtype(s)
}
