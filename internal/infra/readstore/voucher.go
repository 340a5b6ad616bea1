package readstore

import (
	"context"
	"time"

	"hotel-frontdesk/internal/domain/voucher"
	"hotel-frontdesk/internal/infra"
	"hotel-frontdesk/internal/infra/db"
	"hotel-frontdesk/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type VoucherReadStore struct {
	db db.DBTX
}

func NewVoucherReadStore(dbtx db.DBTX) *VoucherReadStore {
	return &VoucherReadStore{db: dbtx}
}

const selectVoucherSQL = `
SELECT id, code, amount_cents, status, original_booking_id,
       used_booking_id, created_at, expires_at, used_at
FROM vouchers
`

func (s *VoucherReadStore) FindByCode(ctx context.Context, code string) (*voucher.Voucher, error) {
	return s.findOne(ctx, selectVoucherSQL+"WHERE code = $1", code)
}

func (s *VoucherReadStore) FindByID(ctx context.Context, id uuid.UUID) (*voucher.Voucher, error) {
	return s.findOne(ctx, selectVoucherSQL+"WHERE id = $1", id)
}

func (s *VoucherReadStore) findOne(ctx context.Context, sql string, arg any) (*voucher.Voucher, error) {
	var (
		id            uuid.UUID
		code          string
		amountCents   int64
		status        string
		originalID    uuid.UUID
		usedBookingID pgtype.UUID
		createdAt     time.Time
		expiresAt     time.Time
		usedAt        pgtype.Timestamptz
	)

	err := s.db.QueryRow(ctx, sql, arg).Scan(
		&id, &code, &amountCents, &status, &originalID,
		&usedBookingID, &createdAt, &expiresAt, &usedAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("voucher not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find voucher", err)
	}

	return voucher.ReconstructVoucher(
		id, code, amountCents, voucher.Status(status), originalID,
		pgconv.UUIDPtrFromPgtype(usedBookingID),
		createdAt, expiresAt,
		pgconv.TimePtrFromPgtype(usedAt),
	), nil
}
