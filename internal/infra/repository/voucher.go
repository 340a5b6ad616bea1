package repository

import (
	"context"
	"errors"
	"time"

	"hotel-frontdesk/internal/domain/voucher"
	"hotel-frontdesk/internal/infra"
	"hotel-frontdesk/internal/infra/db"
	"hotel-frontdesk/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
)

const (
	pgErrCodeUniqueViolation     = "23505"
	pgErrCodeForeignKeyViolation = "23503"
)

type VoucherRepository struct {
	db db.DBTX
}

func NewVoucherRepository(dbtx db.DBTX) *VoucherRepository {
	return &VoucherRepository{db: dbtx}
}

const insertVoucherSQL = `
INSERT INTO vouchers (id, code, amount_cents, status, original_booking_id, created_at, expires_at)
VALUES ($1, $2, $3, $4, $5, $6, $7)
`

func (r *VoucherRepository) Create(ctx context.Context, v *voucher.Voucher) (uuid.UUID, error) {
	_, err := r.db.Exec(ctx, insertVoucherSQL,
		v.ID(), v.Code(), v.AmountCents(), string(v.Status()),
		v.OriginalBookingID(), v.CreatedAt(), v.ExpiresAt(),
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			case pgErrCodeUniqueViolation:
				return uuid.Nil, infra.WrapRepoErr("voucher code collision", err, infra.KindDuplicateKey)
			case pgErrCodeForeignKeyViolation:
				return uuid.Nil, infra.WrapRepoErr("referenced booking does not exist", err, infra.KindForeignKeyViolated)
			}
		}
		return uuid.Nil, infra.WrapRepoErr("failed to create voucher", err)
	}
	return v.ID(), nil
}

const markUsedSQL = `
UPDATE vouchers SET
    status = 'used',
    used_booking_id = $2,
    used_at = $3
WHERE id = $1 AND status = 'active'
`

// MarkUsed is the active→used compare-and-swap. Zero rows means another
// redemption or an expiry sweep won the race.
func (r *VoucherRepository) MarkUsed(ctx context.Context, voucherID, targetBookingID uuid.UUID, usedAt time.Time) error {
	tag, err := r.db.Exec(ctx, markUsedSQL, voucherID, targetBookingID, pgconv.TimeToPgtype(usedAt))
	if err != nil {
		return infra.WrapRepoErr("failed to mark voucher used", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("voucher no longer active", nil, infra.KindConflict)
	}
	return nil
}

const markExpiredSQL = `
UPDATE vouchers SET status = 'expired'
WHERE id = $1 AND status = 'active'
`

func (r *VoucherRepository) MarkExpired(ctx context.Context, voucherID uuid.UUID) error {
	if _, err := r.db.Exec(ctx, markExpiredSQL, voucherID); err != nil {
		return infra.WrapRepoErr("failed to mark voucher expired", err)
	}
	return nil
}
