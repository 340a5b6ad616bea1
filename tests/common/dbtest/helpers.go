//go:build e2e

package dbtest

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// SetBookingStatus flips a booking's status directly. Check-in and room
// assignment happen in the property-management system, so e2e flows that need
// a checked-in booking set the column here.
func SetBookingStatus(t *testing.T, pool *pgxpool.Pool, bookingID uuid.UUID, status string) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	tag, err := pool.Exec(ctx, "UPDATE bookings SET status = $1 WHERE id = $2", status, bookingID)
	require.NoError(t, err, "failed to update booking status")
	require.EqualValues(t, 1, tag.RowsAffected(), "booking not found when updating status")
}

// SetVoucherExpiry backdates a voucher's expiry so stale-voucher flows can be
// exercised without waiting out the configured TTL.
func SetVoucherExpiry(t *testing.T, pool *pgxpool.Pool, code string, expiresAt time.Time) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	tag, err := pool.Exec(ctx, "UPDATE vouchers SET expires_at = $1 WHERE code = $2", expiresAt, code)
	require.NoError(t, err, "failed to update voucher expiry")
	require.EqualValues(t, 1, tag.RowsAffected(), "voucher not found when updating expiry")
}

// GetVoucherStatus reads a voucher's stored status.
func GetVoucherStatus(t *testing.T, pool *pgxpool.Pool, code string) string {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var status string
	err := pool.QueryRow(ctx, "SELECT status FROM vouchers WHERE code = $1", code).Scan(&status)
	require.NoError(t, err, "failed to read voucher status")
	return status
}

// CountNotificationJobs counts queued follow-up jobs of a given kind.
func CountNotificationJobs(t *testing.T, pool *pgxpool.Pool, kind string) int {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var count int
	err := pool.QueryRow(ctx, "SELECT count(*) FROM notification_jobs WHERE kind = $1", kind).Scan(&count)
	require.NoError(t, err, "failed to count notification jobs")
	return count
}
