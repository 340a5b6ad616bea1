//go:build unit

package booking_test

import (
	"testing"
	"time"

	"hotel-frontdesk/internal/domain/booking"
	"hotel-frontdesk/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCancellationPolicy_Assess(t *testing.T) {
	policy := booking.CancellationPolicy{RefundThresholdDays: 2}
	checkIn := time.Date(2026, 3, 10, 15, 0, 0, 0, time.UTC)
	checkOut := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)

	assess := func(b *booking.Booking, now time.Time) booking.CancellationAssessment {
		return policy.Assess(b, booking.Summarize(b), now)
	}

	t.Run("confirmed booking with partial payment earns a full credit in time", func(t *testing.T) {
		b := builder.NewBookingBuilder().
			WithStatus(booking.StatusConfirmed).
			WithStay(checkIn, checkOut).
			WithRoomCharge(500_000).
			WithCompletedPayment(200_000).
			BuildDomain()

		// Three days before check-in, above the two-day threshold.
		now := checkIn.AddDate(0, 0, -3)
		a := assess(b, now)

		require.True(t, a.CanCancel)
		assert.Equal(t, booking.RefundFullCredit, a.Refund)
		assert.Equal(t, int64(200_000), a.EstimatedCredit.Cents())
		assert.Equal(t, "Credito total: cancelacion con 3 dias de anticipacion (minimo 2)", a.AppliedRule)
	})

	t.Run("late cancellation forfeits the money already paid", func(t *testing.T) {
		b := builder.NewBookingBuilder().
			WithStatus(booking.StatusConfirmed).
			WithStay(checkIn, checkOut).
			WithRoomCharge(500_000).
			WithCompletedPayment(200_000).
			BuildDomain()

		now := checkIn.AddDate(0, 0, -1)
		a := assess(b, now)

		require.True(t, a.CanCancel)
		assert.Equal(t, booking.RefundForfeit, a.Refund)
		assert.Equal(t, int64(0), a.EstimatedCredit.Cents())
		assert.Equal(t, "No reembolsable: cancelacion con menos de 2 dias de anticipacion", a.AppliedRule)
	})

	t.Run("nothing paid cancels cleanly with no refund decision", func(t *testing.T) {
		b := builder.NewBookingBuilder().
			WithStatus(booking.StatusPending).
			WithStay(checkIn, checkOut).
			BuildDomain()

		a := assess(b, checkIn.AddDate(0, 0, -10))

		require.True(t, a.CanCancel)
		assert.Equal(t, booking.RefundNone, a.Refund)
		assert.Equal(t, "Cancelacion sin pagos registrados", a.AppliedRule)
	})

	t.Run("checked-in or completed stay can no longer cancel", func(t *testing.T) {
		for _, status := range []booking.Status{booking.StatusCheckedIn, booking.StatusCompleted} {
			b := builder.NewBookingBuilder().
				WithStatus(status).
				WithStay(checkIn, checkOut).
				BuildDomain()

			a := assess(b, checkIn.AddDate(0, 0, -5))

			assert.False(t, a.CanCancel, "status %s", status)
			assert.Equal(t, "Ya registrada entrada/salida", a.Reason)
		}
	})

	t.Run("already cancelled booking is rejected with its own reason", func(t *testing.T) {
		b := builder.NewBookingBuilder().
			WithStatus(booking.StatusCancelled).
			WithStay(checkIn, checkOut).
			BuildDomain()

		a := assess(b, checkIn.AddDate(0, 0, -5))

		assert.False(t, a.CanCancel)
		assert.Equal(t, "La reserva ya fue cancelada", a.Reason)
	})

	t.Run("past check-in date denies cancellation", func(t *testing.T) {
		b := builder.NewBookingBuilder().
			WithStatus(booking.StatusConfirmed).
			WithStay(checkIn, checkOut).
			BuildDomain()

		a := assess(b, checkIn.AddDate(0, 0, 1))

		assert.False(t, a.CanCancel)
		assert.Equal(t, "La fecha de entrada ya paso", a.Reason)
	})

	t.Run("fully paid booking must settle through checkout", func(t *testing.T) {
		b := builder.NewBookingBuilder().
			WithStatus(booking.StatusPaid).
			WithStay(checkIn, checkOut).
			WithRoomCharge(500_000).
			WithCompletedPayment(500_000).
			BuildDomain()

		a := assess(b, checkIn.AddDate(0, 0, -5))

		assert.False(t, a.CanCancel)
		assert.Equal(t, "Reserva pagada en su totalidad, debe realizar checkout", a.Reason)
	})

	t.Run("fully discounted booking with no payments can still cancel", func(t *testing.T) {
		b := builder.NewBookingBuilder().
			WithStatus(booking.StatusConfirmed).
			WithStay(checkIn, checkOut).
			WithRoomCharge(500_000).
			WithDiscount(500_000, "Cortesia").
			BuildDomain()

		// Zero balance counts as fully paid, but with no money collected
		// there is nothing to settle through checkout.
		a := assess(b, checkIn.AddDate(0, 0, -5))

		require.True(t, a.CanCancel)
		assert.Equal(t, booking.RefundNone, a.Refund)
		assert.Equal(t, "Cancelacion sin pagos registrados", a.AppliedRule)
	})

	t.Run("cancellation on the threshold day still earns credit", func(t *testing.T) {
		b := builder.NewBookingBuilder().
			WithStatus(booking.StatusConfirmed).
			WithStay(checkIn, checkOut).
			WithRoomCharge(500_000).
			WithCompletedPayment(100_000).
			BuildDomain()

		a := assess(b, checkIn.AddDate(0, 0, -2))

		require.True(t, a.CanCancel)
		assert.Equal(t, booking.RefundFullCredit, a.Refund)
		assert.Equal(t, int64(100_000), a.EstimatedCredit.Cents())
	})

	t.Run("nil booking is reported as not found", func(t *testing.T) {
		a := policy.Assess(nil, booking.FinancialSummary{}, checkIn)

		assert.False(t, a.CanCancel)
		assert.Equal(t, "Reserva no encontrada", a.Reason)
	})
}
