//go:build unit

package booking_test

import (
	"testing"

	"hotel-frontdesk/internal/domain/booking"
	"hotel-frontdesk/tests/common/builder"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummarize(t *testing.T) {
	t.Run("reconciles payments, extras and tax into one summary", func(t *testing.T) {
		b := builder.NewBookingBuilder().
			WithRoomCharge(500_000).
			WithCompletedPayment(200_000).
			WithPayment(100_000, booking.MethodTransfer, booking.PaymentAuthorized).
			WithPayment(50_000, booking.MethodCard, booking.PaymentFailed).
			WithExtraCharge("Minibar", 30_000, 2).
			WithExtraCharge("Lavanderia", 20_000, 1).
			BuildDomain()

		s := booking.Summarize(b)

		assert.Equal(t, int64(300_000), s.TotalPaid.Cents())
		assert.Equal(t, int64(80_000), s.TotalExtras.Cents())
		assert.Equal(t, int64(580_000), s.TotalFinal.Cents())
		assert.Equal(t, int64(280_000), s.TotalPending.Cents())
		assert.False(t, s.IsFullyPaid)
		assert.Equal(t, 52, s.PaymentPercentage)
		assert.Equal(t, booking.PaymentStatePartiallyPaid, s.PaymentState)
	})

	t.Run("failed and refunded payments never count as received", func(t *testing.T) {
		b := builder.NewBookingBuilder().
			WithRoomCharge(100_000).
			WithPayment(100_000, booking.MethodCard, booking.PaymentFailed).
			WithPayment(100_000, booking.MethodCash, booking.PaymentRefunded).
			BuildDomain()

		s := booking.Summarize(b)

		assert.Equal(t, int64(0), s.TotalPaid.Cents())
		assert.Equal(t, booking.PaymentStateUnpaid, s.PaymentState)
		require.Len(t, s.Breakdown.Payments, 2)
		assert.False(t, s.Breakdown.Payments[0].Counted)
		assert.False(t, s.Breakdown.Payments[1].Counted)
	})

	t.Run("nil booking degrades to the zero summary", func(t *testing.T) {
		s := booking.Summarize(nil)

		assert.Equal(t, int64(0), s.TotalFinal.Cents())
		assert.True(t, s.IsFullyPaid)
		assert.Equal(t, 100, s.PaymentPercentage)
		assert.Equal(t, booking.PaymentStateFullyPaid, s.PaymentState)
	})

	t.Run("fully discounted room counts as fully paid", func(t *testing.T) {
		b := builder.NewBookingBuilder().
			WithRoomCharge(300_000).
			WithDiscount(300_000, "Cortesia gerencia").
			BuildDomain()

		s := booking.Summarize(b)

		assert.Equal(t, int64(0), s.TotalFinal.Cents())
		assert.Equal(t, int64(0), s.TotalPending.Cents())
		assert.True(t, s.IsFullyPaid)
		assert.Equal(t, 100, s.PaymentPercentage)
	})

	t.Run("overpayment clamps pending at zero and percentage at 100", func(t *testing.T) {
		b := builder.NewBookingBuilder().
			WithRoomCharge(100_000).
			WithCompletedPayment(150_000).
			BuildDomain()

		s := booking.Summarize(b)

		assert.Equal(t, int64(0), s.TotalPending.Cents())
		assert.Equal(t, 100, s.PaymentPercentage)
		assert.True(t, s.IsFullyPaid)
	})

	t.Run("percentage rounds half up", func(t *testing.T) {
		b := builder.NewBookingBuilder().
			WithRoomCharge(300_000).
			WithCompletedPayment(100_000).
			BuildDomain()

		// 100000/300000 = 33.33% → 33
		assert.Equal(t, 33, booking.Summarize(b).PaymentPercentage)

		b2 := builder.NewBookingBuilder().
			WithRoomCharge(200_000).
			WithCompletedPayment(101_000).
			BuildDomain()

		// 101000/200000 = 50.5% → 51
		assert.Equal(t, 51, booking.Summarize(b2).PaymentPercentage)
	})

	t.Run("summarizing is idempotent and does not mutate the aggregate", func(t *testing.T) {
		b := builder.NewBookingBuilder().
			WithRoomCharge(500_000).
			WithCompletedPayment(250_000).
			WithExtraCharge("Minibar", 15_000, 3).
			WithDiscount(50_000, "Descuento comercial").
			BuildDomain()

		first := booking.Summarize(b)
		second := booking.Summarize(b)

		diff := cmp.Diff(first, second, cmp.AllowUnexported(booking.Money{}))
		require.Empty(t, diff)
	})
}
