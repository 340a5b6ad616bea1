//go:build unit

package voucher_test

import (
	"regexp"
	"testing"
	"time"

	"hotel-frontdesk/internal/domain/voucher"
	"hotel-frontdesk/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewVoucher(t *testing.T) {
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	bookingID := uuid.New()

	t.Run("issues an active voucher with a generated code", func(t *testing.T) {
		v, err := voucher.NewVoucher(150_000, bookingID, now, now.AddDate(0, 0, 90))
		require.NoError(t, err)

		assert.Equal(t, voucher.StatusActive, v.Status())
		assert.Equal(t, int64(150_000), v.AmountCents())
		assert.Equal(t, bookingID, v.OriginalBookingID())
		assert.Nil(t, v.UsedBookingID())
		assert.Regexp(t, regexp.MustCompile(`^VCH-[A-HJ-NP-Z2-9]{8}$`), v.Code())
	})

	t.Run("rejects a non-positive amount", func(t *testing.T) {
		_, err := voucher.NewVoucher(0, bookingID, now, now.AddDate(0, 0, 90))
		assert.ErrorIs(t, err, voucher.ErrInvalidAmount)
	})

	t.Run("rejects an expiry that is not in the future", func(t *testing.T) {
		_, err := voucher.NewVoucher(150_000, bookingID, now, now)
		assert.ErrorIs(t, err, voucher.ErrInvalidExpiry)
	})
}

func TestVoucherValidateAt(t *testing.T) {
	t.Run("active voucher within its window validates", func(t *testing.T) {
		v := builder.NewVoucherBuilder().BuildDomain()
		assert.NoError(t, v.ValidateAt(v.CreatedAt().AddDate(0, 0, 30)))
	})

	t.Run("active voucher past its expiry reports expired", func(t *testing.T) {
		v := builder.NewVoucherBuilder().BuildDomain()
		err := v.ValidateAt(v.ExpiresAt().Add(time.Hour))
		assert.ErrorIs(t, err, voucher.ErrExpired)

		// Persisted state is only reclassified explicitly.
		assert.Equal(t, voucher.StatusActive, v.Status())
		v.MarkExpired()
		assert.Equal(t, voucher.StatusExpired, v.Status())
	})

	t.Run("used voucher reports already used even when also stale", func(t *testing.T) {
		v := builder.NewVoucherBuilder().WithStatus(voucher.StatusUsed).BuildDomain()
		err := v.ValidateAt(v.ExpiresAt().Add(time.Hour))
		assert.ErrorIs(t, err, voucher.ErrAlreadyUsed)
	})
}

func TestVoucherRedeem(t *testing.T) {
	target := uuid.New()

	t.Run("redeems exactly once", func(t *testing.T) {
		v := builder.NewVoucherBuilder().BuildDomain()
		now := v.CreatedAt().AddDate(0, 0, 10)

		require.NoError(t, v.Redeem(target, now))

		assert.Equal(t, voucher.StatusUsed, v.Status())
		require.NotNil(t, v.UsedBookingID())
		assert.Equal(t, target, *v.UsedBookingID())
		require.NotNil(t, v.UsedAt())
		assert.Equal(t, now, *v.UsedAt())

		err := v.Redeem(uuid.New(), now.Add(time.Minute))
		assert.ErrorIs(t, err, voucher.ErrAlreadyUsed)
	})

	t.Run("expired voucher cannot redeem", func(t *testing.T) {
		v := builder.NewVoucherBuilder().BuildDomain()
		err := v.Redeem(target, v.ExpiresAt().Add(time.Hour))
		assert.ErrorIs(t, err, voucher.ErrExpired)
		assert.Equal(t, voucher.StatusActive, v.Status())
	})

	t.Run("expired status cannot redeem", func(t *testing.T) {
		v := builder.NewVoucherBuilder().WithStatus(voucher.StatusExpired).BuildDomain()
		err := v.Redeem(target, v.CreatedAt().AddDate(0, 0, 1))
		assert.ErrorIs(t, err, voucher.ErrExpired)
	})
}

func TestMarkExpired(t *testing.T) {
	t.Run("only an active voucher reclassifies", func(t *testing.T) {
		v := builder.NewVoucherBuilder().WithStatus(voucher.StatusUsed).BuildDomain()
		v.MarkExpired()
		assert.Equal(t, voucher.StatusUsed, v.Status())
	})
}
