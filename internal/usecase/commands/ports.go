package commands

import (
	"context"
	"time"

	"hotel-frontdesk/internal/usecase/queries"

	"github.com/google/uuid"
)

// Follow-up collaborators notified after a checkout commits. Their failures
// are logged and surfaced as warnings; they never roll back the checkout.

type BillGenerator interface {
	Generate(ctx context.Context, view *queries.BookingView) error
}

type RoomStatusNotifier interface {
	Release(ctx context.Context, roomNumber string, bookingID uuid.UUID) error
}

// ShiftLedgerNotifier tells the cash-drawer bookkeeping that cash came in.
// Emit-only from this engine's perspective.
type ShiftLedgerNotifier interface {
	CashReceived(ctx context.Context, bookingID uuid.UUID, amountCents int64, at time.Time) error
}
