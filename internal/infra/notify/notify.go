package notify

import (
	"context"
	"encoding/json"
	"time"

	"hotel-frontdesk/internal/pkg/clock"
	"hotel-frontdesk/internal/usecase/queries"
	"hotel-frontdesk/internal/usecase/shared"

	"github.com/google/uuid"
)

// Job-queue backed implementations of the post-checkout follow-up ports.
// Each request becomes a queued notification job picked up by the worker
// fleet; enqueueing is the only responsibility here.

const (
	kindBillGeneration = "bill_generation"
	kindRoomStatus     = "room_status"
	kindShiftLedger    = "shift_ledger"

	topicBilling    = "billing"
	topicFrontDesk  = "front_desk"
	topicCashDrawer = "cash_drawer"
)

type JobQueueNotifier struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewJobQueueNotifier(uow shared.UnitOfWork, clk clock.Clock) *JobQueueNotifier {
	return &JobQueueNotifier{uow: uow, clock: clk}
}

type billPayload struct {
	BookingID       uuid.UUID `json:"booking_id"`
	RoomNumber      string    `json:"room_number"`
	GuestName       string    `json:"guest_name"`
	TotalFinalCents int64     `json:"total_final_cents"`
	TotalPaidCents  int64     `json:"total_paid_cents"`
}

func (n *JobQueueNotifier) Generate(ctx context.Context, view *queries.BookingView) error {
	payload, err := json.Marshal(billPayload{
		BookingID:       view.ID,
		RoomNumber:      view.RoomNumber,
		GuestName:       view.GuestName,
		TotalFinalCents: view.Summary.TotalFinal,
		TotalPaidCents:  view.Summary.TotalPaid,
	})
	if err != nil {
		return err
	}
	return n.enqueue(ctx, kindBillGeneration, topicBilling, payload)
}

type roomReleasePayload struct {
	BookingID  uuid.UUID `json:"booking_id"`
	RoomNumber string    `json:"room_number"`
}

func (n *JobQueueNotifier) Release(ctx context.Context, roomNumber string, bookingID uuid.UUID) error {
	payload, err := json.Marshal(roomReleasePayload{
		BookingID:  bookingID,
		RoomNumber: roomNumber,
	})
	if err != nil {
		return err
	}
	return n.enqueue(ctx, kindRoomStatus, topicFrontDesk, payload)
}

type cashReceivedPayload struct {
	BookingID   uuid.UUID `json:"booking_id"`
	AmountCents int64     `json:"amount_cents"`
	ReceivedAt  time.Time `json:"received_at"`
}

func (n *JobQueueNotifier) CashReceived(ctx context.Context, bookingID uuid.UUID, amountCents int64, at time.Time) error {
	payload, err := json.Marshal(cashReceivedPayload{
		BookingID:   bookingID,
		AmountCents: amountCents,
		ReceivedAt:  at,
	})
	if err != nil {
		return err
	}
	return n.enqueue(ctx, kindShiftLedger, topicCashDrawer, payload)
}

func (n *JobQueueNotifier) enqueue(ctx context.Context, kind, topic string, payload []byte) error {
	return n.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Notifications().CreateJob(ctx, kind, topic, payload, n.clock.Now())
	})
}
