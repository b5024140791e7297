package commands

import (
	"context"
	"log/slog"
	"time"

	"salon-queue/internal/domain/reservation"
	"salon-queue/internal/usecase/shared"

	"github.com/google/uuid"
)

// Hooks runs the post-commit side effects. None of them can fail a command.
type Hooks struct {
	notifier shared.ServingNotifier
	feed     shared.ChangeFeed
	recorder shared.Recorder
	logger   *slog.Logger
}

func NewHooks(notifier shared.ServingNotifier, feed shared.ChangeFeed, recorder shared.Recorder, logger *slog.Logger) *Hooks {
	return &Hooks{notifier: notifier, feed: feed, recorder: recorder, logger: logger}
}

func (h *Hooks) queueChanged(ctx context.Context, locationID uuid.UUID, at time.Time) {
	if err := h.feed.Touch(ctx, locationID, at); err != nil {
		h.logger.Warn("failed to record queue change",
			slog.String("location_id", locationID.String()),
			slog.Any("error", err))
	}
}

func (h *Hooks) serving(ctx context.Context, r *reservation.Reservation, source string) {
	if r == nil {
		return
	}
	h.recorder.Promoted(source)

	ev := shared.ServingEvent{
		ReservationID: r.ID(),
		LocationID:    r.LocationID(),
		CustomerName:  r.Customer().Name(),
		CustomerPhone: r.Customer().Phone(),
		CustomerUser:  r.Customer().UserID(),
		ServiceName:   r.Service().Name,
	}
	if pid := r.ProviderID(); pid != nil {
		ev.ProviderID = *pid
	}
	if at := r.ServedAt(); at != nil {
		ev.ServedAt = *at
	}

	if err := h.notifier.NotifyServing(ctx, ev); err != nil {
		h.recorder.NotifyFailed()
		h.logger.Warn("serving notification failed",
			slog.String("reservation_id", r.ID().String()),
			slog.Any("error", err))
	}
}
