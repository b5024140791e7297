package queries

import (
	"context"
	"log/slog"
	"time"

	"salon-queue/internal/domain/location"
	"salon-queue/internal/domain/queue"
	"salon-queue/internal/pkg/clock"
	"salon-queue/internal/pkg/config"
	"salon-queue/internal/pkg/errs"
	"salon-queue/internal/usecase/shared"

	"github.com/google/uuid"
)

type QueueQueries interface {
	QueueState(ctx context.Context, locationID uuid.UUID) (*QueueStateView, error)
}

type QueueStore interface {
	// LoadQueue returns ORANGE/GREEN rows plus the RED, EXPIRED and scheduled rows the window selects.
	LoadQueue(ctx context.Context, locationID uuid.UUID, window QueueWindow) (*QueueData, error)
}

type queueQueriesImpl struct {
	store   QueueStore
	builder *queue.Builder
	monitor *location.Monitor
	feed    shared.ChangeFeed
	cfg     config.QueueConfig
	clock   clock.Clock
	logger  *slog.Logger
}

func NewQueueQueries(
	store QueueStore,
	builder *queue.Builder,
	monitor *location.Monitor,
	feed shared.ChangeFeed,
	cfg config.QueueConfig,
	clk clock.Clock,
	logger *slog.Logger,
) QueueQueries {
	return &queueQueriesImpl{
		store:   store,
		builder: builder,
		monitor: monitor,
		feed:    feed,
		cfg:     cfg,
		clock:   clk,
		logger:  logger,
	}
}

func (q *queueQueriesImpl) QueueState(ctx context.Context, locationID uuid.UUID) (*QueueStateView, error) {
	now := q.clock.Now()

	data, err := q.store.LoadQueue(ctx, locationID, q.window(now))
	if err != nil {
		return nil, shared.MapRepoErr(err, errs.ErrLocationNotFound)
	}

	snap := q.builder.Build(locationID, data.Providers, data.Active, data.Durations, now)

	view := &QueueStateView{
		LocationID:  locationID,
		GeneratedAt: now,
		Location:    ToStatusView(locationID, q.monitor.StatusAt(data.Location, now)),
		Providers:   make([]ProviderStatusView, 0, len(snap.Providers)),
		Waiting:     make([]WaitingEntryView, 0, len(snap.Waiting)),
		Booked:      make([]BookedEntryView, 0, len(snap.Booked)),
		PollAfter:   q.pollAfter(ctx, locationID, now),
	}

	for _, st := range snap.Providers {
		pv := ProviderStatusView{
			ID:               st.ProviderID,
			Name:             st.Name,
			Status:           string(st.State),
			RemainingMinutes: st.RemainingMinutes(),
			Waiting:          st.Waiting,
			NextWaitMinutes:  ceilMinutes(st.NextWait),
		}
		if st.Serving != nil {
			ev := toEntryView(st.Serving, now)
			pv.Serving = &ev
		}
		view.Providers = append(view.Providers, pv)
	}

	for _, w := range snap.Waiting {
		wv := WaitingEntryView{QueueEntryView: toEntryView(w.Reservation, now), Position: w.Position}
		if w.EstimatedWait != nil {
			m := ceilMinutes(*w.EstimatedWait)
			wv.EstimatedWaitMinutes = &m
		}
		view.Waiting = append(view.Waiting, wv)
	}

	for _, b := range snap.Booked {
		view.Booked = append(view.Booked, BookedEntryView{
			QueueEntryView:        toEntryView(b.Reservation, now),
			RemainingGraceSeconds: int(b.RemainingGrace / time.Second),
			Expired:               b.Expired,
		})
	}

	return view, nil
}

func (q *queueQueriesImpl) window(now time.Time) QueueWindow {
	since := now.Add(-q.cfg.DisplayBuffer)
	return QueueWindow{
		ExpiredSince:  since,
		ScheduledFrom: since.Add(-q.cfg.WalkinGrace),
		ScheduledTo:   now.Add(q.cfg.ScheduledPromoteLead),
	}
}

// pollAfter tightens the client poll interval shortly after a queue change.
func (q *queueQueriesImpl) pollAfter(ctx context.Context, locationID uuid.UUID, now time.Time) time.Duration {
	last, ok, err := q.feed.LastChange(ctx, locationID)
	if err != nil {
		q.logger.Warn("change feed unavailable", slog.String("location_id", locationID.String()), slog.Any("error", err))
		return q.cfg.PollFast
	}
	if ok && now.Sub(last) <= q.cfg.PollQuietAfter {
		return q.cfg.PollFast
	}
	return q.cfg.PollSlow
}
