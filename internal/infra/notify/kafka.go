package notify

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"time"

	"salon-queue/internal/pkg/config"
	"salon-queue/internal/pkg/errs"
	"salon-queue/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
)

const eventTypeServing = "reservation.serving"

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// KafkaNotifier publishes one message per GREEN transition, keyed by location so a
// location's events stay ordered within a partition.
type KafkaNotifier struct {
	writer  messageWriter
	timeout time.Duration
	logger  *slog.Logger
}

type servingPayload struct {
	EventID       uuid.UUID  `json:"event_id"`
	ReservationID uuid.UUID  `json:"reservation_id"`
	LocationID    uuid.UUID  `json:"location_id"`
	ProviderID    uuid.UUID  `json:"provider_id"`
	CustomerName  string     `json:"customer_name"`
	CustomerPhone string     `json:"customer_phone"`
	CustomerUser  *uuid.UUID `json:"customer_user_id,omitempty"`
	ServiceName   string     `json:"service_name"`
	ServedAt      time.Time  `json:"served_at"`
}

func SplitBrokers(s string) []string {
	var out []string
	for _, b := range strings.Split(s, ",") {
		if b = strings.TrimSpace(b); b != "" {
			out = append(out, b)
		}
	}
	return out
}

func NewKafkaNotifier(cfg config.KafkaConfig, logger *slog.Logger) *KafkaNotifier {
	w := &kafka.Writer{
		Addr:         kafka.TCP(SplitBrokers(cfg.Brokers)...),
		Topic:        cfg.ServingTopic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireOne,
		WriteTimeout: cfg.WriteTimeout,
	}
	return newKafkaNotifier(w, cfg.WriteTimeout, logger)
}

func newKafkaNotifier(w messageWriter, timeout time.Duration, logger *slog.Logger) *KafkaNotifier {
	if timeout <= 0 {
		timeout = 2 * time.Second
	}
	return &KafkaNotifier{writer: w, timeout: timeout, logger: logger}
}

func (n *KafkaNotifier) NotifyServing(ctx context.Context, ev shared.ServingEvent) error {
	body, err := json.Marshal(servingPayload{
		EventID:       uuid.New(),
		ReservationID: ev.ReservationID,
		LocationID:    ev.LocationID,
		ProviderID:    ev.ProviderID,
		CustomerName:  ev.CustomerName,
		CustomerPhone: ev.CustomerPhone,
		CustomerUser:  ev.CustomerUser,
		ServiceName:   ev.ServiceName,
		ServedAt:      ev.ServedAt.UTC(),
	})
	if err != nil {
		return errs.Wrap(err, "marshal serving event")
	}

	// the request context may already be done once the response is written
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), n.timeout)
	defer cancel()

	msg := kafka.Message{
		Key:   []byte(ev.LocationID.String()),
		Value: body,
		Time:  ev.ServedAt,
		Headers: []kafka.Header{
			{Key: "event_type", Value: []byte(eventTypeServing)},
			{Key: "reservation_id", Value: []byte(ev.ReservationID.String())},
		},
	}
	if err := n.writer.WriteMessages(ctx, msg); err != nil {
		return errs.Wrapf(err, "publish serving event for %s", ev.ReservationID)
	}
	n.logger.Debug("serving event published", slog.String("reservation_id", ev.ReservationID.String()))
	return nil
}

func (n *KafkaNotifier) Close() error {
	return n.writer.Close()
}

// LogNotifier is used when no brokers are configured.
type LogNotifier struct {
	logger *slog.Logger
}

func NewLogNotifier(logger *slog.Logger) *LogNotifier {
	return &LogNotifier{logger: logger}
}

func (n *LogNotifier) NotifyServing(_ context.Context, ev shared.ServingEvent) error {
	n.logger.Info("now serving",
		slog.String("reservation_id", ev.ReservationID.String()),
		slog.String("provider_id", ev.ProviderID.String()),
		slog.String("customer", ev.CustomerName))
	return nil
}
