package events

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/MikeRez0/bakery/internal/adapter/config"
	"github.com/MikeRez0/bakery/internal/adapter/metrics"
	"github.com/MikeRez0/bakery/internal/core/domain"
	"github.com/MikeRez0/bakery/internal/core/port"
	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

const (
	queueSize   = 256
	retryDelay  = 3 * time.Second
	maxAttempts = 5
)

// OrderEvent is the message value written to the orders topic.
type OrderEvent struct {
	ID         string              `json:"event_id"`
	Type       port.OrderEventType `json:"type"`
	OrderID    int64               `json:"order_id"`
	Version    int                 `json:"version"`
	State      domain.OrderState   `json:"state"`
	OccurredAt time.Time           `json:"occurred_at"`
	Order      *domain.Order       `json:"order,omitempty"`
}

// envelope carries the encoded event so later changes to the order do not leak into it.
type envelope struct {
	id        string
	eventType port.OrderEventType
	message   kafka.Message
	attempts  int
}

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// Dispatcher publishes order events to Kafka from a pool of workers.
// Failed writes are put back on the queue after a delay.
type Dispatcher struct {
	logger *zap.Logger
	writer messageWriter
	queue  chan envelope
	now    func() time.Time
	delay  time.Duration
	wg     sync.WaitGroup
}

func NewDispatcher(cfg *config.Kafka, logger *zap.Logger) (*Dispatcher, error) {
	brokers := ParseBrokers(cfg.Brokers)
	if len(brokers) == 0 {
		return nil, fmt.Errorf("no kafka brokers configured")
	}
	writer := &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        cfg.Topic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireOne,
	}
	return newDispatcher(writer, logger), nil
}

func newDispatcher(writer messageWriter, logger *zap.Logger) *Dispatcher {
	return &Dispatcher{
		logger: logger.Named("events"),
		writer: writer,
		queue:  make(chan envelope, queueSize),
		now:    time.Now,
		delay:  retryDelay,
	}
}

// ParseBrokers splits a comma separated broker list.
func ParseBrokers(csv string) []string {
	brokers := make([]string, 0)
	for _, b := range strings.Split(csv, ",") {
		b = strings.TrimSpace(b)
		if b != "" {
			brokers = append(brokers, b)
		}
	}
	return brokers
}

// PublishOrderEvent queues the event. A full queue drops the event instead of blocking the caller.
func (d *Dispatcher) PublishOrderEvent(_ context.Context, eventType port.OrderEventType, order *domain.Order) {
	if order == nil {
		return
	}
	event := OrderEvent{
		ID:         uuid.NewString(),
		Type:       eventType,
		OrderID:    order.ID,
		Version:    order.Version,
		State:      order.State,
		OccurredAt: d.now().UTC(),
	}
	if eventType != port.OrderEventDeleted {
		event.Order = order
	}

	data, err := json.Marshal(event)
	if err != nil {
		d.logger.Error("Encode event", zap.String("type", string(eventType)), zap.Error(err))
		return
	}
	env := envelope{
		id:        event.ID,
		eventType: eventType,
		message: kafka.Message{
			Key:   []byte(strconv.FormatInt(order.ID, 10)),
			Value: data,
			Time:  event.OccurredAt,
		},
	}

	select {
	case d.queue <- env:
		metrics.OrderEventQueueLength.Inc()
		d.logger.Debug("Event queued", zap.String("event", event.ID), zap.String("type", string(eventType)))
	default:
		metrics.OrderEventsFailedTotal.WithLabelValues("queue_full").Inc()
		d.logger.Warn("Event queue is full, event dropped",
			zap.String("type", string(eventType)), zap.Int64("order", order.ID))
	}
}

// Run starts the workers. They stop when ctx is done.
func (d *Dispatcher) Run(ctx context.Context, workers int) {
	if workers < 1 {
		workers = 1
	}
	for range workers {
		d.wg.Add(1)
		go func() {
			defer d.wg.Done()
			for {
				select {
				case env := <-d.queue:
					metrics.OrderEventQueueLength.Dec()
					d.process(ctx, env)
				case <-ctx.Done():
					d.logger.Debug("Finished worker")
					return
				}
			}
		}()
	}
}

func (d *Dispatcher) process(ctx context.Context, env envelope) {
	err := d.writer.WriteMessages(ctx, env.message)
	if err == nil {
		metrics.OrderEventsPublishedTotal.WithLabelValues(string(env.eventType)).Inc()
		return
	}

	env.attempts++
	if env.attempts >= maxAttempts {
		metrics.OrderEventsFailedTotal.WithLabelValues("retries_exhausted").Inc()
		d.logger.Error("Giving up on event",
			zap.String("event", env.id), zap.Int("attempts", env.attempts), zap.Error(err))
		return
	}

	d.logger.Warn("Event write failed, will retry",
		zap.String("event", env.id), zap.Duration("retry_after", d.delay), zap.Error(err))
	d.wg.Add(1)
	go d.retry(ctx, env, d.delay)
}

func (d *Dispatcher) retry(ctx context.Context, env envelope, waitFor time.Duration) {
	defer d.wg.Done()
	r := time.NewTimer(waitFor)
	defer r.Stop()

	select {
	case <-r.C:
		select {
		case d.queue <- env:
			metrics.OrderEventQueueLength.Inc()
		case <-ctx.Done():
		}
	case <-ctx.Done():
	}
}

// Close waits for the workers and pending retries to stop and closes the writer. Cancel the Run context first.
func (d *Dispatcher) Close() error {
	d.wg.Wait()
	return d.writer.Close()
}

// NoopPublisher is used when no broker is configured.
type NoopPublisher struct{}

func (NoopPublisher) PublishOrderEvent(context.Context, port.OrderEventType, *domain.Order) {}
