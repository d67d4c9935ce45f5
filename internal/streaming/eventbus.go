package streaming

import (
	"context"
	"strconv"
	"sync"

	"fraudshield/pkg/logger"
)

// AlertBus distributes high-risk alert events to in-process subscribers and,
// when NATS is configured, mirrors them to the JetStream alert stream. With a
// nil NATS publisher it degrades to local broadcast only, which is also the
// mode used in tests.
type AlertBus struct {
	nats   *NATSPublisher
	logger *logger.Logger

	mu          sync.RWMutex
	subscribers map[string]chan *AlertEvent
	nextID      int
}

// NewAlertBus creates a new alert bus
func NewAlertBus(nats *NATSPublisher, log *logger.Logger) *AlertBus {
	return &AlertBus{
		nats:        nats,
		logger:      log.WithComponent("alert-bus"),
		subscribers: make(map[string]chan *AlertEvent),
	}
}

// PublishAlert publishes an alert event to NATS and all local subscribers
func (b *AlertBus) PublishAlert(ctx context.Context, event *AlertEvent) error {
	if b.nats != nil && b.nats.IsConnected() {
		if err := b.nats.PublishAlert(ctx, event); err != nil {
			b.logger.Warn().Err(err).Msg("failed to publish to NATS, using local broadcast only")
		}
	}

	b.mu.RLock()
	defer b.mu.RUnlock()

	for id, ch := range b.subscribers {
		select {
		case ch <- event:
		default:
			b.logger.Debug().Str("subscriber", id).Msg("subscriber channel full, dropping event")
		}
	}

	return nil
}

// Subscribe creates a new subscription and returns a channel for events
func (b *AlertBus) Subscribe(ctx context.Context) (<-chan *AlertEvent, func()) {
	b.mu.Lock()
	b.nextID++
	id := strconv.Itoa(b.nextID)
	ch := make(chan *AlertEvent, 100)
	b.subscribers[id] = ch
	b.mu.Unlock()

	b.logger.Debug().Str("subscriber_id", id).Msg("new subscriber")

	unsubscribe := func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		if _, ok := b.subscribers[id]; ok {
			close(ch)
			delete(b.subscribers, id)
			b.logger.Debug().Str("subscriber_id", id).Msg("subscriber removed")
		}
	}

	// If NATS is available, forward distributed events too
	if b.nats != nil && b.nats.IsConnected() {
		natsCh, err := b.nats.Subscribe(ctx)
		if err == nil {
			go func() {
				for event := range natsCh {
					select {
					case ch <- event:
					case <-ctx.Done():
						return
					}
				}
			}()
		}
	}

	return ch, unsubscribe
}

// SubscriberCount returns the number of active subscribers
func (b *AlertBus) SubscriberCount() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.subscribers)
}

// Close closes the alert bus
func (b *AlertBus) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()

	for id, ch := range b.subscribers {
		close(ch)
		delete(b.subscribers, id)
	}

	if b.nats != nil {
		b.nats.Close()
	}
}
