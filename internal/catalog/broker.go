// internal/catalog/broker.go
package catalog

import (
	"sync"

	"github.com/sirupsen/logrus"
)

const subscriberBuffer = 16

// Broker fans change events out to subscribers (the reconciler and any number
// of connected event streams). Sends never block: a subscriber that stops
// draining its channel loses events rather than stalling delivery to the rest.
type Broker struct {
	mu   sync.Mutex
	subs map[chan ChangeEvent]struct{}
}

func NewBroker() *Broker {
	return &Broker{
		subs: make(map[chan ChangeEvent]struct{}),
	}
}

func (b *Broker) Subscribe() chan ChangeEvent {
	ch := make(chan ChangeEvent, subscriberBuffer)

	b.mu.Lock()
	b.subs[ch] = struct{}{}
	b.mu.Unlock()

	return ch
}

func (b *Broker) Unsubscribe(ch chan ChangeEvent) {
	b.mu.Lock()
	if _, ok := b.subs[ch]; ok {
		delete(b.subs, ch)
		close(ch)
	}
	b.mu.Unlock()
}

func (b *Broker) Publish(ev ChangeEvent) {
	b.mu.Lock()
	defer b.mu.Unlock()

	for ch := range b.subs {
		select {
		case ch <- ev:
		default:
			logrus.WithFields(logrus.Fields{
				"event":   ev.Type,
				"book_id": ev.ID,
			}).Warn("Dropping change event for slow subscriber")
		}
	}
}
