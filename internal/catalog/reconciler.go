// internal/catalog/reconciler.go
package catalog

import (
	"context"

	"github.com/sirupsen/logrus"
)

// Reconciler is the single consumer of the change-event queue. All cache
// mutations after the initial load happen here, so readers only ever race
// against one writer and every event is applied exactly once per delivery.
type Reconciler struct {
	cache  *Cache
	broker *Broker
}

func NewReconciler(cache *Cache, broker *Broker) *Reconciler {
	return &Reconciler{
		cache:  cache,
		broker: broker,
	}
}

// Run applies events until the channel closes or the context is cancelled.
func (r *Reconciler) Run(ctx context.Context, events <-chan ChangeEvent) {
	for {
		select {
		case <-ctx.Done():
			return
		case ev, ok := <-events:
			if !ok {
				return
			}
			r.apply(ev)
			if r.broker != nil {
				r.broker.Publish(ev)
			}
		}
	}
}

func (r *Reconciler) apply(ev ChangeEvent) {
	switch ev.Type {
	case EventInsert:
		if ev.Book == nil {
			logrus.WithField("book_id", ev.ID).Warn("Insert event without row payload")
			return
		}
		r.cache.ApplyInsert(*ev.Book)
	case EventUpdate:
		if ev.Book == nil {
			logrus.WithField("book_id", ev.ID).Warn("Update event without row payload")
			return
		}
		if !r.cache.ApplyUpdate(*ev.Book) {
			// Row unknown locally: likely an update that raced the initial
			// load. Report and drop; a later event or reload converges.
			logrus.WithField("book_id", ev.ID).Warn("Update event for unknown book")
		}
	case EventDelete:
		r.cache.ApplyDelete(ev.ID)
	default:
		logrus.WithField("event", string(ev.Type)).Warn("Unknown change event type")
	}
}
