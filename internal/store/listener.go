// internal/store/listener.go
package store

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/lib/pq"
	"github.com/sirupsen/logrus"

	"github.com/medlavka/storefront/internal/catalog"
	"github.com/medlavka/storefront/internal/models"
)

// NotifyChannel is the Postgres channel the books trigger notifies on.
const NotifyChannel = "books_changes"

const (
	minReconnectInterval = 10 * time.Second
	maxReconnectInterval = time.Minute
	pingInterval         = 90 * time.Second
)

// notifyPayload is what the row trigger emits. NOTIFY payloads are capped at
// 8000 bytes, far below an inline cover image, so the trigger sends only the
// event type and the row id and the listener refetches the row.
type notifyPayload struct {
	Event string `json:"event"`
	ID    string `json:"id"`
}

type rowFetcher interface {
	FetchOne(ctx context.Context, id string) (*models.Book, error)
}

// Listener subscribes to row-level catalog changes and turns them into typed
// change events, in the order Postgres delivers them.
type Listener struct {
	pq      *pq.Listener
	fetcher rowFetcher
	events  chan catalog.ChangeEvent
}

func NewListener(dsn string, fetcher rowFetcher) (*Listener, error) {
	listener := pq.NewListener(dsn, minReconnectInterval, maxReconnectInterval,
		func(ev pq.ListenerEventType, err error) {
			if err != nil {
				logrus.WithError(err).Warn("Catalog listener connection event")
			}
		})

	if err := listener.Listen(NotifyChannel); err != nil {
		listener.Close()
		return nil, err
	}

	return &Listener{
		pq:      listener,
		fetcher: fetcher,
		events:  make(chan catalog.ChangeEvent, 64),
	}, nil
}

// Events is the queue the reconciler consumes.
func (l *Listener) Events() <-chan catalog.ChangeEvent {
	return l.events
}

// Run pumps notifications until the context is cancelled, then closes the
// event queue.
func (l *Listener) Run(ctx context.Context) {
	defer close(l.events)
	defer l.pq.Close()

	for {
		select {
		case <-ctx.Done():
			return
		case n := <-l.pq.Notify:
			if n == nil {
				// Reconnect marker: notifications may have been missed while
				// the connection was down.
				logrus.Warn("Catalog listener reconnected; events may have been missed")
				continue
			}
			l.handle(ctx, n.Extra)
		case <-time.After(pingInterval):
			if err := l.pq.Ping(); err != nil {
				logrus.WithError(err).Warn("Catalog listener ping failed")
			}
		}
	}
}

func (l *Listener) handle(ctx context.Context, raw string) {
	var payload notifyPayload
	if err := json.Unmarshal([]byte(raw), &payload); err != nil {
		logrus.WithError(err).Warn("Ignoring malformed change notification")
		return
	}
	if payload.ID == "" {
		logrus.Warn("Ignoring change notification without row id")
		return
	}

	ev := catalog.ChangeEvent{
		Type: catalog.EventType(payload.Event),
		ID:   payload.ID,
	}

	switch ev.Type {
	case catalog.EventInsert, catalog.EventUpdate:
		book, err := l.fetcher.FetchOne(ctx, payload.ID)
		if errors.Is(err, ErrNotFound) {
			// Row vanished between the notification and the refetch; the
			// delete notification is on its way, drop this one.
			return
		}
		if err != nil {
			logrus.WithError(err).WithField("book_id", payload.ID).
				Error("Failed to refetch changed book")
			return
		}
		ev.Book = book
	case catalog.EventDelete:
		// id alone is enough
	default:
		logrus.WithField("event", payload.Event).Warn("Ignoring unknown change notification type")
		return
	}

	select {
	case l.events <- ev:
	case <-ctx.Done():
	}
}
