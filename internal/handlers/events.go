// internal/handlers/events.go
package handlers

import (
	"io"

	"github.com/gin-gonic/gin"

	"github.com/medlavka/storefront/internal/catalog"
)

// EventsHandler streams catalog change events to clients over SSE so they can
// run the same id-keyed reconciliation against their local copy.
type EventsHandler struct {
	broker *catalog.Broker
}

func NewEventsHandler(broker *catalog.Broker) *EventsHandler {
	return &EventsHandler{broker: broker}
}

// GET /events
func (h *EventsHandler) Stream(c *gin.Context) {
	ch := h.broker.Subscribe()
	defer h.broker.Unsubscribe(ch)

	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")

	clientGone := c.Request.Context().Done()

	c.Stream(func(w io.Writer) bool {
		select {
		case <-clientGone:
			return false
		case ev, ok := <-ch:
			if !ok {
				return false
			}
			c.SSEvent("change", ev)
			return true
		}
	})
}
