// internal/catalog/event.go
package catalog

import "github.com/medlavka/storefront/internal/models"

type EventType string

const (
	EventInsert EventType = "INSERT"
	EventUpdate EventType = "UPDATE"
	EventDelete EventType = "DELETE"
)

// ChangeEvent is one row-level change pushed by the remote store. Book is nil
// for deletes; ID is always set so every event can be applied as an id-keyed
// upsert or delete regardless of delivery order.
type ChangeEvent struct {
	Type EventType    `json:"type"`
	ID   string       `json:"id"`
	Book *models.Book `json:"book,omitempty"`
}
