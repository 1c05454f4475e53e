// internal/store/store.go
package store

import (
	"context"
	"errors"

	"github.com/medlavka/storefront/internal/models"
)

// ErrNotFound reports that an update or delete targeted a row that no longer
// exists in the remote store.
var ErrNotFound = errors.New("book not found")

// Store is the remote catalog store. All writes are durable in the store
// itself; the in-memory cache learns about them through the change-event
// subscription, not through return values.
type Store interface {
	FetchAll(ctx context.Context) ([]models.Book, error)
	Insert(ctx context.Context, book *models.Book) error
	Update(ctx context.Context, id string, patch map[string]interface{}) error
	Delete(ctx context.Context, id string) error
	DeleteMany(ctx context.Context, ids []string) error
}
