// internal/catalog/cache.go
package catalog

import (
	"sync"

	"github.com/medlavka/storefront/internal/models"
)

// Cache is the in-memory catalog the storefront reads from. Durable state
// lives in the remote store; the cache is kept consistent by applying change
// events, each keyed by book id so repeated or out-of-order delivery
// converges to the same state.
type Cache struct {
	mu    sync.RWMutex
	books []models.Book
	index map[string]int
}

func NewCache() *Cache {
	return &Cache{
		index: make(map[string]int),
	}
}

// ReplaceAll swaps the whole collection for the result of a full load.
func (c *Cache) ReplaceAll(books []models.Book) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.books = make([]models.Book, len(books))
	copy(c.books, books)
	c.reindex()
}

// ApplyInsert appends the book, or replaces it in place when a row with the
// same id is already present (later wins; retried notifications must not
// produce duplicates).
func (c *Cache) ApplyInsert(book models.Book) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if i, ok := c.index[book.ID]; ok {
		c.books[i] = book
		return
	}
	c.books = append(c.books, book)
	c.index[book.ID] = len(c.books) - 1
}

// ApplyUpdate replaces the book with the matching id. Returns false when no
// such row exists; the caller decides how to report the inconsistency.
func (c *Cache) ApplyUpdate(book models.Book) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	i, ok := c.index[book.ID]
	if !ok {
		return false
	}
	c.books[i] = book
	return true
}

// ApplyDelete removes the book with the given id. Deleting an absent id is a
// no-op, so repeated delivery of the same delete is safe.
func (c *Cache) ApplyDelete(id string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	i, ok := c.index[id]
	if !ok {
		return false
	}
	c.books = append(c.books[:i], c.books[i+1:]...)
	c.reindex()
	return true
}

// Items returns a copy of the collection in its current order.
func (c *Cache) Items() []models.Book {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]models.Book, len(c.books))
	copy(out, c.books)
	return out
}

func (c *Cache) Get(id string) (models.Book, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if i, ok := c.index[id]; ok {
		return c.books[i], true
	}
	return models.Book{}, false
}

func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.books)
}

// reindex rebuilds the id index; callers must hold the write lock.
func (c *Cache) reindex() {
	c.index = make(map[string]int, len(c.books))
	for i, b := range c.books {
		c.index[b.ID] = i
	}
}
