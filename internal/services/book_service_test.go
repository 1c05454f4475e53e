// internal/services/book_service_test.go
package services

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/medlavka/storefront/internal/models"
	"github.com/medlavka/storefront/internal/store"
)

// fakeStore is an in-memory store.Store for service tests.
type fakeStore struct {
	books      map[string]models.Book
	order      []string
	failWith   error
	lastPatch  map[string]interface{}
	deletedIDs []string
}

func newFakeStore(books ...models.Book) *fakeStore {
	fs := &fakeStore{books: make(map[string]models.Book)}
	for _, b := range books {
		fs.books[b.ID] = b
		fs.order = append(fs.order, b.ID)
	}
	return fs
}

func (f *fakeStore) FetchAll(ctx context.Context) ([]models.Book, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	out := make([]models.Book, 0, len(f.order))
	for _, id := range f.order {
		out = append(out, f.books[id])
	}
	return out, nil
}

func (f *fakeStore) Insert(ctx context.Context, book *models.Book) error {
	if f.failWith != nil {
		return f.failWith
	}
	if book.ID == "" {
		book.ID = fmt.Sprintf("gen-%d", len(f.order)+1)
	}
	f.books[book.ID] = *book
	f.order = append(f.order, book.ID)
	return nil
}

func (f *fakeStore) Update(ctx context.Context, id string, patch map[string]interface{}) error {
	if f.failWith != nil {
		return f.failWith
	}
	f.lastPatch = patch
	if _, ok := f.books[id]; !ok {
		return store.ErrNotFound
	}
	return nil
}

func (f *fakeStore) Delete(ctx context.Context, id string) error {
	if f.failWith != nil {
		return f.failWith
	}
	delete(f.books, id)
	f.deletedIDs = append(f.deletedIDs, id)
	return nil
}

func (f *fakeStore) DeleteMany(ctx context.Context, ids []string) error {
	if f.failWith != nil {
		return f.failWith
	}
	for _, id := range ids {
		delete(f.books, id)
	}
	f.order = nil
	for id := range f.books {
		f.order = append(f.order, id)
	}
	f.deletedIDs = append(f.deletedIDs, ids...)
	return nil
}

func validPayload() BookPayload {
	return BookPayload{
		Title:    "Атлас анатомии",
		Subject:  "Анатомия",
		Price:    4500,
		Category: "Книги",
	}
}

func TestAddBookDefaultsStatus(t *testing.T) {
	fs := newFakeStore()
	svc := NewBookService(fs, nil)

	book, err := svc.AddBook(context.Background(), &CreateBookRequest{BookPayload: validPayload()})

	require.NoError(t, err)
	assert.Equal(t, models.BookStatusInStock, book.Status)
	assert.NotEmpty(t, book.ID)
}

func TestAddBookValidation(t *testing.T) {
	svc := NewBookService(newFakeStore(), nil)

	cases := []struct {
		name   string
		mutate func(*BookPayload)
	}{
		{"missing title", func(p *BookPayload) { p.Title = "" }},
		{"missing subject", func(p *BookPayload) { p.Subject = "" }},
		{"missing category", func(p *BookPayload) { p.Category = "" }},
		{"negative price", func(p *BookPayload) { p.Price = -1 }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			payload := validPayload()
			tc.mutate(&payload)

			_, err := svc.AddBook(context.Background(), &CreateBookRequest{BookPayload: payload})

			assert.ErrorIs(t, err, ErrValidation)
		})
	}
}

func TestAddBookRejectsOversizedImage(t *testing.T) {
	svc := NewBookService(newFakeStore(), nil)

	raw := make([]byte, MaxImageBytes+1)
	payload := validPayload()
	payload.CoverImage = "data:image/png;base64," + base64.StdEncoding.EncodeToString(raw)

	_, err := svc.AddBook(context.Background(), &CreateBookRequest{BookPayload: payload})

	assert.ErrorIs(t, err, ErrValidation)
}

func TestAddBookAcceptsImageAtLimit(t *testing.T) {
	svc := NewBookService(newFakeStore(), nil)

	raw := make([]byte, MaxImageBytes)
	payload := validPayload()
	payload.CoverImage = "data:image/png;base64," + base64.StdEncoding.EncodeToString(raw)

	_, err := svc.AddBook(context.Background(), &CreateBookRequest{BookPayload: payload})

	assert.NoError(t, err)
}

func TestAddBookWrapsStoreFailure(t *testing.T) {
	fs := newFakeStore()
	fs.failWith = errors.New("connection refused")
	svc := NewBookService(fs, nil)

	_, err := svc.AddBook(context.Background(), &CreateBookRequest{BookPayload: validPayload()})

	assert.ErrorIs(t, err, ErrPersistence)
	assert.Contains(t, err.Error(), "connection refused")
}

func TestUpdateBookPatchNeverCarriesID(t *testing.T) {
	fs := newFakeStore(models.Book{ID: "1", Title: "Atlas"})
	svc := NewBookService(fs, nil)

	err := svc.UpdateBook(context.Background(), "1", &UpdateBookRequest{BookPayload: validPayload()})

	require.NoError(t, err)
	require.NotNil(t, fs.lastPatch)
	assert.NotContains(t, fs.lastPatch, "id")
	assert.Equal(t, "Атлас анатомии", fs.lastPatch["title"])
}

func TestUpdateBookOmittedStatusKeepsStoredValue(t *testing.T) {
	fs := newFakeStore(models.Book{ID: "1", Status: models.BookStatusOutOfStock})
	svc := NewBookService(fs, nil)

	err := svc.UpdateBook(context.Background(), "1", &UpdateBookRequest{BookPayload: validPayload()})

	require.NoError(t, err)
	require.NotNil(t, fs.lastPatch)
	assert.NotContains(t, fs.lastPatch, "status")
}

func TestUpdateBookExplicitStatus(t *testing.T) {
	fs := newFakeStore(models.Book{ID: "1"})
	svc := NewBookService(fs, nil)

	payload := validPayload()
	payload.Status = models.BookStatusOutOfStock

	err := svc.UpdateBook(context.Background(), "1", &UpdateBookRequest{BookPayload: payload})

	require.NoError(t, err)
	assert.Equal(t, models.BookStatusOutOfStock, fs.lastPatch["status"])
}

func TestUpdateBookRejectsUnknownStatus(t *testing.T) {
	svc := NewBookService(newFakeStore(models.Book{ID: "1"}), nil)

	payload := validPayload()
	payload.Status = "Sold Out"

	err := svc.UpdateBook(context.Background(), "1", &UpdateBookRequest{BookPayload: payload})

	assert.ErrorIs(t, err, ErrValidation)
}

func TestUpdateBookUnknownID(t *testing.T) {
	svc := NewBookService(newFakeStore(), nil)

	err := svc.UpdateBook(context.Background(), "missing", &UpdateBookRequest{BookPayload: validPayload()})

	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUpdateBookMissingID(t *testing.T) {
	svc := NewBookService(newFakeStore(), nil)

	err := svc.UpdateBook(context.Background(), "", &UpdateBookRequest{BookPayload: validPayload()})

	assert.ErrorIs(t, err, ErrValidation)
}

func TestDeleteBook(t *testing.T) {
	fs := newFakeStore(models.Book{ID: "1"})
	svc := NewBookService(fs, nil)

	require.NoError(t, svc.DeleteBook(context.Background(), "1"))
	assert.Equal(t, []string{"1"}, fs.deletedIDs)

	assert.ErrorIs(t, svc.DeleteBook(context.Background(), ""), ErrValidation)
}

func TestResetToDefaults(t *testing.T) {
	fs := newFakeStore(
		models.Book{ID: "a", Title: "Stale"},
		models.Book{ID: "b", Title: "Stale too"},
	)
	svc := NewBookService(fs, nil)

	err := svc.ResetToDefaults(context.Background())

	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"a", "b"}, fs.deletedIDs)

	defaults := models.DefaultBooks()
	assert.Len(t, fs.books, len(defaults))
	for _, want := range defaults {
		got, ok := fs.books[want.ID]
		require.True(t, ok, "missing default %s", want.ID)
		assert.Equal(t, want.Title, got.Title)
	}
}

func TestResetToDefaultsWrapsFetchFailure(t *testing.T) {
	fs := newFakeStore()
	fs.failWith = errors.New("timeout")
	svc := NewBookService(fs, nil)

	err := svc.ResetToDefaults(context.Background())

	assert.ErrorIs(t, err, ErrPersistence)
}

func TestImagePayloadSize(t *testing.T) {
	url := "https://cdn.example/x.png"
	assert.Equal(t, len(url), imagePayloadSize(url))

	raw := []byte(strings.Repeat("x", 300))
	dataURL := "data:image/png;base64," + base64.StdEncoding.EncodeToString(raw)
	assert.Equal(t, 300, imagePayloadSize(dataURL))

	// Malformed data URL falls back to raw length.
	assert.Equal(t, len("data:image/png"), imagePayloadSize("data:image/png"))
}
