// internal/handlers/admin_test.go
package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/medlavka/storefront/internal/models"
	"github.com/medlavka/storefront/internal/services"
	"github.com/medlavka/storefront/internal/utils"
)

type stubStore struct {
	inserted []models.Book
	patches  []map[string]interface{}
}

func (s *stubStore) FetchAll(ctx context.Context) ([]models.Book, error) { return nil, nil }

func (s *stubStore) Insert(ctx context.Context, book *models.Book) error {
	if book.ID == "" {
		book.ID = "stub-1"
	}
	s.inserted = append(s.inserted, *book)
	return nil
}

func (s *stubStore) Update(ctx context.Context, id string, patch map[string]interface{}) error {
	s.patches = append(s.patches, patch)
	return nil
}

func (s *stubStore) Delete(ctx context.Context, id string) error { return nil }

func (s *stubStore) DeleteMany(ctx context.Context, ids []string) error { return nil }

func newAdminRouter(st *stubStore) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewAdminHandler(services.NewBookService(st, nil))
	r := gin.New()
	r.POST("/books", h.CreateBook)
	r.PUT("/books/:id", h.UpdateBook)
	return r
}

func doJSON(r *gin.Engine, method, path string, payload interface{}) *httptest.ResponseRecorder {
	body, _ := json.Marshal(payload)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func TestCreateBookInvalidPayload(t *testing.T) {
	st := &stubStore{}
	r := newAdminRouter(st)

	// Missing title: rejected by the service layer, nothing reaches the store.
	w := doJSON(r, http.MethodPost, "/books", gin.H{
		"subject":  "Анатомия",
		"category": "Книги",
		"price":    100,
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp utils.APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "BAD_REQUEST", resp.Error.Code)
	assert.Empty(t, st.inserted)
}

func TestCreateBookValidPayload(t *testing.T) {
	st := &stubStore{}
	r := newAdminRouter(st)

	w := doJSON(r, http.MethodPost, "/books", gin.H{
		"title":    "Атлас анатомии",
		"subject":  "Анатомия",
		"category": "Книги",
		"price":    4500,
	})

	assert.Equal(t, http.StatusCreated, w.Code)
	require.Len(t, st.inserted, 1)
	assert.Equal(t, "Атлас анатомии", st.inserted[0].Title)
}

func TestUpdateBookInvalidPayload(t *testing.T) {
	st := &stubStore{}
	r := newAdminRouter(st)

	w := doJSON(r, http.MethodPut, "/books/1", gin.H{
		"title":    "Атлас анатомии",
		"subject":  "Анатомия",
		"category": "Книги",
		"price":    -5,
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Empty(t, st.patches)
}
