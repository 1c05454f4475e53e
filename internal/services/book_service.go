// internal/services/book_service.go
package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/medlavka/storefront/internal/models"
	"github.com/medlavka/storefront/internal/store"
	"github.com/medlavka/storefront/internal/utils"
)

// MaxImageBytes bounds inline image payloads so a single row stays cheap to
// store and to ship over the change-notification path.
const MaxImageBytes = 800 * 1024

// BookService validates and applies catalog mutations by writing through to
// the remote store. It never touches the in-memory cache: visibility of a
// successful write arrives via the change-event subscription, so callers must
// not assume synchronous visibility.
type BookService struct {
	store    store.Store
	notifier *NotificationService
}

// BookPayload carries every mutable field of a catalog item.
type BookPayload struct {
	Title       string            `json:"title" validate:"required"`
	Author      string            `json:"author,omitempty"`
	Subject     string            `json:"subject" validate:"required"`
	Price       float64           `json:"price" validate:"min=0"`
	CoverImage  string            `json:"coverImage,omitempty"`
	SampleImage string            `json:"sampleImage,omitempty"`
	Status      models.BookStatus `json:"status,omitempty" validate:"omitempty,oneof='In Stock' 'Out of Stock'"`
	Category    string            `json:"category" validate:"required"`
	Description string            `json:"description,omitempty"`
}

// CreateBookRequest is a new item: the id is assigned by the store.
type CreateBookRequest struct {
	BookPayload
}

// UpdateBookRequest patches an existing item. The id comes from the route,
// never from the payload, so it cannot be rewritten.
type UpdateBookRequest struct {
	BookPayload
}

func NewBookService(st store.Store, notifier *NotificationService) *BookService {
	return &BookService{
		store:    st,
		notifier: notifier,
	}
}

func (s *BookService) AddBook(ctx context.Context, req *CreateBookRequest) (*models.Book, error) {
	if err := s.validatePayload(&req.BookPayload); err != nil {
		return nil, err
	}

	book := &models.Book{
		Title:       req.Title,
		Author:      req.Author,
		Subject:     req.Subject,
		Price:       req.Price,
		CoverImage:  req.CoverImage,
		SampleImage: req.SampleImage,
		Status:      req.Status,
		Category:    req.Category,
		Description: req.Description,
	}
	if book.Status == "" {
		book.Status = models.BookStatusInStock
	}

	if err := s.store.Insert(ctx, book); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	return book, nil
}

func (s *BookService) UpdateBook(ctx context.Context, id string, req *UpdateBookRequest) error {
	if id == "" {
		return fmt.Errorf("%w: missing book id", ErrValidation)
	}
	if err := s.validatePayload(&req.BookPayload); err != nil {
		return err
	}

	patch := map[string]interface{}{
		"title":        req.Title,
		"author":       req.Author,
		"subject":      req.Subject,
		"price":        req.Price,
		"cover_image":  req.CoverImage,
		"sample_image": req.SampleImage,
		"category":     req.Category,
		"description":  req.Description,
	}
	// An omitted status keeps the stored value; it must never be blanked.
	if req.Status != "" {
		patch["status"] = req.Status
	}

	if err := s.store.Update(ctx, id, patch); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	return nil
}

func (s *BookService) DeleteBook(ctx context.Context, id string) error {
	if id == "" {
		return fmt.Errorf("%w: missing book id", ErrValidation)
	}
	if err := s.store.Delete(ctx, id); err != nil {
		return fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	return nil
}

// ResetToDefaults wipes the catalog and reinserts the fixed default set. The
// two phases are separate writes: a reseed failure after a successful wipe
// leaves the store empty until the next reset. The reconciliation channel
// replays whatever state results, so cache and store stay consistent either
// way.
func (s *BookService) ResetToDefaults(ctx context.Context) error {
	current, err := s.store.FetchAll(ctx)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrPersistence, err)
	}

	ids := make([]string, 0, len(current))
	for _, book := range current {
		ids = append(ids, book.ID)
	}

	if err := s.store.DeleteMany(ctx, ids); err != nil {
		return fmt.Errorf("%w: %v", ErrPersistence, err)
	}

	for _, book := range models.DefaultBooks() {
		b := book
		if err := s.store.Insert(ctx, &b); err != nil {
			return fmt.Errorf("%w: reseed failed at %q: %v", ErrPersistence, book.ID, err)
		}
	}

	if s.notifier != nil {
		s.notifier.NotifyAdmins(ctx, "Каталог сброшен",
			fmt.Sprintf("Каталог возвращён к набору по умолчанию (%d товаров).", len(models.DefaultBooks())))
	}
	return nil
}

func (s *BookService) validatePayload(p *BookPayload) error {
	if err := utils.ValidateStruct(p); err != nil {
		return fmt.Errorf("%w: %v", ErrValidation, err)
	}
	if err := checkImage("coverImage", p.CoverImage); err != nil {
		return err
	}
	if err := checkImage("sampleImage", p.SampleImage); err != nil {
		return err
	}
	return nil
}

func checkImage(field, payload string) error {
	if imagePayloadSize(payload) > MaxImageBytes {
		return fmt.Errorf("%w: %s exceeds %d KiB", ErrValidation, field, MaxImageBytes/1024)
	}
	return nil
}

// imagePayloadSize measures an image reference. Inline data URLs are measured
// by decoded size; plain URLs by their length.
func imagePayloadSize(s string) int {
	if !strings.HasPrefix(s, "data:") {
		return len(s)
	}
	i := strings.Index(s, ",")
	if i < 0 {
		return len(s)
	}
	encoded := s[i+1:]
	if !strings.Contains(s[:i], ";base64") {
		return len(encoded)
	}
	padding := strings.Count(encoded[max(0, len(encoded)-2):], "=")
	return len(encoded)/4*3 - padding
}
