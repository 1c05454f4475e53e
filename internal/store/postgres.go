// internal/store/postgres.go
package store

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/medlavka/storefront/internal/models"
)

type Postgres struct {
	db *gorm.DB
}

func NewPostgres(db *gorm.DB) *Postgres {
	return &Postgres{db: db}
}

func (p *Postgres) FetchAll(ctx context.Context) ([]models.Book, error) {
	var books []models.Book
	if err := p.db.WithContext(ctx).
		Order("created_at ASC, id ASC").
		Find(&books).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch catalog: %w", err)
	}
	return books, nil
}

func (p *Postgres) FetchOne(ctx context.Context, id string) (*models.Book, error) {
	var book models.Book
	if err := p.db.WithContext(ctx).First(&book, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch book: %w", err)
	}
	return &book, nil
}

func (p *Postgres) Insert(ctx context.Context, book *models.Book) error {
	if err := p.db.WithContext(ctx).Create(book).Error; err != nil {
		return fmt.Errorf("failed to insert book: %w", err)
	}
	return nil
}

func (p *Postgres) Update(ctx context.Context, id string, patch map[string]interface{}) error {
	res := p.db.WithContext(ctx).
		Model(&models.Book{}).
		Where("id = ?", id).
		Updates(patch)
	if res.Error != nil {
		return fmt.Errorf("failed to update book: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (p *Postgres) Delete(ctx context.Context, id string) error {
	if err := p.db.WithContext(ctx).
		Delete(&models.Book{}, "id = ?", id).Error; err != nil {
		return fmt.Errorf("failed to delete book: %w", err)
	}
	return nil
}

func (p *Postgres) DeleteMany(ctx context.Context, ids []string) error {
	if len(ids) == 0 {
		return nil
	}
	if err := p.db.WithContext(ctx).
		Delete(&models.Book{}, "id IN ?", ids).Error; err != nil {
		return fmt.Errorf("failed to delete books: %w", err)
	}
	return nil
}
