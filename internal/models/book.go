// internal/models/book.go
package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type BookStatus string

const (
	BookStatusInStock    BookStatus = "In Stock"
	BookStatusOutOfStock BookStatus = "Out of Stock"
)

// CategoryAll is the sentinel meaning "no category restriction".
const CategoryAll = "Все"

// Categories is the fixed set shown in the storefront menu. The category
// column itself is free text so rows with unseen values still load.
var Categories = []string{CategoryAll, "Книги", "Книжки", "Тетради", "Ручки", "Развлечения"}

type Book struct {
	ID          string     `json:"id" gorm:"primaryKey;size:64"`
	Title       string     `json:"title" gorm:"size:255;not null"`
	Author      string     `json:"author,omitempty" gorm:"size:255"`
	Subject     string     `json:"subject" gorm:"size:255;not null"`
	Price       float64    `json:"price" gorm:"type:decimal(10,2);not null"`
	CoverImage  string     `json:"coverImage" gorm:"column:cover_image;type:text"`
	SampleImage string     `json:"sampleImage" gorm:"column:sample_image;type:text"`
	Status      BookStatus `json:"status" gorm:"type:varchar(20);default:'In Stock'"`
	Category    string     `json:"category" gorm:"size:100;index"`
	Description string     `json:"description,omitempty" gorm:"type:text"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

func (Book) TableName() string {
	return "books"
}

// BeforeCreate assigns a server-side id when the caller did not provide one.
// Seed rows keep their fixed ids.
func (b *Book) BeforeCreate(tx *gorm.DB) error {
	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	return nil
}
