// internal/catalog/filter.go
package catalog

import (
	"strings"

	"github.com/medlavka/storefront/internal/models"
)

// Visible computes the subset of items the shopper should see. Category must
// match exactly (case-sensitive) unless it is the "Все" sentinel; the query
// is a case-insensitive substring match against title and subject. Order of
// the input is preserved and no state outside the arguments is consulted.
func Visible(items []models.Book, query, category string) []models.Book {
	q := strings.ToLower(query)

	out := make([]models.Book, 0, len(items))
	for _, book := range items {
		if category != models.CategoryAll && book.Category != category {
			continue
		}
		if q != "" &&
			!strings.Contains(strings.ToLower(book.Title), q) &&
			!strings.Contains(strings.ToLower(book.Subject), q) {
			continue
		}
		out = append(out, book)
	}
	return out
}
