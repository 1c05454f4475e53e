// internal/handlers/catalog.go
package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/medlavka/storefront/internal/catalog"
	"github.com/medlavka/storefront/internal/models"
	"github.com/medlavka/storefront/internal/utils"
)

// CatalogHandler serves the read surface. It only ever reads the in-memory
// cache; the reconciler is the sole writer after startup.
type CatalogHandler struct {
	cache *catalog.Cache
}

func NewCatalogHandler(cache *catalog.Cache) *CatalogHandler {
	return &CatalogHandler{cache: cache}
}

// GET /books?q=...&category=...
func (h *CatalogHandler) GetBooks(c *gin.Context) {
	query := c.Query("q")
	category := c.DefaultQuery("category", models.CategoryAll)

	books := catalog.Visible(h.cache.Items(), query, category)

	utils.SuccessResponse(c, gin.H{
		"books": books,
		"total": len(books),
	})
}

// GET /books/:id
func (h *CatalogHandler) GetBook(c *gin.Context) {
	book, ok := h.cache.Get(c.Param("id"))
	if !ok {
		utils.NotFoundResponse(c, "")
		return
	}

	utils.SuccessResponse(c, gin.H{"book": book})
}

// GET /categories
func (h *CatalogHandler) GetCategories(c *gin.Context) {
	utils.SuccessResponse(c, gin.H{
		"categories": models.Categories,
	})
}
