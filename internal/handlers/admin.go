// internal/handlers/admin.go
package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/medlavka/storefront/internal/i18n"
	"github.com/medlavka/storefront/internal/services"
	"github.com/medlavka/storefront/internal/utils"
)

// AdminHandler applies catalog mutations. Every failure is converted to a
// user-visible message here; nothing propagates past the handler.
type AdminHandler struct {
	bookService *services.BookService
}

func NewAdminHandler(bookService *services.BookService) *AdminHandler {
	return &AdminHandler{bookService: bookService}
}

// POST /admin/books
func (h *AdminHandler) CreateBook(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	var req services.CreateBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "", err.Error())
		return
	}

	book, err := h.bookService.AddBook(c.Request.Context(), &req)
	if err != nil {
		h.respondMutationError(c, err)
		return
	}

	utils.CreatedResponse(c, gin.H{
		"message": i18n.T(lang, i18n.KeyBookCreated),
		"book":    book,
	})
}

// PUT /admin/books/:id
func (h *AdminHandler) UpdateBook(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	var req services.UpdateBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "", err.Error())
		return
	}

	if err := h.bookService.UpdateBook(c.Request.Context(), c.Param("id"), &req); err != nil {
		h.respondMutationError(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"message": i18n.T(lang, i18n.KeyBookUpdated),
	})
}

// DELETE /admin/books/:id
// If the deleted item is open in a detail view, the client closes it; the
// delete event on the stream carries the id it needs.
func (h *AdminHandler) DeleteBook(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	if err := h.bookService.DeleteBook(c.Request.Context(), c.Param("id")); err != nil {
		h.respondMutationError(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"message": i18n.T(lang, i18n.KeyBookDeleted),
	})
}

// POST /admin/catalog/reset
func (h *AdminHandler) ResetCatalog(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	if err := h.bookService.ResetToDefaults(c.Request.Context()); err != nil {
		h.respondMutationError(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"message": i18n.T(lang, i18n.KeyCatalogReset),
	})
}

func (h *AdminHandler) respondMutationError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrValidation):
		utils.BadRequestResponse(c, err.Error(), nil)
	case errors.Is(err, services.ErrNotFound):
		utils.NotFoundResponse(c, "")
	case errors.Is(err, services.ErrPersistence):
		utils.PersistenceErrorResponse(c)
	default:
		utils.InternalErrorResponse(c, "")
	}
}
