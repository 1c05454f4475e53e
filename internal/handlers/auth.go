// internal/handlers/auth.go
package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/medlavka/storefront/internal/i18n"
	"github.com/medlavka/storefront/internal/services"
	"github.com/medlavka/storefront/internal/utils"
)

type AuthHandler struct {
	authService *services.AuthService
}

func NewAuthHandler(authService *services.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// POST /auth/telegram
// Resolves the platform identity. Granted returns a session token; otherwise
// the client must prompt for the shared secret.
func (h *AuthHandler) TelegramLogin(c *gin.Context) {
	var req services.TelegramLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "", err.Error())
		return
	}

	result, err := h.authService.ResolveTelegram(&req)
	if err != nil {
		if errors.Is(err, services.ErrInvalidInitData) {
			utils.UnauthorizedResponse(c, "")
			return
		}
		utils.InternalErrorResponse(c, "")
		return
	}

	utils.SuccessResponse(c, result)
}

// POST /auth/password
// Denied is a successful response, not an HTTP error: the client clears the
// input and prompts again. No lockout.
func (h *AuthHandler) PasswordLogin(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	var req services.PasswordLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "", err.Error())
		return
	}

	result, err := h.authService.SubmitSecret(&req)
	if err != nil {
		utils.InternalErrorResponse(c, "")
		return
	}

	if result.Decision == services.EntryDenied {
		utils.SuccessResponse(c, gin.H{
			"decision": result.Decision,
			"message":  i18n.T(lang, i18n.KeyAuthDenied),
		})
		return
	}

	utils.SuccessResponse(c, result)
}
