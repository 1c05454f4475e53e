// internal/middleware/auth.go
package middleware

import (
	"net/http"
	"strings"

	"github.com/medlavka/storefront/internal/i18n"
	"github.com/medlavka/storefront/internal/utils"

	"github.com/gin-gonic/gin"
)

// AdminRequired guards the administrative surface. The token is issued only
// after the authorization gate grants entry, so role is always admin; the
// check stays explicit anyway.
func AdminRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		lang := utils.GetLangFromContext(c)

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": i18n.T(lang, i18n.KeyAuthRequired),
			})
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": i18n.T(lang, i18n.KeyAuthInvalidToken),
			})
			c.Abort()
			return
		}

		claims, err := utils.ValidateJWT(parts[1])
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": i18n.T(lang, i18n.KeyAuthInvalidToken),
			})
			c.Abort()
			return
		}

		if claims.Role != utils.RoleAdmin {
			c.JSON(http.StatusForbidden, gin.H{
				"error": i18n.T(lang, i18n.KeyAdminAccessDenied),
			})
			c.Abort()
			return
		}

		c.Set("admin_subject", claims.Subject)
		c.Next()
	}
}
