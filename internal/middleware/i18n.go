// internal/middleware/i18n.go
package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/medlavka/storefront/internal/i18n"
)

func I18nMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		lang := c.GetHeader("Accept-Language")

		// Handle values like "ru-RU,ru;q=0.9,en;q=0.8".
		if lang != "" {
			langs := strings.Split(lang, ",")
			if len(langs) > 0 {
				firstLang := strings.TrimSpace(strings.Split(langs[0], ";")[0])
				switch {
				case strings.HasPrefix(firstLang, "ru"):
					lang = "ru"
				case strings.HasPrefix(firstLang, "en"):
					lang = "en"
				default:
					lang = i18n.DefaultLang
				}
			}
		} else {
			lang = i18n.DefaultLang
		}

		c.Set("lang", lang)
		c.Next()
	}
}
