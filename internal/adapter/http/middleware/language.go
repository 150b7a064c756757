package middleware

import (
	"github.com/ninniks/ProjectManagement/pkg/translator"

	"github.com/gin-gonic/gin"
)

// LanguageMiddleware stores the request language so error messages can be
// translated downstream. The raw Accept-Language value is used as-is, with
// english as the fallback.
func LanguageMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		lang := c.GetHeader("Accept-Language")
		if lang == "" {
			lang = translator.LanguageEn
		}
		c.Set("lang", lang)
		c.Next()
	}
}

func GetLang(c *gin.Context) string {
	if lang, exists := c.Get("lang"); exists {
		if s, ok := lang.(string); ok {
			return s
		}
	}
	return translator.LanguageEn
}
