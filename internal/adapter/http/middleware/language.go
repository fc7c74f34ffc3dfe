package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"taskmanager/pkg/translator"
)

const langKey = "lang"

// LanguageMiddleware stores the primary tag of the Accept-Language header, falling back to en.
func LanguageMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		lang := primaryLanguage(c.GetHeader("Accept-Language"))
		if lang == "" {
			lang = translator.LanguageEn
		}
		c.Set(langKey, lang)
		c.Next()
	}
}

func GetLang(c *gin.Context) string {
	if lang, exists := c.Get(langKey); exists {
		if s, ok := lang.(string); ok {
			return s
		}
	}
	return translator.LanguageEn
}

// primaryLanguage keeps the first entry of a header such as "fr-FR,fr;q=0.9".
func primaryLanguage(header string) string {
	first, _, _ := strings.Cut(header, ",")
	first, _, _ = strings.Cut(first, ";")
	return strings.TrimSpace(first)
}
