package tests

import (
	"os"
	"testing"

	"github.com/gin-gonic/gin"

	"taskmanager/pkg/translator"
)

const translationFolder = "../../../../../pkg/translator/translation"

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	if err := translator.InitTranslator(translator.Config{
		TranslationFolder:  translationFolder,
		SupportedLanguages: []string{translator.LanguageFr, translator.LanguageEn},
	}); err != nil {
		panic(err)
	}
	os.Exit(m.Run())
}
