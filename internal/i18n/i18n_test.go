package i18n_test

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/guttosm/batch-service/internal/i18n"
)

func TestTranslator_Translate(t *testing.T) {
	translator := i18n.NewTranslator()

	tests := []struct {
		name     string
		key      string
		locale   string
		expected string
	}{
		{
			name:     "english batch not found",
			key:      i18n.ErrKeyBatchNotFound,
			locale:   "en",
			expected: "The parameter batch_id does not exist",
		},
		{
			name:     "portuguese batch not found",
			key:      i18n.ErrKeyBatchNotFound,
			locale:   "pt",
			expected: "O parâmetro batch_id não existe",
		},
		{
			name:     "already imported",
			key:      i18n.ErrKeyAlreadyImported,
			locale:   "en",
			expected: "Already Imported",
		},
		{
			name:     "empty locale falls back to english",
			key:      i18n.ErrKeyInternalError,
			locale:   "",
			expected: "An unexpected error occurred",
		},
		{
			name:     "unknown locale falls back to english",
			key:      i18n.ErrKeyInternalError,
			locale:   "fr",
			expected: "An unexpected error occurred",
		},
		{
			name:     "unknown key falls back to key",
			key:      "error.does_not_exist",
			locale:   "en",
			expected: "error.does_not_exist",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, translator.Translate(tt.key, tt.locale))
		})
	}
}

func TestGetTranslator_Singleton(t *testing.T) {
	assert.Same(t, i18n.GetTranslator(), i18n.GetTranslator())
}

func TestGetLocale(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name     string
		header   string
		expected string
	}{
		{name: "no header", header: "", expected: "en"},
		{name: "plain locale", header: "pt", expected: "pt"},
		{name: "regional variant", header: "pt-BR,pt;q=0.9", expected: "pt"},
		{name: "quality list picks first supported", header: "pt;q=0.8,en;q=0.9", expected: "pt"},
		{name: "unsupported falls back", header: "de-DE", expected: "en"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := gin.CreateTestContext(httptest.NewRecorder())
			c.Request = httptest.NewRequest("GET", "/", nil)
			if tt.header != "" {
				c.Request.Header.Set(i18n.AcceptLanguageHeader, tt.header)
			}
			assert.Equal(t, tt.expected, i18n.GetLocale(c))
		})
	}
}
