package helpers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEnvelope(t *testing.T) {
	rec := httptest.NewRecorder()
	JSON(rec, http.StatusCreated, map[string]int{"id": 1})
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"data":{"id":1}}`, rec.Body.String())

	rec = httptest.NewRecorder()
	Unauthorized(rec, "Not authenticated")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Bearer", rec.Header().Get("WWW-Authenticate"))
	assert.JSONEq(t, `{"error":"Not authenticated"}`, rec.Body.String())
}

func TestMaskEmail(t *testing.T) {
	assert.Equal(t, "a***@example.com", MaskEmail("alice@example.com"))
	assert.Equal(t, "***", MaskEmail("@example.com"))
	assert.Equal(t, "***", MaskEmail("no-at-sign"))
}

func TestBuildResetPasswordHTML(t *testing.T) {
	body := BuildResetPasswordHTML(`https://shop.example.com/reset-password?token=a.b&x="y"`, 3600)
	assert.Contains(t, body, "60 мин")
	assert.Contains(t, body, "token=a.b&amp;x=&#34;y&#34;")
	assert.False(t, strings.Contains(body, `x="y"`))
}
