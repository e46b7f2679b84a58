package views

import (
	"emission-service/internal/pkg/constvars"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderer_Render(t *testing.T) {
	renderer, err := NewRenderer()
	require.NoError(t, err)

	t.Run("Login page with error", func(t *testing.T) {
		rr := httptest.NewRecorder()
		data := map[string]interface{}{
			"Title": "Login",
			"Error": "Invalid credentials",
			"Login": map[string]string{"Username": "<alice>"},
		}

		require.NoError(t, renderer.Render(rr, http.StatusUnauthorized, constvars.TemplateLogin, data))

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
		assert.Equal(t, constvars.MIMETextHTMLCharsetUTF8, rr.Header().Get(constvars.HeaderContentType))
		assert.Contains(t, rr.Body.String(), "Invalid credentials")
		assert.Contains(t, rr.Body.String(), "&lt;alice&gt;")
	})

	t.Run("Unknown page", func(t *testing.T) {
		rr := httptest.NewRecorder()
		err := renderer.Render(rr, http.StatusOK, "missing.html", nil)

		assert.Error(t, err)
		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Empty(t, rr.Body.String())
	})
}

func TestStaticHandler(t *testing.T) {
	rr := httptest.NewRecorder()
	StaticHandler().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/static/style.css", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), ".topbar")
}
