package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestValidationSetsRequestID(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	var seenID string
	handler := RequestValidation()(func(c echo.Context) error {
		seenID, _ = c.Get("request_id").(string)
		return c.NoContent(http.StatusOK)
	})

	require.NoError(t, handler(c))
	assert.NotEmpty(t, seenID)
	assert.Equal(t, seenID, rec.Header().Get("X-Request-ID"))
}

func TestRequestValidationRejectsOversizedBody(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader("x"))
	req.ContentLength = maxRequestBytes + 1
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := RequestValidation()(func(c echo.Context) error {
		t.Fatal("handler should not run")
		return nil
	})

	require.NoError(t, handler(c))
	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
}
