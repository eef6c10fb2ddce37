package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(Middleware())
	r.GET("/api/ping/:id", func(c *gin.Context) { c.Status(http.StatusTeapot) })

	before := testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues("/api/ping/:id", "418"))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/ping/1", nil))
	require.Equal(t, http.StatusTeapot, w.Code)

	after := testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues("/api/ping/:id", "418"))
	assert.Equal(t, before+1, after)
}

func TestHandler(t *testing.T) {
	PresenterErrorsTotal.WithLabelValues("Concurrent update").Inc()

	w := httptest.NewRecorder()
	Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, strings.Contains(w.Body.String(), "bakery_presenter_errors_total"))
}
