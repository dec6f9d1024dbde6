package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/ridwanfathin/invoice-register-service/internal/logger"
	"github.com/ridwanfathin/invoice-register-service/internal/metrics"
)

func init() {
	gin.SetMode(gin.TestMode)
	logger.SetDefault(logger.NewNop())
}

func TestTraceGeneratesRequestID(t *testing.T) {
	router := gin.New()
	router.Use(Trace())

	var seen string
	router.GET("/ping", func(c *gin.Context) {
		seen = logger.RequestID(c.Request.Context())
		c.Status(http.StatusNoContent)
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))

	assert.NotEmpty(t, seen)
	assert.Equal(t, seen, w.Header().Get(HeaderRequestID))
}

func TestTraceKeepsCallerRequestID(t *testing.T) {
	router := gin.New()
	router.Use(Trace())
	router.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, c.GetString("request_id"))
	})

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set(HeaderRequestID, "req-123")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, "req-123", w.Body.String())
	assert.Equal(t, "req-123", w.Header().Get(HeaderRequestID))
}

func TestRecoveryReturnsExceptionalEnvelope(t *testing.T) {
	router := gin.New()
	router.Use(Recovery())
	router.GET("/boom", func(c *gin.Context) {
		var m map[string]int
		m["x"] = 1
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/boom", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Internal server error", body["error"])
	assert.Contains(t, body["details"], "assignment to entry in nil map")
}

func TestMetricsUsesRouteTemplate(t *testing.T) {
	m := metrics.New(prometheus.NewRegistry())

	router := gin.New()
	router.Use(Metrics(m))
	router.GET("/invoice/purchase/:id", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	for _, id := range []string{"a", "b"} {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/invoice/purchase/"+id, nil))
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/nowhere", nil))

	assert.Equal(t, 2.0, testutil.ToFloat64(m.RequestsTotal.WithLabelValues("GET", "/invoice/purchase/:id", "200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.RequestsTotal.WithLabelValues("GET", "unmatched", "404")))
}

func TestRequestResponseLogger(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	log := &logger.Logger{SugaredLogger: zap.New(core).Sugar()}

	router := gin.New()
	router.Use(Trace(), RequestResponseLogger(log, LoggerConfig{LogBodies: true}))
	router.PATCH("/invoice/sales/:id", func(c *gin.Context) {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update invoice: boom"})
	})

	req := httptest.NewRequest(http.MethodPatch, "/invoice/sales/s-1", strings.NewReader(`{"payment_status":"paid","api_key":"abc"}`))
	req.Header.Set("Authorization", "Bearer secret")
	req.Header.Set(HeaderRequestID, "req-9")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, 1, logs.Len())
	entry := logs.All()[0]
	assert.Equal(t, zapcore.ErrorLevel, entry.Level)
	assert.Equal(t, "http request", entry.Message)

	fields := entry.ContextMap()
	assert.Equal(t, "req-9", fields["request_id"])
	assert.Equal(t, "/invoice/sales/:id", fields["route"])
	assert.EqualValues(t, http.StatusInternalServerError, fields["status"])

	headers, ok := fields["headers"].(map[string]string)
	require.True(t, ok)
	assert.Equal(t, "[REDACTED]", headers["Authorization"])

	requestBody, ok := fields["request_body"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "paid", requestBody["payment_status"])
	assert.Equal(t, "[REDACTED]", requestBody["api_key"])
}

func TestRedactSensitiveFieldsNested(t *testing.T) {
	body := parseAndRedactBody([]byte(`{"items":[{"token":"t","name":"x"}],"note":"ok"}`))

	m := body.(map[string]interface{})
	item := m["items"].([]interface{})[0].(map[string]interface{})
	assert.Equal(t, "[REDACTED]", item["token"])
	assert.Equal(t, "x", item["name"])
	assert.Equal(t, "ok", m["note"])
}

func TestParseAndRedactBodyTruncatesText(t *testing.T) {
	body := parseAndRedactBody([]byte(strings.Repeat("a", 1500)))

	s, ok := body.(string)
	require.True(t, ok)
	assert.True(t, strings.HasSuffix(s, "... (truncated)"))
	assert.Len(t, s, 1000+len("... (truncated)"))
}
