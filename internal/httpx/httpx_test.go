package httpx

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MikeMC777/restau-management/internal/apperr"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func serve(r http.Handler, method, target string, hdr map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, nil)
	for k, v := range hdr {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRequestIDAndLogger(t *testing.T) {
	var buf bytes.Buffer
	r := gin.New()
	r.Use(RequestID(), Logger(slog.New(slog.NewJSONHandler(&buf, nil))))
	r.GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, RID(c)) })

	w := serve(r, http.MethodGet, "/ping", map[string]string{"X-Request-ID": "abc-123"})
	assert.Equal(t, "abc-123", w.Header().Get("X-Request-ID"))
	assert.Equal(t, "abc-123", w.Body.String())

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "abc-123", entry["rid"])
	assert.EqualValues(t, 200, entry["status"])

	w = serve(r, http.MethodGet, "/ping", nil)
	assert.Len(t, w.Header().Get("X-Request-ID"), 36)
}

func TestWriteError(t *testing.T) {
	r := gin.New()
	r.GET("/conflict", func(c *gin.Context) { WriteError(c, apperr.Conflict("table %d is already occupied", 4)) })
	r.GET("/boom", func(c *gin.Context) { WriteError(c, errors.New("pq: connection refused")) })
	r.GET("/missing", func(c *gin.Context) { WriteLookupError(c, apperr.NotFound("order 9 not found")) })

	w := serve(r, http.MethodGet, "/conflict", nil)
	require.Equal(t, http.StatusConflict, w.Code)
	var body ErrorBody
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "table 4 is already occupied", body.Error)
	_, err := time.Parse(time.RFC3339, body.Timestamp)
	assert.NoError(t, err)

	w = serve(r, http.MethodGet, "/boom", nil)
	require.Equal(t, http.StatusInternalServerError, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "internal server error", body.Error)

	w = serve(r, http.MethodGet, "/missing", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Empty(t, w.Body.String())
}

func TestParams(t *testing.T) {
	r := gin.New()
	r.GET("/t/:id", func(c *gin.Context) {
		id, err := ParamUint(c, "id")
		if err != nil {
			WriteError(c, err)
			return
		}
		avail, ok, err := QueryBool(c, "available")
		if err != nil {
			WriteError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"id": id, "available": avail, "set": ok})
	})

	assert.Equal(t, http.StatusBadRequest, serve(r, http.MethodGet, "/t/abc", nil).Code)
	assert.Equal(t, http.StatusBadRequest, serve(r, http.MethodGet, "/t/0", nil).Code)
	assert.Equal(t, http.StatusBadRequest, serve(r, http.MethodGet, "/t/3?available=maybe", nil).Code)

	w := serve(r, http.MethodGet, "/t/3?available=false", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"id":3,"available":false,"set":true}`, w.Body.String())
}

func TestETag(t *testing.T) {
	r := gin.New()
	r.Use(ETag())
	r.GET("/menu", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"name": "Margherita"}) })
	r.GET("/gone", func(c *gin.Context) { c.AbortWithStatus(http.StatusNotFound) })

	w := serve(r, http.MethodGet, "/menu", nil)
	require.Equal(t, http.StatusOK, w.Code)
	tag := w.Header().Get("ETag")
	require.NotEmpty(t, tag)
	assert.Contains(t, tag, `W/"`)
	assert.JSONEq(t, `{"name":"Margherita"}`, w.Body.String())

	w = serve(r, http.MethodGet, "/menu", map[string]string{"If-None-Match": tag})
	assert.Equal(t, http.StatusNotModified, w.Code)
	assert.Empty(t, w.Body.String())

	w = serve(r, http.MethodGet, "/menu", map[string]string{"If-None-Match": `W/"0000000000000000"`})
	assert.Equal(t, http.StatusOK, w.Code)

	w = serve(r, http.MethodGet, "/gone", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Empty(t, w.Header().Get("ETag"))
}

func TestCORSPreflight(t *testing.T) {
	r := gin.New()
	r.Use(CORS([]string{"http://localhost:5173"}))
	r.GET("/api/tables", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := serve(r, http.MethodOptions, "/api/tables", map[string]string{
		"Origin":                        "http://localhost:5173",
		"Access-Control-Request-Method": http.MethodPost,
	})
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "http://localhost:5173", w.Header().Get("Access-Control-Allow-Origin"))

	w = serve(r, http.MethodGet, "/api/tables", map[string]string{"Origin": "http://evil.test"})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
}

func TestRateLimiter(t *testing.T) {
	rl := NewRateLimiter(1, 2)
	r := gin.New()
	r.Use(rl.Middleware())
	r.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	assert.Equal(t, http.StatusOK, serve(r, http.MethodGet, "/", nil).Code)
	assert.Equal(t, http.StatusOK, serve(r, http.MethodGet, "/", nil).Code)
	w := serve(r, http.MethodGet, "/", nil)
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Equal(t, "1", w.Header().Get("Retry-After"))

	now := time.Now()
	rl.now = func() time.Time { return now.Add(time.Hour) }
	rl.Sweep()
	assert.Empty(t, rl.visitors)
}
