package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xiebiao/bookshelf/internal/infrastructure/config"
	"github.com/xiebiao/bookshelf/internal/infrastructure/persistence/redis"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestLogger(t *testing.T) {
	r := gin.New()
	r.Use(Logger())

	var seen string
	r.GET("/x", func(c *gin.Context) {
		seen = GetRequestID(c)
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/x", nil))

	require.NotEmpty(t, seen)
	assert.Equal(t, seen, w.Header().Get(RequestIDHeader))
}

func TestClientID(t *testing.T) {
	r := gin.New()
	var got string
	r.GET("/x", func(c *gin.Context) {
		got = ClientID(c)
	})

	t.Run("优先使用请求头", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/x", nil)
		req.Header.Set(ClientIDHeader, "client-42")
		r.ServeHTTP(httptest.NewRecorder(), req)
		assert.Equal(t, "client-42", got)
	})

	t.Run("没有请求头时使用IP", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/x", nil)
		req.RemoteAddr = "10.1.2.3:5555"
		r.ServeHTTP(httptest.NewRecorder(), req)
		assert.Equal(t, "10.1.2.3", got)
	})
}

func TestMiddlewareChain(t *testing.T) {
	cfg := &config.Config{}
	store := redis.NewActivityStore(nil, cfg)

	r := gin.New()
	r.Use(Logger(), Tracing(), Metrics(), Activity(store))
	r.GET("/boom", func(c *gin.Context) {
		c.AbortWithStatus(http.StatusInternalServerError)
	})

	t.Run("服务端错误", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/boom", nil))
		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})

	t.Run("未匹配路由", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/nowhere", nil))
		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.NotEmpty(t, w.Header().Get(RequestIDHeader))
	})
}
