package middleware

import (
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/xiebiao/bookshelf/internal/infrastructure/persistence/redis"
	"github.com/xiebiao/bookshelf/pkg/metrics"
)

// ClientIDHeader 客户端标识请求头，缺省时使用客户端IP
const ClientIDHeader = "X-Client-ID"

// Activity 请求结束后把请求写入客户端的活动记录
// 写入失败只记日志，不影响响应
func Activity(store *redis.ActivityStore) gin.HandlerFunc {
	metrics.InitMetrics()

	return func(c *gin.Context) {
		c.Next()

		if !store.Enabled() {
			return
		}

		ctx := c.Request.Context()
		err := store.Record(ctx, ClientID(c), redis.Activity{
			Method:    c.Request.Method,
			Path:      c.Request.URL.Path,
			Status:    c.Writer.Status(),
			RequestID: GetRequestID(c),
			At:        time.Now().UTC(),
		})
		metrics.IncCounterVec(metrics.ActivityRecordsTotal, map[string]string{
			"result": metrics.Result(err),
		})
		if err != nil {
			slog.WarnContext(ctx, "写入活动记录失败", "error", err)
		}
	}
}

// ClientID 请求方标识
func ClientID(c *gin.Context) string {
	if id := c.GetHeader(ClientIDHeader); id != "" {
		return id
	}
	return c.ClientIP()
}
