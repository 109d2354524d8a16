package response

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "github.com/xiebiao/bookshelf/pkg/errors"
)

// Response 统一响应结构
// 设计说明：
// 1. HTTP状态码由业务错误码推导（42201 → 422）
// 2. Code是业务错误码，成功时为0
// 3. Data是业务数据，失败时省略
type Response struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

// Success 200响应
func Success(c *gin.Context, data any) {
	c.JSON(http.StatusOK, Response{
		Code:    0,
		Message: "success",
		Data:    data,
	})
}

// Created 201响应
func Created(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, Response{
		Code:    0,
		Message: "created",
		Data:    data,
	})
}

// NoContent 204响应，没有响应体
func NoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

// Error 错误响应（自动处理AppError）
// 内部错误只写日志，客户端只看到Message
func Error(c *gin.Context, err error) {
	appErr := apperrors.GetAppError(err)

	if appErr.IsServerError() {
		slog.ErrorContext(c.Request.Context(), "请求失败",
			"path", c.FullPath(),
			"code", appErr.Code,
			"error", err,
		)
	}

	// 交给中间件记录
	_ = c.Error(err)

	c.AbortWithStatusJSON(appErr.HTTPStatus(), Response{
		Code:    appErr.Code,
		Message: appErr.Message,
	})
}
