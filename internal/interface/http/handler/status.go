package handler

import (
	"github.com/gin-gonic/gin"

	appbook "github.com/xiebiao/bookshelf/internal/application/book"
	"github.com/xiebiao/bookshelf/pkg/response"
)

// StatusHandler 版本与健康检查
type StatusHandler struct {
	statusUseCase *appbook.StatusUseCase
}

// NewStatusHandler 创建处理器
func NewStatusHandler(statusUseCase *appbook.StatusUseCase) *StatusHandler {
	return &StatusHandler{statusUseCase: statusUseCase}
}

// Root 存储版本与服务版本
// @Summary      服务状态
// @Tags         系统
// @Produce      json
// @Success      200 {object} response.Response{data=appbook.StatusResponse}
// @Router       / [get]
func (h *StatusHandler) Root(c *gin.Context) {
	status, err := h.statusUseCase.Versions(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, status)
}

// Ping 存活检查，不访问存储
// @Summary      存活检查
// @Tags         系统
// @Produce      json
// @Success      200 {object} response.Response
// @Router       /ping [get]
func (h *StatusHandler) Ping(c *gin.Context) {
	response.Success(c, gin.H{
		"message": "pong",
		"status":  "healthy",
	})
}

// Ready 就绪检查，存储不可用时返回5xx
// @Summary      就绪检查
// @Tags         系统
// @Produce      json
// @Success      200 {object} response.Response
// @Failure      503 {object} response.Response "存储不可用"
// @Router       /readyz [get]
func (h *StatusHandler) Ready(c *gin.Context) {
	if err := h.statusUseCase.Ready(c.Request.Context()); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, gin.H{"status": "ready"})
}
