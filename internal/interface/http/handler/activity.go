package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/xiebiao/bookshelf/internal/infrastructure/persistence/redis"
	"github.com/xiebiao/bookshelf/pkg/response"
)

// ActivityHandler 客户端活动记录查询
type ActivityHandler struct {
	store *redis.ActivityStore
}

// NewActivityHandler 创建处理器
func NewActivityHandler(store *redis.ActivityStore) *ActivityHandler {
	return &ActivityHandler{store: store}
}

// RecentActivity 客户端最近的请求
// @Summary      最近请求
// @Description  返回该客户端最近的请求记录，最新的在前；未启用Redis时为空列表
// @Tags         系统
// @Produce      json
// @Param        client path string true "客户端标识（X-Client-ID或IP）"
// @Success      200 {object} response.Response{data=[]redis.Activity}
// @Failure      500 {object} response.Response "Redis错误"
// @Router       /activity/{client} [get]
func (h *ActivityHandler) RecentActivity(c *gin.Context) {
	activities, err := h.store.Recent(c.Request.Context(), c.Param("client"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, activities)
}
