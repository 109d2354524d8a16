package handler

import (
	"github.com/gin-gonic/gin"

	appbook "github.com/xiebiao/bookshelf/internal/application/book"
	"github.com/xiebiao/bookshelf/pkg/response"
)

// AggregateHandler 统计处理器
type AggregateHandler struct {
	aggregateUseCase *appbook.AggregateUseCase
}

// NewAggregateHandler 创建统计处理器
func NewAggregateHandler(aggregateUseCase *appbook.AggregateUseCase) *AggregateHandler {
	return &AggregateHandler{aggregateUseCase: aggregateUseCase}
}

// TotalStock 库存总数
// @Summary      库存总数
// @Description  全部图书stock之和，空集合为0
// @Tags         统计
// @Produce      json
// @Success      200 {object} response.Response{data=int}
// @Router       /aggregate/count [get]
func (h *AggregateHandler) TotalStock(c *gin.Context) {
	total, err := h.aggregateUseCase.TotalStock(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, total)
}

// BestSelling 畅销书
// @Summary      畅销书
// @Description  按书名汇总库存取前5，返回每组第一条记录
// @Tags         统计
// @Produce      json
// @Success      200 {object} response.Response{data=[]appbook.BookDTO}
// @Router       /aggregate/best-selling [get]
func (h *AggregateHandler) BestSelling(c *gin.Context) {
	books, err := h.aggregateUseCase.BestSelling(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, books)
}

// ProlificAuthors 高产作者
// @Summary      高产作者
// @Description  图书数量最多的前5位作者
// @Tags         统计
// @Produce      json
// @Success      200 {object} response.Response{data=[]string}
// @Router       /aggregate/prolific-author [get]
func (h *AggregateHandler) ProlificAuthors(c *gin.Context) {
	authors, err := h.aggregateUseCase.ProlificAuthors(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, authors)
}
