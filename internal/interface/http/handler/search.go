package handler

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	appbook "github.com/xiebiao/bookshelf/internal/application/book"
	"github.com/xiebiao/bookshelf/internal/interface/http/dto"
	apperrors "github.com/xiebiao/bookshelf/pkg/errors"
	"github.com/xiebiao/bookshelf/pkg/response"
)

// SearchHandler 搜索处理器
type SearchHandler struct {
	searchBooksUseCase *appbook.SearchBooksUseCase
}

// NewSearchHandler 创建搜索处理器
func NewSearchHandler(searchBooksUseCase *appbook.SearchBooksUseCase) *SearchHandler {
	return &SearchHandler{searchBooksUseCase: searchBooksUseCase}
}

// SearchBooks 搜索图书
// @Summary      搜索图书
// @Description  书名、作者精确匹配；价格为闭区间，只给max_price时最低价为0
// @Tags         搜索
// @Produce      json
// @Param        title     query string false "书名"
// @Param        author    query string false "作者"
// @Param        min_price query number false "最低价（必须同时给出max_price）"
// @Param        max_price query number false "最高价"
// @Success      200 {object} response.Response{data=[]appbook.BookDTO}
// @Failure      400 {object} response.Response "参数格式错误"
// @Failure      422 {object} response.Response "价格区间无效"
// @Router       /search/ [get]
func (h *SearchHandler) SearchBooks(c *gin.Context) {
	var req dto.SearchBooksRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.Error(c, apperrors.ErrBindError.WithCause(err))
		return
	}

	var err error
	if req.MinPrice, err = queryPrice(c, "min_price"); err != nil {
		response.Error(c, apperrors.ErrBindError.WithCause(err))
		return
	}
	if req.MaxPrice, err = queryPrice(c, "max_price"); err != nil {
		response.Error(c, apperrors.ErrBindError.WithCause(err))
		return
	}

	books, err := h.searchBooksUseCase.Execute(c.Request.Context(), appbook.SearchBooksRequest{
		Title:    req.Title,
		Author:   req.Author,
		MinPrice: req.MinPrice,
		MaxPrice: req.MaxPrice,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, books)
}

// queryPrice 缺省或空字符串返回nil
func queryPrice(c *gin.Context, key string) (*float64, error) {
	raw, ok := c.GetQuery(key)
	if !ok || strings.TrimSpace(raw) == "" {
		return nil, nil
	}

	price, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", key, err)
	}
	return &price, nil
}
