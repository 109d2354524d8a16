package book

import (
	"context"

	"github.com/xiebiao/bookshelf/internal/domain/book"
	"github.com/xiebiao/bookshelf/pkg/tracing"
)

// SearchBooksUseCase 搜索用例
// 价格区间的校验规则见domain/book/search.go
type SearchBooksUseCase struct {
	bookService book.Service
}

// NewSearchBooksUseCase 创建用例
func NewSearchBooksUseCase(bookService book.Service) *SearchBooksUseCase {
	return &SearchBooksUseCase{bookService: bookService}
}

// SearchBooksRequest 搜索请求DTO
type SearchBooksRequest struct {
	Title    *string
	Author   *string
	MinPrice *float64
	MaxPrice *float64
}

// Execute 执行搜索
func (uc *SearchBooksUseCase) Execute(ctx context.Context, req SearchBooksRequest) (_ []*BookDTO, err error) {
	ctx, span := tracing.StartSpan(ctx, "book.SearchBooks")
	defer func() { tracing.EndSpan(span, err) }()

	search, err := book.NewSearch(book.SearchParams{
		Title:    req.Title,
		Author:   req.Author,
		MinPrice: req.MinPrice,
		MaxPrice: req.MaxPrice,
	})
	if err != nil {
		return nil, err
	}

	books, err := uc.bookService.SearchBooks(ctx, search)
	if err != nil {
		return nil, err
	}
	return toBookDTOs(books), nil
}
