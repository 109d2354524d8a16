package book

import (
	"context"

	"github.com/xiebiao/bookshelf/internal/domain/book"
	"github.com/xiebiao/bookshelf/pkg/tracing"
)

// GetBookUseCase 查询单本图书
type GetBookUseCase struct {
	bookService book.Service
}

// NewGetBookUseCase 创建用例
func NewGetBookUseCase(bookService book.Service) *GetBookUseCase {
	return &GetBookUseCase{bookService: bookService}
}

// Execute 根据ID查询，不存在返回ErrBookNotFound
func (uc *GetBookUseCase) Execute(ctx context.Context, id string) (_ *BookDTO, err error) {
	ctx, span := tracing.StartSpan(ctx, "book.GetBook")
	defer func() { tracing.EndSpan(span, err) }()

	b, err := uc.bookService.GetBook(ctx, id)
	if err != nil {
		return nil, err
	}
	return toBookDTO(b), nil
}

// ListBooksUseCase 图书列表
// 不分页，固定返回前MaxResults本
type ListBooksUseCase struct {
	bookService book.Service
}

// NewListBooksUseCase 创建用例
func NewListBooksUseCase(bookService book.Service) *ListBooksUseCase {
	return &ListBooksUseCase{bookService: bookService}
}

// Execute 执行列表查询
func (uc *ListBooksUseCase) Execute(ctx context.Context) (_ []*BookDTO, err error) {
	ctx, span := tracing.StartSpan(ctx, "book.ListBooks")
	defer func() { tracing.EndSpan(span, err) }()

	books, err := uc.bookService.ListBooks(ctx)
	if err != nil {
		return nil, err
	}
	return toBookDTOs(books), nil
}
