package book

import (
	"context"

	"github.com/xiebiao/bookshelf/internal/domain/book"
	"github.com/xiebiao/bookshelf/pkg/tracing"
)

// AggregateUseCase 三个固定的统计查询
type AggregateUseCase struct {
	bookService book.Service
}

// NewAggregateUseCase 创建用例
func NewAggregateUseCase(bookService book.Service) *AggregateUseCase {
	return &AggregateUseCase{bookService: bookService}
}

// TotalStock 全部库存总和，空集合为0
func (uc *AggregateUseCase) TotalStock(ctx context.Context) (_ int64, err error) {
	ctx, span := tracing.StartSpan(ctx, "book.TotalStock")
	defer func() { tracing.EndSpan(span, err) }()

	return uc.bookService.TotalStock(ctx)
}

// BestSelling 按书名汇总库存的前5本
// 返回每组的代表记录，stock是该记录自己的库存
func (uc *AggregateUseCase) BestSelling(ctx context.Context) (_ []*BookDTO, err error) {
	ctx, span := tracing.StartSpan(ctx, "book.BestSelling")
	defer func() { tracing.EndSpan(span, err) }()

	books, err := uc.bookService.BestSelling(ctx)
	if err != nil {
		return nil, err
	}
	return toBookDTOs(books), nil
}

// ProlificAuthors 图书数量最多的前5位作者
func (uc *AggregateUseCase) ProlificAuthors(ctx context.Context) (_ []string, err error) {
	ctx, span := tracing.StartSpan(ctx, "book.ProlificAuthors")
	defer func() { tracing.EndSpan(span, err) }()

	return uc.bookService.ProlificAuthors(ctx)
}
