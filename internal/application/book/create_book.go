package book

import (
	"context"

	"github.com/xiebiao/bookshelf/internal/domain/book"
	"github.com/xiebiao/bookshelf/pkg/tracing"
)

// CreateBookUseCase 创建图书用例
// 设计说明:
// 1. 应用层负责用例编排：领域服务创建 → 发布book.created事件
// 2. 必填字段校验由领域层NewBook负责
type CreateBookUseCase struct {
	bookService book.Service
	events      *EventEmitter
}

// NewCreateBookUseCase 创建用例
func NewCreateBookUseCase(bookService book.Service, events *EventEmitter) *CreateBookUseCase {
	return &CreateBookUseCase{bookService: bookService, events: events}
}

// CreateBookRequest 创建请求DTO
// nil表示请求中没有该字段
type CreateBookRequest struct {
	ID          string
	Title       *string
	Author      *string
	Description *string
	Price       *float64
	Stock       *int
}

// Execute 执行创建用例
func (uc *CreateBookUseCase) Execute(ctx context.Context, req CreateBookRequest) (_ *BookDTO, err error) {
	ctx, span := tracing.StartSpan(ctx, "book.CreateBook")
	defer func() { tracing.EndSpan(span, err) }()

	b, err := uc.bookService.CreateBook(ctx, book.CreateParams{
		ID:          req.ID,
		Title:       req.Title,
		Author:      req.Author,
		Description: req.Description,
		Price:       req.Price,
		Stock:       req.Stock,
	})
	if err != nil {
		return nil, err
	}

	dto := toBookDTO(b)
	uc.events.Emit(ctx, EventBookCreated, b.ID, dto)
	return dto, nil
}
