package book

import (
	"context"

	"github.com/xiebiao/bookshelf/internal/domain/book"
	"github.com/xiebiao/bookshelf/pkg/tracing"
)

// UpdateBookUseCase 局部更新用例
// 设计说明:
// 1. 只有请求中出现且不为null的字段才会写入
// 2. 补丁为空时不写库、不发事件，直接返回当前记录
type UpdateBookUseCase struct {
	bookService book.Service
	events      *EventEmitter
}

// NewUpdateBookUseCase 创建用例
func NewUpdateBookUseCase(bookService book.Service, events *EventEmitter) *UpdateBookUseCase {
	return &UpdateBookUseCase{bookService: bookService, events: events}
}

// UpdateBookRequest 更新请求DTO
type UpdateBookRequest struct {
	Title       *string
	Author      *string
	Description *string
	Price       *float64
	Stock       *int
}

// Execute 执行更新
func (uc *UpdateBookUseCase) Execute(ctx context.Context, id string, req UpdateBookRequest) (_ *BookDTO, err error) {
	ctx, span := tracing.StartSpan(ctx, "book.UpdateBook")
	defer func() { tracing.EndSpan(span, err) }()

	update := book.Update{
		Title:       req.Title,
		Author:      req.Author,
		Description: req.Description,
		Price:       req.Price,
		Stock:       req.Stock,
	}

	b, err := uc.bookService.UpdateBook(ctx, id, update)
	if err != nil {
		return nil, err
	}

	dto := toBookDTO(b)
	if len(update.Patch()) > 0 {
		uc.events.Emit(ctx, EventBookUpdated, b.ID, dto)
	}
	return dto, nil
}
