package book

import (
	"context"

	"github.com/xiebiao/bookshelf/internal/domain/book"
	"github.com/xiebiao/bookshelf/pkg/tracing"
)

// DeleteBookUseCase 删除图书用例
type DeleteBookUseCase struct {
	bookService book.Service
	events      *EventEmitter
}

// NewDeleteBookUseCase 创建用例
func NewDeleteBookUseCase(bookService book.Service, events *EventEmitter) *DeleteBookUseCase {
	return &DeleteBookUseCase{bookService: bookService, events: events}
}

// Execute 删除成功后发布book.deleted事件
func (uc *DeleteBookUseCase) Execute(ctx context.Context, id string) (err error) {
	ctx, span := tracing.StartSpan(ctx, "book.DeleteBook")
	defer func() { tracing.EndSpan(span, err) }()

	if err := uc.bookService.DeleteBook(ctx, id); err != nil {
		return err
	}

	uc.events.Emit(ctx, EventBookDeleted, id, nil)
	return nil
}
