package book

import (
	"context"
	"log/slog"
	"time"

	"github.com/xiebiao/bookshelf/pkg/metrics"
	"github.com/xiebiao/bookshelf/pkg/mq"
)

// 图书事件的routing key
const (
	EventBookCreated = "book.created"
	EventBookUpdated = "book.updated"
	EventBookDeleted = "book.deleted"
)

// BookEvent 图书变更事件
// 删除事件只带BookID
type BookEvent struct {
	Type       string    `json:"type"`
	BookID     string    `json:"book_id"`
	Book       *BookDTO  `json:"book,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}

// EventEmitter 发布图书事件
// 发布失败只记日志和指标，不影响请求结果
type EventEmitter struct {
	publisher mq.EventPublisher
}

// NewEventEmitter 创建事件发布器
func NewEventEmitter(publisher mq.EventPublisher) *EventEmitter {
	metrics.InitMetrics()
	return &EventEmitter{publisher: publisher}
}

// Emit 发布事件
func (e *EventEmitter) Emit(ctx context.Context, routingKey, bookID string, dto *BookDTO) {
	event := BookEvent{
		Type:       routingKey,
		BookID:     bookID,
		Book:       dto,
		OccurredAt: time.Now().UTC(),
	}

	err := e.publisher.Publish(ctx, routingKey, event)
	metrics.IncCounterVec(metrics.MessagesPublishedTotal, map[string]string{
		"routing_key": routingKey,
		"result":      metrics.Result(err),
	})
	if err != nil {
		slog.WarnContext(ctx, "发布图书事件失败", "routing_key", routingKey, "book_id", bookID, "error", err)
	}
}
