// eventlog 订阅图书变更事件并写入日志，用于排查事件是否正常发布
package main

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"log/slog"
	"os/signal"
	"syscall"

	appbook "github.com/xiebiao/bookshelf/internal/application/book"
	"github.com/xiebiao/bookshelf/internal/infrastructure/config"
	"github.com/xiebiao/bookshelf/pkg/logger"
	"github.com/xiebiao/bookshelf/pkg/mq"
)

const queueName = "bookshelf.eventlog"

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("加载配置失败: %v", err)
	}

	l, closeLog, err := logger.New(logger.Options{
		Level:        cfg.Log.Level,
		Format:       cfg.Log.Format,
		Output:       cfg.Log.Output,
		EnableCaller: cfg.Log.EnableCaller,
	})
	if err != nil {
		log.Fatalf("初始化日志失败: %v", err)
	}
	defer func() { _ = closeLog() }()
	slog.SetDefault(l)

	if err := run(cfg); err != nil {
		slog.Error("事件订阅异常退出", "error", err)
	}
}

func run(cfg *config.Config) error {
	if !cfg.MQ.Enabled {
		return errors.New("mq.enabled为false，没有可订阅的事件")
	}

	consumer, err := mq.NewConsumer(cfg.MQ.URL, cfg.MQ.Exchange, cfg.MQ.ExchangeType, queueName, []string{"book.*"})
	if err != nil {
		return err
	}
	defer consumer.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	return consumer.Consume(ctx, logEvent)
}

// logEvent 无法解析的消息直接丢弃，避免反复重新入队
func logEvent(body []byte) error {
	var event appbook.BookEvent
	if err := json.Unmarshal(body, &event); err != nil {
		slog.Warn("丢弃无法解析的事件", "error", err, "body", string(body))
		return nil
	}

	attrs := []any{"type", event.Type, "book_id", event.BookID, "occurred_at", event.OccurredAt}
	if event.Book != nil {
		attrs = append(attrs, "title", event.Book.Title, "stock", event.Book.Stock)
	}
	slog.Info("图书事件", attrs...)
	return nil
}
