package main

import (
	"log/slog"

	"github.com/gin-gonic/gin"

	appbook "github.com/xiebiao/bookshelf/internal/application/book"
	"github.com/xiebiao/bookshelf/internal/domain/book"
	"github.com/xiebiao/bookshelf/internal/infrastructure/config"
	"github.com/xiebiao/bookshelf/pkg/mq"
)

// version 构建时通过 -ldflags "-X main.version=..." 注入
var version = "dev"

// App 启动所需的组件
type App struct {
	Engine *gin.Engine
	Books  book.Service
}

func newApp(engine *gin.Engine, books book.Service) *App {
	return &App{Engine: engine, Books: books}
}

func provideServiceVersion() appbook.ServiceVersion {
	return appbook.ServiceVersion(version)
}

// provideEventPublisher mq.enabled=false时返回NoopPublisher
func provideEventPublisher(cfg *config.Config) (mq.EventPublisher, func(), error) {
	if !cfg.MQ.Enabled {
		return mq.NoopPublisher{}, func() {}, nil
	}

	publisher, err := mq.NewPublisher(cfg.MQ.URL, cfg.MQ.Exchange, cfg.MQ.ExchangeType)
	if err != nil {
		return nil, nil, err
	}

	cleanup := func() {
		if err := publisher.Close(); err != nil {
			slog.Warn("关闭消息发布者失败", "error", err)
		}
	}
	return publisher, cleanup, nil
}
