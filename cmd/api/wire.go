//go:build wireinject
// +build wireinject

// Wire依赖注入配置
// 修改Provider后运行 `wire gen ./cmd/api` 重新生成wire_gen.go

package main

import (
	"github.com/google/wire"

	appbook "github.com/xiebiao/bookshelf/internal/application/book"
	"github.com/xiebiao/bookshelf/internal/domain/book"
	"github.com/xiebiao/bookshelf/internal/infrastructure/config"
	"github.com/xiebiao/bookshelf/internal/infrastructure/persistence"
	"github.com/xiebiao/bookshelf/internal/infrastructure/persistence/redis"
	"github.com/xiebiao/bookshelf/internal/interface/http/handler"
	"github.com/xiebiao/bookshelf/internal/interface/http/router"
)

// infrastructureSet 存储、Redis、消息队列
var infrastructureSet = wire.NewSet(
	persistence.NewBreaker,
	persistence.NewBookRepository,
	redis.NewClient,
	redis.NewActivityStore,
	provideEventPublisher,
)

// domainSet 领域服务
var domainSet = wire.NewSet(
	book.NewService,
)

// applicationSet 用例
var applicationSet = wire.NewSet(
	appbook.NewEventEmitter,
	appbook.NewCreateBookUseCase,
	appbook.NewGetBookUseCase,
	appbook.NewListBooksUseCase,
	appbook.NewUpdateBookUseCase,
	appbook.NewDeleteBookUseCase,
	appbook.NewSearchBooksUseCase,
	appbook.NewAggregateUseCase,
	appbook.NewStatusUseCase,
	provideServiceVersion,
)

// handlerSet HTTP处理器与路由
var handlerSet = wire.NewSet(
	handler.NewBookHandler,
	handler.NewSearchHandler,
	handler.NewAggregateHandler,
	handler.NewStatusHandler,
	handler.NewActivityHandler,
	wire.Struct(new(router.Handlers), "*"),
	router.New,
)

// InitializeApp 组装整个应用
// cleanup按创建的逆序关闭消息队列、Redis、存储连接
func InitializeApp(cfg *config.Config) (*App, func(), error) {
	wire.Build(
		infrastructureSet,
		domainSet,
		applicationSet,
		handlerSet,
		newApp,
	)
	return nil, nil, nil
}
