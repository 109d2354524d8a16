package persistence

import (
	"github.com/xiebiao/bookshelf/internal/domain/book"
	"github.com/xiebiao/bookshelf/internal/infrastructure/config"
	"github.com/xiebiao/bookshelf/internal/infrastructure/persistence/memory"
	"github.com/xiebiao/bookshelf/internal/infrastructure/persistence/mongo"
	"github.com/xiebiao/bookshelf/pkg/circuitbreaker"
)

// BreakerName 存储熔断器名称（指标标签）
const BreakerName = "book-store"

// NewBreaker 根据配置创建存储熔断器
func NewBreaker(cfg *config.Config) *circuitbreaker.CircuitBreaker {
	return circuitbreaker.NewCircuitBreaker(BreakerName, circuitbreaker.Config{
		MaxRequests:  cfg.Breaker.MaxRequests,
		Interval:     cfg.Breaker.Interval,
		Timeout:      cfg.Breaker.Timeout,
		ReadyToTrip:  circuitbreaker.ConsecutiveFailures(cfg.Breaker.FailureThreshold),
		IsSuccessful: func(err error) bool { return !IsStoreFailure(err) },
	})
}

// NewBookRepository 按database.driver选择存储实现并加上熔断保护
// cleanup在退出时释放连接
func NewBookRepository(cfg *config.Config, breaker *circuitbreaker.CircuitBreaker) (book.Repository, func(), error) {
	var (
		repo    book.Repository
		cleanup = func() {}
	)

	switch cfg.Database.Driver {
	case config.DriverMemory:
		repo = memory.NewBookRepository()
	default:
		client, closeClient, err := mongo.NewClient(cfg)
		if err != nil {
			return nil, nil, err
		}
		repo = mongo.NewBookRepository(mongo.NewCollection(client, cfg))
		cleanup = closeClient
	}

	return NewGuardedRepository(repo, breaker), cleanup, nil
}
