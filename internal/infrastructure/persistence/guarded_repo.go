package persistence

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/xiebiao/bookshelf/internal/domain/book"
	"github.com/xiebiao/bookshelf/pkg/circuitbreaker"
	apperrors "github.com/xiebiao/bookshelf/pkg/errors"
	"github.com/xiebiao/bookshelf/pkg/metrics"
	"github.com/xiebiao/bookshelf/pkg/tracing"
)

// guardedRepository 给任意Repository加上熔断、指标和追踪
// 设计说明:
// 1. 装饰器模式，对domain层透明
// 2. 只有服务端错误(5xxxx)计入熔断失败，不存在/重复等业务错误不计入
// 3. 熔断打开时返回ErrStoreUnavailable(503)，不访问存储
type guardedRepository struct {
	next    book.Repository
	breaker *circuitbreaker.CircuitBreaker
}

// NewGuardedRepository 包装Repository
func NewGuardedRepository(next book.Repository, breaker *circuitbreaker.CircuitBreaker) book.Repository {
	metrics.InitMetrics()

	name := breaker.Name()
	metrics.SetGaugeVec(metrics.CircuitBreakerState, map[string]string{"name": name}, float64(breaker.State()))
	breaker.SetStateChangeCallback(func(name string, from, to circuitbreaker.State) {
		slog.Warn("存储熔断器状态变化", "name", name, "from", from.String(), "to", to.String())
		metrics.SetGaugeVec(metrics.CircuitBreakerState, map[string]string{"name": name}, float64(to))
	})

	return &guardedRepository{next: next, breaker: breaker}
}

// IsStoreFailure 判断错误是否属于存储故障
func IsStoreFailure(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, context.Canceled) {
		return false
	}
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		return appErr.IsServerError()
	}
	return true
}

// run 执行一次存储操作
func (r *guardedRepository) run(ctx context.Context, operation string, fn func(ctx context.Context) error) error {
	ctx, span := tracing.StartSpan(ctx, "store."+operation)
	start := time.Now()

	err := r.breaker.Execute(func() error { return fn(ctx) })

	result := metrics.Result(err)
	if errors.Is(err, circuitbreaker.ErrOpenState) {
		result = metrics.ResultRejected
		err = book.ErrStoreUnavailable
	} else if err != nil && !IsStoreFailure(err) {
		result = metrics.ResultSuccess
	}

	metrics.IncCounterVec(metrics.StoreOperationsTotal, map[string]string{"operation": operation, "result": result})
	metrics.IncCounterVec(metrics.CircuitBreakerRequests, map[string]string{"name": r.breaker.Name(), "result": result})
	metrics.ObserveHistogramVec(metrics.StoreOperationDuration, map[string]string{"operation": operation}, time.Since(start).Seconds())

	if IsStoreFailure(err) {
		tracing.EndSpan(span, err)
	} else {
		tracing.EndSpan(span, nil)
	}
	return err
}

// Create 插入图书
func (r *guardedRepository) Create(ctx context.Context, b *book.Book) error {
	return r.run(ctx, "create", func(ctx context.Context) error {
		return r.next.Create(ctx, b)
	})
}

// FindByID 根据ID查找图书
func (r *guardedRepository) FindByID(ctx context.Context, id string) (*book.Book, error) {
	var out *book.Book
	err := r.run(ctx, "find_by_id", func(ctx context.Context) (err error) {
		out, err = r.next.FindByID(ctx, id)
		return err
	})
	return out, err
}

// Find 按条件查找
func (r *guardedRepository) Find(ctx context.Context, predicate book.Predicate, limit int) ([]*book.Book, error) {
	var out []*book.Book
	err := r.run(ctx, "find", func(ctx context.Context) (err error) {
		out, err = r.next.Find(ctx, predicate, limit)
		return err
	})
	return out, err
}

// Update 局部更新
func (r *guardedRepository) Update(ctx context.Context, id string, patch book.Patch) (*book.Book, error) {
	var out *book.Book
	err := r.run(ctx, "update", func(ctx context.Context) (err error) {
		out, err = r.next.Update(ctx, id, patch)
		return err
	})
	return out, err
}

// Delete 删除图书
func (r *guardedRepository) Delete(ctx context.Context, id string) error {
	return r.run(ctx, "delete", func(ctx context.Context) error {
		return r.next.Delete(ctx, id)
	})
}

// Aggregate 执行聚合管道
func (r *guardedRepository) Aggregate(ctx context.Context, pipeline book.Pipeline) ([]book.Document, error) {
	var out []book.Document
	err := r.run(ctx, "aggregate", func(ctx context.Context) (err error) {
		out, err = r.next.Aggregate(ctx, pipeline)
		return err
	})
	return out, err
}

// EnsureIndexes 创建索引
func (r *guardedRepository) EnsureIndexes(ctx context.Context) error {
	return r.run(ctx, "ensure_indexes", r.next.EnsureIndexes)
}

// Ping 检查存储可用
func (r *guardedRepository) Ping(ctx context.Context) error {
	return r.run(ctx, "ping", r.next.Ping)
}

// Version 存储服务版本
func (r *guardedRepository) Version(ctx context.Context) (string, error) {
	var out string
	err := r.run(ctx, "version", func(ctx context.Context) (err error) {
		out, err = r.next.Version(ctx)
		return err
	})
	return out, err
}
