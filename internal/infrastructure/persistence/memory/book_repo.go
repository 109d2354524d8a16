package memory

import (
	"context"
	"sync"

	"github.com/xiebiao/bookshelf/internal/domain/book"
	apperrors "github.com/xiebiao/bookshelf/pkg/errors"
)

// Version 内存存储的版本标识
const Version = "memory"

// bookRepository 图书仓储实现(内存)
// 设计说明:
// 1. 用于本地开发和测试，不需要MongoDB
// 2. 文档按插入顺序保存，查询与聚合的结果顺序和MongoDB自然顺序一致
// 3. 聚合管道在pipeline.go中逐阶段求值
type bookRepository struct {
	mu    sync.RWMutex
	docs  map[string]book.Document
	order []string
}

// NewBookRepository 创建内存图书仓储
func NewBookRepository() book.Repository {
	return &bookRepository{docs: make(map[string]book.Document)}
}

// Create 插入图书
func (r *bookRepository) Create(_ context.Context, b *book.Book) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.docs[b.ID]; ok {
		return book.ErrBookDuplicate
	}

	r.docs[b.ID] = b.ToDocument()
	r.order = append(r.order, b.ID)
	return nil
}

// FindByID 根据ID查找图书
func (r *bookRepository) FindByID(_ context.Context, id string) (*book.Book, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	doc, ok := r.docs[id]
	if !ok {
		return nil, book.ErrBookNotFound
	}
	return book.FromDocument(doc), nil
}

// Find 按条件查找
func (r *bookRepository) Find(_ context.Context, predicate book.Predicate, limit int) ([]*book.Book, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	books := make([]*book.Book, 0)
	for _, id := range r.order {
		if limit > 0 && len(books) >= limit {
			break
		}
		doc := r.docs[id]
		if predicate.Matches(doc) {
			books = append(books, book.FromDocument(doc))
		}
	}
	return books, nil
}

// Update 覆盖patch中的字段
func (r *bookRepository) Update(_ context.Context, id string, patch book.Patch) (*book.Book, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	doc, ok := r.docs[id]
	if !ok {
		return nil, book.ErrBookNotFound
	}

	updated := cloneDocument(doc)
	for field, v := range patch {
		if field == book.FieldID {
			continue
		}
		updated[field] = v
	}
	r.docs[id] = updated

	return book.FromDocument(updated), nil
}

// Delete 删除图书
func (r *bookRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.docs[id]; !ok {
		return book.ErrBookNotFound
	}

	delete(r.docs, id)
	for i, v := range r.order {
		if v == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

// Aggregate 执行聚合管道
func (r *bookRepository) Aggregate(_ context.Context, pipeline book.Pipeline) ([]book.Document, error) {
	r.mu.RLock()
	docs := make([]book.Document, 0, len(r.order))
	for _, id := range r.order {
		docs = append(docs, cloneDocument(r.docs[id]))
	}
	r.mu.RUnlock()

	result, err := evaluate(docs, pipeline)
	if err != nil {
		return nil, apperrors.Wrap(err, "聚合查询失败")
	}
	return result, nil
}

// EnsureIndexes 内存存储不需要索引
func (r *bookRepository) EnsureIndexes(context.Context) error { return nil }

// Ping 内存存储总是可用
func (r *bookRepository) Ping(context.Context) error { return nil }

// Version 返回固定版本标识
func (r *bookRepository) Version(context.Context) (string, error) { return Version, nil }

func cloneDocument(doc book.Document) book.Document {
	out := make(book.Document, len(doc))
	for k, v := range doc {
		out[k] = v
	}
	return out
}
