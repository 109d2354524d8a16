package book

import (
	"context"
)

// Service 图书领域服务接口
// 设计说明:
// 1. 负责把请求翻译成Predicate/Pipeline/Patch后交给Repository
// 2. 不依赖具体的Repository实现(依赖倒置)
type Service interface {
	// CreateBook 校验必填字段后入库
	CreateBook(ctx context.Context, params CreateParams) (*Book, error)

	// GetBook 根据ID获取图书
	GetBook(ctx context.Context, id string) (*Book, error)

	// ListBooks 返回前MaxResults本图书
	ListBooks(ctx context.Context) ([]*Book, error)

	// UpdateBook 局部更新
	// 空补丁不访问写接口,直接返回当前记录
	UpdateBook(ctx context.Context, id string, update Update) (*Book, error)

	// DeleteBook 删除图书
	DeleteBook(ctx context.Context, id string) error

	// SearchBooks 按书名、作者、价格区间搜索
	SearchBooks(ctx context.Context, search Search) ([]*Book, error)

	// TotalStock 全部库存总和,空集合为0
	TotalStock(ctx context.Context) (int64, error)

	// BestSelling 按书名汇总库存的前5本
	BestSelling(ctx context.Context) ([]*Book, error)

	// ProlificAuthors 图书数量最多的前5位作者
	ProlificAuthors(ctx context.Context) ([]string, error)

	// PrepareStore 启动时创建索引
	PrepareStore(ctx context.Context) error

	// CheckStore 检查存储可用
	CheckStore(ctx context.Context) error

	// StoreVersion 存储服务版本
	StoreVersion(ctx context.Context) (string, error)
}

// service 领域服务实现
type service struct {
	repo Repository
}

// NewService 创建图书领域服务
func NewService(repo Repository) Service {
	return &service{repo: repo}
}

// CreateBook 创建图书
func (s *service) CreateBook(ctx context.Context, params CreateParams) (*Book, error) {
	book, err := NewBook(params)
	if err != nil {
		return nil, err
	}

	if err := s.repo.Create(ctx, book); err != nil {
		return nil, err
	}

	return book, nil
}

// GetBook 根据ID获取图书
func (s *service) GetBook(ctx context.Context, id string) (*Book, error) {
	return s.repo.FindByID(ctx, id)
}

// ListBooks 列出图书
func (s *service) ListBooks(ctx context.Context) ([]*Book, error) {
	return s.repo.Find(ctx, Predicate{}, MaxResults)
}

// UpdateBook 局部更新图书
func (s *service) UpdateBook(ctx context.Context, id string, update Update) (*Book, error) {
	patch := update.Patch()
	if len(patch) == 0 {
		return s.repo.FindByID(ctx, id)
	}
	return s.repo.Update(ctx, id, patch)
}

// DeleteBook 删除图书
func (s *service) DeleteBook(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

// SearchBooks 搜索图书
func (s *service) SearchBooks(ctx context.Context, search Search) ([]*Book, error) {
	return s.repo.Find(ctx, BuildPredicate(search), MaxResults)
}

// TotalStock 库存总数
func (s *service) TotalStock(ctx context.Context) (int64, error) {
	docs, err := s.repo.Aggregate(ctx, CountPipeline())
	if err != nil {
		return 0, err
	}
	return StockTotal(docs), nil
}

// BestSelling 畅销书排行
func (s *service) BestSelling(ctx context.Context) ([]*Book, error) {
	docs, err := s.repo.Aggregate(ctx, BestSellingPipeline())
	if err != nil {
		return nil, err
	}
	return BooksFrom(docs), nil
}

// ProlificAuthors 高产作者排行
func (s *service) ProlificAuthors(ctx context.Context) ([]string, error) {
	docs, err := s.repo.Aggregate(ctx, ProlificAuthorsPipeline())
	if err != nil {
		return nil, err
	}
	return AuthorNames(docs), nil
}

// PrepareStore 创建索引
func (s *service) PrepareStore(ctx context.Context) error {
	return s.repo.EnsureIndexes(ctx)
}

// CheckStore 检查存储
func (s *service) CheckStore(ctx context.Context) error {
	return s.repo.Ping(ctx)
}

// StoreVersion 存储版本
func (s *service) StoreVersion(ctx context.Context) (string, error) {
	return s.repo.Version(ctx)
}
