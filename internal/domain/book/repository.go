package book

import (
	"context"
)

// Repository 图书仓储接口(依赖倒置原则)
// 设计说明:
// 1. 由domain层定义接口,infrastructure层实现(MongoDB / 内存)
// 2. 入参是存储无关的Predicate、Pipeline、Patch,由实现负责翻译
type Repository interface {
	// Create 插入图书,ID重复返回ErrBookDuplicate
	Create(ctx context.Context, book *Book) error

	// FindByID 根据ID查找图书
	FindByID(ctx context.Context, id string) (*Book, error)

	// Find 按条件查找,最多返回limit条
	Find(ctx context.Context, predicate Predicate, limit int) ([]*Book, error)

	// Update 只覆盖patch中的字段,返回更新后的图书
	Update(ctx context.Context, id string, patch Patch) (*Book, error)

	// Delete 删除图书
	Delete(ctx context.Context, id string) error

	// Aggregate 执行聚合管道
	Aggregate(ctx context.Context, pipeline Pipeline) ([]Document, error)

	// EnsureIndexes 创建title、author、price索引
	EnsureIndexes(ctx context.Context) error

	// Ping 检查存储可用
	Ping(ctx context.Context) error

	// Version 存储服务版本
	Version(ctx context.Context) (string, error)
}
