package mongo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/xiebiao/bookshelf/internal/domain/book"
	apperrors "github.com/xiebiao/bookshelf/pkg/errors"
)

// bookRepository 图书仓储实现(MongoDB)
// 设计说明:
// 1. 实现domain/book/repository.go定义的接口
// 2. 把存储无关的Predicate/Pipeline/Patch翻译为bson（translate.go）
// 3. 处理驱动特定的错误(如_id重复、文档不存在),转换为业务错误
type bookRepository struct {
	coll *mongo.Collection
}

// NewBookRepository 创建图书仓储
func NewBookRepository(coll *mongo.Collection) book.Repository {
	return &bookRepository{coll: coll}
}

// Create 插入图书
func (r *bookRepository) Create(ctx context.Context, b *book.Book) error {
	if _, err := r.coll.InsertOne(ctx, toBookModel(b)); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return book.ErrBookDuplicate
		}
		return dbError(err, "创建图书失败")
	}
	return nil
}

// FindByID 根据ID查找图书
func (r *bookRepository) FindByID(ctx context.Context, id string) (*book.Book, error) {
	var model bookModel
	err := r.coll.FindOne(ctx, bson.M{book.FieldID: id}).Decode(&model)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, book.ErrBookNotFound
		}
		return nil, dbError(err, "查询图书失败")
	}
	return toBookEntity(&model), nil
}

// Find 按条件查找，最多返回limit条
func (r *bookRepository) Find(ctx context.Context, predicate book.Predicate, limit int) ([]*book.Book, error) {
	opts := options.Find()
	if limit > 0 {
		opts.SetLimit(int64(limit))
	}

	cursor, err := r.coll.Find(ctx, toFilter(predicate), opts)
	if err != nil {
		return nil, dbError(err, "查询图书列表失败")
	}

	var models []bookModel
	if err := cursor.All(ctx, &models); err != nil {
		return nil, dbError(err, "读取图书列表失败")
	}

	books := make([]*book.Book, len(models))
	for i := range models {
		books[i] = toBookEntity(&models[i])
	}
	return books, nil
}

// Update 只$set补丁中的字段，返回更新后的文档
func (r *bookRepository) Update(ctx context.Context, id string, patch book.Patch) (*book.Book, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var model bookModel
	err := r.coll.FindOneAndUpdate(ctx, bson.M{book.FieldID: id}, toUpdate(patch), opts).Decode(&model)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, book.ErrBookNotFound
		}
		return nil, dbError(err, "更新图书失败")
	}
	return toBookEntity(&model), nil
}

// Delete 删除图书
func (r *bookRepository) Delete(ctx context.Context, id string) error {
	result, err := r.coll.DeleteOne(ctx, bson.M{book.FieldID: id})
	if err != nil {
		return dbError(err, "删除图书失败")
	}
	if result.DeletedCount == 0 {
		return book.ErrBookNotFound
	}
	return nil
}

// Aggregate 执行聚合管道
func (r *bookRepository) Aggregate(ctx context.Context, p book.Pipeline) ([]book.Document, error) {
	pipeline, err := toPipeline(p)
	if err != nil {
		return nil, apperrors.Wrap(err, "聚合管道无效")
	}

	cursor, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, dbError(err, "聚合查询失败")
	}

	var rows []bson.M
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, dbError(err, "读取聚合结果失败")
	}

	docs := make([]book.Document, len(rows))
	for i, row := range rows {
		docs[i] = toDocument(row)
	}
	return docs, nil
}

// EnsureIndexes 创建title、author、price单字段索引
// 已存在的同名索引不会重复创建
func (r *bookRepository) EnsureIndexes(ctx context.Context) error {
	models := []mongo.IndexModel{
		{Keys: bson.D{{Key: book.FieldTitle, Value: 1}}},
		{Keys: bson.D{{Key: book.FieldAuthor, Value: 1}}},
		{Keys: bson.D{{Key: book.FieldPrice, Value: 1}}},
	}
	if _, err := r.coll.Indexes().CreateMany(ctx, models); err != nil {
		return dbError(err, "创建索引失败")
	}
	return nil
}

// Ping 检查主节点可用
func (r *bookRepository) Ping(ctx context.Context) error {
	if err := r.coll.Database().Client().Ping(ctx, readpref.Primary()); err != nil {
		return dbError(err, "MongoDB不可用")
	}
	return nil
}

// Version 通过buildInfo读取服务端版本
func (r *bookRepository) Version(ctx context.Context) (string, error) {
	var info struct {
		Version string `bson:"version"`
	}
	cmd := bson.D{{Key: "buildInfo", Value: 1}}
	if err := r.coll.Database().RunCommand(ctx, cmd).Decode(&info); err != nil {
		return "", dbError(err, "读取MongoDB版本失败")
	}
	return info.Version, nil
}

func dbError(err error, message string) *apperrors.AppError {
	return apperrors.ErrDatabaseError.WithCause(fmt.Errorf("%s: %w", message, err))
}
