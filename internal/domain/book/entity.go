package book

import (
	"github.com/google/uuid"
)

// 文档字段名（与集合中的字段一致）
const (
	FieldID          = "_id"
	FieldTitle       = "title"
	FieldAuthor      = "author"
	FieldDescription = "description"
	FieldPrice       = "price"
	FieldStock       = "stock"
)

// MaxResults 列表与搜索的固定返回上限
const MaxResults = 100

// Book 图书实体
// ID创建后不可变，其余字段可通过局部更新修改
type Book struct {
	ID          string
	Title       string
	Author      string
	Description string
	Price       float64 // 不校验非负
	Stock       int
}

// CreateParams 创建图书的原始输入
// 指针为nil表示请求中未提供该字段
type CreateParams struct {
	ID          string
	Title       *string
	Author      *string
	Description *string
	Price       *float64
	Stock       *int
}

// NewBook 校验必填字段并创建图书
// ID未提供时生成UUID
func NewBook(p CreateParams) (*Book, error) {
	switch {
	case p.Title == nil:
		return nil, missingField(FieldTitle)
	case p.Author == nil:
		return nil, missingField(FieldAuthor)
	case p.Description == nil:
		return nil, missingField(FieldDescription)
	case p.Price == nil:
		return nil, missingField(FieldPrice)
	case p.Stock == nil:
		return nil, missingField(FieldStock)
	}

	id := p.ID
	if id == "" {
		id = uuid.NewString()
	}

	return &Book{
		ID:          id,
		Title:       *p.Title,
		Author:      *p.Author,
		Description: *p.Description,
		Price:       *p.Price,
		Stock:       *p.Stock,
	}, nil
}

// Update 局部更新请求
type Update struct {
	Title       *string
	Author      *string
	Description *string
	Price       *float64
	Stock       *int
}

// Patch 需要覆盖的字段集合（字段名 → 新值）
type Patch map[string]any

// Patch 只收集显式提供的字段
func (u Update) Patch() Patch {
	patch := Patch{}
	if u.Title != nil {
		patch[FieldTitle] = *u.Title
	}
	if u.Author != nil {
		patch[FieldAuthor] = *u.Author
	}
	if u.Description != nil {
		patch[FieldDescription] = *u.Description
	}
	if u.Price != nil {
		patch[FieldPrice] = *u.Price
	}
	if u.Stock != nil {
		patch[FieldStock] = *u.Stock
	}
	return patch
}

// =========================================
// 文档表示
// =========================================

// Document 存储层无关的文档表示
type Document map[string]any

// ToDocument 图书 → 文档
func (b *Book) ToDocument() Document {
	return Document{
		FieldID:          b.ID,
		FieldTitle:       b.Title,
		FieldAuthor:      b.Author,
		FieldDescription: b.Description,
		FieldPrice:       b.Price,
		FieldStock:       b.Stock,
	}
}

// FromDocument 文档 → 图书
// 数值字段兼容int32/int64/float64等存储类型
func FromDocument(doc Document) *Book {
	b := &Book{}
	b.ID, _ = doc[FieldID].(string)
	b.Title, _ = doc[FieldTitle].(string)
	b.Author, _ = doc[FieldAuthor].(string)
	b.Description, _ = doc[FieldDescription].(string)
	if f, ok := ToFloat64(doc[FieldPrice]); ok {
		b.Price = f
	}
	if n, ok := ToInt64(doc[FieldStock]); ok {
		b.Stock = int(n)
	}
	return b
}

// ToFloat64 数值类型统一转换为float64
func ToFloat64(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	default:
		return 0, false
	}
}

// ToInt64 数值类型统一转换为int64
func ToInt64(v any) (int64, bool) {
	switch n := v.(type) {
	case int:
		return int64(n), true
	case int32:
		return int64(n), true
	case int64:
		return n, true
	case float64:
		return int64(n), true
	case float32:
		return int64(n), true
	default:
		return 0, false
	}
}
