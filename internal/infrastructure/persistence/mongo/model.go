package mongo

import (
	"github.com/xiebiao/bookshelf/internal/domain/book"
)

// bookModel 集合中的文档结构
type bookModel struct {
	ID          string  `bson:"_id"`
	Title       string  `bson:"title"`
	Author      string  `bson:"author"`
	Description string  `bson:"description"`
	Price       float64 `bson:"price"`
	Stock       int     `bson:"stock"`
}

func toBookModel(b *book.Book) *bookModel {
	return &bookModel{
		ID:          b.ID,
		Title:       b.Title,
		Author:      b.Author,
		Description: b.Description,
		Price:       b.Price,
		Stock:       b.Stock,
	}
}

func toBookEntity(m *bookModel) *book.Book {
	return &book.Book{
		ID:          m.ID,
		Title:       m.Title,
		Author:      m.Author,
		Description: m.Description,
		Price:       m.Price,
		Stock:       m.Stock,
	}
}
