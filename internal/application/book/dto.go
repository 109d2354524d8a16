package book

import (
	"github.com/xiebiao/bookshelf/internal/domain/book"
)

// BookDTO 图书响应DTO
// ID序列化为_id，与集合中的字段名一致
type BookDTO struct {
	ID          string  `json:"_id"`
	Title       string  `json:"title"`
	Author      string  `json:"author"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Stock       int     `json:"stock"`
}

func toBookDTO(b *book.Book) *BookDTO {
	return &BookDTO{
		ID:          b.ID,
		Title:       b.Title,
		Author:      b.Author,
		Description: b.Description,
		Price:       b.Price,
		Stock:       b.Stock,
	}
}

// toBookDTOs 空结果返回空切片而不是nil（序列化为[]）
func toBookDTOs(books []*book.Book) []*BookDTO {
	out := make([]*BookDTO, len(books))
	for i, b := range books {
		out[i] = toBookDTO(b)
	}
	return out
}
