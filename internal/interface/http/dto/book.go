package dto

// CreateBookRequest HTTP创建请求
// 字段全部是指针，nil表示请求体中没有该字段（缺失由领域层返回42200）
// ID可以用_id或id传入，都没有时自动生成
type CreateBookRequest struct {
	ID          *string  `json:"_id" example:"0d3c3a1e-6f0b-4f5e-9b1a-2f7c9d6e8a10"`
	AltID       *string  `json:"id" swaggerignore:"true"`
	Title       *string  `json:"title" example:"Don Quixote"`
	Author      *string  `json:"author" example:"Miguel de Cervantes"`
	Description *string  `json:"description" example:"This novel follows the adventures of a noble"`
	Price       *float64 `json:"price" example:"9.99"`
	Stock       *int     `json:"stock" example:"10"`
}

// BookID 优先使用_id
func (r *CreateBookRequest) BookID() string {
	switch {
	case r.ID != nil:
		return *r.ID
	case r.AltID != nil:
		return *r.AltID
	default:
		return ""
	}
}

// UpdateBookRequest HTTP局部更新请求
// 缺失或为null的字段保持不变
type UpdateBookRequest struct {
	Title       *string  `json:"title" example:"Don Quixote"`
	Author      *string  `json:"author" example:"Miguel de Cervantes"`
	Description *string  `json:"description" example:"This novel follows the adventures of a noble"`
	Price       *float64 `json:"price" example:"12.5"`
	Stock       *int     `json:"stock" example:"20"`
}

// SearchBooksRequest 搜索查询参数
// 只给min_price会被拒绝；只给max_price时最低价按0处理
// 价格由handler单独解析，空值视为未给出
type SearchBooksRequest struct {
	Title    *string  `form:"title"`
	Author   *string  `form:"author"`
	MinPrice *float64 `form:"-"`
	MaxPrice *float64 `form:"-"`
}
