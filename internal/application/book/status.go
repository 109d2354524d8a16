package book

import (
	"context"

	"github.com/xiebiao/bookshelf/internal/domain/book"
)

// ServiceVersion 本服务版本（构建时注入）
type ServiceVersion string

// StatusUseCase 服务状态
type StatusUseCase struct {
	bookService book.Service
	version     ServiceVersion
}

// NewStatusUseCase 创建用例
func NewStatusUseCase(bookService book.Service, version ServiceVersion) *StatusUseCase {
	return &StatusUseCase{bookService: bookService, version: version}
}

// StatusResponse GET / 的响应
type StatusResponse struct {
	MongoDB string `json:"mongodb"`
	Service string `json:"service"`
}

// Versions 存储版本与服务版本
func (uc *StatusUseCase) Versions(ctx context.Context) (*StatusResponse, error) {
	v, err := uc.bookService.StoreVersion(ctx)
	if err != nil {
		return nil, err
	}
	return &StatusResponse{MongoDB: v, Service: string(uc.version)}, nil
}

// Ready 存储是否可用
func (uc *StatusUseCase) Ready(ctx context.Context) error {
	return uc.bookService.CheckStore(ctx)
}
