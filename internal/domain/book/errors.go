package book

import (
	apperrors "github.com/xiebiao/bookshelf/pkg/errors"
)

// 图书领域错误定义
var (
	// ErrBookNotFound 图书不存在
	ErrBookNotFound = apperrors.New(apperrors.ErrCodeBookNotFound, "图书不存在")

	// ErrBookDuplicate 图书ID已存在
	ErrBookDuplicate = apperrors.New(apperrors.ErrCodeBookDuplicate, "图书ID已存在")

	// ErrMissingMaxPrice 只给了最低价
	ErrMissingMaxPrice = apperrors.New(apperrors.ErrCodeInvalidRange, "missing max price")

	// ErrInvalidPriceRange 最低价高于最高价
	ErrInvalidPriceRange = apperrors.New(apperrors.ErrCodeInvalidRange, "invalid price range")

	// ErrStoreUnavailable 存储熔断中
	ErrStoreUnavailable = apperrors.ErrServiceUnavailable
)

// missingField 必填字段缺失
func missingField(field string) *apperrors.AppError {
	return apperrors.New(apperrors.ErrCodeInvalidInput, "缺少必填字段: "+field)
}
