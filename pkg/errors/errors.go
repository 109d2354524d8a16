package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// AppError 自定义应用错误
// 设计说明：
// 1. Code是业务错误码，前三位与HTTP状态码一致（40400 → 404）
// 2. Message是用户友好的提示信息
// 3. Err是内部错误，仅记录到日志，不返回给客户端
type AppError struct {
	Code    int    `json:"code"`    // 业务错误码
	Message string `json:"message"` // 用户友好的错误提示
	Err     error  `json:"-"`       // 内部错误（不序列化）
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%d] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%d] %s", e.Code, e.Message)
}

// Unwrap 支持errors.Is和errors.As
func (e *AppError) Unwrap() error {
	return e.Err
}

// Is Code与Message都相同的AppError视为同一错误
func (e *AppError) Is(target error) bool {
	var t *AppError
	if !errors.As(target, &t) {
		return false
	}
	return e.Code == t.Code && e.Message == t.Message
}

// HTTPStatus 由业务错误码推导HTTP状态码
func (e *AppError) HTTPStatus() int {
	status := e.Code / 100
	if http.StatusText(status) == "" {
		return http.StatusInternalServerError
	}
	return status
}

// IsServerError 5xxxx错误属于服务端故障
func (e *AppError) IsServerError() bool {
	return e.Code >= 50000
}

// WithCause 沿用错误码和提示，附带内部原因
// 结果与原错误满足errors.Is
func (e *AppError) WithCause(err error) *AppError {
	return &AppError{
		Code:    e.Code,
		Message: e.Message,
		Err:     err,
	}
}

// New 创建新的AppError
func New(code int, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
	}
}

// Wrap 包装系统错误（如数据库错误、网络错误）
func Wrap(err error, message string) *AppError {
	return &AppError{
		Code:    ErrCodeInternal,
		Message: message,
		Err:     err,
	}
}

// =========================================
// 错误码定义
// =========================================
// 规范：前三位是HTTP状态码，后两位区分具体原因
// - 4xxxx: 客户端错误（参数错误、业务规则校验失败）
// - 5xxxx: 服务端错误（数据库异常、外部服务调用失败）

const (
	// 参数错误（40000-40099）
	ErrCodeBindError = 40001 // 参数绑定失败

	// 资源错误（40400-40499）
	ErrCodeBookNotFound = 40401 // 图书不存在

	// 冲突（40900-40999）
	ErrCodeBookDuplicate = 40901 // 图书ID已存在

	// 校验失败（42200-42299）
	ErrCodeInvalidInput = 42200 // 必填字段缺失
	ErrCodeInvalidRange = 42201 // 价格区间非法

	// 系统级错误码（50000-50099）
	ErrCodeInternal      = 50000 // 内部错误
	ErrCodeDatabaseError = 50001 // 数据库错误
	ErrCodeRedisError    = 50002 // Redis错误

	// 依赖不可用（50300-50399）
	ErrCodeServiceUnavailable = 50300 // 存储熔断中
)

// =========================================
// 预定义错误
// =========================================

var (
	ErrInternal           = New(ErrCodeInternal, "系统内部错误")
	ErrDatabaseError      = New(ErrCodeDatabaseError, "数据库错误")
	ErrRedisError         = New(ErrCodeRedisError, "缓存服务错误")
	ErrServiceUnavailable = New(ErrCodeServiceUnavailable, "服务暂不可用，请稍后重试")

	ErrBindError = New(ErrCodeBindError, "参数格式错误")
)

// =========================================
// 辅助函数
// =========================================

// GetAppError 提取AppError（如果不是AppError则包装成Internal错误）
func GetAppError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return ErrInternal.WithCause(err)
}
