package apperr

import (
	"errors"
	"net/http"
)

// ValidationError 调用方入参错误（缺失/非法），对应 HTTP 400。
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// NotFoundError 引用的实体不存在，对应 HTTP 404。
type NotFoundError struct {
	Message string
}

func (e *NotFoundError) Error() string {
	return e.Message
}

// Validation 构造 ValidationError。
func Validation(msg string) error {
	return &ValidationError{Message: msg}
}

// NotFound 构造 NotFoundError。
func NotFound(msg string) error {
	return &NotFoundError{Message: msg}
}

// IsValidation 判断是否为入参错误。
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// IsNotFound 判断是否为实体不存在。
func IsNotFound(err error) bool {
	var ne *NotFoundError
	return errors.As(err, &ne)
}

// HTTPStatus 把业务错误映射为 HTTP 状态码。
// 只认两类业务错误，其余一律视为服务端内部错误。
func HTTPStatus(err error) int {
	switch {
	case IsValidation(err):
		return http.StatusBadRequest
	case IsNotFound(err):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// Kind 返回错误分类标识，用于响应体里的 error 字段。
func Kind(err error) string {
	switch {
	case IsValidation(err):
		return "validation_error"
	case IsNotFound(err):
		return "not_found"
	default:
		return "internal_error"
	}
}
