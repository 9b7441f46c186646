// Package apperr 定义业务错误类型
package apperr

import (
	"errors"
	"fmt"
)

// Kind 错误类别
type Kind string

const (
	InvalidArgument      Kind = "invalid_argument"       // 缺少必要参数
	NotFound             Kind = "not_found"              // 记录不存在
	PersistenceError     Kind = "persistence_error"      // 存储写入失败
	ExternalServiceError Kind = "external_service_error" // 第三方服务调用失败
)

// Error 带类别的业务错误
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

// Error 实现 error 接口，只返回面向用户的消息
func (e *Error) Error() string {
	if e.Message == "" && e.Err != nil {
		return e.Err.Error()
	}
	return e.Message
}

// Unwrap 支持 errors.Is / errors.As
func (e *Error) Unwrap() error {
	return e.Err
}

// New 创建业务错误
func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// Wrap 包装底层错误
func Wrap(kind Kind, err error, message string) *Error {
	return &Error{Kind: kind, Message: message, Err: err}
}

// Invalid 缺少参数
func Invalid(format string, args ...interface{}) *Error {
	return New(InvalidArgument, fmt.Sprintf(format, args...))
}

// NotFoundf 记录不存在
func NotFoundf(format string, args ...interface{}) *Error {
	return New(NotFound, fmt.Sprintf(format, args...))
}

// KindOf 获取错误类别，非业务错误返回空字符串
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return ""
}

// Is 判断错误是否属于指定类别
func Is(err error, kind Kind) bool {
	return KindOf(err) == kind
}
