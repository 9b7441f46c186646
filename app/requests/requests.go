// Package requests 处理请求数据和表单验证
package requests

import (
	"fmt"
	"net/url"
	"sort"
	"strings"

	"elderly/pkg/apperr"

	"github.com/gin-gonic/gin"
	"github.com/thedevsaddam/govalidator"
)

// ValidationError 自定义验证错误
type ValidationError struct {
	Errors url.Values
}

// Error 实现 error 接口，只返回第一个字段的第一条错误
func (v ValidationError) Error() string {
	keys := make([]string, 0, len(v.Errors))
	for k := range v.Errors {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		if msgs := v.Errors[k]; len(msgs) > 0 {
			return msgs[0]
		}
	}
	return fmt.Sprintf("验证错误: %v", v.Errors)
}

// ValidateStruct 通用的结构体验证函数，data 必须是结构体指针
func ValidateStruct(data interface{}, rules govalidator.MapData, messages govalidator.MapData) error {
	opts := govalidator.Options{
		Data:     data,
		Rules:    rules,
		Messages: messages,
	}

	if errs := govalidator.New(opts).ValidateStruct(); len(errs) > 0 {
		return apperr.Wrap(apperr.InvalidArgument, ValidationError{Errors: errs}, ValidationError{Errors: errs}.Error())
	}

	return nil
}

// ValidateRequest 通用的请求验证函数
func ValidateRequest[T any](c *gin.Context, rules govalidator.MapData, messages govalidator.MapData) (*T, error) {
	req := new(T)

	// 1. 解析请求体
	if err := c.ShouldBindJSON(req); err != nil {
		return nil, apperr.Wrap(apperr.InvalidArgument, err, "请求参数格式错误")
	}

	// 2. 验证结构体
	if err := ValidateStruct(req, rules, messages); err != nil {
		return nil, err
	}

	return req, nil
}

// RequiredQuery 读取必填的查询参数
func RequiredQuery(c *gin.Context, key, message string) (string, error) {
	value := strings.TrimSpace(c.Query(key))
	if value == "" {
		return "", apperr.Invalid(message)
	}
	return value, nil
}
