// Package response 提供统一的 HTTP 响应处理

package response

import (
	"errors"
	"net/http"

	"elderly/pkg/apperr"
	"elderly/pkg/logger"

	"github.com/gin-gonic/gin"
)

// 预定义响应码
const (
	CodeSuccess      = 0   // 成功
	CodeServerError  = 500 // 失败（默认）
	CodeTooMany      = 429 // 请求过于频繁
	MessageSuccess   = "success"
	defaultErrorText = "服务器内部错误"
)

/* 标准响应结构
{
    "code": 0,          // 0 成功，其他失败
    "message": "success",
    "data": {}
}
*/

// Envelope 统一响应结构体
type Envelope struct {
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data"`
}

// Result 控制器内部使用的结果，成功携带数据，失败携带错误码和消息
type Result struct {
	ok      bool
	data    interface{}
	code    int
	message string
}

// Ok 成功结果
func Ok(data interface{}) Result {
	return Result{ok: true, data: data}
}

// Err 失败结果
func Err(code int, message string) Result {
	return Result{code: code, message: message}
}

// FromError 将错误转换为失败结果，沿用旧版接口：统一 500 + 原始错误信息
func FromError(err error) Result {
	if err == nil {
		return Ok(nil)
	}
	return Err(CodeServerError, err.Error())
}

// IsOK 是否成功
func (r Result) IsOK() bool {
	return r.ok
}

// Envelope 序列化为对外的响应结构
func (r Result) Envelope() Envelope {
	if r.ok {
		return Envelope{Code: CodeSuccess, Message: MessageSuccess, Data: r.data}
	}
	return Envelope{Code: r.code, Message: r.message}
}

// Write 输出结果，业务错误同样返回 HTTP 200，由 code 区分
func Write(c *gin.Context, r Result) {
	c.JSON(http.StatusOK, r.Envelope())
}

// ------------------ 🎯 成功响应系列 ------------------

// Success 响应成功，不带数据
func Success(c *gin.Context) {
	Write(c, Ok(nil))
}

// Data 响应成功和数据
func Data(c *gin.Context, data interface{}) {
	Write(c, Ok(data))
}

//  ------------------ 错误响应系列 ------------------

// Error 响应失败，默认 code=500，可指定错误码
func Error(c *gin.Context, message string, code ...int) {
	errCode := CodeServerError
	if len(code) > 0 {
		errCode = code[0]
	}
	Write(c, Err(errCode, message))
}

// Fail 根据错误响应失败，并按错误类别记录日志
func Fail(c *gin.Context, err error, msg ...string) {
	if err == nil {
		err = errors.New(getMsg(defaultErrorText, msg...))
	}

	switch apperr.KindOf(err) {
	case apperr.InvalidArgument, apperr.NotFound:
		logger.LogWarnIf(err)
	default:
		logger.LogIf(err)
	}

	result := FromError(err)
	if len(msg) > 0 {
		result = Err(CodeServerError, msg[0]+err.Error())
	}
	Write(c, result)
}

// Abort 中断请求并返回失败结果，供中间件使用
func Abort(c *gin.Context, code int, message string) {
	c.AbortWithStatusJSON(http.StatusOK, Err(code, message).Envelope())
}

// Abort404 路由未定义
func Abort404(c *gin.Context, msg ...string) {
	c.AbortWithStatusJSON(http.StatusNotFound, Err(http.StatusNotFound, getMsg("资源不存在", msg...)).Envelope())
}

// getMsg 获取消息内容
func getMsg(defaultMsg string, msg ...string) string {
	if len(msg) > 0 {
		return msg[0]
	}
	return defaultMsg
}
