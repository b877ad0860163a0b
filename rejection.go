package psyxml

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/Psychopath-H/psyxml/internal/bytesconv"
	"github.com/Psychopath-H/psyxml/render"
)

// RejectionType 标识请求是在哪一步被拒绝的
type RejectionType uint64

const (
	// RejectionTypeContentType Content-Type没有声明为XML
	RejectionTypeContentType RejectionType = 1 << 0
	// RejectionTypeBody 请求体读取失败
	RejectionTypeBody RejectionType = 1 << 1
	// RejectionTypeSyntax 请求体不是能解进目标结构的合法XML文档
	RejectionTypeSyntax RejectionType = 1 << 2
	// RejectionTypeValidation 解码成功但没通过验证器
	RejectionTypeValidation RejectionType = 1 << 3
)

// Rejection 包装了绑定失败的原因，并携带对应的HTTP状态码
type Rejection struct {
	Err  error
	Type RejectionType
}

var _ error = (*Rejection)(nil)

// Error 实现了 Error()接口
func (msg *Rejection) Error() string {
	switch msg.Type {
	case RejectionTypeContentType:
		return "Expected request with `Content-Type: application/xml`"
	case RejectionTypeBody:
		return fmt.Sprintf("Failed to buffer the request body: %v", msg.Err)
	case RejectionTypeSyntax, RejectionTypeValidation:
		return fmt.Sprintf("Failed to parse the request body as XML: %v", msg.Err)
	}
	if msg.Err != nil {
		return msg.Err.Error()
	}
	return "bind rejected"
}

// Unwrap 暴露底层错误，调用方可以用errors.As探查具体原因
func (msg *Rejection) Unwrap() error {
	return msg.Err
}

// SetType 设置错误的类型
func (msg *Rejection) SetType(flags RejectionType) *Rejection {
	msg.Type = flags
	return msg
}

// StatusCode 返回该拒绝原因对应的HTTP状态码
func (msg *Rejection) StatusCode() int {
	switch msg.Type {
	case RejectionTypeContentType:
		return http.StatusUnsupportedMediaType
	case RejectionTypeSyntax, RejectionTypeValidation:
		return http.StatusUnprocessableEntity
	case RejectionTypeBody:
		var maxErr *http.MaxBytesError
		if errors.As(msg.Err, &maxErr) {
			return http.StatusRequestEntityTooLarge
		}
		return http.StatusBadRequest
	}
	return http.StatusBadRequest
}

// Respond 把拒绝原因以text/plain的形式写成响应
func (msg *Rejection) Respond(w http.ResponseWriter) {
	data := render.Data{
		ContentType: "text/plain; charset=utf-8",
		Data:        bytesconv.StringToBytes(msg.Error()),
	}
	_ = data.RenderData(w, msg.StatusCode())
}
