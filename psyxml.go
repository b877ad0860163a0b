package psyxml

import (
	"errors"
	"io"
	"mime"
	"net/http"
	"strings"

	"github.com/Psychopath-H/psyxml/binding"
	"github.com/Psychopath-H/psyxml/internal/bytesconv"
	"github.com/Psychopath-H/psyxml/render"
	"github.com/go-playground/validator/v10"
)

type H map[string]any

// RenderIndent XML响应的缩进，默认不缩进
var RenderIndent = ""

// XML 包装一个从请求体里解出来的值，或者一个待编码成XML响应的值
type XML[T any] struct {
	Value T
}

// Wrap 把data包装成XML[T]
func Wrap[T any](data T) XML[T] {
	return XML[T]{Value: data}
}

// FromRequest 从请求体里提取出T类型的值，失败时返回*Rejection
func FromRequest[T any](r *http.Request) (XML[T], error) {
	var out XML[T]
	if err := BindXML(r, &out.Value); err != nil {
		return out, err
	}
	return out, nil
}

// Respond 把包装的值编码成XML写进响应，状态码200
func (x XML[T]) Respond(w http.ResponseWriter) {
	WriteXML(w, http.StatusOK, x.Value)
}

// BindXML 处理从请求的body部分传递过来的data，将XML格式数据转换为Go里的数据结构
// 绑定失败时返回携带HTTP状态码的*Rejection:
// Content-Type不是XML对应415，请求体读取失败对应400或413，解码或验证失败对应422
func BindXML(r *http.Request, obj any) error {
	if !isXMLContentType(r) {
		return &Rejection{Type: RejectionTypeContentType}
	}
	body, err := readBody(r)
	if err != nil {
		return &Rejection{Err: err, Type: RejectionTypeBody}
	}
	if err := binding.XML.BindBody(body, obj); err != nil {
		return &Rejection{Err: err, Type: bindErrorType(err)}
	}
	return nil
}

// BindJson 处理从请求的body部分传递过来的data，将Json格式数据转换为Go里的数据结构
func BindJson(r *http.Request, obj any) error {
	return binding.JSON.Bind(r, obj)
}

// Bind 检查 Content-Type 去自动选择一个绑定格式
func Bind(r *http.Request, obj any) error {
	b := binding.Default(filterFlags(r.Header.Get("Content-Type")))
	if b == nil {
		return errors.New("can't match binding")
	}
	return b.Bind(r, obj)
}

// WriteXML 把data编码成XML写进响应
// 编码失败时响应还没提交，改写成500的text/plain错误响应
// 状态码写出去之后的写失败（比如客户端断开）只记日志，不再动状态码
func WriteXML(w http.ResponseWriter, statusCode int, data any) {
	x := render.XML{Data: data, Indent: RenderIndent}
	body, err := x.Marshal()
	if err != nil {
		debugPrintError(err)
		writeRenderFailure(w, err)
		return
	}
	x.WriteContentType(w)
	w.WriteHeader(statusCode)
	if _, err = w.Write(body); err != nil {
		debugPrintError(err)
	}
}

// WriteJSON 把data编码成JSON写进响应，编码失败时同样退到500
func WriteJSON(w http.ResponseWriter, statusCode int, data any) {
	j := render.JSON{Data: data}
	body, err := j.Marshal()
	if err != nil {
		debugPrintError(err)
		writeRenderFailure(w, err)
		return
	}
	j.WriteContentType(w)
	w.WriteHeader(statusCode)
	if _, err = w.Write(body); err != nil {
		debugPrintError(err)
	}
}

// WriteRejection 把绑定产生的错误写成响应，err不是*Rejection时按400处理
func WriteRejection(w http.ResponseWriter, err error) {
	var rej *Rejection
	if errors.As(err, &rej) {
		debugPrintRejection(rej)
		rej.Respond(w)
		return
	}
	data := render.Data{
		ContentType: "text/plain; charset=utf-8",
		Data:        bytesconv.StringToBytes(err.Error()),
	}
	_ = data.RenderData(w, http.StatusBadRequest)
}

func writeRenderFailure(w http.ResponseWriter, err error) {
	data := render.Data{
		ContentType: "text/plain; charset=utf-8",
		Data:        bytesconv.StringToBytes(err.Error()),
	}
	_ = data.RenderData(w, http.StatusInternalServerError)
}

// readBody 把请求体一次性读进内存，超过binding.MaxBodyBytes时报错
func readBody(r *http.Request) ([]byte, error) {
	if r == nil || r.Body == nil {
		return nil, errors.New("invalid request")
	}
	reader := http.MaxBytesReader(nil, r.Body, binding.MaxBodyBytes)
	defer reader.Close()
	return io.ReadAll(reader)
}

// isXMLContentType 判断请求头里声明的Content-Type是不是XML类
// application/xml、text/xml以及application/*+xml这样的子类型都算
func isXMLContentType(r *http.Request) bool {
	mediaType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if err != nil {
		return false
	}
	typ, subtype, ok := strings.Cut(mediaType, "/")
	if !ok {
		return false
	}
	if typ != "application" && typ != "text" {
		return false
	}
	return subtype == "xml" || strings.HasSuffix(subtype, "+xml")
}

// bindErrorType 区分解码失败和验证失败
func bindErrorType(err error) RejectionType {
	var vErrs validator.ValidationErrors
	var sErrs binding.SliceValidationError
	if errors.As(err, &vErrs) || errors.As(err, &sErrs) {
		return RejectionTypeValidation
	}
	return RejectionTypeSyntax
}
