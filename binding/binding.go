package binding

import "net/http"

const (
	MIMEJSON    = "application/json"
	MIMEXML     = "application/xml"
	MIMETextXML = "text/xml"
)

// MaxBodyBytes 请求体大小上限，读请求体时超过该值会报错
var MaxBodyBytes int64 = 4 << 20 //4M

// Binding 实现了Binding接口的具体结构可以作为绑定器验证请求传递过来的参数是否符合要求
type Binding interface {
	Name() string
	Bind(*http.Request, any) error
}

// BindingBody 在Binding的基础上支持从已读出的字节做绑定，请求体读一次可以绑定多次
type BindingBody interface {
	Binding
	BindBody([]byte, any) error
}

var (
	JSON BindingBody = jsonBinding{}
	XML  BindingBody = xmlBinding{}
)

func Default(contentType string) Binding {
	switch contentType {
	case MIMEJSON:
		return JSON
	case MIMEXML, MIMETextXML:
		return XML
	default:
		return nil
	}
}
