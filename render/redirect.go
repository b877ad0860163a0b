package render

import (
	"fmt"
	"net/http"
)

// Redirect 把请求重定向到Location指向的地址
type Redirect struct {
	Code     int
	Request  *http.Request
	Location string
}

// RenderData (Redirect) 检查状态码合法后交给http.Redirect完成跳转
func (r Redirect) RenderData(w http.ResponseWriter, code int) error {
	if (r.Code < http.StatusMultipleChoices || r.Code > http.StatusPermanentRedirect) && r.Code != http.StatusCreated {
		panic(fmt.Sprintf("Cannot redirect with status code %d", r.Code))
	}
	http.Redirect(w, r.Request, r.Location, r.Code)
	return nil
}

// WriteContentType (Redirect) 重定向不写Content-Type
func (r Redirect) WriteContentType(http.ResponseWriter) {}
