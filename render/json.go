package render

import (
	"encoding/json"
	"net/http"
)

// JSON 渲染器，和XML一样先序列化再提交状态码
type JSON struct {
	Data any
}

func (j *JSON) RenderData(w http.ResponseWriter, code int) error {
	body, err := j.Marshal()
	if err != nil {
		return err
	}
	j.WriteContentType(w)
	w.WriteHeader(code)
	_, err = w.Write(body)
	return err
}

// Marshal 把Data序列化成JSON字节
func (j *JSON) Marshal() ([]byte, error) {
	return json.Marshal(j.Data)
}

func (j *JSON) WriteContentType(w http.ResponseWriter) {
	writeContentType(w, "application/json; charset=utf-8")
}
